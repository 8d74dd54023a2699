// Package export serialises entries to downloadable files and uploads them
// to object storage for signed-in users.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
)

var csvHeader = []string{"Date", "Entry", "Tags", "Projects"}

const labelSep = ", "

// WriteCSV writes one row per entry in the given order. Dates are RFC 3339
// in loc. Labels are joined with ", "; a label holding a comma or a quote is
// quoted CSV-style so ReadCSV gets it back intact.
func WriteCSV(w io.Writer, entries []models.Entry, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.Date.In(loc).Format(time.RFC3339),
			e.Text,
			joinLabels(e.Tags),
			joinLabels(e.Projects),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses what WriteCSV wrote. Entries come back without ids.
func ReadCSV(r io.Reader) ([]models.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty csv")
	}
	if err != nil {
		return nil, err
	}
	for i, h := range csvHeader {
		if header[i] != h {
			return nil, fmt.Errorf("unexpected column %d: %q", i+1, header[i])
		}
	}

	var out []models.Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		d, err := time.Parse(time.RFC3339, rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(out)+2, err)
		}
		tags, err := splitLabels(rec[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: tags: %w", len(out)+2, err)
		}
		projects, err := splitLabels(rec[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: projects: %w", len(out)+2, err)
		}
		out = append(out, models.Entry{
			Text:     rec[1],
			Date:     d,
			Tags:     tags,
			Projects: projects,
		})
	}
}

func joinLabels(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		if strings.ContainsAny(l, ",\"\r\n") || strings.TrimSpace(l) != l {
			l = `"` + strings.ReplaceAll(l, `"`, `""`) + `"`
		}
		quoted[i] = l
	}
	return strings.Join(quoted, labelSep)
}

func splitLabels(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	r := csv.NewReader(strings.NewReader(s))
	r.TrimLeadingSpace = true
	rec, err := r.Read()
	if err != nil {
		return nil, err
	}
	return models.NormalizeLabels(rec), nil
}
