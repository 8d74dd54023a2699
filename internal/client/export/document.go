package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
)

const (
	FormatCSV      = "csv"
	FormatMarkdown = "md"
)

// FileName names an export created at now, e.g. standup-entries-2024-03-01.csv.
func FileName(format string, now time.Time) string {
	return fmt.Sprintf("standup-entries-%s.%s", now.Format(time.DateOnly), format)
}

func ContentType(format string) string {
	if format == FormatCSV {
		return "text/csv"
	}
	return "text/markdown; charset=utf-8"
}

// WriteDocument writes a Markdown report with one section per local day,
// newest day first. Within a day entries keep their list order.
func WriteDocument(w io.Writer, entries []models.Entry, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	groups := map[string][]models.Entry{}
	for _, e := range entries {
		key := e.Date.In(loc).Format(time.DateOnly)
		groups[key] = append(groups[key], e)
	}
	days := make([]string, 0, len(groups))
	for k := range groups {
		days = append(days, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	var b strings.Builder
	b.WriteString("# StandUp+ Entries Export\n")
	for _, day := range days {
		d, _ := time.ParseInLocation(time.DateOnly, day, loc)
		fmt.Fprintf(&b, "\n## %s\n", d.Format("Monday, January 2, 2006"))
		for _, e := range groups[day] {
			fmt.Fprintf(&b, "\n**%s**  \n%s\n", e.Date.In(loc).Format("3:04 PM"), e.Text)
			if markers := labelMarkers(e); markers != "" {
				fmt.Fprintf(&b, "\n%s\n", markers)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func labelMarkers(e models.Entry) string {
	var parts []string
	for _, t := range e.Tags {
		parts = append(parts, "#"+t)
	}
	for _, p := range e.Projects {
		parts = append(parts, "@"+p)
	}
	return strings.Join(parts, " ")
}
