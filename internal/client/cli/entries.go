package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
	"github.com/gosuri/uitable"
)

var errUsage = errors.New("usage")

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

// Add creates an entry from quick-entry text: "#word" becomes a tag and
// "@word" a project.
func (a *App) Add(ctx context.Context, args []string) error {
	input := strings.Join(args, " ")
	if input == "" && interactive() {
		var err error
		if input, err = GetSimpleText(a.reader, "What did you work on? (#tag, @project)", a.out); err != nil {
			return err
		}
	}
	text, tags, projects := models.ParseQuickEntry(input)
	e, err := a.entries.Add(ctx, text, tags, projects)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s)\n", e.ID, a.entries.Backend())
	return nil
}

// Edit replaces an entry's text and labels. The creation date is kept.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("edit <id> [text #tag @project]")
	}
	id := args[0]
	input := strings.Join(args[1:], " ")
	if input == "" {
		idx := models.IndexOf(a.entries.List(), id)
		if idx < 0 {
			return fmt.Errorf("entry %s not found", id)
		}
		cur := a.entries.List()[idx]
		var err error
		if input, err = GetSimpleText(a.reader, "Current: "+quickText(cur)+"\nNew text", a.out); err != nil {
			return err
		}
	}
	text, tags, projects := models.ParseQuickEntry(input)
	if err := a.entries.Update(ctx, id, text, tags, projects); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Updated", id)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <id>")
	}
	if models.IndexOf(a.entries.List(), args[0]) < 0 {
		fmt.Fprintf(a.out, "No entry with id %s.\n", args[0])
		return nil
	}
	if err := a.entries.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted", args[0])
	return nil
}

// List prints the entries that pass the filter built from args.
func (a *App) List(_ context.Context, args []string) error {
	f, err := parseFilter(args, a.now(), a.loc)
	if err != nil {
		return err
	}
	a.printEntries(f.Apply(a.entries.List(), a.loc))
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("search <words>")
	}
	return a.List(ctx, args)
}

// parseFilter reads "today", "yesterday" or YYYY-MM-DD as the day, "#tag"
// and "@project" as label filters and everything else as search text.
func parseFilter(args []string, now time.Time, loc *time.Location) (models.Filter, error) {
	var f models.Filter
	var words []string
	for _, arg := range args {
		switch {
		case arg == "today":
			f.Day = now.In(loc)
		case arg == "yesterday":
			f.Day = now.In(loc).AddDate(0, 0, -1)
		case len(arg) > 1 && strings.HasPrefix(arg, "#"):
			f.Tags = append(f.Tags, arg[1:])
		case len(arg) > 1 && strings.HasPrefix(arg, "@"):
			f.Projects = append(f.Projects, arg[1:])
		default:
			if d, err := time.ParseInLocation(time.DateOnly, arg, loc); err == nil {
				f.Day = d
				continue
			}
			words = append(words, arg)
		}
	}
	f.Search = strings.Join(words, " ")
	return f, nil
}

func (a *App) printEntries(entries []models.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries.")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow("ID", "DATE", "ENTRY", "TAGS", "PROJECTS")
	for _, e := range entries {
		tbl.AddRow(e.ID, e.Date.In(a.loc).Format("2006-01-02 3:04 PM"), e.Text,
			strings.Join(e.Tags, ", "), strings.Join(e.Projects, ", "))
	}
	fmt.Fprintln(a.out, tbl)
}

// quickText renders e back into quick-entry form.
func quickText(e models.Entry) string {
	parts := []string{e.Text}
	for _, t := range e.Tags {
		parts = append(parts, "#"+t)
	}
	for _, p := range e.Projects {
		parts = append(parts, "@"+p)
	}
	return strings.Join(parts, " ")
}
