package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/standup/internal/calendar"
	"github.com/dmitrijs2005/standup/internal/client/summary"
)

// Calendar prints the contribution heatmap for a year, the current one by
// default. Future years are clamped to the current year.
func (a *App) Calendar(_ context.Context, args []string) error {
	now := a.now()
	year := now.In(a.loc).Year()
	if len(args) > 0 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return usage("calendar [year]")
		}
		year = calendar.ClampYear(y, now.In(a.loc))
		if year != y {
			fmt.Fprintf(a.out, "%d is in the future, showing %d\n", y, year)
		}
	}

	return a.renderer.Render(a.out, calendar.Aggregate(a.entries.List(), year, a.loc), now)
}

// Summary asks the text-generation endpoint for a standup script built from
// today's entries.
func (a *App) Summary(ctx context.Context, args []string) error {
	opts, err := parseSummaryOptions(args)
	if err != nil {
		return err
	}

	today := summary.Today(a.entries.List(), a.now(), a.loc)
	if len(today) == 0 {
		fmt.Fprintln(a.out, "No entries from today.")
		return nil
	}
	fmt.Fprintf(a.out, "Summarizing %d entries from today...\n", len(today))

	st := a.summary.Summarize(ctx, today, opts)
	if st.Err != nil {
		fmt.Fprintln(a.out, "Failed to generate summary. Please try again.")
		if st.Text != "" {
			fmt.Fprintln(a.out, "Previous summary:")
			fmt.Fprintln(a.out, st.Text)
		}
		return nil
	}
	fmt.Fprintln(a.out, st.Text)
	return nil
}

// parseSummaryOptions reads "[style] [focus=a,b] [metrics]".
func parseSummaryOptions(args []string) (summary.Options, error) {
	opts := summary.DefaultOptions()
	for _, arg := range args {
		switch {
		case arg == "metrics":
			opts.IncludeMetrics = true
		case strings.HasPrefix(arg, "focus="):
			f, err := summary.ParseFocusAreas(strings.TrimPrefix(arg, "focus="))
			if err != nil {
				return opts, err
			}
			opts.FocusAreas = f
		default:
			s, err := summary.ParseStyle(arg)
			if err != nil {
				return opts, err
			}
			opts.Style = s
		}
	}
	return opts, nil
}
