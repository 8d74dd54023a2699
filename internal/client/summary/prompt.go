package summary

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
)

const timeLayout = "3:04 PM"

var styleInstructions = map[Style]string{
	StyleConcise:   "Keep it short: a few sentences per section.",
	StyleDetailed:  "Be thorough and explain the context behind each item.",
	StyleBullet:    "Use bullet points only, one line per item.",
	StyleNarrative: "Write it as a flowing spoken narrative, not a list.",
}

var focusInstructions = map[FocusArea]string{
	FocusAccomplishments: "what was accomplished",
	FocusBlockers:        "blockers and challenges",
	FocusNextSteps:       "next steps",
}

// BuildPrompt renders entries, oldest first, followed by instructions
// derived from opts. The output depends only on its inputs.
func BuildPrompt(entries []models.Entry, opts Options, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	opts = opts.normalize()

	sorted := append([]models.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	blocks := make([]string, 0, len(sorted))
	for _, e := range sorted {
		blocks = append(blocks, fmt.Sprintf("Entry %s:\nText: %s\nTags: %s\nProjects: %s\n",
			e.Date.In(loc).Format(timeLayout), e.Text, joinOrNone(e.Tags), joinOrNone(e.Projects)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Please create a %s, well-structured standup presentation from these updates:\n\n", opts.Style)
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n\nFormat the response as a presentation script with:\n")
	b.WriteString("1. A brief overview\n2. Key accomplishments\n3. Current focus areas\n4. Any blockers or challenges\n5. Next steps\n\n")
	b.WriteString(styleInstructions[opts.Style])
	b.WriteByte('\n')

	if len(opts.FocusAreas) > 0 {
		parts := make([]string, len(opts.FocusAreas))
		for i, f := range opts.FocusAreas {
			parts[i] = focusInstructions[f]
		}
		fmt.Fprintf(&b, "Put particular emphasis on %s.\n", strings.Join(parts, " and "))
	}
	if opts.IncludeMetrics {
		fmt.Fprintf(&b, "Include metrics: %d entries, %d distinct tags, %d distinct projects.\n",
			len(sorted), distinct(sorted, func(e models.Entry) []string { return e.Tags }),
			distinct(sorted, func(e models.Entry) []string { return e.Projects }))
	}
	b.WriteString("\nKeep it professional but conversational.")
	return b.String()
}

func joinOrNone(labels []string) string {
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}

func distinct(entries []models.Entry, labels func(models.Entry) []string) int {
	seen := map[string]struct{}{}
	for _, e := range entries {
		for _, l := range labels(e) {
			seen[l] = struct{}{}
		}
	}
	return len(seen)
}

// Today returns the entries created on now's local calendar day.
func Today(entries []models.Entry, now time.Time, loc *time.Location) []models.Entry {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := now.In(loc).Date()
	var out []models.Entry
	for _, e := range entries {
		ey, em, ed := e.Date.In(loc).Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}
