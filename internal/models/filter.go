package models

import (
	"slices"
	"strings"
	"time"
)

// Filter narrows an entry list for display.
//
// Day, when non-zero, keeps entries created on that local calendar day.
// Search matches text case-insensitively. Tags and Projects keep entries
// carrying at least one of the listed labels.
type Filter struct {
	Day      time.Time
	Search   string
	Tags     []string
	Projects []string
}

// Empty reports whether the filter lets everything through.
func (f Filter) Empty() bool {
	return f.Day.IsZero() && f.Search == "" && len(f.Tags) == 0 && len(f.Projects) == 0
}

// Match reports whether e passes the filter, with days evaluated in loc.
func (f Filter) Match(e Entry, loc *time.Location) bool {
	if !f.Day.IsZero() && !SameDay(f.Day, e.Date, loc) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(e.Text), strings.ToLower(f.Search)) {
		return false
	}
	if len(f.Tags) > 0 && !anyOf(f.Tags, e.Tags) {
		return false
	}
	if len(f.Projects) > 0 && !anyOf(f.Projects, e.Projects) {
		return false
	}
	return true
}

// Apply returns the entries that pass the filter, in input order.
func (f Filter) Apply(entries []Entry, loc *time.Location) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e, loc) {
			out = append(out, e)
		}
	}
	return out
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func anyOf(want, have []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}
