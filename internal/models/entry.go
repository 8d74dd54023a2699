// Package models defines the standup entry shared by the CLI, the sync
// server and the wire protocol.
package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is one user-authored standup update.
//
// Date marks creation time and is serialised as RFC 3339. Tags and Projects
// keep insertion order and never hold duplicates.
type Entry struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
	Tags     []string  `json:"tags"`
	Projects []string  `json:"projects"`
}

// Fields is the mutable part of an entry.
type Fields struct {
	Text     string
	Tags     []string
	Projects []string
}

// Identity is the user identity reported by a sign-in provider.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photo_url"`
}

// NewEntry builds an entry dated now with trimmed text and normalised labels.
func NewEntry(id, text string, tags, projects []string, now time.Time) Entry {
	return Entry{
		ID:       id,
		Text:     strings.TrimSpace(text),
		Date:     now,
		Tags:     NormalizeLabels(tags),
		Projects: NormalizeLabels(projects),
	}
}

// Normalize returns f with trimmed text and normalised labels.
func (f Fields) Normalize() Fields {
	return Fields{
		Text:     strings.TrimSpace(f.Text),
		Tags:     NormalizeLabels(f.Tags),
		Projects: NormalizeLabels(f.Projects),
	}
}

// Apply returns a copy of e with f's values. ID and Date are kept.
func (e Entry) Apply(f Fields) Entry {
	f = f.Normalize()
	e.Text = f.Text
	e.Tags = f.Tags
	e.Projects = f.Projects
	return e
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	e.Tags = append([]string{}, e.Tags...)
	e.Projects = append([]string{}, e.Projects...)
	return e
}

// NormalizeLabels trims labels, drops empty ones and suppresses exact
// duplicates, keeping the first occurrence. The result is never nil.
func NormalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// ParseQuickEntry splits quick-entry input into text, tags and projects.
// "#word" tokens become tags and "@word" tokens become projects; a lone
// "#" or "@" stays part of the text.
func ParseQuickEntry(input string) (text string, tags, projects []string) {
	var words []string
	for _, w := range strings.Fields(input) {
		switch {
		case len(w) > 1 && strings.HasPrefix(w, "#"):
			tags = append(tags, w[1:])
		case len(w) > 1 && strings.HasPrefix(w, "@"):
			projects = append(projects, w[1:])
		default:
			words = append(words, w)
		}
	}
	return strings.Join(words, " "), NormalizeLabels(tags), NormalizeLabels(projects)
}

// DocumentPath is the remote document path of an entry.
func DocumentPath(userID, entryID string) string {
	return fmt.Sprintf("users/%s/standups/%s", userID, entryID)
}

// SortNewestFirst orders entries by date, newest first. Entries with equal
// dates keep their relative order.
func SortNewestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

// IndexOf returns the position of the entry with id, or -1.
func IndexOf(entries []Entry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}
