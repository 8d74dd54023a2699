package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLabels(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil gives empty", nil, []string{}},
		{"order kept, dups dropped", []string{"api", "ui", "api", "db"}, []string{"api", "ui", "db"}},
		{"case sensitive", []string{"API", "api"}, []string{"API", "api"}},
		{"trim and skip blanks", []string{" ops ", "", "  ", "ops"}, []string{"ops"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLabels(tt.in)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("NormalizeLabels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := NewEntry("1", "  shipped the export  ", []string{"release", "release"}, nil, now)

	assert.Equal(t, "1", e.ID)
	assert.Equal(t, "shipped the export", e.Text)
	assert.Equal(t, now, e.Date)
	assert.Equal(t, []string{"release"}, e.Tags)
	assert.Equal(t, []string{}, e.Projects)
}

func TestEntry_ApplyKeepsIDAndDate(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := NewEntry("1", "old", []string{"a"}, []string{"p"}, now)

	got := e.Apply(Fields{Text: " new ", Tags: []string{"b", "b"}})

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, now, got.Date)
	assert.Equal(t, "new", got.Text)
	assert.Equal(t, []string{"b"}, got.Tags)
	assert.Equal(t, []string{}, got.Projects)
	assert.Equal(t, "old", e.Text, "receiver must not change")
}

func TestEntry_CloneIsDeep(t *testing.T) {
	e := Entry{ID: "1", Tags: []string{"a"}, Projects: []string{"p"}}
	c := e.Clone()
	c.Tags[0] = "changed"
	assert.Equal(t, "a", e.Tags[0])
}

func TestParseQuickEntry(t *testing.T) {
	text, tags, projects := ParseQuickEntry("fixed login bug #bug @web #bug # @ and more @api")

	assert.Equal(t, "fixed login bug # @ and more", text)
	assert.Equal(t, []string{"bug"}, tags)
	assert.Equal(t, []string{"web", "api"}, projects)
}

func TestParseQuickEntry_PlainText(t *testing.T) {
	text, tags, projects := ParseQuickEntry("  just   text ")
	assert.Equal(t, "just text", text)
	assert.Empty(t, tags)
	assert.Empty(t, projects)
}

func TestDocumentPath(t *testing.T) {
	assert.Equal(t, "users/u1/standups/e1", DocumentPath("u1", "e1"))
}

func TestSortNewestFirst_Stable(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	d2 := d1.Add(time.Hour)
	entries := []Entry{{ID: "a", Date: d1}, {ID: "b", Date: d2}, {ID: "c", Date: d1}}

	SortNewestFirst(entries)

	ids := []string{entries[0].ID, entries[1].ID, entries[2].ID}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestIndexOf(t *testing.T) {
	entries := []Entry{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, 1, IndexOf(entries, "b"))
	assert.Equal(t, -1, IndexOf(entries, "z"))
}

func TestEntry_JSONShape(t *testing.T) {
	e := NewEntry("1700000000000", "hello", nil, nil, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1700000000000","text":"hello","date":"2024-03-01T10:00:00Z","tags":[],"projects":[]}`, string(b))

	var back Entry
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","text":"x","date":"2024-03-01T10:00:00.000Z"}`), &back))
	assert.Equal(t, 2024, back.Date.Year())
	assert.Nil(t, back.Tags, "absent labels decode as nil")
}
