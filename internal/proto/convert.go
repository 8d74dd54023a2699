package proto

import (
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
)

// EntryFromModel converts a domain entry to its wire form. Labels are always
// sent as arrays.
func EntryFromModel(e models.Entry) *Entry {
	return &Entry{
		Id:       e.ID,
		Text:     e.Text,
		Date:     e.Date.UTC().Format(time.RFC3339Nano),
		Tags:     models.NormalizeLabels(e.Tags),
		Projects: models.NormalizeLabels(e.Projects),
	}
}

// ToModel converts a wire entry to the domain type. An empty date maps to
// the zero time; an unparseable one is an error.
func (e *Entry) ToModel() (models.Entry, error) {
	var d time.Time
	if e.Date != "" {
		var err error
		if d, err = time.Parse(time.RFC3339Nano, e.Date); err != nil {
			return models.Entry{}, err
		}
	}
	return models.Entry{
		ID:       e.Id,
		Text:     e.Text,
		Date:     d,
		Tags:     models.NormalizeLabels(e.Tags),
		Projects: models.NormalizeLabels(e.Projects),
	}, nil
}

// EntriesFromModels converts a slice of domain entries.
func EntriesFromModels(in []models.Entry) []*Entry {
	out := make([]*Entry, 0, len(in))
	for _, e := range in {
		out = append(out, EntryFromModel(e))
	}
	return out
}

// ToModels converts the snapshot to domain entries, failing on the first bad date.
func (s *Snapshot) ToModels() ([]models.Entry, error) {
	out := make([]models.Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		m, err := e.ToModel()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func UserFromModel(u models.Identity) *User {
	return &User{Id: u.ID, DisplayName: u.DisplayName, Email: u.Email, PhotoUrl: u.PhotoURL}
}

func (u *User) ToModel() models.Identity {
	if u == nil {
		return models.Identity{}
	}
	return models.Identity{ID: u.Id, DisplayName: u.DisplayName, Email: u.Email, PhotoURL: u.PhotoUrl}
}
