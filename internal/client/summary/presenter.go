package summary

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// State is what a summary view shows. Text is the last successful summary
// and survives later failures; Err is set only by the most recent attempt.
type State struct {
	Loading bool
	Text    string
	Err     error
	Entries int
}

// Presenter requests summaries and tracks the last good result.
type Presenter struct {
	gen Generator
	loc *time.Location

	mu    sync.Mutex
	state State
}

func NewPresenter(gen Generator, loc *time.Location) *Presenter {
	return &Presenter{gen: gen, loc: loc}
}

func (p *Presenter) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Summarize builds a prompt for entries and asks the generator. On failure
// the previous text is kept and the returned state carries the error.
func (p *Presenter) Summarize(ctx context.Context, entries []models.Entry, opts Options) State {
	p.mu.Lock()
	p.state.Loading = true
	p.state.Err = nil
	p.mu.Unlock()

	text, err := p.gen.Generate(ctx, BuildPrompt(entries, opts, p.loc))

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Loading = false
	if err != nil {
		p.state.Err = err
		return p.state
	}
	p.state.Text = text
	p.state.Entries = len(entries)
	return p.state
}
