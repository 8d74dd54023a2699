// Package summary turns a day's entries into a prompt for a text-generation
// endpoint and returns the generated standup script.
package summary

import (
	"fmt"
	"strings"
)

type Style string

const (
	StyleConcise   Style = "concise"
	StyleDetailed  Style = "detailed"
	StyleBullet    Style = "bullet"
	StyleNarrative Style = "narrative"
)

type FocusArea string

const (
	FocusAccomplishments FocusArea = "accomplishments"
	FocusBlockers        FocusArea = "blockers"
	FocusNextSteps       FocusArea = "next-steps"
)

var (
	styles     = []Style{StyleConcise, StyleDetailed, StyleBullet, StyleNarrative}
	focusAreas = []FocusArea{FocusAccomplishments, FocusBlockers, FocusNextSteps}
)

// Options tune the prompt. The zero value is a concise summary with no
// metrics and no particular focus.
type Options struct {
	Style          Style
	IncludeMetrics bool
	FocusAreas     []FocusArea
}

func DefaultOptions() Options {
	return Options{Style: StyleConcise}
}

func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if string(st) == strings.ToLower(strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown summary style %q", s)
}

// ParseFocusAreas parses a comma separated list such as
// "blockers,next-steps".
func ParseFocusAreas(s string) ([]FocusArea, error) {
	var out []FocusArea
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		found := false
		for _, f := range focusAreas {
			if string(f) == part {
				out = append(out, f)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown focus area %q", part)
		}
	}
	return out, nil
}

// normalize fills the default style and orders focus areas canonically
// without duplicates so that equal option sets give equal prompts.
func (o Options) normalize() Options {
	if o.Style == "" {
		o.Style = StyleConcise
	}
	var focus []FocusArea
	for _, f := range focusAreas {
		for _, g := range o.FocusAreas {
			if f == g {
				focus = append(focus, f)
				break
			}
		}
	}
	o.FocusAreas = focus
	return o
}
