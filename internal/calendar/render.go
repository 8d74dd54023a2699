package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

const cell = "■ "

var rowLabels = [7]string{"Mon", "", "Wed", "", "Fri", "", ""}

// Renderer prints a Year as a terminal heatmap.
type Renderer struct {
	levels [MaxLevel + 1]*color.Color
	today  *color.Color
	title  *color.Color
}

func NewRenderer(noColor bool) *Renderer {
	r := &Renderer{
		levels: [MaxLevel + 1]*color.Color{
			color.New(color.FgHiBlack),
			color.New(color.FgHiGreen, color.Faint),
			color.New(color.FgHiGreen),
			color.New(color.FgGreen),
			color.New(color.FgGreen, color.Bold),
		},
		today: color.New(color.FgHiYellow, color.Bold),
		title: color.New(color.Bold, color.Underline),
	}
	if noColor {
		for _, c := range r.levels {
			c.DisableColor()
		}
		r.today.DisableColor()
		r.title.DisableColor()
	}
	return r
}

// Render writes the heatmap for y. The cell for today, when it falls in y,
// is highlighted.
func (r *Renderer) Render(w io.Writer, y Year, today time.Time) error {
	weeks := y.Weeks()
	var b strings.Builder

	b.WriteString(r.title.Sprintf("%d", y.Year))
	fmt.Fprintf(&b, " · %d entries\n", y.Total())
	b.WriteString(monthHeader(weeks))
	b.WriteByte('\n')

	todayKey := today.In(y.Location).Format(time.DateOnly)
	for row := 0; row < 7; row++ {
		fmt.Fprintf(&b, "%-4s", rowLabels[row])
		for _, wk := range weeks {
			d := wk[row]
			switch {
			case d == nil:
				b.WriteString("  ")
			case d.Date.Format(time.DateOnly) == todayKey:
				b.WriteString(r.today.Sprint(cell))
			default:
				b.WriteString(r.levels[Level(d.Count)].Sprint(cell))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString("    Less ")
	for _, c := range r.levels {
		b.WriteString(c.Sprint(cell))
	}
	b.WriteString("More\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// monthHeader places each month's abbreviation above the week holding its
// first day.
func monthHeader(weeks [][7]*Day) string {
	line := []byte(strings.Repeat(" ", 4+2*len(weeks)+3))
	for col, wk := range weeks {
		for _, d := range wk {
			if d != nil && d.Date.Day() == 1 {
				copy(line[4+2*col:], d.Date.Month().String()[:3])
			}
		}
	}
	return strings.TrimRight(string(line), " ")
}
