// Package calendar derives a per-day contribution heatmap from standup
// entries.
package calendar

import (
	"time"

	"github.com/dmitrijs2005/standup/internal/models"
)

// MaxLevel is the darkest heatmap level.
const MaxLevel = 4

type Day struct {
	Date    time.Time
	Count   int
	Entries []models.Entry
}

// Year holds every calendar day of one year in order, January 1 first.
type Year struct {
	Year     int
	Location *time.Location
	Days     []Day
}

// Aggregate buckets entries by their local calendar day in loc. Every day of
// year is present; days without entries have a zero count.
func Aggregate(entries []models.Entry, year int, loc *time.Location) Year {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(1, 0, 0)

	var days []Day
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d})
	}

	for _, e := range entries {
		local := e.Date.In(loc)
		if local.Year() != year {
			continue
		}
		i := local.YearDay() - 1
		days[i].Count++
		days[i].Entries = append(days[i].Entries, e)
	}

	return Year{Year: year, Location: loc, Days: days}
}

// Day returns the bucket for month/day, or false when the date is not in y.
func (y Year) Day(month time.Month, day int) (Day, bool) {
	t := time.Date(y.Year, month, day, 0, 0, 0, 0, y.Location)
	if t.Year() != y.Year || t.Month() != month || t.Day() != day {
		return Day{}, false
	}
	return y.Days[t.YearDay()-1], true
}

func (y Year) Total() int {
	n := 0
	for _, d := range y.Days {
		n += d.Count
	}
	return n
}

// Weeks lays the year out in Monday-first week columns. Slots before
// January 1 and after December 31 are nil.
func (y Year) Weeks() [][7]*Day {
	var weeks [][7]*Day
	var week [7]*Day
	filled := false
	for i := range y.Days {
		slot := weekdayIndex(y.Days[i].Date.Weekday())
		if slot == 0 && filled {
			weeks = append(weeks, week)
			week = [7]*Day{}
		}
		week[slot] = &y.Days[i]
		filled = true
	}
	if filled {
		weeks = append(weeks, week)
	}
	return weeks
}

// weekdayIndex maps Monday to 0 and Sunday to 6.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// Level maps a day's count onto the heatmap scale 0..MaxLevel.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count >= MaxLevel:
		return MaxLevel
	default:
		return count
	}
}

// ClampYear keeps navigation from moving past the current year.
func ClampYear(year int, now time.Time) int {
	if year > now.Year() {
		return now.Year()
	}
	return year
}
