package calendar

import (
	"time"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// Week is a Monday-anchored calendar week. Number is only set for game
// weeks (1-based, counted from the first week containing the effective
// games-start date); plain calendar weeks carry Number 0.
type Week struct {
	Start  time.Time
	End    time.Time
	Number int
}

// Contains reports whether the given day falls inside the week
func (w Week) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// Day truncates a timestamp to its calendar day in UTC
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday on or before the given date. Sunday is
// treated as day 7 of the prior week, so a Sunday maps six days back.
func WeekStart(date time.Time) time.Time {
	d := Day(date)
	offset := int(d.Weekday()) - int(time.Monday)
	if d.Weekday() == time.Sunday {
		offset = 6
	}
	return d.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday ending the week containing the given date
func WeekEnd(date time.Time) time.Time {
	return WeekStart(date).AddDate(0, 0, 6)
}

// EnumerateWeeks returns every week intersecting [start, end], in order.
// The first week starts on the Monday on or before start.
func EnumerateWeeks(start, end time.Time) []Week {
	var weeks []Week
	endDay := Day(end)
	for ws := WeekStart(start); !ws.After(endDay); ws = ws.AddDate(0, 0, 7) {
		weeks = append(weeks, Week{Start: ws, End: ws.AddDate(0, 0, 6)})
	}
	return weeks
}

// EnumerateGameWeeks enumerates the weeks from the season's effective
// games-start date through the season end, numbering them from 1. The
// week number is the key used by per-week quota overrides.
func EnumerateGameWeeks(season model.Season) []Week {
	weeks := EnumerateWeeks(season.EffectiveGamesStart(), season.EndDate)
	for i := range weeks {
		weeks[i].Number = i + 1
	}
	return weeks
}

// DaysBetween returns the whole-day difference b - a between two
// calendar days.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}
