package evaluator

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// minuteOfDay parses an "HH:MM" clock string into minutes since
// midnight. Unparseable values map to 0 so a malformed time degrades to
// a zero-length interval instead of aborting the run.
func minuteOfDay(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// timesOverlap applies the half-open interval overlap test to two
// [start, end) clock ranges. Back-to-back events that touch exactly at
// the boundary do not overlap.
func timesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return minuteOfDay(aStart) < minuteOfDay(bEnd) && minuteOfDay(aEnd) > minuteOfDay(bStart)
}

// roundPercent converts a ratio numerator/denominator to a rounded
// 0-100 integer, defaulting to 100 for an empty denominator.
func roundPercent(numerator, denominator int) int {
	if denominator == 0 {
		return 100
	}
	return int(math.Round(100 * float64(numerator) / float64(denominator)))
}

// clampScore bounds a score to the 0-100 range
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// sortEventsByDate orders events chronologically, breaking date ties by
// start time and then ID so equal inputs always sort identically.
func sortEventsByDate(events []model.ScheduledEvent) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		if events[i].StartTime != events[j].StartTime {
			return events[i].StartTime < events[j].StartTime
		}
		return events[i].ID < events[j].ID
	})
}

// teamEvents collects the events involving a team, optionally filtered
// by event type (pass "" for all types), sorted chronologically.
func teamEvents(events []model.ScheduledEvent, teamID string, eventType model.EventType) []model.ScheduledEvent {
	var matched []model.ScheduledEvent
	for _, e := range events {
		if !e.InvolvesTeam(teamID) {
			continue
		}
		if eventType != "" && e.EventType != eventType {
			continue
		}
		matched = append(matched, e)
	}
	sortEventsByDate(matched)
	return matched
}

// consecutiveDayGaps returns the whole-day gaps between chronologically
// adjacent events. Events must already be sorted by date.
func consecutiveDayGaps(events []model.ScheduledEvent) []int {
	if len(events) < 2 {
		return nil
	}
	gaps := make([]int, 0, len(events)-1)
	for i := 1; i < len(events); i++ {
		gaps = append(gaps, daysApart(events[i-1], events[i]))
	}
	return gaps
}

func daysApart(a, b model.ScheduledEvent) int {
	return int(b.Date.Sub(a.Date).Hours() / 24)
}
