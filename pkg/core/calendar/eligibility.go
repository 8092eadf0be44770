package calendar

import (
	"time"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// WeekEligibility decides which event types may be scheduled in a given
// week. The two implementations correspond to the two ways a league can
// describe its season: date milestones on the season record, or an
// explicit list of named periods.
type WeekEligibility interface {
	// AllowedEventTypes returns the set of event types permitted in the
	// week [weekStart, weekEnd].
	AllowedEventTypes(weekStart, weekEnd time.Time) map[model.EventType]bool
}

// SeasonMilestones derives eligibility from the season's dates:
// practices and cage sessions are allowed for any week inside the
// season, games only once the week reaches the effective games-start
// date.
type SeasonMilestones struct {
	Season model.Season
}

func (s SeasonMilestones) AllowedEventTypes(weekStart, weekEnd time.Time) map[model.EventType]bool {
	allowed := make(map[model.EventType]bool)

	// Week must intersect the season at all
	if weekEnd.Before(Day(s.Season.StartDate)) || weekStart.After(Day(s.Season.EndDate)) {
		return allowed
	}

	allowed[model.EventPractice] = true
	allowed[model.EventCage] = true

	if !weekEnd.Before(Day(s.Season.EffectiveGamesStart())) {
		allowed[model.EventGame] = true
	}

	return allowed
}

// PeriodCalendar derives eligibility from explicit named periods: the
// allowed set for a week is the union of event types across every
// period overlapping that week.
type PeriodCalendar struct {
	Periods []model.SeasonPeriod
}

func (p PeriodCalendar) AllowedEventTypes(weekStart, weekEnd time.Time) map[model.EventType]bool {
	allowed := make(map[model.EventType]bool)

	for _, period := range p.Periods {
		// Overlap test: period.Start <= weekEnd && period.End >= weekStart
		if Day(period.StartDate).After(weekEnd) || Day(period.EndDate).Before(weekStart) {
			continue
		}
		for _, et := range period.EventTypes {
			allowed[et] = true
		}
	}

	return allowed
}

// Span returns the earliest start and latest end across the periods.
// The second return is false when the period list is empty.
func (p PeriodCalendar) Span() (time.Time, time.Time, bool) {
	if len(p.Periods) == 0 {
		return time.Time{}, time.Time{}, false
	}

	start := Day(p.Periods[0].StartDate)
	end := Day(p.Periods[0].EndDate)
	for _, period := range p.Periods[1:] {
		if s := Day(period.StartDate); s.Before(start) {
			start = s
		}
		if e := Day(period.EndDate); e.After(end) {
			end = e
		}
	}

	return start, end, true
}
