package evaluator

import (
	"fmt"

	"github.com/bbaldino/ll-scheduler/pkg/core/calendar"
	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// EvaluateConstraintViolations produces the flat list of typed schedule
// violations. Only error-severity findings fail the check; warnings are
// surfaced for operator review.
//
// Rules:
//   - same_day_conflict (warning): a team with two or more field events
//     on one date. Cage-only same-day combinations are exempt.
//   - min_day_gap (warning): adjacent events of a team closer together
//     than the division's MinConsecutiveDayGap. A gap of exactly zero
//     days is left to the same-day rule.
//   - resource_conflict (error): two events on one field or cage whose
//     [start, end) times overlap. Touching boundaries do not conflict.
//   - invalid_event_type_for_period (error): a game before the games
//     start date, or an event type its declared period does not allow.
//   - blackout_date (warning): any event on a season blackout date.
func EvaluateConstraintViolations(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) ConstraintViolationsReport {
	var report ConstraintViolationsReport

	sorted := make([]model.ScheduledEvent, len(events))
	copy(sorted, events)
	sortEventsByDate(sorted)

	report.Violations = append(report.Violations, findSameDayConflicts(sorted, idx)...)
	report.Violations = append(report.Violations, findMinDayGapViolations(sorted, idx)...)
	report.Violations = append(report.Violations, findResourceConflicts(sorted, idx)...)
	report.Violations = append(report.Violations, findInvalidEventTypes(sorted, idx, cal)...)
	report.Violations = append(report.Violations, findBlackoutViolations(sorted, cal)...)

	for _, v := range report.Violations {
		switch v.Severity {
		case SeverityError:
			report.ErrorCount++
		case SeverityWarning:
			report.WarningCount++
		}
	}

	report.Passed = report.ErrorCount == 0
	report.Score = clampScore(100 - 10*report.ErrorCount - 2*report.WarningCount)
	report.Summary = fmt.Sprintf("%d error(s), %d warning(s)", report.ErrorCount, report.WarningCount)

	return report
}

// findSameDayConflicts flags teams with multiple field-occupying events
// on the same date.
func findSameDayConflicts(events []model.ScheduledEvent, idx *ReferenceIndex) []Violation {
	var violations []Violation

	for _, team := range idx.SortedTeams() {
		byDate := make(map[string][]model.ScheduledEvent)
		var dates []string

		for _, e := range events {
			if !e.InvolvesTeam(team.ID) || !e.IsFieldEvent() {
				continue
			}
			key := e.Date.Format("2006-01-02")
			if len(byDate[key]) == 0 {
				dates = append(dates, key)
			}
			byDate[key] = append(byDate[key], e)
		}

		for _, date := range dates {
			dayEvents := byDate[date]
			if len(dayEvents) < 2 {
				continue
			}
			ids := make([]string, len(dayEvents))
			for i, e := range dayEvents {
				ids[i] = e.ID
			}
			violations = append(violations, Violation{
				Type:        ViolationSameDayConflict,
				Severity:    SeverityWarning,
				Date:        dayEvents[0].Date,
				TeamID:      team.ID,
				EventIDs:    ids,
				Description: fmt.Sprintf("%s has %d field events on %s", idx.TeamName(team.ID), len(dayEvents), date),
			})
		}
	}

	return violations
}

// findMinDayGapViolations flags adjacent events spaced closer than the
// division minimum. Same-day pairs are skipped here; the same-day rule
// owns that case.
func findMinDayGapViolations(events []model.ScheduledEvent, idx *ReferenceIndex) []Violation {
	var violations []Violation

	for _, team := range idx.SortedTeams() {
		cfg, ok := idx.ConfigsByDivision[team.DivisionID]
		if !ok || cfg.MinConsecutiveDayGap <= 0 {
			continue
		}

		mine := teamEvents(events, team.ID, "")
		for i := 1; i < len(mine); i++ {
			gap := daysApart(mine[i-1], mine[i])
			if gap == 0 || gap >= cfg.MinConsecutiveDayGap {
				continue
			}
			violations = append(violations, Violation{
				Type:     ViolationMinDayGap,
				Severity: SeverityWarning,
				Date:     mine[i].Date,
				TeamID:   team.ID,
				EventIDs: []string{mine[i-1].ID, mine[i].ID},
				Description: fmt.Sprintf("%s has events %d day(s) apart, minimum is %d",
					idx.TeamName(team.ID), gap, cfg.MinConsecutiveDayGap),
			})
		}
	}

	return violations
}

// findResourceConflicts flags pairs of events that double-book a field
// or cage. The overlap test is symmetric, so each pair is reported once.
func findResourceConflicts(events []model.ScheduledEvent, idx *ReferenceIndex) []Violation {
	var violations []Violation

	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]

			if !a.Date.Equal(b.Date) {
				continue
			}

			var resource string
			switch {
			case a.FieldID != "" && a.FieldID == b.FieldID:
				resource = idx.FieldName(a.FieldID)
			case a.CageID != "" && a.CageID == b.CageID:
				resource = "cage " + a.CageID
			default:
				continue
			}

			if !timesOverlap(a.StartTime, a.EndTime, b.StartTime, b.EndTime) {
				continue
			}

			violations = append(violations, Violation{
				Type:     ViolationResourceConflict,
				Severity: SeverityError,
				Date:     a.Date,
				EventIDs: []string{a.ID, b.ID},
				Description: fmt.Sprintf("%s is double-booked on %s: %s-%s overlaps %s-%s",
					resource, a.Date.Format("2006-01-02"), a.StartTime, a.EndTime, b.StartTime, b.EndTime),
			})
		}
	}

	return violations
}

// findInvalidEventTypes flags events scheduled outside their eligibility
// window. In season-milestone mode that means games before the games
// start date; in period mode, any event whose type its declared period
// does not allow.
func findInvalidEventTypes(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) []Violation {
	var violations []Violation

	switch eligibility := cal.Eligibility.(type) {
	case calendar.SeasonMilestones:
		gamesStart := calendar.Day(eligibility.Season.EffectiveGamesStart())
		for _, e := range events {
			if e.EventType != model.EventGame || !e.Date.Before(gamesStart) {
				continue
			}
			violations = append(violations, Violation{
				Type:     ViolationInvalidEventType,
				Severity: SeverityError,
				Date:     e.Date,
				EventIDs: []string{e.ID},
				Description: fmt.Sprintf("game on %s is before the games start date %s",
					e.Date.Format("2006-01-02"), gamesStart.Format("2006-01-02")),
			})
		}

	case calendar.PeriodCalendar:
		for _, e := range events {
			period, ok := idx.PeriodsByID[e.SeasonPeriodID]
			if !ok || period.Allows(e.EventType) {
				continue
			}
			violations = append(violations, Violation{
				Type:     ViolationInvalidEventType,
				Severity: SeverityError,
				Date:     e.Date,
				EventIDs: []string{e.ID},
				Description: fmt.Sprintf("%s on %s is not allowed in period %q",
					e.EventType, e.Date.Format("2006-01-02"), period.Name),
			})
		}
	}

	return violations
}

// findBlackoutViolations flags events falling on league blackout dates
func findBlackoutViolations(events []model.ScheduledEvent, cal *CalendarContext) []Violation {
	var violations []Violation

	for _, e := range events {
		if !cal.Blackouts[calendar.Day(e.Date)] {
			continue
		}
		violations = append(violations, Violation{
			Type:     ViolationBlackoutDate,
			Severity: SeverityWarning,
			Date:     e.Date,
			EventIDs: []string{e.ID},
			Description: fmt.Sprintf("%s scheduled on blackout date %s",
				e.EventType, e.Date.Format("2006-01-02")),
		})
	}

	return violations
}
