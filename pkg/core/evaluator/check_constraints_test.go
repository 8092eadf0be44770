package evaluator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

func violationsOfType(report ConstraintViolationsReport, vType ViolationType) []Violation {
	var matched []Violation
	for _, v := range report.Violations {
		if v.Type == vType {
			matched = append(matched, v)
		}
	}
	return matched
}

func TestConstraints_CleanScheduleHasNoViolations(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
	}

	report := EvaluateConstraintViolations(events, testIndex(), NewSeasonContext(testSeason()))

	assert.True(t, report.Passed)
	assert.Empty(t, report.Violations)
	assert.Equal(t, 100, report.Score)
}

func TestConstraints_ResourceConflict_TouchingIntervalsDoNotConflict(t *testing.T) {
	// [09:00,10:00) and [10:00,11:00) on the same field are back to back
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "10:00", "d1", "t1", "t2", "f1"),
		practice("p1", date(2024, time.April, 6), "10:00", "11:00", "d1", "t1", "f1"),
	}

	report := EvaluateConstraintViolations(events, testIndex(), NewSeasonContext(testSeason()))

	assert.Empty(t, violationsOfType(report, ViolationResourceConflict))
}

func TestConstraints_ResourceConflict_OneMinuteOverlapConflicts(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "10:01", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 6), "10:00", "11:00", "d1", "t2", "t1", "f1"),
	}

	report := EvaluateConstraintViolations(events, testIndex(), NewSeasonContext(testSeason()))

	conflicts := violationsOfType(report, ViolationResourceConflict)
	require.Len(t, conflicts, 1)
	assert.Equal(t, SeverityError, conflicts[0].Severity)
	assert.False(t, report.Passed)
}

func TestConstraints_ResourceConflict_Symmetric(t *testing.T) {
	a := game("g1", date(2024, time.April, 6), "09:00", "10:01", "d1", "t1", "t2", "f1")
	b := game("g2", date(2024, time.April, 6), "10:00", "11:00", "d1", "t2", "t1", "f1")

	forward := EvaluateConstraintViolations([]model.ScheduledEvent{a, b}, testIndex(), NewSeasonContext(testSeason()))
	reversed := EvaluateConstraintViolations([]model.ScheduledEvent{b, a}, testIndex(), NewSeasonContext(testSeason()))

	assert.Len(t, violationsOfType(forward, ViolationResourceConflict), 1)
	assert.Len(t, violationsOfType(reversed, ViolationResourceConflict), 1)
}

func TestConstraints_ResourceConflict_DifferentFieldsNoConflict(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 6), "09:00", "11:00", "d1", "t2", "t1", "f2"),
	}

	report := EvaluateConstraintViolations(events, testIndex(), NewSeasonContext(testSeason()))

	assert.Empty(t, violationsOfType(report, ViolationResourceConflict))
}

func TestConstraints_SameDayConflict_TwoFieldEventsWarn(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "10:00", "d1", "t1", "t2", "f1"),
		practice("p1", date(2024, time.April, 6), "15:00", "16:00", "d1", "t1", "f2"),
	}

	report := EvaluateConstraintViolations(events, testIndex(), NewSeasonContext(testSeason()))

	conflicts := violationsOfType(report, ViolationSameDayConflict)
	require.Len(t, conflicts, 1)
	assert.Equal(t, SeverityWarning, conflicts[0].Severity)
	assert.Equal(t, "t1", conflicts[0].TeamID)
	// Warnings alone don't fail the check
	assert.True(t, report.Passed)
}

func TestConstraints_SameDayConflict_CageSessionsExempt(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "10:00", "d1", "t1", "t2", "f1"),
		cageSession("c1", date(2024, time.April, 6), "15:00", "16:00", "d1", "t1", "cage1"),
	}

	report := EvaluateConstraintViolations(events, testIndex(), NewSeasonContext(testSeason()))

	assert.Empty(t, violationsOfType(report, ViolationSameDayConflict))
}

func TestConstraints_MinDayGap_TooCloseWarns(t *testing.T) {
	idx := testIndex(model.DivisionConfig{
		DivisionID:           "d1",
		SeasonID:             "s1",
		MinConsecutiveDayGap: 3,
	})
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "10:00", "d1", "t1", "t2", "f1"),
		practice("p1", date(2024, time.April, 8), "15:00", "16:00", "d1", "t1", "f1"),
	}

	report := EvaluateConstraintViolations(events, idx, NewSeasonContext(testSeason()))

	gaps := violationsOfType(report, ViolationMinDayGap)
	// Both t1 and t2 play g1, but only t1 has the close practice
	require.Len(t, gaps, 1)
	assert.Equal(t, "t1", gaps[0].TeamID)
}

func TestConstraints_MinDayGap_SameDayIsNotAGapViolation(t *testing.T) {
	idx := testIndex(model.DivisionConfig{
		DivisionID:           "d1",
		SeasonID:             "s1",
		MinConsecutiveDayGap: 3,
	})
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "10:00", "d1", "t1", "t2", "f1"),
		practice("p1", date(2024, time.April, 6), "15:00", "16:00", "d1", "t1", "f2"),
	}

	report := EvaluateConstraintViolations(events, idx, NewSeasonContext(testSeason()))

	// Same-day pairs are the same-day rule's problem, not min-day-gap's
	assert.Empty(t, violationsOfType(report, ViolationMinDayGap))
	assert.Len(t, violationsOfType(report, ViolationSameDayConflict), 1)
}

func TestConstraints_GameBeforeGamesStartIsError(t *testing.T) {
	season := testSeason()
	season.GamesStartDate = date(2024, time.April, 15)
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "10:00", "d1", "t1", "t2", "f1"),
	}

	report := EvaluateConstraintViolations(events, testIndex(), NewSeasonContext(season))

	invalid := violationsOfType(report, ViolationInvalidEventType)
	require.Len(t, invalid, 1)
	assert.Equal(t, SeverityError, invalid[0].Severity)
	assert.False(t, report.Passed)
}

func TestConstraints_PeriodMode_DisallowedEventTypeIsError(t *testing.T) {
	periods := []model.SeasonPeriod{{
		ID:         "p1",
		SeasonID:   "s1",
		Name:       "Preseason",
		StartDate:  date(2024, time.April, 1),
		EndDate:    date(2024, time.April, 14),
		EventTypes: []model.EventType{model.EventPractice, model.EventCage},
	}}
	idx := NewReferenceIndex(
		[]model.Team{{ID: "t1", Name: "Tigers", DivisionID: "d1"}, {ID: "t2", Name: "Sharks", DivisionID: "d1"}},
		[]model.Division{{ID: "d1", Name: "Majors"}},
		nil, nil, periods,
	)

	badGame := game("g1", date(2024, time.April, 6), "09:00", "10:00", "d1", "t1", "t2", "f1")
	badGame.SeasonPeriodID = "p1"

	report := EvaluateConstraintViolations([]model.ScheduledEvent{badGame}, idx, NewPeriodContext(periods))

	invalid := violationsOfType(report, ViolationInvalidEventType)
	require.Len(t, invalid, 1)
	assert.Contains(t, invalid[0].Description, "Preseason")
}

func TestConstraints_BlackoutDateWarns(t *testing.T) {
	season := testSeason()
	season.BlackoutDates = []time.Time{date(2024, time.April, 6)}
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "10:00", "d1", "t1", "t2", "f1"),
	}

	report := EvaluateConstraintViolations(events, testIndex(), NewSeasonContext(season))

	blackouts := violationsOfType(report, ViolationBlackoutDate)
	require.Len(t, blackouts, 1)
	assert.Equal(t, SeverityWarning, blackouts[0].Severity)
}

func TestConstraints_SummaryCountsSeverities(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		practice("p1", date(2024, time.April, 6), "09:30", "10:30", "d1", "t1", "f1"),
	}

	report := EvaluateConstraintViolations(events, testIndex(), NewSeasonContext(testSeason()))

	// One resource conflict (error) plus one same-day conflict (warning)
	assert.Equal(t, 1, report.ErrorCount)
	assert.Equal(t, 1, report.WarningCount)
	assert.Equal(t, "1 error(s), 1 warning(s)", report.Summary)
}
