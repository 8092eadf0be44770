package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

func TestSeasonMilestones_PracticeAndCageAlwaysAllowed(t *testing.T) {
	eligibility := SeasonMilestones{Season: model.Season{
		StartDate:      date(2024, time.April, 1),
		EndDate:        date(2024, time.April, 28),
		GamesStartDate: date(2024, time.April, 15),
	}}

	allowed := eligibility.AllowedEventTypes(date(2024, time.April, 1), date(2024, time.April, 7))

	assert.True(t, allowed[model.EventPractice])
	assert.True(t, allowed[model.EventCage])
	assert.False(t, allowed[model.EventGame])
}

func TestSeasonMilestones_GamesAllowedOnceWeekReachesGamesStart(t *testing.T) {
	eligibility := SeasonMilestones{Season: model.Season{
		StartDate:      date(2024, time.April, 1),
		EndDate:        date(2024, time.April, 28),
		GamesStartDate: date(2024, time.April, 10), // Wednesday of week 2
	}}

	// Week 2 ends 2024-04-14, at or after the games start date
	allowed := eligibility.AllowedEventTypes(date(2024, time.April, 8), date(2024, time.April, 14))
	assert.True(t, allowed[model.EventGame])
}

func TestSeasonMilestones_OutsideSeasonNothingAllowed(t *testing.T) {
	eligibility := SeasonMilestones{Season: model.Season{
		StartDate: date(2024, time.April, 1),
		EndDate:   date(2024, time.April, 28),
	}}

	allowed := eligibility.AllowedEventTypes(date(2024, time.May, 6), date(2024, time.May, 12))
	assert.Empty(t, allowed)
}

func TestPeriodCalendar_UnionOfOverlappingPeriods(t *testing.T) {
	eligibility := PeriodCalendar{Periods: []model.SeasonPeriod{
		{
			ID:         "p1",
			StartDate:  date(2024, time.April, 1),
			EndDate:    date(2024, time.April, 7),
			EventTypes: []model.EventType{model.EventPractice},
		},
		{
			ID:         "p2",
			StartDate:  date(2024, time.April, 5),
			EndDate:    date(2024, time.April, 21),
			EventTypes: []model.EventType{model.EventGame, model.EventCage},
		},
	}}

	allowed := eligibility.AllowedEventTypes(date(2024, time.April, 1), date(2024, time.April, 7))

	assert.True(t, allowed[model.EventPractice])
	assert.True(t, allowed[model.EventGame])
	assert.True(t, allowed[model.EventCage])
}

func TestPeriodCalendar_NonOverlappingPeriodExcluded(t *testing.T) {
	eligibility := PeriodCalendar{Periods: []model.SeasonPeriod{
		{
			ID:         "p1",
			StartDate:  date(2024, time.April, 8),
			EndDate:    date(2024, time.April, 14),
			EventTypes: []model.EventType{model.EventGame},
		},
	}}

	allowed := eligibility.AllowedEventTypes(date(2024, time.April, 1), date(2024, time.April, 7))
	assert.Empty(t, allowed)
}

func TestPeriodCalendar_Span(t *testing.T) {
	eligibility := PeriodCalendar{Periods: []model.SeasonPeriod{
		{StartDate: date(2024, time.April, 8), EndDate: date(2024, time.April, 14)},
		{StartDate: date(2024, time.April, 1), EndDate: date(2024, time.April, 7)},
	}}

	start, end, ok := eligibility.Span()

	require.True(t, ok)
	assert.Equal(t, date(2024, time.April, 1), start)
	assert.Equal(t, date(2024, time.April, 14), end)
}

func TestPeriodCalendar_SpanEmpty(t *testing.T) {
	_, _, ok := PeriodCalendar{}.Span()
	assert.False(t, ok)
}
