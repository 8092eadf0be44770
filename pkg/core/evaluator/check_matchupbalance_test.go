package evaluator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

func TestMatchupBalance_EvenPairingPasses(t *testing.T) {
	// Two teams over four game weeks at one game per week: the ideal
	// per-matchup count is 4, and the sole pair plays exactly 4 games.
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 13), "09:00", "11:00", "d1", "t2", "t1", "f1"),
		game("g3", date(2024, time.April, 20), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g4", date(2024, time.April, 27), "09:00", "11:00", "d1", "t2", "t1", "f1"),
	}

	report := EvaluateMatchupBalance(events, testIndex(), NewSeasonContext(testSeason()))

	assert.True(t, report.Passed)
	assert.Equal(t, 100, report.Score)
	require.Len(t, report.Divisions, 1)
	div := report.Divisions[0]
	assert.InDelta(t, 4.0, div.IdealGamesPerMatchup, 0.001)
	require.Len(t, div.Pairs, 1)
	pair := div.Pairs[0]
	assert.Equal(t, 4, pair.GamesPlayed)
	assert.Equal(t, 2, pair.AHomeCount)
	assert.Equal(t, 2, pair.BHomeCount)
	assert.InDelta(t, 0.0, pair.Imbalance, 0.001)
}

func TestMatchupBalance_UnderScheduledPairFails(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
	}

	report := EvaluateMatchupBalance(events, testIndex(), NewSeasonContext(testSeason()))

	assert.False(t, report.Passed)
	div := report.Divisions[0]
	// 1 game against an ideal of 4 is a deviation of 3
	assert.InDelta(t, 3.0, div.MaxImbalance, 0.001)
	assert.False(t, div.Passed)
}

func TestMatchupBalance_LopsidedOpponentsFail(t *testing.T) {
	// Four teams share an ideal of 4/3 games per pairing. One pair
	// plays four times while the rest never meet.
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 13), "09:00", "11:00", "d1", "t2", "t1", "f1"),
		game("g3", date(2024, time.April, 20), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g4", date(2024, time.April, 27), "09:00", "11:00", "d1", "t2", "t1", "f1"),
	}

	report := EvaluateMatchupBalance(events, fourTeamIndex(), NewSeasonContext(testSeason()))

	assert.False(t, report.Passed)
	div := report.Divisions[0]
	require.Len(t, div.Pairs, 6)
	assert.InDelta(t, 4.0/3.0, div.IdealGamesPerMatchup, 0.001)
	assert.InDelta(t, 4.0-4.0/3.0, div.MaxImbalance, 0.001)
}

func TestMatchupBalance_WeekOverridesShapeIdeal(t *testing.T) {
	idx := testIndex(model.DivisionConfig{
		DivisionID:   "d1",
		SeasonID:     "s1",
		GamesPerWeek: 1,
		GameWeekOverrides: []model.GameWeekOverride{
			{WeekNumber: 3, GamesPerWeek: 0},
			{WeekNumber: 4, GamesPerWeek: 0},
		},
	})
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 13), "09:00", "11:00", "d1", "t2", "t1", "f1"),
	}

	report := EvaluateMatchupBalance(events, idx, NewSeasonContext(testSeason()))

	assert.True(t, report.Passed)
	div := report.Divisions[0]
	assert.InDelta(t, 2.0, div.IdealGamesPerMatchup, 0.001)
	assert.InDelta(t, 0.0, div.MaxImbalance, 0.001)
}
