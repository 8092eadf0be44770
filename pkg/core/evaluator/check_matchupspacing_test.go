package evaluator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

func TestMatchupSpacing_TightRematchFailsSymmetrically(t *testing.T) {
	// A rematch four days after the first meeting lands in both halves
	// of the pairwise matrix and sinks the division.
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 1), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 5), "09:00", "11:00", "d1", "t2", "t1", "f1"),
	}

	report := EvaluateMatchupSpacing(events, testIndex(), NewSeasonContext(testSeason()))

	assert.False(t, report.Passed)
	require.Len(t, report.Divisions, 1)
	div := report.Divisions[0]
	assert.False(t, div.Passed)
	assert.Equal(t, 4, div.MinSpacing)
	require.Equal(t, []string{"t1", "t2"}, div.TeamIDs)
	assert.Equal(t, []int{4}, div.Matrix[0][1])
	assert.Equal(t, []int{4}, div.Matrix[1][0])
}

func TestMatchupSpacing_WeeklyRematchesPass(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 13), "09:00", "11:00", "d1", "t2", "t1", "f1"),
		game("g3", date(2024, time.April, 20), "09:00", "11:00", "d1", "t1", "t2", "f1"),
	}

	report := EvaluateMatchupSpacing(events, testIndex(), NewSeasonContext(testSeason()))

	assert.True(t, report.Passed)
	assert.Equal(t, 100, report.Score)
	div := report.Divisions[0]
	assert.Equal(t, 7, div.MinSpacing)
	assert.Equal(t, []int{7, 7}, div.Matrix[0][1])
}

func TestMatchupSpacing_NoRematchesReportNoSpacing(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
	}

	report := EvaluateMatchupSpacing(events, testIndex(), NewSeasonContext(testSeason()))

	assert.True(t, report.Passed)
	div := report.Divisions[0]
	assert.Equal(t, -1, div.MinSpacing)
	assert.Empty(t, div.Matrix[0][1])
}

func TestMatchupSpacing_OnlyOffendingPairAffectsDivision(t *testing.T) {
	// One well-spaced pair and one back-to-back pair in the same
	// division: the division minimum comes from the offender.
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 13), "09:00", "11:00", "d1", "t2", "t1", "f1"),
		game("g3", date(2024, time.April, 6), "12:00", "14:00", "d1", "t3", "t4", "f1"),
		game("g4", date(2024, time.April, 8), "12:00", "14:00", "d1", "t4", "t3", "f1"),
	}

	report := EvaluateMatchupSpacing(events, fourTeamIndex(), NewSeasonContext(testSeason()))

	assert.False(t, report.Passed)
	div := report.Divisions[0]
	assert.Equal(t, 2, div.MinSpacing)
	assert.Equal(t, []int{7}, div.Matrix[0][1])

	var otherPair []int
	for i, id := range div.TeamIDs {
		if id != "t3" {
			continue
		}
		for j, other := range div.TeamIDs {
			if other == "t4" {
				otherPair = div.Matrix[i][j]
			}
		}
	}
	assert.Equal(t, []int{2}, otherPair)
}

func TestMatchupSpacing_IgnoresCrossDivisionNoise(t *testing.T) {
	// Practices and games with unrelated teams never enter the matrix.
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		practice("p1", date(2024, time.April, 8), "17:00", "18:00", "d1", "t1", "f1"),
		game("g2", date(2024, time.April, 9), "09:00", "11:00", "d1", "t1", "t9", "f1"),
	}

	report := EvaluateMatchupSpacing(events, testIndex(), NewSeasonContext(testSeason()))

	assert.True(t, report.Passed)
	assert.Equal(t, -1, report.Divisions[0].MinSpacing)
}
