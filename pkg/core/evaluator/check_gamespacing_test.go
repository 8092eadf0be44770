package evaluator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// fourTeamIndex gives spacing scenarios two independent matchup pairs
// so per-team averages can diverge within one division.
func fourTeamIndex() *ReferenceIndex {
	return NewReferenceIndex(
		[]model.Team{
			{ID: "t1", Name: "Tigers", DivisionID: "d1"},
			{ID: "t2", Name: "Sharks", DivisionID: "d1"},
			{ID: "t3", Name: "Hawks", DivisionID: "d1"},
			{ID: "t4", Name: "Bears", DivisionID: "d1"},
		},
		[]model.Division{{ID: "d1", Name: "Majors"}},
		[]model.DivisionConfig{{
			DivisionID:         "d1",
			SeasonID:           "s1",
			GamesPerWeek:       1,
			GameSpacingEnabled: true,
		}},
		[]model.SeasonField{{FieldID: "f1", FieldName: "Diamond 1"}},
		nil,
	)
}

func TestGameSpacing_EvenWeeklyCadencePasses(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 13), "09:00", "11:00", "d1", "t2", "t1", "f1"),
		game("g3", date(2024, time.April, 20), "09:00", "11:00", "d1", "t1", "t2", "f1"),
	}

	report := EvaluateGameSpacing(events, testIndex(), NewSeasonContext(testSeason()))

	assert.True(t, report.Passed)
	assert.Equal(t, 100, report.Score)
	require.Len(t, report.Divisions, 1)
	div := report.Divisions[0]
	assert.InDelta(t, 7.0, div.AverageGap, 0.001)
	for _, team := range div.Teams {
		assert.Equal(t, []int{7, 7}, team.Gaps)
		assert.InDelta(t, 0.0, team.Deviation, 0.001)
		assert.True(t, team.Passed)
	}
}

func TestGameSpacing_DivergentCadencesFail(t *testing.T) {
	// One pair plays every 2 days, the other every 7: per-team averages
	// of 2 and 7 against a division baseline of 4.5 put everyone more
	// than 1.5 days out.
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 1), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 3), "09:00", "11:00", "d1", "t2", "t1", "f1"),
		game("g3", date(2024, time.April, 5), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g4", date(2024, time.April, 1), "12:00", "14:00", "d1", "t3", "t4", "f1"),
		game("g5", date(2024, time.April, 8), "12:00", "14:00", "d1", "t4", "t3", "f1"),
		game("g6", date(2024, time.April, 15), "12:00", "14:00", "d1", "t3", "t4", "f1"),
	}

	report := EvaluateGameSpacing(events, fourTeamIndex(), NewSeasonContext(testSeason()))

	assert.False(t, report.Passed)
	assert.Equal(t, 0, report.Score)
	div := report.Divisions[0]
	assert.InDelta(t, 4.5, div.AverageGap, 0.001)
	require.Len(t, div.Teams, 4)
	for _, team := range div.Teams {
		assert.InDelta(t, 2.5, team.Deviation, 0.001)
		assert.False(t, team.Passed)
	}
}

func TestGameSpacing_DisabledDivisionSkipped(t *testing.T) {
	idx := testIndex(model.DivisionConfig{
		DivisionID:         "d1",
		SeasonID:           "s1",
		GamesPerWeek:       1,
		GameSpacingEnabled: false,
	})
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 1), "09:00", "11:00", "d1", "t1", "t2", "f1"),
		game("g2", date(2024, time.April, 2), "09:00", "11:00", "d1", "t2", "t1", "f1"),
	}

	report := EvaluateGameSpacing(events, idx, NewSeasonContext(testSeason()))

	assert.True(t, report.Passed)
	assert.Equal(t, 100, report.Score)
	require.Len(t, report.Divisions, 1)
	assert.True(t, report.Divisions[0].Skipped)
	assert.Empty(t, report.Divisions[0].Teams)
}

func TestGameSpacing_SingleGameTeamsTriviallyPass(t *testing.T) {
	events := []model.ScheduledEvent{
		game("g1", date(2024, time.April, 6), "09:00", "11:00", "d1", "t1", "t2", "f1"),
	}

	report := EvaluateGameSpacing(events, testIndex(), NewSeasonContext(testSeason()))

	assert.True(t, report.Passed)
	assert.Equal(t, 100, report.Score)
	for _, team := range report.Divisions[0].Teams {
		assert.Equal(t, 1, team.GameCount)
		assert.Empty(t, team.Gaps)
		assert.True(t, team.Passed)
	}
}
