package evaluator

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

const (
	// Check weights used when aggregating the overall score.
	// Weekly coverage and hard constraints dominate; the fairness and
	// efficiency checks refine the score.

	WeightWeeklyRequirements   = 2.0
	WeightConstraintViolations = 2.0
	WeightHomeAwayBalance      = 1.0
	WeightGameDayPreferences   = 1.0
	WeightGameSpacing          = 1.0
	WeightMatchupBalance       = 1.0
	WeightMatchupSpacing       = 1.0
	WeightSlotEfficiency       = 1.0
	WeightPracticeSpacing      = 1.0
)

// Input is the immutable snapshot one evaluation runs against. All
// collections are fetched at a single point in time; the evaluator
// never mutates them.
type Input struct {
	SeasonID  string
	Events    []model.ScheduledEvent
	Teams     []model.Team
	Divisions []model.Division
	Configs   []model.DivisionConfig
	Fields    []model.SeasonField
	Periods   []model.SeasonPeriod
	Calendar  *CalendarContext
}

// Evaluate runs all nine checks against the snapshot and aggregates the
// composite report. Re-running on identical inputs yields an identical
// result apart from ID and GeneratedAt.
func Evaluate(input Input) *ScheduleEvaluationResult {
	idx := NewReferenceIndex(input.Teams, input.Divisions, input.Configs, input.Fields, input.Periods)

	result := &ScheduleEvaluationResult{
		ID:          uuid.NewString(),
		SeasonID:    input.SeasonID,
		GeneratedAt: time.Now().UTC(),

		WeeklyRequirements:   EvaluateWeeklyRequirements(input.Events, idx, input.Calendar),
		HomeAwayBalance:      EvaluateHomeAwayBalance(input.Events, idx, input.Calendar),
		ConstraintViolations: EvaluateConstraintViolations(input.Events, idx, input.Calendar),
		GameDayPreferences:   EvaluateGameDayPreferences(input.Events, idx, input.Calendar),
		GameSpacing:          EvaluateGameSpacing(input.Events, idx, input.Calendar),
		MatchupBalance:       EvaluateMatchupBalance(input.Events, idx, input.Calendar),
		MatchupSpacing:       EvaluateMatchupSpacing(input.Events, idx, input.Calendar),
		SlotEfficiency:       EvaluateSlotEfficiency(input.Events, idx, input.Calendar),
		PracticeSpacing:      EvaluatePracticeSpacing(input.Events, idx, input.Calendar),
	}

	result.OverallScore = overallScore(result)

	return result
}

// overallScore is the weighted rounded mean of the per-check scores
func overallScore(r *ScheduleEvaluationResult) int {
	weighted := []struct {
		score  int
		weight float64
	}{
		{r.WeeklyRequirements.Score, WeightWeeklyRequirements},
		{r.HomeAwayBalance.Score, WeightHomeAwayBalance},
		{r.ConstraintViolations.Score, WeightConstraintViolations},
		{r.GameDayPreferences.Score, WeightGameDayPreferences},
		{r.GameSpacing.Score, WeightGameSpacing},
		{r.MatchupBalance.Score, WeightMatchupBalance},
		{r.MatchupSpacing.Score, WeightMatchupSpacing},
		{r.SlotEfficiency.Score, WeightSlotEfficiency},
		{r.PracticeSpacing.Score, WeightPracticeSpacing},
	}

	total := 0.0
	totalWeight := 0.0
	for _, w := range weighted {
		total += float64(w.score) * w.weight
		totalWeight += w.weight
	}

	return clampScore(int(math.Round(total / totalWeight)))
}

// CheckResults returns the per-check headers in a fixed display order,
// keyed by check name. Used by the CLI table and the sheets publisher.
func (r *ScheduleEvaluationResult) CheckResults() []NamedCheckResult {
	return []NamedCheckResult{
		{"Weekly Requirements", r.WeeklyRequirements.CheckResult},
		{"Home/Away Balance", r.HomeAwayBalance.CheckResult},
		{"Constraint Violations", r.ConstraintViolations.CheckResult},
		{"Game Day Preferences", r.GameDayPreferences.CheckResult},
		{"Game Spacing", r.GameSpacing.CheckResult},
		{"Matchup Balance", r.MatchupBalance.CheckResult},
		{"Matchup Spacing", r.MatchupSpacing.CheckResult},
		{"Slot Efficiency", r.SlotEfficiency.CheckResult},
		{"Practice Spacing", r.PracticeSpacing.CheckResult},
	}
}

// NamedCheckResult pairs a check's display name with its result header
type NamedCheckResult struct {
	Name string
	CheckResult
}

// PassedCount returns how many of the nine checks passed
func (r *ScheduleEvaluationResult) PassedCount() int {
	passed := 0
	for _, c := range r.CheckResults() {
		if c.Passed {
			passed++
		}
	}
	return passed
}
