package evaluator

import (
	"github.com/bbaldino/ll-scheduler/pkg/core/calendar"
	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// baseGamesForWeek resolves the override chain for a single game week:
// an override whose WeekNumber matches wins, otherwise the config's base
// GamesPerWeek applies.
func baseGamesForWeek(cfg model.DivisionConfig, weekNumber int) int {
	for _, override := range cfg.GameWeekOverrides {
		if override.WeekNumber == weekNumber {
			return override.GamesPerWeek
		}
	}
	return cfg.GamesPerWeek
}

// ResolveGameQuotas computes the effective required game count for every
// game week of a division. When MaxGamesPerSeason is set it acts as an
// exhausting budget: weeks are processed in ascending order and each
// week's requirement is clamped to whatever remains of the cap.
//
// The returned map is keyed by 1-based game week number.
func ResolveGameQuotas(cfg model.DivisionConfig, gameWeeks []calendar.Week) map[int]int {
	quotas := make(map[int]int, len(gameWeeks))

	cumulative := 0
	for _, week := range gameWeeks {
		required := baseGamesForWeek(cfg, week.Number)

		if cfg.MaxGamesPerSeason > 0 {
			remaining := cfg.MaxGamesPerSeason - cumulative
			if remaining < 0 {
				remaining = 0
			}
			if required > remaining {
				required = remaining
			}
		}

		quotas[week.Number] = required
		cumulative += required
	}

	return quotas
}

// TotalRequiredGames sums the resolved weekly quotas, which is the
// override-aware season game count a single team is expected to play.
func TotalRequiredGames(cfg model.DivisionConfig, gameWeeks []calendar.Week) int {
	total := 0
	for _, required := range ResolveGameQuotas(cfg, gameWeeks) {
		total += required
	}
	return total
}
