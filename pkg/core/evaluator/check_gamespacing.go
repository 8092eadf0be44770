package evaluator

import (
	"fmt"
	"math"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// gameSpacingTolerance is how far a team's average gap may deviate from
// its division average, in days.
const gameSpacingTolerance = 1.5

// EvaluateGameSpacing audits how evenly each team's games are spread.
// The fairness baseline is per-division (the average of per-team
// averages) so teams are only compared against same-division peers.
// Teams with fewer than two games trivially pass; divisions with
// GameSpacingEnabled=false are excluded entirely.
func EvaluateGameSpacing(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) GameSpacingReport {
	var report GameSpacingReport

	evaluated := 0
	failing := 0
	for _, division := range idx.SortedDivisions() {
		cfg, hasConfig := idx.ConfigsByDivision[division.ID]

		entry := DivisionSpacing{
			DivisionID:   division.ID,
			DivisionName: division.Name,
		}

		if hasConfig && !cfg.GameSpacingEnabled {
			entry.Skipped = true
			report.Divisions = append(report.Divisions, entry)
			continue
		}

		// First pass: per-team gap statistics
		sumOfAverages := 0.0
		teamsWithGaps := 0
		for _, team := range idx.TeamsByDivision[division.ID] {
			games := teamEvents(events, team.ID, model.EventGame)
			gaps := consecutiveDayGaps(games)

			spacing := TeamSpacing{
				TeamID:    team.ID,
				TeamName:  team.Name,
				GameCount: len(games),
				Gaps:      gaps,
				Passed:    true,
			}

			if len(gaps) > 0 {
				total := 0
				spacing.MinGap = gaps[0]
				spacing.MaxGap = gaps[0]
				for _, gap := range gaps {
					total += gap
					if gap < spacing.MinGap {
						spacing.MinGap = gap
					}
					if gap > spacing.MaxGap {
						spacing.MaxGap = gap
					}
				}
				spacing.AverageGap = float64(total) / float64(len(gaps))
				sumOfAverages += spacing.AverageGap
				teamsWithGaps++
			}

			entry.Teams = append(entry.Teams, spacing)
		}

		if teamsWithGaps > 0 {
			entry.AverageGap = sumOfAverages / float64(teamsWithGaps)
		}

		// Second pass: deviation from the division baseline
		for i := range entry.Teams {
			spacing := &entry.Teams[i]
			if spacing.GameCount < 2 {
				continue
			}
			spacing.Deviation = math.Abs(spacing.AverageGap - entry.AverageGap)
			spacing.Passed = spacing.Deviation <= gameSpacingTolerance

			evaluated++
			if !spacing.Passed {
				failing++
			}
		}

		report.Divisions = append(report.Divisions, entry)
	}

	report.Passed = failing == 0
	report.Score = roundPercent(evaluated-failing, evaluated)
	report.Summary = fmt.Sprintf("%d of %d evaluated teams are within %.1f days of their division average",
		evaluated-failing, evaluated, gameSpacingTolerance)

	return report
}
