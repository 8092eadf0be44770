package evaluator

import (
	"fmt"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// matchupMinSpacingDays is the smallest acceptable gap between two
// games of the same pairing. Rematches inside one week fail.
const matchupMinSpacingDays = 7

// EvaluateMatchupSpacing builds, per division, the symmetric pairwise
// matrix of day gaps between consecutive games of each team pairing,
// and flags divisions whose tightest rematch falls under a week.
func EvaluateMatchupSpacing(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) MatchupSpacingReport {
	var report MatchupSpacingReport

	failing := 0
	for _, division := range idx.SortedDivisions() {
		teams := idx.TeamsByDivision[division.ID]

		entry := DivisionMatchupSpacing{
			DivisionID:   division.ID,
			DivisionName: division.Name,
			MinSpacing:   -1,
			Passed:       true,
		}

		entry.TeamIDs = make([]string, len(teams))
		for i, t := range teams {
			entry.TeamIDs[i] = t.ID
		}

		entry.Matrix = make([][][]int, len(teams))
		for i := range entry.Matrix {
			entry.Matrix[i] = make([][]int, len(teams))
		}

		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				gaps := pairGameGaps(events, teams[i].ID, teams[j].ID)

				// Matrix is symmetric
				entry.Matrix[i][j] = gaps
				entry.Matrix[j][i] = gaps

				for _, gap := range gaps {
					if entry.MinSpacing < 0 || gap < entry.MinSpacing {
						entry.MinSpacing = gap
					}
				}
			}
		}

		if entry.MinSpacing >= 0 && entry.MinSpacing < matchupMinSpacingDays {
			entry.Passed = false
			failing++
		}
		report.Divisions = append(report.Divisions, entry)
	}

	report.Passed = failing == 0
	report.Score = roundPercent(len(report.Divisions)-failing, len(report.Divisions))
	report.Summary = fmt.Sprintf("%d of %d divisions keep rematches at least %d days apart",
		len(report.Divisions)-failing, len(report.Divisions), matchupMinSpacingDays)

	return report
}

// pairGameGaps returns the day gaps between consecutive games of one
// team pairing, in chronological order.
func pairGameGaps(events []model.ScheduledEvent, teamA, teamB string) []int {
	var games []model.ScheduledEvent
	for _, e := range events {
		if e.EventType != model.EventGame {
			continue
		}
		if (e.HomeTeamID == teamA && e.AwayTeamID == teamB) ||
			(e.HomeTeamID == teamB && e.AwayTeamID == teamA) {
			games = append(games, e)
		}
	}
	sortEventsByDate(games)
	return consecutiveDayGaps(games)
}
