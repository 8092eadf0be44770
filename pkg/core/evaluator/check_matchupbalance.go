package evaluator

import (
	"fmt"
	"math"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// matchupImbalanceThreshold is the largest deviation from the ideal
// games-per-matchup a division may carry and still pass.
const matchupImbalanceThreshold = 2.0

// EvaluateMatchupBalance audits how evenly games are distributed across
// team pairings in each division. The ideal per-matchup count derives
// from the quota-resolved season total (so week overrides are honored),
// divided by the number of opponents.
func EvaluateMatchupBalance(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) MatchupBalanceReport {
	var report MatchupBalanceReport

	failing := 0
	for _, division := range idx.SortedDivisions() {
		teams := idx.TeamsByDivision[division.ID]

		entry := DivisionMatchupBalance{
			DivisionID:   division.ID,
			DivisionName: division.Name,
			Passed:       true,
		}

		if len(teams) >= 2 {
			cfg := idx.ConfigsByDivision[division.ID]
			totalGames := TotalRequiredGames(cfg, cal.GameWeeks)
			entry.IdealGamesPerMatchup = float64(totalGames) / float64(len(teams)-1)
		}

		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				pair := MatchupPair{
					TeamAID:   teams[i].ID,
					TeamBID:   teams[j].ID,
					TeamAName: teams[i].Name,
					TeamBName: teams[j].Name,
				}

				for _, e := range events {
					if e.EventType != model.EventGame {
						continue
					}
					switch {
					case e.HomeTeamID == pair.TeamAID && e.AwayTeamID == pair.TeamBID:
						pair.GamesPlayed++
						pair.AHomeCount++
					case e.HomeTeamID == pair.TeamBID && e.AwayTeamID == pair.TeamAID:
						pair.GamesPlayed++
						pair.BHomeCount++
					}
				}

				pair.Imbalance = math.Abs(float64(pair.GamesPlayed) - entry.IdealGamesPerMatchup)
				if pair.Imbalance > entry.MaxImbalance {
					entry.MaxImbalance = pair.Imbalance
				}

				entry.Pairs = append(entry.Pairs, pair)
			}
		}

		entry.Passed = entry.MaxImbalance <= matchupImbalanceThreshold
		if !entry.Passed {
			failing++
		}
		report.Divisions = append(report.Divisions, entry)
	}

	report.Passed = failing == 0
	report.Score = roundPercent(len(report.Divisions)-failing, len(report.Divisions))
	report.Summary = fmt.Sprintf("%d of %d divisions have balanced matchups",
		len(report.Divisions)-failing, len(report.Divisions))

	return report
}
