package evaluator

import (
	"fmt"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// slotEfficiencyThreshold is the minimum share of concurrent games
// required to pass.
const slotEfficiencyThreshold = 70

// EvaluateSlotEfficiency measures how well games share calendar dates.
// A game is isolated when no other game on its date overlaps its
// [start, end) interval; isolated games waste field supervision slots
// and are listed individually for operator review.
func EvaluateSlotEfficiency(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) SlotEfficiencyReport {
	var report SlotEfficiencyReport

	var games []model.ScheduledEvent
	for _, e := range events {
		if e.EventType == model.EventGame {
			games = append(games, e)
		}
	}
	sortEventsByDate(games)
	report.TotalGames = len(games)

	byDate := make(map[string][]model.ScheduledEvent)
	for _, g := range games {
		key := g.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], g)
	}

	for _, g := range games {
		concurrent := false
		for _, other := range byDate[g.Date.Format("2006-01-02")] {
			if other.ID == g.ID {
				continue
			}
			if timesOverlap(g.StartTime, g.EndTime, other.StartTime, other.EndTime) {
				concurrent = true
				break
			}
		}

		if concurrent {
			report.ConcurrentGames++
			continue
		}

		report.IsolatedGames = append(report.IsolatedGames, IsolatedGame{
			EventID:      g.ID,
			Date:         g.Date,
			StartTime:    g.StartTime,
			EndTime:      g.EndTime,
			FieldName:    idx.FieldName(g.FieldID),
			DivisionName: idx.DivisionName(g.DivisionID),
			HomeTeamName: idx.TeamName(g.HomeTeamID),
			AwayTeamName: idx.TeamName(g.AwayTeamID),
		})
	}

	report.EfficiencyRate = roundPercent(report.ConcurrentGames, report.TotalGames)
	report.Passed = report.EfficiencyRate >= slotEfficiencyThreshold
	report.Score = report.EfficiencyRate
	report.Summary = fmt.Sprintf("%d of %d games share their slot with another game (%d%%)",
		report.ConcurrentGames, report.TotalGames, report.EfficiencyRate)

	return report
}
