package evaluator

import (
	"fmt"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// homeAwayBalanceThreshold is the largest |home - away| difference a
// team may carry and still pass. The same absolute threshold applies to
// every division regardless of size.
const homeAwayBalanceThreshold = 1

// EvaluateHomeAwayBalance audits each team's home/away game split
func EvaluateHomeAwayBalance(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) HomeAwayReport {
	var report HomeAwayReport

	failing := 0
	for _, team := range idx.SortedTeams() {
		entry := TeamHomeAway{
			TeamID:   team.ID,
			TeamName: team.Name,
		}

		for _, e := range events {
			if e.EventType != model.EventGame {
				continue
			}
			switch team.ID {
			case e.HomeTeamID:
				entry.Home++
			case e.AwayTeamID:
				entry.Away++
			}
		}

		entry.Balance = entry.Home - entry.Away
		if entry.Balance < 0 {
			entry.Balance = -entry.Balance
		}
		entry.Passed = entry.Balance <= homeAwayBalanceThreshold

		if !entry.Passed {
			failing++
		}
		report.Teams = append(report.Teams, entry)
	}

	report.Passed = failing == 0
	report.Score = roundPercent(len(report.Teams)-failing, len(report.Teams))
	report.Summary = fmt.Sprintf("%d of %d teams are balanced within %d game(s)", len(report.Teams)-failing, len(report.Teams), homeAwayBalanceThreshold)

	return report
}
