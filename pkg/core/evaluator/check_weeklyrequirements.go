package evaluator

import (
	"fmt"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// EvaluateWeeklyRequirements audits every team's per-week scheduled
// counts against the division's required quotas.
//
// Requirements:
//   - A type's requirement is zero unless the week's eligibility allows it
//   - Game requirements come from the quota resolver, keyed by game week
//     number; weeks outside the game-week span require zero games
//   - A week fails when any scheduled count is below its requirement;
//     over-scheduling never fails
func EvaluateWeeklyRequirements(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) WeeklyRequirementsReport {
	var report WeeklyRequirementsReport

	// Resolve game quotas once per division rather than per team
	quotasByDivision := make(map[string]map[int]int)
	for divID, cfg := range idx.ConfigsByDivision {
		quotasByDivision[divID] = ResolveGameQuotas(cfg, cal.GameWeeks)
	}

	failingTeams := 0
	for _, team := range idx.SortedTeams() {
		cfg := idx.ConfigsByDivision[team.DivisionID]
		quotas := quotasByDivision[team.DivisionID]

		breakdown := TeamWeeklyBreakdown{
			TeamID:     team.ID,
			TeamName:   team.Name,
			DivisionID: team.DivisionID,
			Passed:     true,
		}

		for _, week := range cal.Weeks {
			allowed := cal.Eligibility.AllowedEventTypes(week.Start, week.End)

			line := WeekLine{
				WeekStart:      week.Start,
				WeekEnd:        week.End,
				GameWeekNumber: cal.GameWeekNumber(week.Start),
				Passed:         true,
			}

			if allowed[model.EventGame] && line.GameWeekNumber > 0 {
				line.RequiredGames = quotas[line.GameWeekNumber]
			}
			if allowed[model.EventPractice] {
				line.RequiredPractices = cfg.PracticesPerWeek
			}
			if allowed[model.EventCage] {
				line.RequiredCage = cfg.CageSessionsPerWeek
			}

			for _, e := range events {
				if !e.InvolvesTeam(team.ID) || !week.Contains(e.Date) {
					continue
				}
				switch e.EventType {
				case model.EventGame:
					line.ScheduledGames++
				case model.EventPractice:
					line.ScheduledPractices++
				case model.EventCage:
					line.ScheduledCage++
				}
			}

			if line.ScheduledGames < line.RequiredGames ||
				line.ScheduledPractices < line.RequiredPractices ||
				line.ScheduledCage < line.RequiredCage {
				line.Passed = false
				breakdown.Passed = false
			}

			breakdown.Weeks = append(breakdown.Weeks, line)
		}

		if !breakdown.Passed {
			failingTeams++
		}
		report.Teams = append(report.Teams, breakdown)
	}

	report.Passed = failingTeams == 0
	report.Score = roundPercent(len(report.Teams)-failingTeams, len(report.Teams))
	report.Summary = fmt.Sprintf("%d of %d teams meet their weekly requirements", len(report.Teams)-failingTeams, len(report.Teams))

	return report
}
