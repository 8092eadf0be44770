package evaluator

import (
	"fmt"
	"math"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

// gameDayComplianceThreshold is the minimum compliance rate a division
// needs to pass the game day preference check.
const gameDayComplianceThreshold = 70

// EvaluateGameDayPreferences audits each division's distribution of
// games across days of the week against its configured preferences.
//
// Issues:
//   - a required day with zero games
//   - an avoided day with any games
//   - any day exceeding its MaxGamesPerDay limit
//
// Compliance weighs games on required/preferred days fully, acceptable
// days at half, avoided days not at all.
func EvaluateGameDayPreferences(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) GameDayPreferencesReport {
	var report GameDayPreferencesReport

	failing := 0
	totalRate := 0
	for _, division := range idx.SortedDivisions() {
		entry := DivisionDayPreferences{
			DivisionID:   division.ID,
			DivisionName: division.Name,
		}

		teamCounts := make(map[string]*[7]int)
		totalGames := 0
		for _, e := range events {
			if e.EventType != model.EventGame || e.DivisionID != division.ID {
				continue
			}
			day := int(e.Date.Weekday())
			entry.DayCounts[day]++
			totalGames++

			for _, teamID := range []string{e.HomeTeamID, e.AwayTeamID} {
				if teamID == "" {
					continue
				}
				if teamCounts[teamID] == nil {
					teamCounts[teamID] = &[7]int{}
				}
				teamCounts[teamID][day]++
			}
		}

		for _, team := range idx.TeamsByDivision[division.ID] {
			counts := teamCounts[team.ID]
			if counts == nil {
				counts = &[7]int{}
			}
			entry.TeamCounts = append(entry.TeamCounts, TeamDayCounts{
				TeamID:    team.ID,
				TeamName:  team.Name,
				DayCounts: *counts,
			})
		}

		cfg := idx.ConfigsByDivision[division.ID]
		entry.ComplianceRate = complianceRate(entry.DayCounts, cfg.GameDayPreferences, totalGames)

		for _, pref := range cfg.GameDayPreferences {
			count := entry.DayCounts[pref.DayOfWeek]

			if pref.Priority == model.PriorityRequired && count == 0 {
				entry.Issues = append(entry.Issues,
					fmt.Sprintf("no games on required day %s", dayName(pref.DayOfWeek)))
			}
			if pref.Priority == model.PriorityAvoid && count > 0 {
				entry.Issues = append(entry.Issues,
					fmt.Sprintf("%d game(s) on avoided day %s", count, dayName(pref.DayOfWeek)))
			}
			if pref.MaxGamesPerDay > 0 && count > pref.MaxGamesPerDay {
				entry.Issues = append(entry.Issues,
					fmt.Sprintf("%d game(s) on %s exceeds limit of %d", count, dayName(pref.DayOfWeek), pref.MaxGamesPerDay))
			}
		}

		entry.Passed = len(entry.Issues) == 0 && entry.ComplianceRate >= gameDayComplianceThreshold
		if !entry.Passed {
			failing++
		}
		totalRate += entry.ComplianceRate
		report.Divisions = append(report.Divisions, entry)
	}

	report.Passed = failing == 0
	if len(report.Divisions) == 0 {
		report.Score = 100
	} else {
		report.Score = int(math.Round(float64(totalRate) / float64(len(report.Divisions))))
	}
	report.Summary = fmt.Sprintf("%d of %d divisions comply with game day preferences",
		len(report.Divisions)-failing, len(report.Divisions))

	return report
}

// complianceRate scores the day distribution against the preferences.
// With no preferences or no games, a division is trivially compliant.
func complianceRate(dayCounts [7]int, prefs []model.GameDayPreference, totalGames int) int {
	if len(prefs) == 0 || totalGames == 0 {
		return 100
	}

	priorityByDay := make(map[int]model.DayPriority, len(prefs))
	for _, pref := range prefs {
		priorityByDay[pref.DayOfWeek] = pref.Priority
	}

	compliant := 0.0
	for day, count := range dayCounts {
		switch priorityByDay[day] {
		case model.PriorityRequired, model.PriorityPreferred:
			compliant += float64(count)
		case model.PriorityAcceptable:
			compliant += float64(count) / 2
		}
	}

	return int(math.Round(100 * compliant / float64(totalGames)))
}

func dayName(day int) string {
	names := [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if day < 0 || day > 6 {
		return fmt.Sprintf("day %d", day)
	}
	return names[day]
}
