package evaluator

import (
	"fmt"

	"github.com/bbaldino/ll-scheduler/pkg/core/model"
)

const (
	// backToBackRangeLimit is the widest spread of back-to-back practice
	// counts allowed between teams of one division.
	backToBackRangeLimit = 2

	// maxPracticeGapDays is the longest a team may go without a practice
	maxPracticeGapDays = 7
)

// EvaluatePracticeSpacing audits practice distribution two ways: the
// spread of back-to-back counts across each division's teams (a
// fairness measure), and per-team maximum gaps (a coverage measure).
// A gap of one day or less counts as back-to-back.
func EvaluatePracticeSpacing(events []model.ScheduledEvent, idx *ReferenceIndex, cal *CalendarContext) PracticeSpacingReport {
	var report PracticeSpacingReport

	imbalancedDivisions := 0
	excessiveGapTeams := 0
	for _, division := range idx.SortedDivisions() {
		entry := DivisionPracticeSpacing{
			DivisionID:   division.ID,
			DivisionName: division.Name,
		}

		first := true
		for _, team := range idx.TeamsByDivision[division.ID] {
			practices := teamEvents(events, team.ID, model.EventPractice)
			gaps := consecutiveDayGaps(practices)

			spacing := TeamPracticeSpacing{
				TeamID:        team.ID,
				TeamName:      team.Name,
				PracticeCount: len(practices),
			}

			for _, gap := range gaps {
				if gap <= 1 {
					spacing.BackToBackCount++
				}
				if gap > spacing.MaxGap {
					spacing.MaxGap = gap
				}
			}

			if spacing.MaxGap > maxPracticeGapDays {
				spacing.ExcessiveGap = true
				excessiveGapTeams++
			}

			if first {
				entry.MinBackToBack = spacing.BackToBackCount
				entry.MaxBackToBack = spacing.BackToBackCount
				first = false
			} else {
				if spacing.BackToBackCount < entry.MinBackToBack {
					entry.MinBackToBack = spacing.BackToBackCount
				}
				if spacing.BackToBackCount > entry.MaxBackToBack {
					entry.MaxBackToBack = spacing.BackToBackCount
				}
			}

			entry.Teams = append(entry.Teams, spacing)
		}

		if entry.MaxBackToBack-entry.MinBackToBack > backToBackRangeLimit {
			entry.Imbalanced = true
			imbalancedDivisions++
		}
		report.Divisions = append(report.Divisions, entry)
	}

	report.Passed = imbalancedDivisions == 0 && excessiveGapTeams == 0
	report.Score = clampScore(100 - 15*imbalancedDivisions - 5*excessiveGapTeams)
	report.Summary = fmt.Sprintf("%d division(s) with uneven back-to-back practices, %d team(s) with gaps over %d days",
		imbalancedDivisions, excessiveGapTeams, maxPracticeGapDays)

	return report
}
