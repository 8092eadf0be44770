package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/bbaldino/ll-scheduler/pkg/core/evaluator"
)

// buildEvaluationSummary flattens the per-check results into the one
// line per check format stored with the evaluation history.
func buildEvaluationSummary(result *evaluator.ScheduleEvaluationResult) string {
	var lines []string
	for _, check := range result.CheckResults() {
		lines = append(lines, fmt.Sprintf("%s: %s (%d) - %s", check.Name, passLabel(check.Passed), check.Score, check.Summary))
	}
	return strings.Join(lines, "\n")
}

func passLabel(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

// formatDisplayDate formats a date the way published reports show it,
// e.g. "Sat Apr 06 2024".
func formatDisplayDate(date time.Time) string {
	return date.Format("Mon Jan 02 2006")
}
