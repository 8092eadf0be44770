package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/bbaldino/ll-scheduler/internal/config"
	"github.com/bbaldino/ll-scheduler/pkg/core/evaluator"
)

// ReportSheetWriter is the subset of the sheets client the publisher
// needs.
type ReportSheetWriter interface {
	ClearValues(spreadsheetID, sheetRange string) error
	UpdateValues(spreadsheetID, sheetRange string, values [][]interface{}) error
}

// PublishReport pushes an evaluation's per-check summary table to the
// configured Google Sheet for the league operators.
func PublishReport(
	sheets ReportSheetWriter,
	cfg *config.Config,
	logger *zap.Logger,
	result *evaluator.ScheduleEvaluationResult,
) error {
	if cfg.ReportSheetID == "" {
		return fmt.Errorf("no report sheet configured: set reportSheetID in the config file")
	}

	tab := cfg.ReportTab
	if tab == "" {
		tab = "Evaluation"
	}

	values := buildReportValues(result)

	sheetRange := fmt.Sprintf("%s!A1:D%d", tab, len(values))
	logger.Debug("Publishing evaluation report",
		zap.String("sheet_id", cfg.ReportSheetID),
		zap.String("range", sheetRange))

	if err := sheets.ClearValues(cfg.ReportSheetID, tab); err != nil {
		return fmt.Errorf("failed to clear report sheet: %w", err)
	}
	if err := sheets.UpdateValues(cfg.ReportSheetID, sheetRange, values); err != nil {
		return fmt.Errorf("failed to write report sheet: %w", err)
	}

	logger.Info("Report published",
		zap.String("evaluation_id", result.ID),
		zap.Int("rows", len(values)))

	return nil
}

// buildReportValues lays out the report as sheet rows: a header block
// with the run metadata, then one row per check.
func buildReportValues(result *evaluator.ScheduleEvaluationResult) [][]interface{} {
	values := [][]interface{}{
		{"Schedule Evaluation", result.ID, "", ""},
		{"Season", result.SeasonID, "", ""},
		{"Generated", formatDisplayDate(result.GeneratedAt), "", ""},
		{"Overall Score", result.OverallScore, "", ""},
		{"", "", "", ""},
		{"Check", "Status", "Score", "Summary"},
	}

	for _, check := range result.CheckResults() {
		values = append(values, []interface{}{
			check.Name,
			passLabel(check.Passed),
			check.Score,
			check.Summary,
		})
	}

	return values
}
