package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bbaldino/ll-scheduler/pkg/core/services"
)

// PublishReportCmd creates the publishReport command
func PublishReportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishReport",
		Short: "Evaluate a season and publish the report to Google Sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			seasonID, _ := cmd.Flags().GetString("season")
			periodIDs, _ := cmd.Flags().GetStringSlice("periods")

			if seasonID == "" && len(periodIDs) == 0 {
				return fmt.Errorf("either --season or --periods is required")
			}

			app.Logger.Debug("publishReport command", zap.String("season", seasonID))

			result, err := services.EvaluateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, services.EvaluateParams{
				SeasonID:  seasonID,
				PeriodIDs: periodIDs,
			})
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			sheets, err := app.SheetsClient()
			if err != nil {
				return err
			}

			if err := services.PublishReport(sheets, app.Cfg, app.Logger, result); err != nil {
				return fmt.Errorf("failed to publish report: %w", err)
			}

			fmt.Printf("\n✅ Report published (overall score %d/100)\n\n", result.OverallScore)
			return nil
		},
	}

	cmd.Flags().String("season", "", "Season ID to evaluate")
	cmd.Flags().StringSlice("periods", nil, "Season period IDs to evaluate (period mode)")

	return cmd
}
