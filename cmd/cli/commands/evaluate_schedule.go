package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bbaldino/ll-scheduler/pkg/core/evaluator"
	"github.com/bbaldino/ll-scheduler/pkg/core/services"
)

// EvaluateScheduleCmd creates the evaluateSchedule command
func EvaluateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluateSchedule",
		Short: "Audit a season's schedule against league policy",
		Long:  "Run every schedule check for a season (or a set of season periods) and print the scored report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seasonID, _ := cmd.Flags().GetString("season")
			periodIDs, _ := cmd.Flags().GetStringSlice("periods")
			save, _ := cmd.Flags().GetBool("save")

			if seasonID == "" && len(periodIDs) == 0 {
				return fmt.Errorf("either --season or --periods is required")
			}

			app.Logger.Debug("evaluateSchedule command",
				zap.String("season", seasonID),
				zap.Strings("periods", periodIDs),
				zap.Bool("save", save))

			result, err := services.EvaluateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, services.EvaluateParams{
				SeasonID:  seasonID,
				PeriodIDs: periodIDs,
				Save:      save,
			})
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			printEvaluation(result)

			if save {
				fmt.Printf("Saved as evaluation %s\n\n", result.ID)
			}
			return nil
		},
	}

	cmd.Flags().String("season", "", "Season ID to evaluate")
	cmd.Flags().StringSlice("periods", nil, "Season period IDs to evaluate (period mode)")
	cmd.Flags().Bool("save", false, "Save the evaluation summary to the database")

	return cmd
}

func printEvaluation(result *evaluator.ScheduleEvaluationResult) {
	fmt.Printf("\n📋 Schedule Evaluation\n\n")
	fmt.Printf("Season:        %s\n", result.SeasonID)
	fmt.Printf("Overall Score: %d/100\n", result.OverallScore)
	fmt.Printf("Checks Passed: %d/%d\n\n", result.PassedCount(), len(result.CheckResults()))

	for _, check := range result.CheckResults() {
		status := "✅"
		if !check.Passed {
			status = "❌"
		}
		fmt.Printf("%s %-22s %3d  %s\n", status, check.Name, check.Score, check.Summary)
	}

	if len(result.ConstraintViolations.Violations) > 0 {
		fmt.Printf("\n⚠️  Violations (%d):\n", len(result.ConstraintViolations.Violations))
		for _, v := range result.ConstraintViolations.Violations {
			fmt.Printf("  [%s] %s: %s\n", v.Severity, v.Type, v.Description)
		}
	}
	fmt.Println()
}
