package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ViewHistoryCmd creates the viewHistory command
func ViewHistoryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewHistory",
		Short: "Show saved evaluation runs for a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			seasonID, _ := cmd.Flags().GetString("season")
			if seasonID == "" {
				return fmt.Errorf("--season is required")
			}

			records, err := app.Database.GetEvaluations(app.Ctx, seasonID)
			if err != nil {
				return fmt.Errorf("failed to fetch evaluations: %w", err)
			}

			if len(records) == 0 {
				fmt.Printf("\nNo saved evaluations for season %s\n\n", seasonID)
				return nil
			}

			fmt.Printf("\n📈 Evaluation History for %s (%d runs)\n\n", seasonID, len(records))
			for _, record := range records {
				fmt.Printf("%s  score %3d/100  checks %d/%d  %s\n",
					record.GeneratedAt.Format("2006-01-02 15:04"),
					record.OverallScore,
					record.PassedChecks, record.TotalChecks,
					record.ID)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("season", "", "Season ID")

	return cmd
}
