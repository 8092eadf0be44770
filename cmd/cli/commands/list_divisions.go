package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListDivisionsCmd creates the listDivisions command
func ListDivisionsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listDivisions",
		Short: "List divisions and their scheduling configs for a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			seasonID, _ := cmd.Flags().GetString("season")
			if seasonID == "" {
				return fmt.Errorf("--season is required")
			}

			divisions, err := app.Database.ListDivisions(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list divisions: %w", err)
			}
			configs, err := app.Database.ListDivisionConfigsBySeason(app.Ctx, seasonID)
			if err != nil {
				return fmt.Errorf("failed to list division configs: %w", err)
			}

			configByDivision := make(map[string]int)
			for i, cfg := range configs {
				configByDivision[cfg.DivisionID] = i
			}

			fmt.Printf("\n🏟  Divisions (%d)\n\n", len(divisions))
			for _, division := range divisions {
				fmt.Printf("%s  %s\n", division.ID, division.Name)
				i, ok := configByDivision[division.ID]
				if !ok {
					fmt.Printf("    (no config for season %s)\n", seasonID)
					continue
				}
				cfg := configs[i]
				fmt.Printf("    games/week: %d  practices/week: %d  cage/week: %d\n",
					cfg.GamesPerWeek, cfg.PracticesPerWeek, cfg.CageSessionsPerWeek)
				if cfg.MaxGamesPerSeason > 0 {
					fmt.Printf("    season cap: %d games\n", cfg.MaxGamesPerSeason)
				}
				if len(cfg.GameWeekOverrides) > 0 {
					fmt.Printf("    overrides:  %d week(s)\n", len(cfg.GameWeekOverrides))
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("season", "", "Season ID")

	return cmd
}
