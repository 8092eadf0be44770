package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bbaldino/ll-scheduler/cmd/cli/commands"
	"github.com/bbaldino/ll-scheduler/internal/config"
	"github.com/bbaldino/ll-scheduler/pkg/postgres"
	"github.com/bbaldino/ll-scheduler/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Little League Scheduler CLI - Audit league schedules",
		Long:  `A CLI tool for auditing youth league schedules: weekly quotas, fairness, conflicts and field utilisation.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Commands are registered lazily against the shared app context,
	// which PersistentPreRunE populates before any of them runs.
	app = &commands.AppContext{}
	rootCmd.AddCommand(commands.EvaluateScheduleCmd(app))
	rootCmd.AddCommand(commands.PublishReportCmd(app))
	rootCmd.AddCommand(commands.ListDivisionsCmd(app))
	rootCmd.AddCommand(commands.ViewHistoryCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and the database connection
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Env = env

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Database = database
	app.Logger.Debug("Database initialized successfully")

	return nil
}
