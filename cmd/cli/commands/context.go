package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bbaldino/ll-scheduler/internal/config"
	"github.com/bbaldino/ll-scheduler/pkg/clients/sheetsclient"
	"github.com/bbaldino/ll-scheduler/pkg/db"
)

// AppContext holds the application dependencies shared by all commands
type AppContext struct {
	Ctx      context.Context
	Env      string
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger

	sheets *sheetsclient.Client
}

// SheetsClient lazily initializes the Google Sheets client. The OAuth
// flow prompts the operator, so only commands that publish pay for it.
func (a *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if a.sheets != nil {
		return a.sheets, nil
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	client, err := sheetsclient.NewClient(a.Ctx, oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	a.sheets = client
	return client, nil
}
