package sheetsclient

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/bbaldino/ll-scheduler/internal/config"
	"github.com/bbaldino/ll-scheduler/pkg/utils"
)

// Client wraps the Google Sheets API client used to publish evaluation
// reports.
type Client struct {
	service *sheets.Service
	ctx     context.Context
}

// NewClient creates a new Sheets client using OAuth credentials and
// performs the OAuth flow if needed.
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig) (*Client, error) {
	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth config: %w", err)
	}

	token, err := utils.GetTokenWithFlow(ctx, oauthConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth token: %w", err)
	}

	httpClient := oauthConfig.Client(ctx, token)

	service, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
		ctx:     ctx,
	}, nil
}

// UpdateValues writes values to a spreadsheet range, overwriting the
// existing cells.
func (c *Client) UpdateValues(spreadsheetID, sheetRange string, values [][]interface{}) error {
	body := &sheets.ValueRange{Values: values}
	_, err := c.service.Spreadsheets.Values.
		Update(spreadsheetID, sheetRange, body).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("failed to update values: %w", err)
	}
	return nil
}

// ClearValues clears a spreadsheet range
func (c *Client) ClearValues(spreadsheetID, sheetRange string) error {
	_, err := c.service.Spreadsheets.Values.
		Clear(spreadsheetID, sheetRange, &sheets.ClearValuesRequest{}).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear values: %w", err)
	}
	return nil
}
