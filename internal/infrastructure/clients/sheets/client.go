package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/Erudhir101/Tabela-Particular/pkg/config"
)

// Client wraps the Google Sheets API for a single spreadsheet authenticated
// with a service account.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        zerolog.Logger
}

// NewClient builds a Sheets client from service account credentials. The
// private key arrives through the environment with escaped newlines, so the
// caller must pass the normalized form.
func NewClient(ctx context.Context, cfg config.GoogleSheetsConfig, logger zerolog.Logger) (*Client, error) {
	jwtConfig := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.NormalizedPrivateKey()),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   "https://oauth2.googleapis.com/token",
	}

	service, err := sheetsapi.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	logger.Info().Str("spreadsheet_id", cfg.SpreadsheetID).Msg("Google Sheets client initialized")

	return &Client{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// GetValues reads a range and converts the loosely typed API cells to strings
func (c *Client) GetValues(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}

	grid := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprintf("%v", cell)
		}
		grid[i] = cells
	}
	return grid, nil
}

// UpdateValues overwrites a range with raw values. RAW input keeps the API
// from reinterpreting "1.234,56" as a number.
func (c *Client) UpdateValues(ctx context.Context, writeRange string, grid [][]string) error {
	values := make([][]interface{}, len(grid))
	for i, row := range grid {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	_, err := c.service.Spreadsheets.Values.
		Update(c.spreadsheetID, writeRange, &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", writeRange, err)
	}

	c.logger.Debug().Str("range", writeRange).Int("rows", len(grid)).Msg("spreadsheet range updated")
	return nil
}

// ClearValues empties a range without touching formatting
func (c *Client) ClearValues(ctx context.Context, clearRange string) error {
	_, err := c.service.Spreadsheets.Values.
		Clear(c.spreadsheetID, clearRange, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear range %s: %w", clearRange, err)
	}
	return nil
}
