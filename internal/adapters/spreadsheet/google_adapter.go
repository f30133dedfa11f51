package spreadsheet

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Erudhir101/Tabela-Particular/internal/domain/repositories"
	"github.com/Erudhir101/Tabela-Particular/internal/infrastructure/clients/sheets"
	apperrors "github.com/Erudhir101/Tabela-Particular/pkg/errors"
)

// GoogleAdapter implements the price list repository over a Google Sheets
// client. The sheet is the system of record; there is no database behind it.
type GoogleAdapter struct {
	client *sheets.Client
	rng    string
	logger zerolog.Logger
}

func NewGoogleAdapter(client *sheets.Client, readRange string, logger zerolog.Logger) *GoogleAdapter {
	return &GoogleAdapter{
		client: client,
		rng:    readRange,
		logger: logger,
	}
}

var _ repositories.PriceListRepository = (*GoogleAdapter)(nil)

func (a *GoogleAdapter) GetGrid(ctx context.Context) ([][]string, error) {
	grid, err := a.client.GetValues(ctx, a.rng)
	if err != nil {
		a.logger.Error().Err(err).Str("range", a.rng).Msg("failed to read price list")
		return nil, apperrors.NewExternalError("failed to read price list", err)
	}
	return grid, nil
}

// SaveGrid replaces the whole range. Clearing first keeps stale rows from
// surviving when the new grid is shorter than the old one.
func (a *GoogleAdapter) SaveGrid(ctx context.Context, grid [][]string) error {
	if err := a.client.ClearValues(ctx, a.rng); err != nil {
		a.logger.Error().Err(err).Str("range", a.rng).Msg("failed to clear price list")
		return apperrors.NewExternalError("failed to clear price list", err)
	}
	if err := a.client.UpdateValues(ctx, a.rng, grid); err != nil {
		a.logger.Error().Err(err).Str("range", a.rng).Msg("failed to write price list")
		return apperrors.NewExternalError("failed to write price list", err)
	}
	a.logger.Info().Int("rows", len(grid)).Msg("price list saved")
	return nil
}
