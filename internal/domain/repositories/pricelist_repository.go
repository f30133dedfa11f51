package repositories

import (
	"context"
)

// PriceListRepository abstracts the spreadsheet holding the price list.
// The grid is raw cell text; row layout (header row, data rows) is interpreted
// by the spreadsheet adapter, not here. SaveGrid overwrites the whole range;
// there is no versioning, last write wins.
type PriceListRepository interface {
	GetGrid(ctx context.Context) ([][]string, error)
	SaveGrid(ctx context.Context, grid [][]string) error
}
