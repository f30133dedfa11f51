package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Erudhir101/Tabela-Particular/internal/adapters/spreadsheet"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/repositories"
	"github.com/Erudhir101/Tabela-Particular/internal/matching"
	apperrors "github.com/Erudhir101/Tabela-Particular/pkg/errors"
)

// PriceListService exposes the price list for reading, searching and editing.
// All operations go through the repository grid; the sheet layout is decoded
// by the spreadsheet adapter.
type PriceListService struct {
	repo   repositories.PriceListRepository
	logger zerolog.Logger
}

// NewPriceListService creates a new price list service
func NewPriceListService(repo repositories.PriceListRepository, logger zerolog.Logger) *PriceListService {
	return &PriceListService{
		repo:   repo,
		logger: logger,
	}
}

// Grid returns the raw sheet grid, letterhead and header rows included
func (s *PriceListService) Grid(ctx context.Context) ([][]string, error) {
	return s.repo.GetGrid(ctx)
}

// SaveGrid overwrites the whole sheet. The header row must survive the edit
// or every later read would come back empty.
func (s *PriceListService) SaveGrid(ctx context.Context, grid [][]string) error {
	if len(grid) <= spreadsheet.HeaderRowIndex {
		return apperrors.NewValidationError("grid is missing the header row")
	}
	return s.repo.SaveGrid(ctx, grid)
}

// AppendRow adds a procedure row after the last data row. A nil row appends
// a blank row sized to the header, ready for in-place editing.
func (s *PriceListService) AppendRow(ctx context.Context, row []string) error {
	grid, err := s.repo.GetGrid(ctx)
	if err != nil {
		return err
	}
	if len(grid) <= spreadsheet.HeaderRowIndex {
		return apperrors.NewValidationError("price list has no header row to append under")
	}

	if len(row) == 0 {
		row = make([]string, len(grid[spreadsheet.HeaderRowIndex]))
	}
	grid = append(grid, row)
	return s.repo.SaveGrid(ctx, grid)
}

// DeleteRows removes the rows at the given absolute grid indexes. Indexes
// inside the letterhead or header area are rejected.
func (s *PriceListService) DeleteRows(ctx context.Context, rowIndexes []int) error {
	if len(rowIndexes) == 0 {
		return apperrors.NewValidationError("no rows to delete")
	}

	grid, err := s.repo.GetGrid(ctx)
	if err != nil {
		return err
	}

	doomed := make(map[int]bool, len(rowIndexes))
	for _, index := range rowIndexes {
		if index < spreadsheet.DataRowIndex || index >= len(grid) {
			return apperrors.NewValidationError("row index out of range")
		}
		doomed[index] = true
	}

	kept := make([][]string, 0, len(grid)-len(doomed))
	for i, row := range grid {
		if !doomed[i] {
			kept = append(kept, row)
		}
	}

	s.logger.Info().Int("deleted", len(doomed)).Msg("deleting price list rows")
	return s.repo.SaveGrid(ctx, kept)
}

// Records returns the decoded procedure records in sheet order
func (s *PriceListService) Records(ctx context.Context) ([]entities.ProcedureRecord, error) {
	grid, err := s.repo.GetGrid(ctx)
	if err != nil {
		return nil, err
	}
	return spreadsheet.RecordsFromGrid(grid), nil
}

// SearchRecords filters the records by an accent- and case-insensitive
// substring over description, mnemonic and TUSS code. An empty query returns
// everything.
func (s *PriceListService) SearchRecords(ctx context.Context, query string) ([]entities.ProcedureRecord, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	needle := matching.Normalize(query)
	if needle == "" {
		return records, nil
	}

	filtered := make([]entities.ProcedureRecord, 0, len(records))
	for _, record := range records {
		if strings.Contains(matching.Normalize(record.Description), needle) ||
			strings.Contains(matching.Normalize(record.MnemonicCode), needle) ||
			strings.Contains(matching.Normalize(record.TaxonomyCode), needle) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// FindRecord resolves a procedure by exact normalized mnemonic or description
func (s *PriceListService) FindRecord(ctx context.Context, name string) (*entities.ProcedureRecord, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	needle := matching.Normalize(name)
	if needle == "" {
		return nil, apperrors.NewValidationError("procedure name cannot be empty")
	}

	for i := range records {
		if matching.Normalize(records[i].MnemonicCode) == needle ||
			matching.Normalize(records[i].Description) == needle {
			return &records[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("procedure not found: " + name)
}
