package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePriceListRepo struct {
	grid    [][]string
	saveErr error
}

func (f *fakePriceListRepo) GetGrid(ctx context.Context) ([][]string, error) {
	return f.grid, nil
}

func (f *fakePriceListRepo) SaveGrid(ctx context.Context, grid [][]string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.grid = grid
	return nil
}

func fixtureGrid() [][]string {
	return [][]string{
		{"Laboratório Lab"},
		{"Tabela Particular"},
		{},
		{"", "Mnemônico", "Descrição", "Preço de Venda", "Código TUSS", "Prazo"},
		{"", "HMG", "HEMOGRAMA COMPLETO", "29,90", "40304361", "1 dia útil"},
		{"", "TSH", "TSH ULTRA SENSÍVEL", "85,00", "40316521", "3 dias úteis"},
		{"", "COL", "COLESTEROL TOTAL E FRACOES", "31,00", "", "2 dias"},
		{"", "PLA", "PLACENTA, CORDÃO E MEMBRANAS", "520,00", "", "10 dias"},
	}
}

func newPriceListFixture() (*PriceListService, *fakePriceListRepo) {
	repo := &fakePriceListRepo{grid: fixtureGrid()}
	return NewPriceListService(repo, zerolog.Nop()), repo
}

func TestPriceListService_Records(t *testing.T) {
	svc, _ := newPriceListFixture()

	records, err := svc.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "HEMOGRAMA COMPLETO", records[0].Description)
	assert.Equal(t, "HMG", records[0].MnemonicCode)
	assert.Equal(t, 4, records[0].RowIndex)
}

func TestPriceListService_SearchRecords(t *testing.T) {
	svc, _ := newPriceListFixture()
	ctx := context.Background()

	// Accent-insensitive substring over the description
	records, err := svc.SearchRecords(ctx, "sensivel")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "TSH ULTRA SENSÍVEL", records[0].Description)

	// Mnemonic hits too
	records, err = svc.SearchRecords(ctx, "hmg")
	require.NoError(t, err)
	require.Len(t, records, 1)

	// TUSS code hits too
	records, err = svc.SearchRecords(ctx, "40316521")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "TSH", records[0].MnemonicCode)

	// Empty query returns everything
	records, err = svc.SearchRecords(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestPriceListService_FindRecord(t *testing.T) {
	svc, _ := newPriceListFixture()
	ctx := context.Background()

	byMnemonic, err := svc.FindRecord(ctx, "tsh")
	require.NoError(t, err)
	assert.Equal(t, "TSH ULTRA SENSÍVEL", byMnemonic.Description)

	byDescription, err := svc.FindRecord(ctx, "hemograma completo")
	require.NoError(t, err)
	assert.Equal(t, "HMG", byDescription.MnemonicCode)

	_, err = svc.FindRecord(ctx, "ressonância")
	assert.Error(t, err)

	_, err = svc.FindRecord(ctx, "")
	assert.Error(t, err)
}

func TestPriceListService_AppendRow(t *testing.T) {
	svc, repo := newPriceListFixture()

	err := svc.AppendRow(context.Background(), []string{"", "GLI", "GLICOSE", "12,00", "", "1 dia"})
	require.NoError(t, err)
	assert.Len(t, repo.grid, 9)
	assert.Equal(t, "GLICOSE", repo.grid[8][2])

	// Nil row appends a blank editable row sized to the header
	require.NoError(t, svc.AppendRow(context.Background(), nil))
	assert.Len(t, repo.grid, 10)
	assert.Len(t, repo.grid[9], 6)
}

func TestPriceListService_DeleteRows(t *testing.T) {
	svc, repo := newPriceListFixture()
	ctx := context.Background()

	require.NoError(t, svc.DeleteRows(ctx, []int{5}))
	assert.Len(t, repo.grid, 7)
	assert.Equal(t, "COLESTEROL TOTAL E FRACOES", repo.grid[5][2])

	// Header and letterhead rows are protected
	assert.Error(t, svc.DeleteRows(ctx, []int{0}))
	assert.Error(t, svc.DeleteRows(ctx, []int{3}))
	assert.Error(t, svc.DeleteRows(ctx, []int{99}))
	assert.Error(t, svc.DeleteRows(ctx, nil))
}

func TestPriceListService_SaveGrid_RequiresHeader(t *testing.T) {
	svc, _ := newPriceListFixture()

	err := svc.SaveGrid(context.Background(), [][]string{{"too"}, {"short"}})
	assert.Error(t, err)

	assert.NoError(t, svc.SaveGrid(context.Background(), fixtureGrid()))
}
