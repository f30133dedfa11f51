package spreadsheet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
	"github.com/Erudhir101/Tabela-Particular/internal/matching"
)

// The price table shares its tab with letterhead rows: the header row sits at
// a fixed index and data starts on the row after it.
const (
	HeaderRowIndex = 3
	DataRowIndex   = 4
)

// Column candidates in priority order. The sheet is hand-maintained and the
// headers drift between accented and plain spellings.
var (
	descriptionHeaders = []string{"descrição", "descricao"}
	priceHeaders       = []string{"preço de venda", "preco de venda", "preço"}
	taxonomyHeaders    = []string{"código tuss", "codigo tuss", "tuss"}
	turnaroundHeaders  = []string{"prazo"}
)

var nonPriceChars = regexp.MustCompile(`[^\d,.\-]`)

// ResolveColumn finds the index of the first header cell containing any of
// the candidates, compared case- and accent-insensitively in candidate
// priority order. Returns -1 when no candidate appears.
func ResolveColumn(headerRow []string, candidates []string) int {
	for _, candidate := range candidates {
		want := matching.Normalize(candidate)
		for i, cell := range headerRow {
			if strings.Contains(matching.Normalize(cell), want) {
				return i
			}
		}
	}
	return -1
}

// ParsePrice converts a pt-BR currency cell ("1.234,56", "R$ 89,90") to a
// decimal. Malformed cells parse to zero so one bad row cannot take the whole
// price list down.
func ParsePrice(cell string) decimal.Decimal {
	cleaned := nonPriceChars.ReplaceAllString(cell, "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		log.Warn().Str("cell", cell).Msg("unparseable price cell, defaulting to zero")
		return decimal.Zero
	}
	return price
}

// ParseTurnaround reads the leading integer of a turnaround cell ("3 dias
// úteis" gives 3). Cells without a leading number give zero.
func ParseTurnaround(cell string) int {
	trimmed := strings.TrimSpace(cell)
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	days, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return 0
	}
	return days
}

type columnLayout struct {
	description int
	mnemonic    int
	price       int
	taxonomy    int
	turnaround  int
}

func resolveLayout(headerRow []string) columnLayout {
	layout := columnLayout{
		description: ResolveColumn(headerRow, descriptionHeaders),
		price:       ResolveColumn(headerRow, priceHeaders),
		taxonomy:    ResolveColumn(headerRow, taxonomyHeaders),
		turnaround:  ResolveColumn(headerRow, turnaroundHeaders),
		mnemonic:    -1,
	}
	// The mnemonic column carries no stable header; by sheet convention it is
	// the column immediately left of the description.
	if layout.description > 0 {
		layout.mnemonic = layout.description - 1
	}
	return layout
}

func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// RecordsFromGrid maps the raw sheet grid to procedure records. Rows above
// the data start and rows with an empty description are skipped. RowIndex is
// the absolute position in the grid so edits can address the original row.
func RecordsFromGrid(grid [][]string) []entities.ProcedureRecord {
	if len(grid) <= HeaderRowIndex {
		return nil
	}
	layout := resolveLayout(grid[HeaderRowIndex])
	if layout.description < 0 || layout.price < 0 {
		log.Error().Msg("price list header row missing description or price column")
		return nil
	}

	var records []entities.ProcedureRecord
	for i := DataRowIndex; i < len(grid); i++ {
		row := grid[i]
		description := cellAt(row, layout.description)
		if description == "" {
			continue
		}
		records = append(records, entities.ProcedureRecord{
			Description:    description,
			MnemonicCode:   cellAt(row, layout.mnemonic),
			BasePrice:      ParsePrice(cellAt(row, layout.price)),
			TaxonomyCode:   cellAt(row, layout.taxonomy),
			TurnaroundDays: ParseTurnaround(cellAt(row, layout.turnaround)),
			RowIndex:       i,
		})
	}
	return records
}
