package entities

import (
	"github.com/shopspring/decimal"
)

// ProcedureRecord represents one priced lab procedure from the price list.
// BasePrice is always >= 0; malformed source prices are parsed to zero at the
// spreadsheet boundary rather than rejected.
type ProcedureRecord struct {
	Description    string          `json:"description"`
	MnemonicCode   string          `json:"mnemonic_code,omitempty"`
	BasePrice      decimal.Decimal `json:"base_price"`
	TurnaroundDays int             `json:"turnaround_days,omitempty"`
	TaxonomyCode   string          `json:"taxonomy_code,omitempty"` // external billing code (TUSS)
	RowIndex       int             `json:"row_index"`               // absolute row in the sheet grid
}

// Identity returns the key that deduplicates cart lines: mnemonic plus
// description when a mnemonic exists, otherwise the description alone.
func (r ProcedureRecord) Identity() string {
	if r.MnemonicCode != "" {
		return r.MnemonicCode + "|" + r.Description
	}
	return r.Description
}

// MatchKey returns the comparison key handed to the AI as a candidate name,
// "MNEMONIC - DESCRIPTION" with the mnemonic omitted when absent.
func (r ProcedureRecord) MatchKey() string {
	if r.MnemonicCode != "" {
		return r.MnemonicCode + " - " + r.Description
	}
	return r.Description
}
