package pricing

import (
	"github.com/shopspring/decimal"
)

// RateTable holds the uncovered-coverage fallback multipliers. The two
// deployment snapshots disagreed on the high-tier PIX rate, so the table is
// configuration selected by name, not a constant.
type RateTable struct {
	Threshold decimal.Decimal
	PixHigh   decimal.Decimal
	PixLow    decimal.Decimal
	CardHigh  decimal.Decimal
	CardLow   decimal.Decimal
}

// Uncovered returns the fallback PIX and card prices for a discounted total
func (r RateTable) Uncovered(discountedTotal decimal.Decimal) (pix, card decimal.Decimal) {
	if discountedTotal.GreaterThan(r.Threshold) {
		return RoundCeil(discountedTotal.Mul(r.PixHigh)), RoundCeil(discountedTotal.Mul(r.CardHigh))
	}
	return RoundCeil(discountedTotal.Mul(r.PixLow)), RoundCeil(discountedTotal.Mul(r.CardLow))
}

var ratePresets = map[string]RateTable{
	// Current sheet-backed deployment
	"pardini": {
		Threshold: decimal.NewFromInt(500),
		PixHigh:   decimal.RequireFromString("0.70"),
		PixLow:    decimal.RequireFromString("0.80"),
		CardHigh:  decimal.RequireFromString("0.75"),
		CardLow:   decimal.RequireFromString("0.85"),
	},
	// First deployment snapshot: PIX and card shared the same rates
	"legacy": {
		Threshold: decimal.NewFromInt(500),
		PixHigh:   decimal.RequireFromString("0.75"),
		PixLow:    decimal.RequireFromString("0.85"),
		CardHigh:  decimal.RequireFromString("0.75"),
		CardLow:   decimal.RequireFromString("0.85"),
	},
}

// PresetRates returns a named uncovered rate table
func PresetRates(name string) (RateTable, bool) {
	table, ok := ratePresets[name]
	return table, ok
}

// DefaultRates returns the rate table for the current deployment
func DefaultRates() RateTable {
	return ratePresets["pardini"]
}

// SpecialCase is a hard-coded single-item price override: when the cart holds
// exactly one line with this description, the fixed prices replace the
// computed PIX and card totals.
type SpecialCase struct {
	Description string
	PixPrice    decimal.Decimal
	CardPrice   decimal.Decimal
}

// DefaultSpecialCase returns the one override observed in production
func DefaultSpecialCase() SpecialCase {
	return SpecialCase{
		Description: "PLACENTA, CORDÃO E MEMBRANAS",
		PixPrice:    decimal.NewFromInt(450),
		CardPrice:   decimal.NewFromInt(480),
	}
}

// AllowedManualDiscounts is the enumerated set of extra PIX discount
// percentages an operator may apply.
var AllowedManualDiscounts = []int{0, 10, 20, 35, 45}

// ValidManualDiscount reports whether pct is one of the allowed percentages
func ValidManualDiscount(pct int) bool {
	for _, allowed := range AllowedManualDiscounts {
		if pct == allowed {
			return true
		}
	}
	return false
}
