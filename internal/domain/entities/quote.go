package entities

import (
	"github.com/shopspring/decimal"
)

// QuoteTotals holds the displayable totals for the current cart under every
// payment/coverage policy. Derived on every cart change, never persisted.
type QuoteTotals struct {
	BaseTotal            decimal.Decimal `json:"base_total"`
	DiscountedTotal      decimal.Decimal `json:"discounted_total"`
	PixPrice             decimal.Decimal `json:"pix_price"`
	CardInstallmentPrice decimal.Decimal `json:"card_installment_price"`
	UncoveredPixPrice    decimal.Decimal `json:"uncovered_pix_price"`
	UncoveredCardPrice   decimal.Decimal `json:"uncovered_card_price"`
	MaxTurnaroundDays    int             `json:"max_turnaround_days"`
	ItemCount            int             `json:"item_count"`
}
