package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
)

var (
	hundred = decimal.NewFromInt(100)

	tier90Floor = decimal.NewFromInt(100)
	tier92Floor = decimal.NewFromInt(80)
	tier95Floor = decimal.NewFromInt(30)

	rate90 = decimal.RequireFromString("0.90")
	rate92 = decimal.RequireFromString("0.92")
	rate95 = decimal.RequireFromString("0.95")

	bundlePixRate  = decimal.RequireFromString("0.92")
	bundleCardRate = decimal.RequireFromString("0.96")
)

// RoundCeil rounds a currency amount UP to the cent. Ceiling, never nearest:
// the rounding direction favors the seller and changes aggregate totals by
// cents, so it must not be replaced with Round.
func RoundCeil(d decimal.Decimal) decimal.Decimal {
	return d.Mul(hundred).Ceil().Div(hundred)
}

// DiscountedUnitPrice applies the tiered per-line discount and rounds up to
// the cent. Prices at or below 30 keep their base price.
func DiscountedUnitPrice(price decimal.Decimal) decimal.Decimal {
	var discounted decimal.Decimal
	switch {
	case price.GreaterThanOrEqual(tier90Floor):
		discounted = price.Mul(rate90)
	case price.GreaterThan(tier92Floor):
		discounted = price.Mul(rate92)
	case price.GreaterThan(tier95Floor):
		discounted = price.Mul(rate95)
	default:
		discounted = price
	}
	return RoundCeil(discounted)
}

// Options selects the policy variants applied on top of the per-line discount
type Options struct {
	// ManualPixDiscountPercent is the operator-chosen extra discount on the
	// PIX price only. Must be one of AllowedManualDiscounts.
	ManualPixDiscountPercent int
	// Rates is the uncovered-coverage fallback table
	Rates RateTable
	// Special overrides the PIX/card totals for a named single-item cart.
	// Nil disables the override.
	Special *SpecialCase
}

// ComputeTotals maps the cart lines to displayable totals under every policy
// variant. Pure: same lines and options always give the same totals.
func ComputeTotals(lines []entities.CartLine, opts Options) entities.QuoteTotals {
	totals := entities.QuoteTotals{
		BaseTotal:            decimal.Zero,
		DiscountedTotal:      decimal.Zero,
		PixPrice:             decimal.Zero,
		CardInstallmentPrice: decimal.Zero,
		UncoveredPixPrice:    decimal.Zero,
		UncoveredCardPrice:   decimal.Zero,
		ItemCount:            len(lines),
	}
	if len(lines) == 0 {
		return totals
	}

	discountedSum := decimal.Zero
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		totals.BaseTotal = totals.BaseTotal.Add(line.Procedure.BasePrice.Mul(qty))
		discountedSum = discountedSum.Add(DiscountedUnitPrice(line.Procedure.BasePrice).Mul(qty))
		if line.Procedure.TurnaroundDays > totals.MaxTurnaroundDays {
			totals.MaxTurnaroundDays = line.Procedure.TurnaroundDays
		}
	}
	totals.DiscountedTotal = RoundCeil(discountedSum)

	pixBeforeManual := totals.DiscountedTotal
	card := totals.DiscountedTotal
	switch {
	case len(lines) == 1 && opts.Special != nil && lines[0].Procedure.Description == opts.Special.Description:
		pixBeforeManual = opts.Special.PixPrice
		card = opts.Special.CardPrice
	case len(lines) >= 2:
		pixBeforeManual = RoundCeil(totals.DiscountedTotal.Mul(bundlePixRate))
		card = RoundCeil(totals.DiscountedTotal.Mul(bundleCardRate))
	}

	pix := pixBeforeManual
	if pct := opts.ManualPixDiscountPercent; pct > 0 {
		manual := RoundCeil(pixBeforeManual.Mul(decimal.NewFromInt(int64(pct))).Div(hundred))
		pix = RoundCeil(pixBeforeManual.Sub(manual))
	}

	totals.PixPrice = pix
	totals.CardInstallmentPrice = card
	totals.UncoveredPixPrice, totals.UncoveredCardPrice = opts.Rates.Uncovered(totals.DiscountedTotal)

	return totals
}
