package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Erudhir101/Tabela-Particular/internal/adapters/pdf"
	"github.com/Erudhir101/Tabela-Particular/pkg/config"
)

func newQuoteFixture() *QuoteService {
	priceList, _ := newPriceListFixture()
	lab := config.LabConfig{Name: "Laboratório Lab", Address: "Endereço", Email: "lab@lab.com"}
	return NewQuoteService(priceList, pdf.NewRenderer(), lab, "pardini", zerolog.Nop())
}

func TestQuoteService_BuildCart(t *testing.T) {
	svc := newQuoteFixture()
	ctx := context.Background()

	cart, err := svc.BuildCart(ctx, []QuoteItem{
		{Name: "HMG"},
		{Name: "tsh ultra sensível", Quantity: 2},
		{Name: "HMG"}, // duplicate collapses
	})
	require.NoError(t, err)
	require.Equal(t, 2, cart.Len())

	lines := cart.Lines()
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Quantity)
}

func TestQuoteService_BuildCart_UnknownItem(t *testing.T) {
	svc := newQuoteFixture()

	_, err := svc.BuildCart(context.Background(), []QuoteItem{{Name: "tomografia"}})
	assert.Error(t, err)

	_, err = svc.BuildCart(context.Background(), nil)
	assert.Error(t, err)
}

func TestQuoteService_ComputeQuote(t *testing.T) {
	svc := newQuoteFixture()

	quote, err := svc.ComputeQuote(context.Background(), QuoteRequest{
		Items: []QuoteItem{{Name: "HMG"}, {Name: "TSH"}},
	})
	require.NoError(t, err)
	require.Len(t, quote.Lines, 2)

	// 29.90 sits below the lowest tier and keeps its base price;
	// 85.00 takes the 8% tier: 78.20
	assert.True(t, quote.Lines[0].DiscountedUnitPrice.Equal(decimal.RequireFromString("29.9")),
		"got %s", quote.Lines[0].DiscountedUnitPrice)
	assert.True(t, quote.Lines[1].DiscountedUnitPrice.Equal(decimal.RequireFromString("78.2")),
		"got %s", quote.Lines[1].DiscountedUnitPrice)

	// Two lines: bundle multipliers apply to the discounted total 108.10
	assert.True(t, quote.Totals.DiscountedTotal.Equal(decimal.RequireFromString("108.1")),
		"got %s", quote.Totals.DiscountedTotal)
	assert.True(t, quote.Totals.PixPrice.Equal(decimal.RequireFromString("99.46")),
		"got %s", quote.Totals.PixPrice)
	assert.Equal(t, 3, quote.Totals.MaxTurnaroundDays)
}

func TestQuoteService_ComputeQuote_InvalidManualDiscount(t *testing.T) {
	svc := newQuoteFixture()

	_, err := svc.ComputeQuote(context.Background(), QuoteRequest{
		Items:                    []QuoteItem{{Name: "HMG"}},
		ManualPixDiscountPercent: 15,
	})
	assert.Error(t, err)
}

func TestQuoteService_ComputeQuote_UnknownPreset(t *testing.T) {
	svc := newQuoteFixture()

	_, err := svc.ComputeQuote(context.Background(), QuoteRequest{
		Items:      []QuoteItem{{Name: "HMG"}},
		RatePreset: "inexistente",
	})
	assert.Error(t, err)
}

func TestQuoteService_ComputeQuote_SpecialCase(t *testing.T) {
	svc := newQuoteFixture()

	quote, err := svc.ComputeQuote(context.Background(), QuoteRequest{
		Items: []QuoteItem{{Name: "PLACENTA, CORDÃO E MEMBRANAS"}},
	})
	require.NoError(t, err)
	assert.True(t, quote.Totals.PixPrice.Equal(decimal.NewFromInt(450)),
		"got %s", quote.Totals.PixPrice)
	assert.True(t, quote.Totals.CardInstallmentPrice.Equal(decimal.NewFromInt(480)),
		"got %s", quote.Totals.CardInstallmentPrice)
}

func TestQuoteService_RenderQuotePDF(t *testing.T) {
	svc := newQuoteFixture()

	var buf bytes.Buffer
	err := svc.RenderQuotePDF(context.Background(), QuoteRequest{
		Items: []QuoteItem{{Name: "HMG"}, {Name: "TSH"}},
	}, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
