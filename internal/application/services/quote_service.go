package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Erudhir101/Tabela-Particular/internal/adapters/pdf"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
	"github.com/Erudhir101/Tabela-Particular/internal/pricing"
	"github.com/Erudhir101/Tabela-Particular/pkg/config"
	apperrors "github.com/Erudhir101/Tabela-Particular/pkg/errors"
)

// QuoteItem references a procedure by mnemonic or description
type QuoteItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// QuoteRequest is the payload for quote computation and PDF export.
// Uncovered switches the printed totals to the insurance-fallback rates;
// the response always carries both sets.
type QuoteRequest struct {
	Items                    []QuoteItem `json:"items"`
	Uncovered                bool        `json:"uncovered"`
	ManualPixDiscountPercent int         `json:"manual_pix_discount_percent"`
	RatePreset               string      `json:"rate_preset,omitempty"`
}

// QuoteLine is one resolved procedure with its per-line pricing
type QuoteLine struct {
	Description         string          `json:"description"`
	MnemonicCode        string          `json:"mnemonic_code,omitempty"`
	Quantity            int             `json:"quantity"`
	BaseUnitPrice       decimal.Decimal `json:"base_unit_price"`
	DiscountedUnitPrice decimal.Decimal `json:"discounted_unit_price"`
	LineTotal           decimal.Decimal `json:"line_total"`
	TurnaroundDays      int             `json:"turnaround_days,omitempty"`
}

// QuoteResponse carries the resolved lines and the totals under every policy
type QuoteResponse struct {
	QuoteID string               `json:"quote_id"`
	Lines   []QuoteLine          `json:"lines"`
	Totals  entities.QuoteTotals `json:"totals"`
}

// QuoteService resolves quote requests against the price list and prices them
type QuoteService struct {
	priceList     *PriceListService
	renderer      *pdf.Renderer
	lab           config.LabConfig
	defaultPreset string
	logger        zerolog.Logger
}

// NewQuoteService creates a new quote service
func NewQuoteService(priceList *PriceListService, renderer *pdf.Renderer, lab config.LabConfig, defaultPreset string, logger zerolog.Logger) *QuoteService {
	return &QuoteService{
		priceList:     priceList,
		renderer:      renderer,
		lab:           lab,
		defaultPreset: defaultPreset,
		logger:        logger,
	}
}

// BuildCart resolves the request items into a cart. Duplicate references
// collapse into one line; an explicit quantity on a later duplicate wins.
func (s *QuoteService) BuildCart(ctx context.Context, items []QuoteItem) (entities.CartState, error) {
	cart := entities.NewCartState()
	if len(items) == 0 {
		return cart, apperrors.NewValidationError("quote request has no items")
	}

	for _, item := range items {
		record, err := s.priceList.FindRecord(ctx, item.Name)
		if err != nil {
			return entities.NewCartState(), err
		}
		cart = cart.AddLine(*record)
		if item.Quantity > 1 {
			cart = cart.SetQuantity(record.Identity(), item.Quantity)
		}
	}
	return cart, nil
}

func (s *QuoteService) pricingOptions(req QuoteRequest) (pricing.Options, error) {
	if !pricing.ValidManualDiscount(req.ManualPixDiscountPercent) {
		return pricing.Options{}, apperrors.NewValidationError("manual discount percentage is not allowed")
	}

	presetName := req.RatePreset
	if presetName == "" {
		presetName = s.defaultPreset
	}
	rates, ok := pricing.PresetRates(presetName)
	if !ok {
		return pricing.Options{}, apperrors.NewValidationError("unknown rate preset: " + presetName)
	}

	special := pricing.DefaultSpecialCase()
	return pricing.Options{
		ManualPixDiscountPercent: req.ManualPixDiscountPercent,
		Rates:                    rates,
		Special:                  &special,
	}, nil
}

// ComputeQuote prices a request and returns the resolved lines with totals
func (s *QuoteService) ComputeQuote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	opts, err := s.pricingOptions(req)
	if err != nil {
		return nil, err
	}

	cart, err := s.BuildCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	lines := cart.Lines()
	totals := pricing.ComputeTotals(lines, opts)

	response := &QuoteResponse{
		QuoteID: uuid.NewString(),
		Lines:   make([]QuoteLine, 0, len(lines)),
		Totals:  totals,
	}
	for _, line := range lines {
		unit := pricing.DiscountedUnitPrice(line.Procedure.BasePrice)
		response.Lines = append(response.Lines, QuoteLine{
			Description:         line.Procedure.Description,
			MnemonicCode:        line.Procedure.MnemonicCode,
			Quantity:            line.Quantity,
			BaseUnitPrice:       line.Procedure.BasePrice,
			DiscountedUnitPrice: unit,
			LineTotal:           unit.Mul(decimal.NewFromInt(int64(line.Quantity))),
			TurnaroundDays:      line.Procedure.TurnaroundDays,
		})
	}
	return response, nil
}

// RenderQuotePDF prices a request and writes the printable quote
func (s *QuoteService) RenderQuotePDF(ctx context.Context, req QuoteRequest, w io.Writer) error {
	quote, err := s.ComputeQuote(ctx, req)
	if err != nil {
		return err
	}

	doc := pdf.Document{
		Lab: pdf.LabInfo{
			Name:    s.lab.Name,
			Address: s.lab.Address,
			Email:   s.lab.Email,
		},
		Reference:      quote.QuoteID,
		IssuedAt:       time.Now(),
		TurnaroundDays: quote.Totals.MaxTurnaroundDays,
	}
	for _, line := range quote.Lines {
		doc.Items = append(doc.Items, pdf.LineItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.DiscountedUnitPrice,
			LineTotal:   line.LineTotal,
		})
	}

	if req.Uncovered {
		doc.Totals = []pdf.TotalRow{
			{Label: "Total no PIX", Amount: quote.Totals.UncoveredPixPrice},
			{Label: "Cartão em até 2x", Amount: quote.Totals.UncoveredCardPrice},
		}
	} else {
		doc.Totals = []pdf.TotalRow{
			{Label: "Total no PIX", Amount: quote.Totals.PixPrice},
			{Label: "Cartão em até 2x", Amount: quote.Totals.CardInstallmentPrice},
		}
	}

	s.logger.Info().
		Int("items", len(doc.Items)).
		Str("pix", quote.Totals.PixPrice.StringFixed(2)).
		Msg("rendering quote pdf")
	return s.renderer.Render(doc, w)
}
