package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/providers"
	"github.com/Erudhir101/Tabela-Particular/internal/matching"
	"github.com/Erudhir101/Tabela-Particular/internal/pricing"
	apperrors "github.com/Erudhir101/Tabela-Particular/pkg/errors"
)

// AnalyzedExam is one exam from the order with its price list resolution
type AnalyzedExam struct {
	Name         string          `json:"name"`
	OriginalName string          `json:"original_name"`
	Price        decimal.Decimal `json:"price"`
	Found        bool            `json:"found"`
	RowIndex     int             `json:"row_index,omitempty"`
}

// AnalysisReport is the operator-facing result of an order analysis. Raw is
// set instead of Exams when the model output could not be parsed.
// TotalPrice sums the matched base prices; SelectedTotals runs the matched
// rows through the pricing engine so the operator can compare the two.
type AnalysisReport struct {
	Exams          []AnalyzedExam        `json:"exams"`
	NotFound       []string              `json:"not_found,omitempty"`
	TotalPrice     decimal.Decimal       `json:"total_price"`
	SelectedRows   []int                 `json:"selected_rows,omitempty"`
	SelectedTotals *entities.QuoteTotals `json:"selected_totals,omitempty"`
	Raw            string                `json:"raw,omitempty"`
}

// AnalysisService turns uploaded doctor's orders into priced exam selections:
// extraction by the vision model, then reconciliation against the price list.
type AnalysisService struct {
	priceList *PriceListService
	extractor providers.ExamExtractor
	logger    zerolog.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(priceList *PriceListService, extractor providers.ExamExtractor, logger zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		priceList: priceList,
		extractor: extractor,
		logger:    logger,
	}
}

// AnalyzeOrder extracts exam names from the order files and matches each one
// against the current price list. Extraction failures propagate; an
// unparseable model response degrades to a raw-text report.
func (s *AnalysisService) AnalyzeOrder(ctx context.Context, files []providers.OrderFile) (*AnalysisReport, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("at least one order file is required")
	}

	records, err := s.priceList.Records(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(records))
	for _, record := range records {
		candidates = append(candidates, record.MatchKey())
	}

	extraction, err := s.extractor.AnalyzeOrder(ctx, files, candidates)
	if err != nil {
		s.logger.Error().Err(err).Msg("order extraction failed")
		return nil, apperrors.NewExternalError("failed to analyze order", err)
	}

	report := &AnalysisReport{
		Exams:      []AnalyzedExam{},
		TotalPrice: decimal.Zero,
	}

	if len(extraction.Exams) == 0 {
		report.Raw = extraction.Raw
		return report, nil
	}

	results := matching.Match(extraction.Exams, records)
	cart := entities.NewCartState()
	for i, result := range results {
		exam := AnalyzedExam{
			Name:         result.ExtractedName,
			OriginalName: extraction.Exams[i].Name,
		}
		if result.Status == entities.MatchStatusMatched {
			procedure := result.MatchedProcedure
			exam.Name = procedure.Description
			exam.Price = procedure.BasePrice
			exam.Found = true
			exam.RowIndex = procedure.RowIndex
			report.TotalPrice = report.TotalPrice.Add(procedure.BasePrice)
			report.SelectedRows = append(report.SelectedRows, procedure.RowIndex)
			cart = cart.AddLine(*procedure)
		} else {
			report.NotFound = append(report.NotFound, result.ExtractedName)
		}
		report.Exams = append(report.Exams, exam)
	}

	if cart.Len() > 0 {
		special := pricing.DefaultSpecialCase()
		totals := pricing.ComputeTotals(cart.Lines(), pricing.Options{
			Rates:   pricing.DefaultRates(),
			Special: &special,
		})
		report.SelectedTotals = &totals
	}

	s.logger.Info().
		Int("extracted", len(extraction.Exams)).
		Int("matched", len(report.SelectedRows)).
		Msg("order analyzed")
	return report, nil
}
