package pdf

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/Erudhir101/Tabela-Particular/pkg/errors"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.56", "1.234,56"},
		{"89.9", "89,90"},
		{"450", "450,00"},
		{"1234567.89", "1.234.567,89"},
		{"0", "0,00"},
		{"-12.5", "-12,50"},
	}
	for _, tt := range tests {
		if got := FormatBRL(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatBRL(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender_EmptyQuoteRejected(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer().Render(Document{}, &buf)
	if err == nil {
		t.Fatal("expected a validation error for an empty quote")
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Type != apperrors.ErrorTypeValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	doc := Document{
		Lab: LabInfo{
			Name:    "Laboratório Lab",
			Address: "SHLS 716 BLOCO E, ASA SUL",
			Email:   "lab@laboratoriolab.com.br",
		},
		IssuedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Items: []LineItem{
			{Description: "HEMOGRAMA COMPLETO", Quantity: 1, UnitPrice: decimal.RequireFromString("29.45"), LineTotal: decimal.RequireFromString("29.45")},
			{Description: "TSH ULTRA SENSÍVEL", Quantity: 2, UnitPrice: decimal.RequireFromString("78.20"), LineTotal: decimal.RequireFromString("156.40")},
		},
		Totals: []TotalRow{
			{Label: "Total no PIX", Amount: decimal.RequireFromString("170.99")},
			{Label: "Cartão em até 2x", Amount: decimal.RequireFromString("178.42")},
		},
		TurnaroundDays: 3,
	}

	var buf bytes.Buffer
	if err := NewRenderer().Render(doc, &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	if buf.Len() < 500 {
		t.Errorf("suspiciously small PDF: %d bytes", buf.Len())
	}
}
