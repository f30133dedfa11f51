package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	apperrors "github.com/Erudhir101/Tabela-Particular/pkg/errors"
)

// LabInfo is the letterhead printed at the top of every quote
type LabInfo struct {
	Name    string
	Address string
	Email   string
}

// LineItem is one procedure row of the quote table
type LineItem struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// TotalRow is one labeled amount in the totals block (PIX, card, uncovered)
type TotalRow struct {
	Label  string
	Amount decimal.Decimal
}

// Document is everything the renderer needs to produce a quote PDF
type Document struct {
	Lab            LabInfo
	Reference      string
	IssuedAt       time.Time
	Items          []LineItem
	Totals         []TotalRow
	TurnaroundDays int
}

// Renderer produces printable quote PDFs
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the quote as an A4 PDF. An empty item list is a validation
// error, not an empty document.
func (r *Renderer) Render(doc Document, w io.Writer) error {
	if len(doc.Items) == 0 {
		return apperrors.NewValidationError("cannot render a quote without items")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	// cp1252 translator so pt-BR accents survive the core fonts
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, tr(doc.Lab.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr(doc.Lab.Address), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(doc.Lab.Email), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr("Orçamento Particular"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr("Data: "+doc.IssuedAt.Format("02/01/2006")), "", 1, "C", false, 0, "")
	if doc.Reference != "" {
		pdf.CellFormat(0, 5, tr("Referência: "+doc.Reference), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	const (
		descWidth  = 100.0
		qtyWidth   = 20.0
		priceWidth = 35.0
	)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(descWidth, 7, tr("Exame"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(qtyWidth, 7, tr("Qtd."), "1", 0, "C", true, 0, "")
	pdf.CellFormat(priceWidth, 7, tr("Valor Unit."), "1", 0, "R", true, 0, "")
	pdf.CellFormat(priceWidth, 7, tr("Total"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, item := range doc.Items {
		pdf.CellFormat(descWidth, 6, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(qtyWidth, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(priceWidth, 6, tr("R$ "+FormatBRL(item.UnitPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(priceWidth, 6, tr("R$ "+FormatBRL(item.LineTotal)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	for _, total := range doc.Totals {
		pdf.CellFormat(descWidth+qtyWidth, 7, tr(total.Label), "", 0, "R", false, 0, "")
		pdf.CellFormat(priceWidth*2, 7, tr("R$ "+FormatBRL(total.Amount)), "", 1, "R", false, 0, "")
	}

	if doc.TurnaroundDays > 0 {
		pdf.Ln(2)
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Prazo de entrega: até %d dia(s) útil(eis)", doc.TurnaroundDays)), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(0, 4, tr("Orçamento válido por 7 dias. Valores sujeitos a alteração sem aviso prévio."), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return apperrors.NewInternalError("failed to render quote pdf", err)
	}
	return nil
}

// FormatBRL formats an amount in pt-BR convention: dot thousands separators
// and a comma before the cents.
func FormatBRL(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	formatted := b.String() + "," + fracPart
	if negative {
		return "-" + formatted
	}
	return formatted
}
