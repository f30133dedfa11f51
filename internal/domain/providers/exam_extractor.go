package providers

import (
	"context"

	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
)

// OrderFile is one uploaded page of a doctor's order (image or PDF)
type OrderFile struct {
	MIMEType string
	Data     []byte
}

// ExamExtractor analyzes order files with a vision-capable model and returns
// the exam names it found, each optionally paired with the AI's suggested
// canonical name from the candidates list.
type ExamExtractor interface {
	AnalyzeOrder(ctx context.Context, files []OrderFile, candidates []string) (*entities.ExtractionResult, error)
}
