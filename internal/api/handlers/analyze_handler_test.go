package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Erudhir101/Tabela-Particular/internal/application/services"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/providers"
)

type scriptedExtractor struct {
	result *entities.ExtractionResult
	err    error
	files  []providers.OrderFile
}

func (f *scriptedExtractor) AnalyzeOrder(ctx context.Context, files []providers.OrderFile, candidates []string) (*entities.ExtractionResult, error) {
	f.files = files
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newAnalyzeHandler(extractor providers.ExamExtractor) *AnalyzeHandler {
	priceList := services.NewPriceListService(testRepo(), zerolog.Nop())
	return NewAnalyzeHandler(services.NewAnalysisService(priceList, extractor, zerolog.Nop()))
}

func multipartRequest(t *testing.T, fieldFiles map[string][]byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, data := range fieldFiles {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAnalyze(t *testing.T) {
	extractor := &scriptedExtractor{
		result: &entities.ExtractionResult{
			Exams: []entities.ExtractedExam{
				{Name: "hemograma", Matched: "HMG - HEMOGRAMA COMPLETO"},
				{Name: "tomografia"},
			},
		},
	}
	handler := newAnalyzeHandler(extractor)

	rec := httptest.NewRecorder()
	handler.Analyze(rec, multipartRequest(t, map[string][]byte{"pedido.jpg": []byte("img")}))

	require.Equal(t, http.StatusOK, rec.Code)

	var report services.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Exams, 2)
	assert.True(t, report.Exams[0].Found)
	assert.Equal(t, []string{"tomografia"}, report.NotFound)
	assert.Len(t, extractor.files, 1)
}

func TestAnalyze_NotConfigured(t *testing.T) {
	handler := NewAnalyzeHandler(nil)

	rec := httptest.NewRecorder()
	handler.Analyze(rec, multipartRequest(t, map[string][]byte{"pedido.jpg": []byte("img")}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAnalyze_NoFiles(t *testing.T) {
	handler := newAnalyzeHandler(&scriptedExtractor{})

	rec := httptest.NewRecorder()
	handler.Analyze(rec, multipartRequest(t, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_ExtractorFailure(t *testing.T) {
	handler := newAnalyzeHandler(&scriptedExtractor{err: errors.New("upstream down")})

	rec := httptest.NewRecorder()
	handler.Analyze(rec, multipartRequest(t, map[string][]byte{"pedido.jpg": []byte("img")}))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
