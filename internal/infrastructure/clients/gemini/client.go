package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/providers"
	"github.com/Erudhir101/Tabela-Particular/pkg/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements the exam extraction provider over the Gemini REST API.
// The vision model reads photographed or scanned doctor's orders.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *tokenBucket
}

// NewClient creates a new Gemini client.
func NewClient(cfg *config.GeminiConfig) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-pro"
	}

	limiter := newTokenBucket(cfg.RateLimitRPM, cfg.RateLimitBurst)

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		limiter: limiter,
	}, nil
}

var _ providers.ExamExtractor = (*Client)(nil)

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type requestPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type responsePart struct {
	Text string `json:"text"`
}

type responseContent struct {
	Parts []responsePart `json:"parts"`
}

type responseCandidate struct {
	Content responseContent `json:"content"`
}

type responseEnvelope struct {
	Candidates []responseCandidate `json:"candidates"`
}

type extractionPayload struct {
	Exams []struct {
		Name    string `json:"name"`
		Matched string `json:"matched"`
	} `json:"exams"`
}

// AnalyzeOrder sends the order pages plus the candidate procedure list and
// parses the exams the model found. A response that is not the expected JSON
// is returned as raw text rather than an error so the operator still sees
// what the model read.
func (c *Client) AnalyzeOrder(ctx context.Context, files []providers.OrderFile, candidates []string) (*entities.ExtractionResult, error) {
	if len(files) == 0 {
		return nil, errors.New("at least one order file is required")
	}

	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			recordGeminiMetric(ctx, c.model, 0, 0, err)
			return nil, err
		}
		recordGeminiRateLimitWait(ctx, c.model, time.Since(waitStart))
	}

	parts := []requestPart{{Text: buildExtractionPrompt(candidates)}}
	for _, file := range files {
		parts = append(parts, requestPart{
			InlineData: &inlineData{
				MIMEType: file.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(file.Data),
			},
		})
	}

	body, err := json.Marshal(generateRequest{Contents: []requestContent{{Parts: parts}}})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordGeminiMetric(ctx, c.model, 0, time.Since(start), err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		recordGeminiMetric(ctx, c.model, resp.StatusCode, time.Since(start), fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	var envelope responseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		recordGeminiMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return nil, err
	}

	var text string
	for _, candidate := range envelope.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			break
		}
	}

	if text == "" {
		recordGeminiMetric(ctx, c.model, resp.StatusCode, time.Since(start), errors.New("missing response text"))
		return nil, errors.New("gemini response missing text")
	}

	recordGeminiMetric(ctx, c.model, resp.StatusCode, time.Since(start), nil)
	return parseExtractionText(text), nil
}

// parseExtractionText strips Markdown fences and decodes the exam list.
// Anything unparseable falls back to the raw text.
func parseExtractionText(text string) *entities.ExtractionResult {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	var payload extractionPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil || len(payload.Exams) == 0 {
		return &entities.ExtractionResult{Raw: text}
	}

	result := &entities.ExtractionResult{Raw: text}
	for _, exam := range payload.Exams {
		if strings.TrimSpace(exam.Name) == "" {
			continue
		}
		result.Exams = append(result.Exams, entities.ExtractedExam{
			Name:    strings.TrimSpace(exam.Name),
			Matched: strings.TrimSpace(exam.Matched),
		})
	}
	return result
}

func newTokenBucket(rpm int, burst int) *tokenBucket {
	if rpm == 0 {
		rpm = 60
	}
	if burst <= 0 {
		burst = 5
	}
	if rpm <= 0 {
		return nil
	}
	return newTokenBucketWithRate(rpm, burst)
}

type tokenBucket struct {
	tokens chan struct{}
}

func newTokenBucketWithRate(rpm int, burst int) *tokenBucket {
	bucket := &tokenBucket{
		tokens: make(chan struct{}, burst),
	}

	for i := 0; i < burst; i++ {
		bucket.tokens <- struct{}{}
	}

	interval := time.Minute / time.Duration(rpm)
	if interval <= 0 {
		interval = time.Millisecond
	}

	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			select {
			case bucket.tokens <- struct{}{}:
			default:
			}
		}
	}()

	return bucket
}

func (b *tokenBucket) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.tokens:
		return nil
	}
}

type geminiMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestErrors   metric.Int64Counter
	rateLimitWait   metric.Float64Histogram
}

var geminiMetricsInit = false
var geminiMetricsInstruments geminiMetrics

func ensureGeminiMetrics() {
	if geminiMetricsInit {
		return
	}
	meter := otel.Meter("github.com/Erudhir101/Tabela-Particular/gemini")

	requestCount, err := meter.Int64Counter(
		"ai.gemini.request.count",
		metric.WithDescription("Number of Gemini requests"),
	)
	if err != nil {
		return
	}
	requestDuration, err := meter.Float64Histogram(
		"ai.gemini.request.duration",
		metric.WithDescription("Gemini request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}
	requestErrors, err := meter.Int64Counter(
		"ai.gemini.request.errors",
		metric.WithDescription("Number of Gemini request errors"),
	)
	if err != nil {
		return
	}
	rateLimitWait, err := meter.Float64Histogram(
		"ai.gemini.rate_limit.wait",
		metric.WithDescription("Time spent waiting for Gemini rate limiter in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}

	geminiMetricsInstruments = geminiMetrics{
		requestCount:    requestCount,
		requestDuration: requestDuration,
		requestErrors:   requestErrors,
		rateLimitWait:   rateLimitWait,
	}
	geminiMetricsInit = true
}

func recordGeminiMetric(ctx context.Context, model string, statusCode int, duration time.Duration, err error) {
	ensureGeminiMetrics()
	if !geminiMetricsInit {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", model),
	}
	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	geminiMetricsInstruments.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	if duration > 0 {
		geminiMetricsInstruments.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	}
	if err != nil {
		geminiMetricsInstruments.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

func recordGeminiRateLimitWait(ctx context.Context, model string, wait time.Duration) {
	ensureGeminiMetrics()
	if !geminiMetricsInit {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", model),
	}
	geminiMetricsInstruments.rateLimitWait.Record(ctx, float64(wait.Milliseconds()), metric.WithAttributes(attrs...))
}
