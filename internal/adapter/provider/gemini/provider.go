// Package gemini talks to the Gemini REST API for text (generateContent) and
// Imagen images (predict).
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/generation"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config configures a Provider.
type Config struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
}

// Provider implements generation.TextGenerator and generation.ImageGenerator.
type Provider struct {
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Gemini provider.
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Provider{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "gemini"),
	}
}

// GenerateText runs generateContent. A schema switches the call to JSON mode
// with a native responseSchema.
func (p *Provider) GenerateText(ctx context.Context, req generation.TextRequest) (string, error) {
	payload := contentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: req.Prompt}}}},
	}
	if req.Schema != nil {
		payload.GenerationConfig = &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   renderSchema(req.Schema),
		}
	}

	var resp contentResponse
	if err := p.post(ctx, p.textModel, "generateContent", payload, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no candidates returned")
	}
	var sb strings.Builder
	for _, pt := range resp.Candidates[0].Content.Parts {
		sb.WriteString(pt.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini: empty candidate (finish reason %q)", resp.Candidates[0].FinishReason)
	}

	return sb.String(), nil
}

// GenerateImage runs the Imagen predict endpoint and returns the first image.
func (p *Provider) GenerateImage(ctx context.Context, req generation.ImageRequest) (domain.GeneratedImage, error) {
	count := req.NumberOfImages
	if count <= 0 {
		count = 1
	}

	payload := predictRequest{
		Instances: []predictInstance{{Prompt: req.Prompt}},
		Parameters: predictParameters{
			SampleCount:   count,
			OutputOptions: &outputOptions{MIMEType: req.MIMEType},
		},
	}

	var resp predictResponse
	if err := p.post(ctx, p.imageModel, "predict", payload, &resp); err != nil {
		return domain.GeneratedImage{}, err
	}

	for _, pred := range resp.Predictions {
		if pred.BytesBase64Encoded == "" {
			continue
		}
		mime := pred.MIMEType
		if mime == "" {
			mime = req.MIMEType
		}
		return domain.GeneratedImage{Data: pred.BytesBase64Encoded, MIMEType: mime}, nil
	}

	return domain.GeneratedImage{}, fmt.Errorf("gemini: no image was generated")
}

// post sends payload to models/{model}:{method} and decodes the response into out.
func (p *Provider) post(ctx context.Context, model, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:%s?key=%s", p.baseURL, url.PathEscape(model), method, url.QueryEscape(p.apiKey))

	p.log.DebugContext(ctx, "gemini request", slog.String("model", model), slog.String("method", method))

	resp, err := p.doWithRetry(ctx, endpoint, body, model)
	if err != nil {
		p.log.ErrorContext(ctx, "gemini request failed", slog.String("model", model), slog.String("error", err.Error()))
		return fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gemini: decode json: %w", err)
	}

	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, endpoint string, body []byte, model string) (*http.Response, error) {
	do := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return p.httpClient.Do(req)
	}

	resp, err := do()

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "gemini retry", slog.String("model", model), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return do()
}
