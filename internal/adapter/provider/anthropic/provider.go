// Package anthropic generates text with the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/marketing-studio/internal/generation"
)

const defaultMaxTokens = 2048

// Provider implements generation.TextGenerator. The Messages API has no
// response schema, so schema requests embed the JSON contract in the prompt.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewProvider creates a provider. opts are passed to the SDK client after
// the API key, so they can override the base URL or HTTP client.
func NewProvider(apiKey, model string, maxTokens int64, logger *slog.Logger, opts ...option.RequestOption) *Provider {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Provider{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// GenerateText sends one user message and returns the concatenated text blocks.
func (p *Provider) GenerateText(ctx context.Context, req generation.TextRequest) (string, error) {
	prompt := req.Prompt
	if req.Schema != nil {
		prompt = withContract(prompt, req.Schema)
	}

	p.log.DebugContext(ctx, "anthropic request", slog.String("model", p.model))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("anthropic: empty response")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		sb.WriteString(block.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("anthropic: response has no text (stop reason %q)", msg.StopReason)
	}

	return sb.String(), nil
}

func withContract(prompt string, schema *generation.Schema) string {
	return fmt.Sprintf(`%s

Output ONLY valid JSON matching this exact schema:
%s

Rules:
- Every field is required and must be a non-empty string
- Output ONLY the JSON, no markdown, no explanations`, prompt, schema.Contract())
}
