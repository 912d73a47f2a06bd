package app

import (
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/marketing-studio/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/marketing-studio/internal/adapter/provider/gemini"
	"github.com/heartmarshall/marketing-studio/internal/config"
	"github.com/heartmarshall/marketing-studio/internal/generation"
)

// newGenerators builds the text and image providers. Images always use
// Gemini; text uses the configured provider.
func newGenerators(llm config.LLMConfig, image config.ImageConfig, logger *slog.Logger) (generation.TextGenerator, generation.ImageGenerator, error) {
	imageProvider := gemini.NewProvider(gemini.Config{
		APIKey:     llm.GeminiAPIKey,
		BaseURL:    llm.GeminiBaseURL,
		TextModel:  llm.GeminiModel,
		ImageModel: image.Model,
		Timeout:    image.Timeout,
	}, logger)

	switch llm.Provider {
	case config.ProviderGemini:
		textProvider := gemini.NewProvider(gemini.Config{
			APIKey:     llm.GeminiAPIKey,
			BaseURL:    llm.GeminiBaseURL,
			TextModel:  llm.GeminiModel,
			ImageModel: image.Model,
			Timeout:    llm.Timeout,
		}, logger)
		return textProvider, imageProvider, nil

	case config.ProviderAnthropic:
		textProvider := anthropic.NewProvider(
			llm.AnthropicAPIKey, llm.AnthropicModel, llm.MaxTokens, logger,
			option.WithRequestTimeout(llm.Timeout),
		)
		return textProvider, imageProvider, nil
	}

	return nil, nil, fmt.Errorf("unknown llm provider %q", llm.Provider)
}
