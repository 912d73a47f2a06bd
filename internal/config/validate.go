package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.Studio.MinImagePromptLength < 1 {
		return fmt.Errorf("studio.min_image_prompt_length must be >= 1 (got %d)", c.Studio.MinImagePromptLength)
	}
	if c.Studio.TwitterCharLimit < 1 {
		return fmt.Errorf("studio.twitter_char_limit must be >= 1 (got %d)", c.Studio.TwitterCharLimit)
	}

	if c.RateLimit.GeneratePerMinute < 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be >= 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.NormalizedDriver() {
	case StorageDriverFile, StorageDriverSQLite:
		if s.Path == "" {
			return fmt.Errorf("path is required for driver %q", s.Driver)
		}
	case StorageDriverPostgres:
		if s.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", s.Driver)
		}
		if s.MaxConns < 1 {
			return fmt.Errorf("max_conns must be >= 1 (got %d)", s.MaxConns)
		}
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	switch l.Provider {
	case ProviderAnthropic:
		if l.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required for provider %q", l.Provider)
		}
	case ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q", l.Provider)
	}

	// Image generation always goes through Gemini.
	if l.GeminiAPIKey == "" {
		return fmt.Errorf("gemini_api_key is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	return nil
}
