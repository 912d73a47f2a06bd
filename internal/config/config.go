package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	LLM       LLMConfig       `yaml:"llm"`
	Image     ImageConfig     `yaml:"image"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Studio    StudioConfig    `yaml:"studio"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"5242880"`
}

// Storage drivers.
const (
	StorageDriverFile     = "file"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// StorageConfig selects and configures the key-value store backing the
// history and client collections.
type StorageConfig struct {
	Driver          string        `yaml:"driver"             env:"STORAGE_DRIVER"             env-default:"file"`
	Path            string        `yaml:"path"               env:"STORAGE_PATH"               env-default:"./data/studio.json"`
	DSN             string        `yaml:"dsn"                env:"STORAGE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"STORAGE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"STORAGE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"STORAGE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"STORAGE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// LLMConfig configures the text generation provider.
type LLMConfig struct {
	Provider        string        `yaml:"provider"          env:"LLM_PROVIDER"          env-default:"gemini"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"LLM_ANTHROPIC_API_KEY"`
	AnthropicModel  string        `yaml:"anthropic_model"   env:"LLM_ANTHROPIC_MODEL"   env-default:"claude-sonnet-4-5"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"    env:"LLM_GEMINI_API_KEY"`
	GeminiModel     string        `yaml:"gemini_model"      env:"LLM_GEMINI_MODEL"      env-default:"gemini-2.5-flash"`
	GeminiBaseURL   string        `yaml:"gemini_base_url"   env:"LLM_GEMINI_BASE_URL"   env-default:"https://generativelanguage.googleapis.com/v1beta"`
	MaxTokens       int64         `yaml:"max_tokens"        env:"LLM_MAX_TOKENS"        env-default:"2048"`
	Timeout         time.Duration `yaml:"timeout"           env:"LLM_TIMEOUT"           env-default:"60s"`
}

// ImageConfig configures image generation. Images always go through Gemini
// (Imagen) and reuse LLMConfig.GeminiAPIKey and GeminiBaseURL.
type ImageConfig struct {
	Model    string        `yaml:"model"     env:"IMAGE_MODEL"     env-default:"imagen-4.0-generate-001"`
	MIMEType string        `yaml:"mime_type" env:"IMAGE_MIME_TYPE" env-default:"image/jpeg"`
	Timeout  time.Duration `yaml:"timeout"   env:"IMAGE_TIMEOUT"   env-default:"90s"`
}

// AuthConfig holds bearer token settings used for role gating.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"marketing-studio"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	Required       bool          `yaml:"required"         env:"AUTH_REQUIRED"         env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig limits generation requests per client IP.
type RateLimitConfig struct {
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// StudioConfig holds generation form rules.
type StudioConfig struct {
	MinImagePromptLength int `yaml:"min_image_prompt_length" env:"STUDIO_MIN_IMAGE_PROMPT_LENGTH" env-default:"10"`
	TwitterCharLimit     int `yaml:"twitter_char_limit"      env:"STUDIO_TWITTER_CHAR_LIMIT"      env-default:"280"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// NormalizedDriver returns the lowercased storage driver name.
func (s StorageConfig) NormalizedDriver() string {
	return strings.ToLower(strings.TrimSpace(s.Driver))
}
