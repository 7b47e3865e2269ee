package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AI provider names accepted by AI_PROVIDER.
const (
	ProviderGateway   = "gateway"
	ProviderAzure     = "azure"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config holds all configuration for the function host.
type Config struct {
	// Server
	Host     string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	HTTPPort int    `envconfig:"SERVER_HTTP_PORT" default:"8080"`

	Environment string `envconfig:"SERVER_ENV" default:"development"`

	// Timeouts
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// MaxBodyBytes caps request bodies; recorded audio arrives base64-encoded inline.
	MaxBodyBytes int64 `envconfig:"SERVER_MAX_BODY_BYTES" default:"10485760"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// AI provider selection
	AIProvider string `envconfig:"AI_PROVIDER" default:"gateway"`

	// OpenAI-compatible AI gateway
	GatewayAPIKey  string `envconfig:"LOVABLE_API_KEY"`
	GatewayBaseURL string `envconfig:"AI_GATEWAY_URL" default:"https://ai.gateway.lovable.dev/v1"`
	GatewayModel   string `envconfig:"AI_GATEWAY_MODEL" default:"google/gemini-2.5-flash"`

	// Azure OpenAI chat completions
	AzureChatEndpoint string `envconfig:"AZURE_OPENAI_CHAT_ENDPOINT"`
	AzureChatKey      string `envconfig:"AZURE_OPENAI_CHAT_KEY"`
	// Negative leaves the deployment's default temperature.
	AzureChatTemperature float64 `envconfig:"AZURE_OPENAI_CHAT_TEMPERATURE" default:"0.2"`
	AzureChatMaxTokens   int     `envconfig:"AZURE_OPENAI_CHAT_MAX_TOKENS" default:"1024"`

	// Gemini API
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	// Anthropic
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `envconfig:"ANTHROPIC_MODEL" default:"claude-3-5-haiku-latest"`

	// Azure OpenAI Whisper; pronunciation uses a placeholder transcript when unset.
	AzureWhisperEndpoint string `envconfig:"AZURE_WHISPER_ENDPOINT"`
	AzureWhisperKey      string `envconfig:"AZURE_WHISPER_KEY"`
	WhisperLanguage      string `envconfig:"WHISPER_LANGUAGE" default:"en"`

	// Dictionary
	DictionaryBaseURL string        `envconfig:"DICTIONARY_BASE_URL" default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	DictionaryTimeout time.Duration `envconfig:"DICTIONARY_TIMEOUT" default:"10s"`

	// Auth; function routes are public when empty.
	JWTSecret string `envconfig:"AUTH_JWT_SECRET"`

	// CORS
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	CORSAllowedMethods []string `envconfig:"CORS_ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
	CORSAllowedHeaders []string `envconfig:"CORS_ALLOWED_HEADERS" default:"authorization,x-client-info,apikey,content-type"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot express.
func (c *Config) Validate() error {
	switch c.AIProvider {
	case ProviderGateway, ProviderAzure, ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AIProvider)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("SERVER_MAX_BODY_BYTES must be positive")
	}
	return nil
}

// HTTPAddress returns the HTTP server address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AuthEnabled reports whether function routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// WhisperEnabled reports whether real speech-to-text is configured.
func (c *Config) WhisperEnabled() bool {
	return c.AzureWhisperEndpoint != "" && c.AzureWhisperKey != ""
}
