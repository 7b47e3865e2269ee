package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOVABLE_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddress())
	assert.Equal(t, ProviderGateway, cfg.AIProvider)
	assert.Equal(t, "https://ai.gateway.lovable.dev/v1", cfg.GatewayBaseURL)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.GatewayModel)
	assert.Equal(t, "test-key", cfg.GatewayAPIKey)
	assert.Equal(t, "https://api.dictionaryapi.dev/api/v2/entries/en", cfg.DictionaryBaseURL)
	assert.Equal(t, 10*time.Second, cfg.DictionaryTimeout)
	assert.Equal(t, 0.2, cfg.AzureChatTemperature)
	assert.Equal(t, 1024, cfg.AzureChatMaxTokens)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"authorization", "x-client-info", "apikey", "content-type"}, cfg.CORSAllowedHeaders)
	assert.False(t, cfg.AuthEnabled())
	assert.False(t, cfg.WhisperEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_HTTP_PORT", "9090")
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("AZURE_WHISPER_ENDPOINT", "https://whisper.example.com")
	t.Setenv("AZURE_WHISPER_KEY", "wk")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, ProviderAnthropic, cfg.AIProvider)
	assert.True(t, cfg.AuthEnabled())
	assert.True(t, cfg.WhisperEnabled())
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "bard")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bard")
}

func TestLoadClient_Prefix(t *testing.T) {
	t.Setenv("LINGO_FUNCTIONS_URL", "https://fn.example.com")
	t.Setenv("LINGO_ANON_KEY", "anon")

	cfg, err := LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "https://fn.example.com", cfg.FunctionsURL)
	assert.Equal(t, "anon", cfg.AnonKey)
	assert.Equal(t, "lingo-cli/1.0", cfg.ClientInfo)
}
