package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ClientConfig configures the lingo terminal client.
type ClientConfig struct {
	FunctionsURL string `envconfig:"FUNCTIONS_URL" default:"http://localhost:8080"`
	AnonKey      string `envconfig:"ANON_KEY"`
	AccessToken  string `envconfig:"ACCESS_TOKEN"`
	ClientInfo   string `envconfig:"CLIENT_INFO" default:"lingo-cli/1.0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// LoadClient loads LINGO_-prefixed client settings.
func LoadClient() (*ClientConfig, error) {
	_ = godotenv.Load()

	var cfg ClientConfig
	if err := envconfig.Process("lingo", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process client env config: %w", err)
	}
	return &cfg, nil
}
