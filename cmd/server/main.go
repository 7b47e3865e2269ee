package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/windfall/lingua_service/internal/client"
	"github.com/windfall/lingua_service/internal/config"
	"github.com/windfall/lingua_service/internal/handler/http"
	"github.com/windfall/lingua_service/internal/logger"
	"github.com/windfall/lingua_service/internal/middleware"
	"github.com/windfall/lingua_service/internal/server"
	"github.com/windfall/lingua_service/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("env", cfg.Environment).Str("ai_provider", cfg.AIProvider).Msg("Starting lingua_service")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize AI clients; only the selected provider is required.
	var gatewayClient *client.GatewayClient
	if cfg.GatewayAPIKey != "" {
		gatewayClient = client.NewGatewayClient(cfg.GatewayAPIKey, cfg.GatewayBaseURL, cfg.GatewayModel)
	}

	var azureChatClient *client.AzureChatClient
	if cfg.AzureChatEndpoint != "" && cfg.AzureChatKey != "" {
		azureChatClient = client.NewAzureChatClient(cfg.AzureChatEndpoint, cfg.AzureChatKey).
			WithMaxTokens(cfg.AzureChatMaxTokens).
			WithJSONResponse()
		if cfg.AzureChatTemperature >= 0 {
			azureChatClient.WithTemperature(cfg.AzureChatTemperature)
		}
	}

	var geminiClient *client.GeminiClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = client.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Gemini client")
		}
	}

	var anthropicClient *client.AnthropicClient
	if cfg.AnthropicAPIKey != "" {
		anthropicClient = client.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}

	var transcriber service.Transcriber
	if cfg.WhisperEnabled() {
		transcriber = client.NewAzureWhisperClient(cfg.AzureWhisperEndpoint, cfg.AzureWhisperKey)
		log.Info().Msg("Azure Whisper transcription enabled")
	} else {
		log.Warn().Msg("Azure Whisper not configured, pronunciation uses a placeholder transcript")
	}

	dictionaryClient := client.NewDictionaryClient(cfg.DictionaryBaseURL, cfg.DictionaryTimeout, log)

	// Initialize services
	aiService := service.NewAIService(cfg.AIProvider, gatewayClient, azureChatClient, geminiClient, anthropicClient)
	grammarService := service.NewGrammarService(aiService, log)
	pronunciationService := service.NewPronunciationService(aiService, transcriber, cfg.WhisperLanguage, log)
	lookupService := service.NewDefaultLookupService(dictionaryClient, aiService, log)

	var validator middleware.TokenValidator
	if cfg.AuthEnabled() {
		validator = service.NewAuthService(cfg.JWTSecret)
	} else {
		log.Warn().Msg("AUTH_JWT_SECRET not set, function routes are public")
	}

	// Initialize handlers
	healthHandler := http.NewHealthHandler(cfg.AIProvider)
	functionsHandler := http.NewFunctionsHandler(log, grammarService, pronunciationService, lookupService, cfg.MaxBodyBytes)

	// Initialize HTTP server
	httpServer := server.NewHTTPServer(cfg, log, healthHandler, functionsHandler, validator)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Error().Err(err).Msg("HTTP server error")
			cancel()
		}
	}()

	log.Info().
		Str("http_addr", cfg.HTTPAddress()).
		Msg("Server started")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info().Msg("Shutdown signal received")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled")
	}

	// Graceful shutdown
	healthHandler.SetReady(false)
	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Server stopped")
}
