package service

import (
	"context"
	stderrors "errors"

	"github.com/windfall/lingua_service/internal/client"
	"github.com/windfall/lingua_service/internal/config"
	"github.com/windfall/lingua_service/internal/errors"
)

// ErrNoProvider is wrapped when the selected AI provider has no client.
var ErrNoProvider = stderrors.New("no AI provider configured")

// TextGenerator produces free-form text from a system instruction and a user prompt.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AIService routes generation requests to the configured provider.
type AIService struct {
	provider        string
	gatewayClient   *client.GatewayClient
	azureClient     *client.AzureChatClient
	geminiClient    *client.GeminiClient
	anthropicClient *client.AnthropicClient
}

// NewAIService creates a new AI service. Clients for unselected providers may be nil.
func NewAIService(
	provider string,
	gatewayClient *client.GatewayClient,
	azureClient *client.AzureChatClient,
	geminiClient *client.GeminiClient,
	anthropicClient *client.AnthropicClient,
) *AIService {
	return &AIService{
		provider:        provider,
		gatewayClient:   gatewayClient,
		azureClient:     azureClient,
		geminiClient:    geminiClient,
		anthropicClient: anthropicClient,
	}
}

// Provider returns the selected provider name.
func (s *AIService) Provider() string {
	return s.provider
}

// Generate implements TextGenerator.
func (s *AIService) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	switch s.provider {
	case config.ProviderAzure:
		if s.azureClient == nil {
			return "", notConfigured("Azure OpenAI chat is not configured")
		}
		return s.azureClient.Generate(ctx, systemPrompt, userPrompt)

	case config.ProviderGemini:
		if s.geminiClient == nil {
			return "", notConfigured("Gemini is not configured")
		}
		return s.geminiClient.Generate(ctx, systemPrompt, userPrompt)

	case config.ProviderAnthropic:
		if s.anthropicClient == nil {
			return "", notConfigured("Anthropic is not configured")
		}
		return s.anthropicClient.Generate(ctx, systemPrompt, userPrompt)

	default:
		if s.gatewayClient == nil {
			return "", notConfigured("AI gateway is not configured")
		}
		return s.gatewayClient.Generate(ctx, systemPrompt, userPrompt)
	}
}

func notConfigured(message string) error {
	return errors.Wrap(errors.ErrInternal, message, ErrNoProvider)
}

// upstreamError keeps AppErrors raised below (e.g. misconfiguration) and wraps
// anything else as an AI service failure with a caller-safe message.
func upstreamError(message string, err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	return errors.Wrap(errors.ErrAIService, message, err)
}
