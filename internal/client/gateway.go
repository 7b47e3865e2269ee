package client

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// GatewayClient talks to an OpenAI-compatible chat completions gateway.
type GatewayClient struct {
	cfg    openai.ClientConfig
	client *openai.Client
	model  string
}

// NewGatewayClient creates a client for the gateway at baseURL
// (e.g. https://ai.gateway.lovable.dev/v1), authenticated with a bearer key.
func NewGatewayClient(apiKey, baseURL, model string) *GatewayClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &GatewayClient{
		cfg:    cfg,
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// WithHTTPClient replaces the transport.
func (c *GatewayClient) WithHTTPClient(hc *http.Client) *GatewayClient {
	c.cfg.HTTPClient = hc
	c.client = openai.NewClientWithConfig(c.cfg)
	return c
}

// Generate sends a system instruction plus a user prompt and returns the reply text.
func (c *GatewayClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("gateway chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
