package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/windfall/lingua_service/internal/errors"
)

// finishContentFilter is the finish_reason Azure reports when a reply was withheld.
const finishContentFilter = "content_filter"

// AzureChatClient calls an Azure OpenAI chat deployment over REST. The
// endpoint is the full deployment URL including api-version.
type AzureChatClient struct {
	endpoint    string
	apiKey      string
	temperature *float64
	maxTokens   int
	jsonMode    bool
	client      *http.Client
}

type azureChatRequest struct {
	Messages       []azureChatMessage   `json:"messages"`
	Temperature    *float64             `json:"temperature,omitempty"`
	MaxTokens      int                  `json:"max_tokens,omitempty"`
	ResponseFormat *azureResponseFormat `json:"response_format,omitempty"`
}

type azureChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type azureResponseFormat struct {
	Type string `json:"type"`
}

type azureChatResponse struct {
	Choices []struct {
		Message      azureChatMessage `json:"message"`
		FinishReason string           `json:"finish_reason"`
	} `json:"choices"`
}

type azureErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewAzureChatClient creates a client with the deployment's default sampling.
func NewAzureChatClient(endpoint, apiKey string) *AzureChatClient {
	return &AzureChatClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// WithTemperature pins the sampling temperature sent with every request.
func (c *AzureChatClient) WithTemperature(t float64) *AzureChatClient {
	c.temperature = &t
	return c
}

// WithMaxTokens caps the reply length; zero leaves the deployment default.
func (c *AzureChatClient) WithMaxTokens(n int) *AzureChatClient {
	c.maxTokens = n
	return c
}

// WithJSONResponse asks the deployment for a json_object reply. Every prompt
// sent through this client must mention JSON or Azure rejects the request.
func (c *AzureChatClient) WithJSONResponse() *AzureChatClient {
	c.jsonMode = true
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *AzureChatClient) WithHTTPClient(hc *http.Client) *AzureChatClient {
	c.client = hc
	return c
}

func (c *AzureChatClient) buildRequest(systemPrompt, userPrompt string) azureChatRequest {
	req := azureChatRequest{
		Messages: []azureChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	if c.jsonMode {
		req.ResponseFormat = &azureResponseFormat{Type: "json_object"}
	}
	return req
}

// Generate implements service.TextGenerator.
func (c *AzureChatClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" || c.endpoint == "" {
		return "", errors.New(errors.ErrAIService, "Azure OpenAI chat credentials not configured")
	}

	body, err := json.Marshal(c.buildRequest(systemPrompt, userPrompt))
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", azureStatusError(resp)
	}

	var result azureChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", nil
	}

	choice := result.Choices[0]
	if choice.FinishReason == finishContentFilter {
		return "", fmt.Errorf("azure openai chat: reply withheld by content filter")
	}
	return strings.TrimSpace(choice.Message.Content), nil
}

// azureStatusError prefers the {"error": {...}} envelope over the raw body.
func azureStatusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

	var env azureErrorBody
	if json.Unmarshal(raw, &env) == nil && env.Error.Message != "" {
		return fmt.Errorf("azure openai chat api error %d (%s): %s", resp.StatusCode, env.Error.Code, env.Error.Message)
	}
	return fmt.Errorf("azure openai chat api error %d: %s", resp.StatusCode, string(raw))
}
