package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/windfall/lingua_service/internal/errors"
)

// AzureWhisperClient wraps the Azure OpenAI Whisper REST API for audio transcription.
type AzureWhisperClient struct {
	endpoint string // full transcriptions URL including api-version
	apiKey   string
	client   *http.Client
}

type whisperResponse struct {
	Text string `json:"text"`
}

// NewAzureWhisperClient creates a new Azure OpenAI Whisper client.
func NewAzureWhisperClient(endpoint, apiKey string) *AzureWhisperClient {
	return &AzureWhisperClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 120 * time.Second, // Whisper can take longer for large files
		},
	}
}

// Transcribe uploads a recorded clip and returns the recognized text.
// language is optional (e.g. "en"); Whisper auto-detects when empty.
func (c *AzureWhisperClient) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if c.apiKey == "" || c.endpoint == "" {
		return "", errors.New(errors.ErrAIService, "Azure Whisper credentials not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "recording.webm")
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("failed to write audio data: %w", err)
	}

	_ = writer.WriteField("response_format", "json")
	if language != "" {
		_ = writer.WriteField("language", language)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("azure whisper api error %d: %s", resp.StatusCode, string(respBody))
	}

	var result whisperResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return strings.TrimSpace(result.Text), nil
}
