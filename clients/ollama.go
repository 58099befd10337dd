package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"campustix/advisory"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

const headerKeyCorrelationID = "Correlation-ID"

// OllamaClient asks a model served by Ollama for schema-constrained completions.
type OllamaClient struct {
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
}

func NewOllamaClient(baseURL, model string, temperature float64, timeout time.Duration) *OllamaClient {
	return &OllamaClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatRequest struct {
	Model    string               `json:"model"`
	Messages []chatMessage        `json:"messages"`
	Stream   bool                 `json:"stream"`
	Format   advisory.OutputShape `json:"format"`
	Options  ollamaOptions        `json:"options"`
}

type ollamaChatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error"`
}

func (c *OllamaClient) Advise(ctx context.Context, prompt string, shape advisory.OutputShape) (json.RawMessage, error) {
	body := ollamaChatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Stream: false,
		Format: shape,
		Options: ollamaOptions{
			Temperature: c.temperature,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshalling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerKeyCorrelationID, log.CorrelationIDFromContext(ctx))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending chat request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("unexpected status code: %d: %s", res.StatusCode, strings.TrimSpace(string(detail)))
	}

	var chatRes ollamaChatResponse
	if err := json.NewDecoder(res.Body).Decode(&chatRes); err != nil {
		return nil, fmt.Errorf("decoding chat response: %w", err)
	}

	if chatRes.Error != "" {
		return nil, fmt.Errorf("ollama error: %s", chatRes.Error)
	}

	return json.RawMessage(chatRes.Message.Content), nil
}
