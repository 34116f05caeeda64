package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	completionsPath = "/chat/completions"
	defaultTimeout  = 15 * time.Second
	// polarity replies are a single number
	replyTokens = 16
)

// ErrConfig reports a client missing its endpoint or model.
var ErrConfig = errors.New("llm: base URL and model required")

// Client talks to an OpenAI-compatible chat completions endpoint.
// BaseURL may be the API root ("https://host/v1") or the full
// completions URL.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string

	HTTPClient *http.Client
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Endpoint returns the completions URL requests are posted to.
func (c *Client) Endpoint() string {
	base := strings.TrimRight(c.BaseURL, "/")
	if strings.HasSuffix(base, completionsPath) {
		return base
	}
	return base + completionsPath
}

// Chat sends a system prompt and one user message at temperature 0 and
// returns the trimmed reply.
func (c *Client) Chat(ctx context.Context, system, user string) (string, error) {
	if c.BaseURL == "" || c.Model == "" {
		return "", ErrConfig
	}
	body, err := json.Marshal(completionRequest{
		Model:     c.Model,
		Messages:  []message{{Role: "system", Content: system}, {Role: "user", Content: user}},
		MaxTokens: replyTokens,
	})
	if err != nil {
		return "", fmt.Errorf("llm: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}

	var out completionResponse
	decodeErr := json.Unmarshal(raw, &out)
	switch {
	case decodeErr == nil && out.Error != nil:
		return "", fmt.Errorf("llm error: %s", out.Error.Message)
	case resp.StatusCode >= http.StatusBadRequest:
		return "", fmt.Errorf("llm: http %d", resp.StatusCode)
	case decodeErr != nil:
		return "", fmt.Errorf("llm: decode response: %w", decodeErr)
	case len(out.Choices) == 0:
		return "", fmt.Errorf("llm: empty response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: defaultTimeout}
}
