package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	SiteURL     string
	SiteName    string
}

// Sentinel errors for upstream failures the UI reports with a fixed message.
var (
	ErrAuthFailed          = errors.New("authentication failed")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrRateLimited         = errors.New("rate limited")
	ErrTimeout             = errors.New("llm request timed out")
	ErrEmptyResponse       = errors.New("empty response from model")
	ErrEmptyReply          = errors.New("model returned an empty reply")
)

// OpenRouterError carries an upstream error that has no dedicated sentinel.
type OpenRouterError struct {
	Status  int
	Message string
}

func (e *OpenRouterError) Error() string {
	return fmt.Sprintf("openrouter error (HTTP %d): %s", e.Status, e.Message)
}

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Complete sends a non-streaming chat completion request and returns the
// assistant reply text.
func (c *Client) Complete(ctx context.Context, cfg ChatConfig, messages []ChatMessage) (string, error) {
	reqBody := struct {
		Model       string        `json:"model"`
		MaxTokens   int           `json:"max_tokens"`
		Temperature float64       `json:"temperature"`
		Messages    []ChatMessage `json:"messages"`
	}{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Messages:    messages,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal llm request failed: %w", err)
	}

	endpoint := strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("build llm request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	if cfg.SiteURL != "" {
		req.Header.Set("HTTP-Referer", cfg.SiteURL)
	}
	if cfg.SiteName != "" {
		req.Header.Set("X-Title", cfg.SiteName)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			if uerr.Timeout() {
				return "", ErrTimeout
			}
			return "", fmt.Errorf("llm request failed: %w", uerr.Err)
		}
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read llm response failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", statusError(resp.StatusCode, raw)
	}

	var parsed struct {
		Choices []struct {
			Message ChatMessage `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode llm response failed: %w", err)
	}
	if len(parsed.Choices) == 0 {
		// OpenRouter sometimes returns an error body with HTTP 200.
		if parsed.Error != nil && strings.TrimSpace(parsed.Error.Message) != "" {
			return "", &OpenRouterError{Status: resp.StatusCode, Message: strings.TrimSpace(parsed.Error.Message)}
		}
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

func statusError(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrAuthFailed
	case http.StatusPaymentRequired:
		return ErrInsufficientCredits
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}

	msg := parseErrorMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &OpenRouterError{Status: status, Message: msg}
}

func parseErrorMessage(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return strings.TrimSpace(parsed.Error.Message)
}
