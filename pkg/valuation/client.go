// Package valuation talks to an OpenAI-compatible chat-completions API to
// produce structured domain valuations.
package valuation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mainalysis/domain-analyzer/internal/metrics"
	"github.com/mainalysis/domain-analyzer/pkg/config"
)

const defaultRequestTimeout = 60 * time.Second

var ErrEmptyCompletion = errors.New("no analysis returned from valuation provider")

// Provider produces a structured valuation for a domain name.
type Provider interface {
	// Analyze values the named domain. estimatePrice asks the provider for a
	// fair-market ETH estimate; pass false when a price is already known.
	Analyze(ctx context.Context, domainName string, estimatePrice bool) (*AnalysisData, error)
}

type requestMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string           `json:"model"`
	Messages       []requestMessage `json:"messages"`
	Temperature    float32          `json:"temperature"`
	ResponseFormat responseFormat   `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client is a chat-completions backed Provider.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float32
}

// NewClient creates a valuation client from config.
func NewClient(cfg *config.ValuationConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Analyze requests a valuation and decodes the structured response.
func (c *Client) Analyze(ctx context.Context, domainName string, estimatePrice bool) (*AnalysisData, error) {
	start := time.Now()
	defer func() {
		metrics.ValuationDuration.Observe(time.Since(start).Seconds())
	}()

	resp, err := c.createChatCompletion(ctx, chatCompletionRequest{
		Model: c.model,
		Messages: []requestMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(domainName, estimatePrice)},
		},
		Temperature:    c.temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyCompletion
	}

	return parseAnalysis(resp.Choices[0].Message.Content)
}

func (c *Client) createChatCompletion(ctx context.Context, request chatCompletionRequest) (*chatCompletionResponse, error) {
	jsonBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("valuation request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &response, nil
}
