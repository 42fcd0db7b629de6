package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const anthropicVersion = "2023-06-01"

// anthropicClient implements LLMClient using the Anthropic Messages API.
type anthropicClient struct {
	caller
}

// NewAnthropicClient creates an LLMClient for the hosted Messages API.
// It fails with ErrMissingAPIKey when cfg carries no key.
func NewAnthropicClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	cfg.Provider = ProviderAnthropic
	if cfg.Endpoint == "" || cfg.Endpoint == defaultOllamaEndpoint {
		cfg.Endpoint = defaultAnthropicEndpoint
	}
	if cfg.Model == "" || cfg.Model == defaultOllamaModel {
		cfg.Model = defaultAnthropicModel
	}
	return &anthropicClient{caller: newCaller(cfg, observer)}, nil
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
}

type anthropicResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *anthropicClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.run(ctx, req, c.send)
}

func (c *anthropicClient) headers() http.Header {
	h := http.Header{}
	h.Set("x-api-key", c.cfg.APIKey)
	h.Set("anthropic-version", anthropicVersion)
	return h
}

func (c *anthropicClient) send(ctx context.Context, opts callOptions) (string, string, error) {
	maxTokens := opts.maxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	body := anthropicRequest{
		Model:       c.cfg.Model,
		MaxTokens:   maxTokens,
		System:      opts.req.SystemPrompt,
		Messages:    []anthropicMessage{{Role: "user", Content: opts.req.UserPrompt}},
		Temperature: opts.temperature,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/v1/messages", bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header = c.headers()
	httpReq.Header.Set("Content-Type", "application/json")

	raw, err := c.do(httpReq)
	if err != nil {
		return "", "", err
	}

	var resp anthropicResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", "", fmt.Errorf("decoding response: %w", err)
	}
	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), resp.Model, nil
}

func (c *anthropicClient) Available(ctx context.Context) bool {
	return c.probe(ctx, c.cfg.Endpoint+"/v1/models", c.headers())
}
