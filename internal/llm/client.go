package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the backend is reachable.
	Available(ctx context.Context) bool

	// Model names the configured model.
	Model() string
}

// NewClient builds the client for cfg.Provider.
func NewClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case ProviderOllama, "":
		return NewOllamaClient(cfg, observer), nil
	case ProviderAnthropic:
		return NewAnthropicClient(cfg, observer)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// sendFunc performs one HTTP exchange and returns the generated text and the
// model that produced it.
type sendFunc func(ctx context.Context, opts callOptions) (text, model string, err error)

type callOptions struct {
	req         GenerateRequest
	temperature float64
	maxTokens   int
}

// caller carries the behaviour shared by every backend: per-task timeouts,
// bounded retries, error classification and observer events.
type caller struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

func newCaller(cfg LLMConfig, observer Observer) caller {
	if observer == nil {
		observer = NoopObserver{}
	}
	return caller{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c caller) Model() string { return c.cfg.Model }

func (c caller) run(ctx context.Context, req GenerateRequest, send sendFunc) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	opts := callOptions{req: req, temperature: taskCfg.Temperature, maxTokens: taskCfg.MaxTokens}
	if req.Temperature != nil {
		opts.temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		opts.maxTokens = *req.MaxTokens
	}

	timeout := time.Duration(c.cfg.TaskTimeout(req.Task)) * time.Millisecond
	attempts := 1 + c.cfg.MaxRetries

	var lastErr error
	made := 0
	for i := 0; i < attempts; i++ {
		made++
		// Each attempt gets its own deadline so a slow first try can be retried.
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		text, model, err := send(attemptCtx, opts)
		timedOut := errors.Is(attemptCtx.Err(), context.DeadlineExceeded)
		cancel()

		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Task:      req.Task,
				Provider:  c.cfg.Provider,
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Attempts:  made,
				Success:   true,
			})
			if model == "" {
				model = c.cfg.Model
			}
			return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
		}

		switch {
		case timedOut:
			lastErr = ErrTimeout
		case isConnectionError(err):
			lastErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		default:
			lastErr = fmt.Errorf("%w: %v", ErrRetryExhausted, err)
		}

		// Caller cancellation ends the loop.
		if ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Provider:  c.cfg.Provider,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  made,
		Success:   false,
		ErrorCode: ErrorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	return nil, lastErr
}

// do executes req and returns the body of a 200 response.
func (c caller) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d: %s", c.cfg.Provider, resp.StatusCode, string(body))
	}
	return body, nil
}

// probe issues a short GET and reports whether it answered 200.
func (c caller) probe(ctx context.Context, url string, header http.Header) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
