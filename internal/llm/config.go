package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies which guidance request an LLM call serves.
type TaskType string

const (
	TaskMeditation TaskType = "meditation"
	TaskMealPlan   TaskType = "meal_plan"
	TaskRemedy     TaskType = "remedy"
)

// Provider names the text-generation backend.
type Provider string

const (
	ProviderOllama    Provider = "ollama"
	ProviderAnthropic Provider = "anthropic"
)

const (
	defaultOllamaEndpoint    = "http://localhost:11434"
	defaultOllamaModel       = "llama3.2"
	defaultAnthropicEndpoint = "https://api.anthropic.com"
	defaultAnthropicModel    = "claude-sonnet-4-20250514"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Provider   Provider
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a disabled Ollama configuration. Each guidance action
// makes a single call, so retries are off.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Provider:   ProviderOllama,
		Endpoint:   defaultOllamaEndpoint,
		Model:      defaultOllamaModel,
		TimeoutMs:  20000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskMeditation: {Temperature: 0.7, MaxTokens: 1000},
			TaskMealPlan:   {Temperature: 0.5, MaxTokens: 800},
			TaskRemedy:     {Temperature: 0.3, MaxTokens: 500},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values. Choosing the anthropic
// provider switches the endpoint and model defaults.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("MOONCYC_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MOONCYC_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MOONCYC_LLM_PROVIDER"); v != "" {
		if p := Provider(strings.ToLower(strings.TrimSpace(v))); p == ProviderAnthropic {
			cfg.Provider = ProviderAnthropic
			cfg.Endpoint = defaultAnthropicEndpoint
			cfg.Model = defaultAnthropicModel
		}
	}
	if v := os.Getenv("MOONCYC_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("MOONCYC_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("MOONCYC_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskMeditation, "MOONCYC_LLM_MEDITATION_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskMealPlan, "MOONCYC_LLM_MEAL_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskRemedy, "MOONCYC_LLM_REMEDY_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
