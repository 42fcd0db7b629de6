package guidance

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/llm"
)

// Source records where a piece of guidance came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Label is the attribution line shown under generated content.
func (s Source) Label(model string) string {
	if s == SourceAI {
		if model == "" {
			return "Generated by AI"
		}
		return "Generated by AI (" + model + ")"
	}
	return "Pre-written"
}

// Meditation is a short guided meditation script.
type Meditation struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Script   string `json:"script"`
	Source   Source `json:"source"`
	Model    string `json:"model,omitempty"`
}

// MealPlan is a one-day meal plan with the reasoning behind it.
type MealPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
	Rationale string `json:"rationale"`
	Source    Source `json:"source"`
	Model     string `json:"model,omitempty"`
}

// Remedy is a natural remedy suggestion for one symptom.
type Remedy struct {
	Symptom      string `json:"symptom"`
	Remedy       string `json:"remedy"`
	Instructions string `json:"instructions"`
	Rationale    string `json:"rationale"`
	Source       Source `json:"source"`
	Model        string `json:"model,omitempty"`
}

// Provider generates personalised guidance. Implementations return a
// *ProviderError for any failure, including unusable output.
type Provider interface {
	GenerateMeditation(ctx context.Context, phase domain.Phase, symptoms []string, energy int) (Meditation, error)
	GenerateMealPlan(ctx context.Context, phase domain.Phase, symptoms []string) (MealPlan, error)
	GenerateRemedy(ctx context.Context, symptom string) (Remedy, error)
}

// ProviderError reports that a provider could not produce usable content.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("guidance provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Code returns the short classification used in logs.
func (e *ProviderError) Code() string {
	return llm.ErrorCode(e.Err)
}
