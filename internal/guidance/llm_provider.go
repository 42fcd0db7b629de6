package guidance

import (
	"context"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/llm"
)

// The model must answer with exactly these objects.

type meditationContract struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Script   string `json:"script"`
}

type mealPlanContract struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
	Rationale string `json:"rationale"`
}

type remedyContract struct {
	Remedy       string `json:"remedy"`
	Instructions string `json:"instructions"`
	Rationale    string `json:"rationale"`
}

func validateMeditation(m meditationContract) error {
	return llm.RequireFields(map[string]string{"title": m.Title, "script": m.Script})
}

func validateMealPlan(m mealPlanContract) error {
	return llm.RequireFields(map[string]string{
		"breakfast": m.Breakfast,
		"lunch":     m.Lunch,
		"dinner":    m.Dinner,
		"snacks":    m.Snacks,
		"rationale": m.Rationale,
	})
}

func validateRemedy(r remedyContract) error {
	return llm.RequireFields(map[string]string{
		"remedy":       r.Remedy,
		"instructions": r.Instructions,
		"rationale":    r.Rationale,
	})
}

// LLMProvider generates guidance with a language model.
type LLMProvider struct {
	client llm.LLMClient
}

// NewLLMProvider wraps client as a guidance Provider.
func NewLLMProvider(client llm.LLMClient) *LLMProvider {
	return &LLMProvider{client: client}
}

func (p *LLMProvider) GenerateMeditation(ctx context.Context, phase domain.Phase, symptoms []string, energy int) (Meditation, error) {
	const op = "meditation"
	out, model, err := generate(ctx, p.client, llm.GenerateRequest{
		Task:         llm.TaskMeditation,
		SystemPrompt: meditationSystemPrompt,
		UserPrompt:   meditationUserPrompt(phase, symptoms, energy),
	}, validateMeditation)
	if err != nil {
		return Meditation{}, &ProviderError{Op: op, Err: err}
	}
	return Meditation{
		Title:    strings.TrimSpace(out.Title),
		Duration: strings.TrimSpace(out.Duration),
		Script:   strings.TrimSpace(out.Script),
		Source:   SourceAI,
		Model:    model,
	}, nil
}

func (p *LLMProvider) GenerateMealPlan(ctx context.Context, phase domain.Phase, symptoms []string) (MealPlan, error) {
	const op = "meal_plan"
	out, model, err := generate(ctx, p.client, llm.GenerateRequest{
		Task:         llm.TaskMealPlan,
		SystemPrompt: mealPlanSystemPrompt,
		UserPrompt:   mealPlanUserPrompt(phase, symptoms),
	}, validateMealPlan)
	if err != nil {
		return MealPlan{}, &ProviderError{Op: op, Err: err}
	}
	return MealPlan{
		Breakfast: strings.TrimSpace(out.Breakfast),
		Lunch:     strings.TrimSpace(out.Lunch),
		Dinner:    strings.TrimSpace(out.Dinner),
		Snacks:    strings.TrimSpace(out.Snacks),
		Rationale: strings.TrimSpace(out.Rationale),
		Source:    SourceAI,
		Model:     model,
	}, nil
}

func (p *LLMProvider) GenerateRemedy(ctx context.Context, symptom string) (Remedy, error) {
	const op = "remedy"
	out, model, err := generate(ctx, p.client, llm.GenerateRequest{
		Task:         llm.TaskRemedy,
		SystemPrompt: remedySystemPrompt,
		UserPrompt:   remedyUserPrompt(symptom),
	}, validateRemedy)
	if err != nil {
		return Remedy{}, &ProviderError{Op: op, Err: err}
	}
	return Remedy{
		Symptom:      symptom,
		Remedy:       strings.TrimSpace(out.Remedy),
		Instructions: strings.TrimSpace(out.Instructions),
		Rationale:    strings.TrimSpace(out.Rationale),
		Source:       SourceAI,
		Model:        model,
	}, nil
}

func generate[T any](ctx context.Context, client llm.LLMClient, req llm.GenerateRequest, validate llm.SchemaValidator[T]) (T, string, error) {
	var zero T
	resp, err := client.Generate(ctx, req)
	if err != nil {
		return zero, "", err
	}
	out, err := llm.ExtractJSON(resp.Text, validate)
	if err != nil {
		return zero, "", err
	}
	return out, resp.Model, nil
}
