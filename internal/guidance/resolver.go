package guidance

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alexanderramin/mooncyc/internal/domain"
)

// Resolver returns personalised guidance when a provider is configured and
// answers usefully, and the pre-written content otherwise. Its methods never
// fail; the Source field tells the caller which path was taken.
type Resolver struct {
	provider Provider
	logger   *slog.Logger
}

// NewResolver creates a Resolver. A nil provider always yields fallbacks.
func NewResolver(provider Provider, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{provider: provider, logger: logger}
}

// AIEnabled reports whether a provider is configured.
func (r *Resolver) AIEnabled() bool {
	return r.provider != nil
}

func (r *Resolver) Meditation(ctx context.Context, phase domain.Phase, symptoms []string, energy int) Meditation {
	if r.provider == nil {
		return FallbackMeditation(phase)
	}
	m, err := r.provider.GenerateMeditation(ctx, phase, symptoms, energy)
	if err != nil {
		r.logFallback(ctx, "meditation", err)
		return FallbackMeditation(phase)
	}
	return m
}

func (r *Resolver) MealPlan(ctx context.Context, phase domain.Phase, symptoms []string) MealPlan {
	if r.provider == nil {
		return FallbackMealPlan(phase)
	}
	p, err := r.provider.GenerateMealPlan(ctx, phase, symptoms)
	if err != nil {
		r.logFallback(ctx, "meal_plan", err)
		return FallbackMealPlan(phase)
	}
	return p
}

func (r *Resolver) Remedy(ctx context.Context, symptom string) Remedy {
	if r.provider == nil {
		return FallbackRemedy(symptom)
	}
	rem, err := r.provider.GenerateRemedy(ctx, symptom)
	if err != nil {
		r.logFallback(ctx, "remedy", err)
		return FallbackRemedy(symptom)
	}
	return rem
}

func (r *Resolver) logFallback(ctx context.Context, op string, err error) {
	code := "UNKNOWN"
	var perr *ProviderError
	if errors.As(err, &perr) {
		code = perr.Code()
	}
	r.logger.WarnContext(ctx, "guidance_fallback", "op", op, "code", code, "error", err.Error())
}
