package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/guidance"
	"github.com/alexanderramin/mooncyc/internal/llm"
	"github.com/alexanderramin/mooncyc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProvider answers every request and remembers what it was asked.
type recordingProvider struct {
	phase    domain.Phase
	symptoms []string
	energy   int
	remedies []string
	fail     bool
}

func (p *recordingProvider) GenerateMeditation(_ context.Context, phase domain.Phase, symptoms []string, energy int) (guidance.Meditation, error) {
	p.phase, p.symptoms, p.energy = phase, symptoms, energy
	if p.fail {
		return guidance.Meditation{}, &guidance.ProviderError{Op: "meditation", Err: llm.ErrTimeout}
	}
	return guidance.Meditation{Title: "Tide", Script: "Breathe.", Source: guidance.SourceAI, Model: "test-model"}, nil
}

func (p *recordingProvider) GenerateMealPlan(_ context.Context, phase domain.Phase, symptoms []string) (guidance.MealPlan, error) {
	p.phase, p.symptoms = phase, symptoms
	if p.fail {
		return guidance.MealPlan{}, &guidance.ProviderError{Op: "meal_plan", Err: llm.ErrUnavailable}
	}
	return guidance.MealPlan{Breakfast: "Oats", Lunch: "Soup", Dinner: "Salmon", Snacks: "Nuts", Source: guidance.SourceAI}, nil
}

func (p *recordingProvider) GenerateRemedy(_ context.Context, symptom string) (guidance.Remedy, error) {
	p.remedies = append(p.remedies, symptom)
	if p.fail {
		return guidance.Remedy{}, &guidance.ProviderError{Op: "remedy", Err: errors.New("boom")}
	}
	return guidance.Remedy{Symptom: symptom, Remedy: "Tea", Source: guidance.SourceAI}, nil
}

func newGuidanceService(r repos, p guidance.Provider) GuidanceService {
	return NewGuidanceService(r.cycles, r.entries, guidance.NewResolver(p, nil))
}

func TestGuidanceService_Meditation_UsesPhaseAndLatestSymptoms(t *testing.T) {
	r := newRepos(t)
	r.configure(t)
	ctx := context.Background()
	require.NoError(t, r.entries.Append(ctx, testutil.NewTestEntry(domain.Date(2024, 3, 2), []string{"Cramps"})))
	require.NoError(t, r.entries.Append(ctx, testutil.NewTestEntry(domain.Date(2024, 3, 4), []string{"Tired", domain.NoneSymptom})))

	p := &recordingProvider{}
	svc := newGuidanceService(r, p)

	m, err := svc.Meditation(ctx, domain.Date(2024, 3, 20))
	require.NoError(t, err)
	assert.Equal(t, guidance.SourceAI, m.Source)
	assert.Equal(t, "test-model", m.Model)
	assert.Equal(t, domain.PhaseLuteal, p.phase)
	assert.Equal(t, []string{"Tired"}, p.symptoms)
	assert.Equal(t, 3, p.energy)
}

func TestGuidanceService_FallsBackOnProviderError(t *testing.T) {
	r := newRepos(t)
	r.configure(t)
	svc := newGuidanceService(r, &recordingProvider{fail: true})
	ctx := context.Background()

	m, err := svc.Meditation(ctx, domain.Date(2024, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, guidance.SourceFallback, m.Source)
	assert.Equal(t, guidance.FallbackMeditation(domain.PhaseMenstrual), m)

	plan, err := svc.MealPlan(ctx, domain.Date(2024, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, guidance.FallbackMealPlan(domain.PhaseMenstrual), plan)
}

func TestGuidanceService_NoProvider(t *testing.T) {
	r := newRepos(t)
	r.configure(t)
	svc := newGuidanceService(r, nil)

	assert.False(t, svc.AIEnabled())
	plan, err := svc.MealPlan(context.Background(), domain.Date(2024, 3, 8))
	require.NoError(t, err)
	assert.Equal(t, guidance.SourceFallback, plan.Source)
}

func TestGuidanceService_Unconfigured(t *testing.T) {
	r := newRepos(t)
	svc := newGuidanceService(r, &recordingProvider{})

	_, err := svc.Meditation(context.Background(), today)
	assert.True(t, domain.IsConfigError(err))
	_, err = svc.MealPlan(context.Background(), today)
	assert.True(t, domain.IsConfigError(err))
}

func TestGuidanceService_Remedies_OnePerTrackedSymptom(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	require.NoError(t, r.entries.Append(ctx, testutil.NewTestEntry(domain.Date(2024, 3, 2), []string{"Headache", "Cramps"})))
	require.NoError(t, r.entries.Append(ctx, testutil.NewTestEntry(domain.Date(2024, 3, 4), []string{"Cramps", domain.NoneSymptom})))

	p := &recordingProvider{}
	svc := newGuidanceService(r, p)

	remedies, err := svc.Remedies(ctx)
	require.NoError(t, err)
	require.Len(t, remedies, 2)
	assert.Equal(t, "Cramps", remedies[0].Symptom)
	assert.Equal(t, "Headache", remedies[1].Symptom)
	assert.Equal(t, []string{"Cramps", "Headache"}, p.remedies)
}

func TestGuidanceService_Remedy(t *testing.T) {
	r := newRepos(t)
	svc := newGuidanceService(r, &recordingProvider{fail: true})

	rem, err := svc.Remedy(context.Background(), "Bloating")
	require.NoError(t, err)
	assert.Equal(t, guidance.FallbackRemedy("Bloating"), rem)

	_, err = svc.Remedy(context.Background(), domain.NoneSymptom)
	assert.True(t, domain.IsValidationError(err))
}

func TestGuidanceService_Remedy_BlankOrPaddedSymptom(t *testing.T) {
	r := newRepos(t)
	svc := newGuidanceService(r, &recordingProvider{fail: true})

	for _, blank := range []string{"", "   ", "\t\n", " None "} {
		_, err := svc.Remedy(context.Background(), blank)
		assert.True(t, domain.IsValidationError(err), "%q", blank)
	}

	rem, err := svc.Remedy(context.Background(), "  Bloating ")
	require.NoError(t, err)
	assert.Equal(t, guidance.FallbackRemedy("Bloating"), rem)
}
