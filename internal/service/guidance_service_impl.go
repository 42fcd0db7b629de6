package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/cycle"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/guidance"
	"github.com/alexanderramin/mooncyc/internal/repository"
)

type guidanceService struct {
	cycles   repository.CycleRepo
	entries  repository.SymptomLogRepo
	resolver *guidance.Resolver
	observer UseCaseObserver
}

func NewGuidanceService(
	cycles repository.CycleRepo,
	entries repository.SymptomLogRepo,
	resolver *guidance.Resolver,
	observers ...UseCaseObserver,
) GuidanceService {
	return &guidanceService{
		cycles:   cycles,
		entries:  entries,
		resolver: resolver,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *guidanceService) AIEnabled() bool {
	return s.resolver.AIEnabled()
}

// context loads the phase on today and the symptoms of the latest log entry.
func (s *guidanceService) context(ctx context.Context, today time.Time) (domain.Phase, []string, error) {
	c, err := s.cycles.Get(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("loading cycle: %w", err)
	}
	phase, err := cycle.PhaseFor(c, today)
	if err != nil {
		return "", nil, err
	}
	log, err := s.entries.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("loading symptom log: %w", err)
	}
	return phase, cycle.LatestSymptoms(log), nil
}

func (s *guidanceService) Meditation(ctx context.Context, today time.Time) (m guidance.Meditation, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "meditation",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	phase, symptoms, err := s.context(ctx, today)
	if err != nil {
		return guidance.Meditation{}, err
	}
	m = s.resolver.Meditation(ctx, phase, symptoms, cycle.EnergyLevel(phase))
	fields["phase"] = string(phase)
	fields["source"] = string(m.Source)
	return m, nil
}

func (s *guidanceService) MealPlan(ctx context.Context, today time.Time) (p guidance.MealPlan, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "meal-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	phase, symptoms, err := s.context(ctx, today)
	if err != nil {
		return guidance.MealPlan{}, err
	}
	p = s.resolver.MealPlan(ctx, phase, symptoms)
	fields["phase"] = string(phase)
	fields["source"] = string(p.Source)
	return p, nil
}

func (s *guidanceService) Remedy(ctx context.Context, symptom string) (guidance.Remedy, error) {
	symptom = strings.TrimSpace(symptom)
	if symptom == "" || symptom == domain.NoneSymptom {
		return guidance.Remedy{}, &domain.ValidationError{Field: "symptom", Message: "must name a symptom"}
	}
	return s.resolver.Remedy(ctx, symptom), nil
}

func (s *guidanceService) Remedies(ctx context.Context) (out []guidance.Remedy, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "remedies",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	log, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading symptom log: %w", err)
	}
	tracked := cycle.TrackedSymptoms(log)
	out = make([]guidance.Remedy, 0, len(tracked))
	for _, symptom := range tracked {
		out = append(out, s.resolver.Remedy(ctx, symptom))
	}
	fields["symptom_count"] = len(tracked)
	return out, nil
}
