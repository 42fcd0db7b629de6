package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/contract"
	"github.com/alexanderramin/mooncyc/internal/cycle"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/repository"
	"github.com/google/uuid"
)

type symptomService struct {
	entries  repository.SymptomLogRepo
	cycles   repository.CycleRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewSymptomService(entries repository.SymptomLogRepo, cycles repository.CycleRepo, observers ...UseCaseObserver) SymptomService {
	return &symptomService{
		entries:  entries,
		cycles:   cycles,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *symptomService) Log(ctx context.Context, e *domain.SymptomEntry) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"symptom_count": len(e.Symptoms)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log-symptoms",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = startedAt
	e.Date = domain.DateOf(e.Date)
	e.Notes = strings.TrimSpace(e.Notes)
	if e.Date.After(domain.DateOf(s.now())) {
		return &domain.ValidationError{Field: "date", Message: "cannot log a future date"}
	}

	c, err := s.cycles.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading cycle: %w", err)
	}
	e.Phase = nil
	if c.Configured() {
		phase, err := cycle.PhaseFor(c, e.Date)
		if err != nil {
			return err
		}
		e.Phase = &phase
		fields["phase"] = string(phase)
	}

	if err := e.Validate(); err != nil {
		return err
	}
	return s.entries.Append(ctx, e)
}

func (s *symptomService) List(ctx context.Context) ([]domain.SymptomEntry, error) {
	return s.entries.List(ctx)
}

func (s *symptomService) Delete(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

func (s *symptomService) Patterns(ctx context.Context, req contract.PatternsRequest) (view *contract.PatternsView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"top_n": req.TopN}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "symptom-patterns",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	c, err := s.cycles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cycle: %w", err)
	}
	log, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading symptom log: %w", err)
	}
	table, err := cycle.BuildFrequencyTable(c, log)
	if err != nil {
		return nil, err
	}

	topN := req.TopN
	if topN <= 0 {
		topN = contract.DefaultTopSymptoms
	}
	top := cycle.TopSymptoms(table, topN)

	view = &contract.PatternsView{
		CycleLength: c.CycleLength,
		EntryCount:  len(log),
		Top:         make([]contract.SymptomTotal, len(top)),
		Series:      make(map[string][]int, len(top)),
		Tracked:     cycle.TrackedSymptoms(log),
	}
	for i, sc := range top {
		view.Top[i] = contract.SymptomTotal{Symptom: sc.Symptom, Count: sc.Count}
		view.Series[sc.Symptom] = table.Series(sc.Symptom)
	}
	fields["entry_count"] = len(log)
	return view, nil
}
