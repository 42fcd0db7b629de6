package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/mooncyc/internal/contract"
	"github.com/alexanderramin/mooncyc/internal/cycle"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/guidance"
	"github.com/alexanderramin/mooncyc/internal/repository"
)

type cycleService struct {
	cycles   repository.CycleRepo
	observer UseCaseObserver
}

func NewCycleService(cycles repository.CycleRepo, observers ...UseCaseObserver) CycleService {
	return &cycleService{cycles: cycles, observer: useCaseObserverOrNoop(observers)}
}

func (s *cycleService) Configure(ctx context.Context, lastPeriod time.Time, cycleLength, periodLength int) (c domain.CycleModel, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"cycle_length":  cycleLength,
		"period_length": periodLength,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "configure-cycle",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	c, err = domain.NewCycleModel(lastPeriod, cycleLength, periodLength)
	if err != nil {
		return domain.CycleModel{}, err
	}
	if err := s.cycles.Save(ctx, c); err != nil {
		return domain.CycleModel{}, fmt.Errorf("saving cycle: %w", err)
	}
	return c, nil
}

func (s *cycleService) Get(ctx context.Context) (domain.CycleModel, error) {
	return s.cycles.Get(ctx)
}

func (s *cycleService) Today(ctx context.Context, req contract.TodayRequest) (*contract.TodayView, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	today := domain.DateOf(now)

	c, err := s.cycles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cycle: %w", err)
	}
	day, err := cycle.DayInCycle(c, today)
	if err != nil {
		return nil, err
	}
	phase := cycle.PhaseForDay(day, c.PeriodLength)
	next, err := cycle.NextPeriodStart(c, today)
	if err != nil {
		return nil, err
	}

	view := &contract.TodayView{
		Date:                today,
		DayOfCycle:          day + 1,
		CycleLength:         c.CycleLength,
		Phase:               phase,
		Energy:              cycle.EnergyLevel(phase),
		Description:         guidance.Describe(phase),
		Exercise:            guidance.Exercise(phase),
		NextPeriod:          next,
		DaysUntilNextPeriod: domain.DaysBetween(today, next),
	}

	if req.CalendarDays > 0 {
		days, err := cycle.PhaseCalendar(c, today, req.CalendarDays)
		if err != nil {
			return nil, err
		}
		view.Calendar = make([]contract.CalendarDay, len(days))
		for i, d := range days {
			view.Calendar[i] = contract.CalendarDay{Date: d.Date, DayOfCycle: d.DayInCycle + 1, Phase: d.Phase}
		}
	}
	return view, nil
}
