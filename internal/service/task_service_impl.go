package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/repository"
	"github.com/alexanderramin/mooncyc/internal/scheduler"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	opts     scheduler.Options
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, opts scheduler.Options, observers ...UseCaseObserver) TaskService {
	return &taskService{tasks: tasks, opts: opts, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Add(ctx context.Context, in NewTaskInput) (t *domain.Task, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"category": string(in.Category),
		"hours":    in.Hours,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "add-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	t, err = domain.NewTask(in.Name, in.Category, in.Deadline, in.Hours, in.Intensity)
	if err != nil {
		return nil, err
	}
	t.ID = uuid.New().String()
	t.CreatedAt = startedAt
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return t, nil
}

func (s *taskService) List(ctx context.Context, includeCompleted bool) ([]domain.Task, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	if includeCompleted {
		return all, nil
	}
	active := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if !t.Completed {
			active = append(active, t)
		}
	}
	return active, nil
}

func (s *taskService) Complete(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.MarkCompleted()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Remove(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) Schedule(ctx context.Context, today time.Time) (sched scheduler.Schedule, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"window_days": s.opts.WindowDays}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return scheduler.Schedule{}, fmt.Errorf("loading tasks: %w", err)
	}
	sched = scheduler.BuildSchedule(tasks, today, s.opts)
	fields["overloaded_days"] = len(sched.OverloadedDays())
	return sched, nil
}
