package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mooncyc/internal/db"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/importer"
	"github.com/alexanderramin/mooncyc/internal/repository"
)

type archiveService struct {
	cycles   repository.CycleRepo
	entries  repository.SymptomLogRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewArchiveService(
	cycles repository.CycleRepo,
	entries repository.SymptomLogRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ArchiveService {
	return &archiveService{
		cycles:   cycles,
		entries:  entries,
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *archiveService) ImportFiles(ctx context.Context, cyclePath, tasksPath string) (*ImportResult, error) {
	if cyclePath == "" && tasksPath == "" {
		return nil, errors.New("nothing to import: no cycle or tasks file given")
	}
	var rec *importer.CycleRecord
	if cyclePath != "" {
		r, err := importer.ReadCycleFile(cyclePath)
		if err != nil {
			return nil, fmt.Errorf("loading cycle file: %w", err)
		}
		rec = r
	}
	var tasks []importer.TaskRecord
	if tasksPath != "" {
		t, err := importer.ReadTasksFile(tasksPath)
		if err != nil {
			return nil, fmt.Errorf("loading tasks file: %w", err)
		}
		// An empty file still replaces the task list.
		tasks = t
		if tasks == nil {
			tasks = []importer.TaskRecord{}
		}
	}
	return s.Import(ctx, rec, tasks)
}

// Import replaces the cycle configuration and symptom log when cycle is
// non-nil, and the task list when tasks is non-nil.
func (s *archiveService) Import(ctx context.Context, cycle *importer.CycleRecord, tasks []importer.TaskRecord) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-data",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var errs []error
	if cycle != nil {
		errs = append(errs, importer.ValidateCycleRecord(cycle)...)
	}
	if tasks != nil {
		errs = append(errs, importer.ValidateTaskRecords(tasks)...)
	}
	if len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	var (
		model   domain.CycleModel
		entries []domain.SymptomEntry
		parsed  []domain.Task
	)
	if cycle != nil {
		model, entries, err = importer.CycleToDomain(cycle)
		if err != nil {
			return nil, fmt.Errorf("converting cycle record: %w", err)
		}
	}
	if tasks != nil {
		parsed, err = importer.TasksToDomain(tasks)
		if err != nil {
			return nil, fmt.Errorf("converting task records: %w", err)
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if cycle != nil {
			txCycles := repository.NewSQLiteCycleRepo(tx)
			txEntries := repository.NewSQLiteSymptomLogRepo(tx)
			if err := txCycles.Save(ctx, model); err != nil {
				return err
			}
			if err := txEntries.DeleteAll(ctx); err != nil {
				return err
			}
			for i := range entries {
				if err := txEntries.Append(ctx, &entries[i]); err != nil {
					return fmt.Errorf("importing symptoms_log[%d]: %w", i, err)
				}
			}
		}
		if tasks != nil {
			txTasks := repository.NewSQLiteTaskRepo(tx)
			if err := txTasks.DeleteAll(ctx); err != nil {
				return err
			}
			for i := range parsed {
				if err := txTasks.Create(ctx, &parsed[i]); err != nil {
					return fmt.Errorf("importing task %q: %w", parsed[i].Name, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &ImportResult{
		Configured: model.Configured(),
		EntryCount: len(entries),
		TaskCount:  len(parsed),
	}
	fields["entry_count"] = result.EntryCount
	fields["task_count"] = result.TaskCount
	return result, nil
}

func (s *archiveService) Export(ctx context.Context) (importer.CycleRecord, []importer.TaskRecord, error) {
	c, err := s.cycles.Get(ctx)
	if err != nil {
		return importer.CycleRecord{}, nil, fmt.Errorf("loading cycle: %w", err)
	}
	entries, err := s.entries.List(ctx)
	if err != nil {
		return importer.CycleRecord{}, nil, fmt.Errorf("loading symptom log: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return importer.CycleRecord{}, nil, fmt.Errorf("loading tasks: %w", err)
	}
	return importer.CycleFromDomain(c, entries), importer.TasksFromDomain(tasks), nil
}

func (s *archiveService) ExportFiles(ctx context.Context, cyclePath, tasksPath string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"cycle_file": cyclePath, "tasks_file": tasksPath}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-data",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	rec, tasks, err := s.Export(ctx)
	if err != nil {
		return err
	}
	if cyclePath != "" {
		if err := importer.WriteCycleFile(cyclePath, rec); err != nil {
			return fmt.Errorf("writing cycle file: %w", err)
		}
	}
	if tasksPath != "" {
		if err := importer.WriteTasksFile(tasksPath, tasks); err != nil {
			return fmt.Errorf("writing tasks file: %w", err)
		}
	}
	return nil
}

// formatValidationErrors folds every import problem into one ValidationError
// so callers can report them together.
func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return &domain.ValidationError{Message: msg}
}
