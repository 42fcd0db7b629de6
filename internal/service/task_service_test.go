package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/repository"
	"github.com/alexanderramin/mooncyc/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = domain.Date(2024, 3, 1)

func addTask(t *testing.T, svc TaskService, name string, daysUntil int, hours float64) *domain.Task {
	t.Helper()
	task, err := svc.Add(context.Background(), NewTaskInput{
		Name:      name,
		Category:  domain.CategoryWork,
		Deadline:  today.AddDate(0, 0, daysUntil),
		Hours:     hours,
		Intensity: domain.IntensityModerate,
	})
	require.NoError(t, err)
	return task
}

func TestTaskService_Add_Validates(t *testing.T) {
	r := newRepos(t)
	obs := &captureObserver{}
	svc := NewTaskService(r.tasks, scheduler.DefaultOptions(), obs)

	_, err := svc.Add(context.Background(), NewTaskInput{
		Name:      "  ",
		Category:  domain.CategoryStudy,
		Deadline:  today,
		Hours:     25,
		Intensity: domain.IntensityLight,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, "add-task", obs.last().Name)
	assert.False(t, obs.last().Success)

	tasks, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_List_InsertionOrderAndCompletedFilter(t *testing.T) {
	r := newRepos(t)
	svc := NewTaskService(r.tasks, scheduler.DefaultOptions())
	ctx := context.Background()

	a := addTask(t, svc, "Essay", 5, 4)
	b := addTask(t, svc, "Slides", 2, 2)
	c := addTask(t, svc, "Report", 9, 6)
	require.NoError(t, svc.Complete(ctx, b.ID))

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, a.ID, active[0].ID)
	assert.Equal(t, c.ID, active[1].ID)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[1].Completed)
}

func TestTaskService_Complete_Twice(t *testing.T) {
	r := newRepos(t)
	svc := NewTaskService(r.tasks, scheduler.DefaultOptions())
	ctx := context.Background()

	task := addTask(t, svc, "Essay", 5, 4)
	require.NoError(t, svc.Complete(ctx, task.ID))
	require.NoError(t, svc.Complete(ctx, task.ID))

	stored, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
}

func TestTaskService_Remove_Missing(t *testing.T) {
	r := newRepos(t)
	svc := NewTaskService(r.tasks, scheduler.DefaultOptions())

	err := svc.Remove(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Complete(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_Schedule_SkipsCompletedAndUsesOptions(t *testing.T) {
	r := newRepos(t)
	obs := &captureObserver{}
	svc := NewTaskService(r.tasks, scheduler.Options{WindowDays: 7, HealthyLimit: 3}, obs)
	ctx := context.Background()

	addTask(t, svc, "Essay", 0, 4)
	done := addTask(t, svc, "Slides", 3, 6)
	addTask(t, svc, "Report", 10, 7)
	require.NoError(t, svc.Complete(ctx, done.ID))

	sched, err := svc.Schedule(ctx, today)
	require.NoError(t, err)

	require.Len(t, sched.Days, 7)
	assert.Equal(t, 3.0, sched.HealthyLimit)
	// Essay lands entirely on today; Report spreads 7h over the 7-day window.
	assert.InDelta(t, 5.0, sched.Days[0].TotalHours, 1e-9)
	assert.True(t, sched.Days[0].Overloaded)
	assert.InDelta(t, 1.0, sched.Days[6].TotalHours, 1e-9)
	assert.Len(t, sched.OverloadedDays(), 1)
	assert.Equal(t, 1, obs.last().Fields["overloaded_days"])
}
