package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plates-planner/internal/model"
	"plates-planner/internal/repository"
)

func TestCreateRecurringSetsInitialOccurrence(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Health")

	task := env.createTask(t, dailyTask(plate.ID, "Meditate"))

	require.NotNil(t, task.NextOccurrence)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), *task.NextOccurrence)
}

func TestCompleteOneTimeClosesPermanently(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Home")
	task := env.createTask(t, &model.Task{PlateID: plate.ID, Title: "Fix faucet"})

	done, err := env.taskSvc.Complete(context.Background(), env.user.ID, task.ID)
	require.NoError(t, err)

	assert.Equal(t, model.TaskStatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
}

func TestCompleteRecurringReschedules(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Health")
	task := env.createTask(t, dailyTask(plate.ID, "Meditate"))

	done, err := env.taskSvc.Complete(context.Background(), env.user.ID, task.ID)
	require.NoError(t, err)

	assert.Equal(t, model.TaskStatusPending, done.Status, "recurring task cycles instead of closing")
	require.NotNil(t, done.CompletedAt)
	require.NotNil(t, done.NextOccurrence)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), *done.NextOccurrence)
}

func TestCompleteRecurringPastEndDateClosesPermanently(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Health")
	task := env.createTask(t, &model.Task{
		PlateID:     plate.ID,
		Title:       "Physio exercises",
		IsRecurring: true,
		RecurrenceRule: model.RuleJSON(model.RecurrenceRule{
			Pattern: model.RecurDaily,
			EndDate: "2025-06-02",
		}),
	})

	done, err := env.taskSvc.Complete(context.Background(), env.user.ID, task.ID)
	require.NoError(t, err)

	assert.Equal(t, model.TaskStatusCompleted, done.Status, "terminated recurrence closes for good")
	require.NotNil(t, done.CompletedAt)
}

func TestSkipRecurringPushesWithoutCompletion(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Health")
	task := env.createTask(t, dailyTask(plate.ID, "Meditate"))

	skipped, err := env.taskSvc.Skip(context.Background(), env.user.ID, task.ID)
	require.NoError(t, err)

	assert.Equal(t, model.TaskStatusPending, skipped.Status)
	assert.Nil(t, skipped.CompletedAt, "skip records no completion")
	require.NotNil(t, skipped.NextOccurrence)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), *skipped.NextOccurrence)
}

func TestSkipOneTimeIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Home")
	task := env.createTask(t, &model.Task{PlateID: plate.ID, Title: "Fix faucet"})

	skipped, err := env.taskSvc.Skip(context.Background(), env.user.ID, task.ID)
	require.NoError(t, err)

	assert.Equal(t, model.TaskStatusPending, skipped.Status)
	assert.Nil(t, skipped.CompletedAt)
	assert.Nil(t, skipped.NextOccurrence)
}

func TestTaskLookupScopedToOwner(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.taskSvc.Get(context.Background(), env.user.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTasksOnArchivedPlatesDisappear(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Old project")
	env.createTask(t, &model.Task{PlateID: plate.ID, Title: "Leftover"})

	_, err := env.plateSvc.Archive(context.Background(), env.user.ID, plate.ID)
	require.NoError(t, err)

	tasks, err := env.taskSvc.List(context.Background(), env.user.ID, repository.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
