package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plates-planner/internal/model"
)

func TestGenerateForDatePersistsPlan(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Work")
	for i := 0; i < 3; i++ {
		env.createTask(t, &model.Task{PlateID: plate.ID, Title: fmt.Sprintf("Task %d", i)})
	}

	plan, err := env.planSvc.GenerateForDate(context.Background(), env.user, testNow)
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Equal(t, model.DayTypeWorkday, plan.DayType, "2025-06-02 is a Monday")
	assert.Len(t, plan.Items, 3)
	for i, item := range plan.Items {
		assert.Equal(t, i, item.SortOrder)
		assert.NotZero(t, item.Task.ID, "items preload their tasks")
	}
}

func TestGenerateReplacesExistingPlan(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Work")
	env.createTask(t, &model.Task{PlateID: plate.ID, Title: "Only task"})

	first, err := env.planSvc.GenerateForDate(context.Background(), env.user, testNow)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := env.planSvc.GenerateForDate(context.Background(), env.user, testNow)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	require.NoError(t, env.db.Model(&model.DailyPlan{}).
		Where("user_id = ? AND date = ?", env.user.ID, first.Date).
		Count(&count).Error)
	assert.EqualValues(t, 1, count, "one plan per user and date")

	var orphans int64
	require.NoError(t, env.db.Model(&model.PlanItem{}).
		Where("daily_plan_id = ?", first.ID).
		Count(&orphans).Error)
	assert.Zero(t, orphans, "replaced plan leaves no items behind")
}

func TestGenerateWithNothingPlannablePersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.createPlate(t, "Empty")

	plan, err := env.planSvc.GenerateForDate(context.Background(), env.user, testNow)
	require.NoError(t, err)
	assert.Nil(t, plan)

	var count int64
	require.NoError(t, env.db.Model(&model.DailyPlan{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTodayGeneratesOnFirstAccessOnly(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Work")
	env.createTask(t, &model.Task{PlateID: plate.ID, Title: "Only task"})

	first, err := env.planSvc.Today(context.Background(), env.user)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := env.planSvc.Today(context.Background(), env.user)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID, "second access returns the stored plan")
}

func TestCompletePlanItemRollsRecurringTaskForward(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Health")
	task := env.createTask(t, dailyTask(plate.ID, "Meditate"))

	plan, err := env.planSvc.GenerateForDate(context.Background(), env.user, testNow)
	require.NoError(t, err)
	require.NotNil(t, plan)
	require.Len(t, plan.Items, 1)

	item, err := env.planSvc.CompleteItem(context.Background(), env.user.ID, plan.ID, plan.Items[0].ID)
	require.NoError(t, err)

	assert.True(t, item.Completed)
	require.NotNil(t, item.CompletedAt)
	assert.Equal(t, task.ID, item.Task.ID)
	assert.Equal(t, model.TaskStatusPending, item.Task.Status)
	require.NotNil(t, item.Task.NextOccurrence)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), *item.Task.NextOccurrence)
}

func TestSkipPlanItemRecordsNoCompletion(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Health")
	env.createTask(t, dailyTask(plate.ID, "Meditate"))

	plan, err := env.planSvc.GenerateForDate(context.Background(), env.user, testNow)
	require.NoError(t, err)
	require.NotNil(t, plan)
	require.Len(t, plan.Items, 1)

	item, err := env.planSvc.SkipItem(context.Background(), env.user.ID, plan.ID, plan.Items[0].ID)
	require.NoError(t, err)

	assert.True(t, item.Skipped)
	assert.False(t, item.Completed)
	assert.Nil(t, item.Task.CompletedAt)
}

func TestReorderPlanItems(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Work")
	for i := 0; i < 3; i++ {
		env.createTask(t, &model.Task{PlateID: plate.ID, Title: fmt.Sprintf("Task %d", i)})
	}

	plan, err := env.planSvc.GenerateForDate(context.Background(), env.user, testNow)
	require.NoError(t, err)
	require.Len(t, plan.Items, 3)

	reversed := []uint{plan.Items[2].ID, plan.Items[1].ID, plan.Items[0].ID}
	updated, err := env.planSvc.ReorderItems(context.Background(), env.user.ID, plan.ID, reversed)
	require.NoError(t, err)

	require.Len(t, updated.Items, 3)
	for i, id := range reversed {
		assert.Equal(t, id, updated.Items[i].ID)
		assert.Equal(t, i, updated.Items[i].SortOrder)
	}
}

func TestGenerateForAllUsers(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Work")
	env.createTask(t, &model.Task{PlateID: plate.ID, Title: "Only task"})

	count, err := env.planSvc.GenerateForAllUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
