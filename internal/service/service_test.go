package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"plates-planner/internal/model"
	"plates-planner/internal/planner"
	"plates-planner/internal/repository"
)

// testNow is a fixed Monday so day-type and recurrence assertions are
// stable.
var testNow = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	db        *gorm.DB
	users     *repository.UserRepository
	plateRepo *repository.PlateRepository
	taskRepo  *repository.TaskRepository
	planRepo  *repository.PlanRepository
	reviews   *repository.ReviewRepository

	taskSvc   *TaskService
	plateSvc  *PlateService
	planSvc   *PlanService
	reviewSvc *ReviewService
	statsSvc  *StatsService
	userSvc   *UserService

	user *model.User
}

// newTestEnv wires the full service stack onto a fresh in-memory SQLite
// database with clocks pinned to testNow.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repository.NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	users := repository.NewUserRepository(db)
	plateRepo := repository.NewPlateRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	planRepo := repository.NewPlanRepository(db)
	reviews := repository.NewReviewRepository(db)

	clock := func() time.Time { return testNow }

	taskSvc := NewTaskService(taskRepo, plateRepo)
	taskSvc.now = clock
	plateSvc := NewPlateService(plateRepo, milestoneRepo, taskRepo)
	planSvc := NewPlanService(planRepo, taskRepo, plateRepo, reviews, users, taskSvc, planner.HeuristicGenerator{})
	planSvc.now = clock
	reviewSvc := NewReviewService(reviews)
	reviewSvc.now = clock
	statsSvc := NewStatsService(planRepo, taskRepo, plateRepo, reviews, reviewSvc)
	statsSvc.now = clock
	userSvc := NewUserService(users, plateRepo, planRepo, reviews, taskSvc)

	user, err := users.EnsureDefault(context.Background())
	require.NoError(t, err)

	return &testEnv{
		db:        db,
		users:     users,
		plateRepo: plateRepo,
		taskRepo:  taskRepo,
		planRepo:  planRepo,
		reviews:   reviews,
		taskSvc:   taskSvc,
		plateSvc:  plateSvc,
		planSvc:   planSvc,
		reviewSvc: reviewSvc,
		statsSvc:  statsSvc,
		userSvc:   userSvc,
		user:      user,
	}
}

func (e *testEnv) createPlate(t *testing.T, name string) *model.Plate {
	t.Helper()
	plate := &model.Plate{Name: name}
	require.NoError(t, e.plateSvc.Create(context.Background(), e.user.ID, plate))
	return plate
}

func (e *testEnv) createTask(t *testing.T, task *model.Task) *model.Task {
	t.Helper()
	require.NoError(t, e.taskSvc.Create(context.Background(), e.user.ID, task))
	return task
}

func dailyTask(plateID uint, title string) *model.Task {
	return &model.Task{
		PlateID:        plateID,
		Title:          title,
		IsRecurring:    true,
		RecurrenceRule: model.RuleJSON(model.RecurrenceRule{Pattern: model.RecurDaily}),
	}
}
