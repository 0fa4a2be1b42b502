package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"plates-planner/internal/model"
	"plates-planner/internal/planner"
	"plates-planner/internal/repository"
)

// reviewLookback is how many recent reviews feed plan generation.
const reviewLookback = 7

// PlanService orchestrates daily plan generation and plan item workflows.
type PlanService struct {
	plans     *repository.PlanRepository
	tasks     *repository.TaskRepository
	plates    *repository.PlateRepository
	reviews   *repository.ReviewRepository
	users     *repository.UserRepository
	taskSvc   *TaskService
	generator planner.Generator
	now       func() time.Time
}

func NewPlanService(
	plans *repository.PlanRepository,
	tasks *repository.TaskRepository,
	plates *repository.PlateRepository,
	reviews *repository.ReviewRepository,
	users *repository.UserRepository,
	taskSvc *TaskService,
	generator planner.Generator,
) *PlanService {
	return &PlanService{
		plans:     plans,
		tasks:     tasks,
		plates:    plates,
		reviews:   reviews,
		users:     users,
		taskSvc:   taskSvc,
		generator: generator,
		now:       time.Now,
	}
}

// GenerateForDate builds and persists the plan for the date, replacing
// any existing one. When nothing is plannable it persists nothing and
// returns nil.
func (s *PlanService) GenerateForDate(ctx context.Context, user *model.User, date time.Time) (*model.DailyPlan, error) {
	date = planner.DateOnly(date)

	tasks, err := s.tasks.ListByUser(ctx, user.ID, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}
	plates, err := s.plates.ListForPlanning(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.RecentByUser(ctx, user.ID, reviewLookback)
	if err != nil {
		return nil, err
	}
	completions, err := s.tasks.RecentCompletions(ctx, user.ID, date.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	generated := s.generator.Generate(planner.Input{
		User:              *user,
		Date:              date,
		Tasks:             tasks,
		Plates:            plates,
		RecentReviews:     reviews,
		RecentCompletions: completions,
	})
	if len(generated.Items) == 0 {
		return nil, nil
	}

	plan := &model.DailyPlan{
		UserID:           user.ID,
		Date:             generated.Date,
		DayType:          generated.DayType,
		AvailableMinutes: generated.AvailableMinutes,
		GeneratedAt:      s.now(),
	}
	plan.Items = make([]model.PlanItem, len(generated.Items))
	for i, item := range generated.Items {
		plan.Items[i] = model.PlanItem{
			TaskID:       item.TaskID,
			SortOrder:    item.SortOrder,
			ContextGroup: item.ContextGroup,
		}
	}

	if err := s.plans.Replace(ctx, plan); err != nil {
		return nil, err
	}
	return s.plans.GetByUserAndDate(ctx, user.ID, generated.Date)
}

// NowDate is today's date as the planner sees it.
func (s *PlanService) NowDate() time.Time {
	return planner.DateOnly(s.now())
}

// Today returns the current plan, generating one on first access.
func (s *PlanService) Today(ctx context.Context, user *model.User) (*model.DailyPlan, error) {
	date := planner.DateOnly(s.now())
	plan, err := s.plans.GetByUserAndDate(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		return plan, nil
	}
	return s.GenerateForDate(ctx, user, date)
}

func (s *PlanService) Get(ctx context.Context, userID, id uint) (*model.DailyPlan, error) {
	plan, err := s.plans.GetByID(ctx, userID, id)
	switch {
	case err == nil:
		return plan, nil
	case err == gorm.ErrRecordNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get plan: %w", err)
	}
}

func (s *PlanService) ReorderItems(ctx context.Context, userID, planID uint, itemIDs []uint) (*model.DailyPlan, error) {
	if _, err := s.Get(ctx, userID, planID); err != nil {
		return nil, err
	}
	if err := s.plans.ReorderItems(ctx, planID, itemIDs); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, planID)
}

// CompleteItem checks off a plan item and completes its task, which
// rolls recurring tasks forward.
func (s *PlanService) CompleteItem(ctx context.Context, userID, planID, itemID uint) (*model.PlanItem, error) {
	if _, err := s.Get(ctx, userID, planID); err != nil {
		return nil, err
	}
	item, err := s.plans.CompleteItem(ctx, planID, itemID, s.now())
	switch {
	case err == nil:
	case err == gorm.ErrRecordNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
	task, err := s.taskSvc.Complete(ctx, userID, item.TaskID)
	if err != nil {
		return nil, err
	}
	item.Task = *task
	return item, nil
}

// SkipItem marks a plan item skipped and pushes a recurring task to its
// next occurrence without recording a completion.
func (s *PlanService) SkipItem(ctx context.Context, userID, planID, itemID uint) (*model.PlanItem, error) {
	if _, err := s.Get(ctx, userID, planID); err != nil {
		return nil, err
	}
	item, err := s.plans.SkipItem(ctx, planID, itemID)
	switch {
	case err == nil:
	case err == gorm.ErrRecordNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
	task, err := s.taskSvc.Skip(ctx, userID, item.TaskID)
	if err != nil {
		return nil, err
	}
	item.Task = *task
	return item, nil
}

// GenerateForAllUsers regenerates today's plan for every account. The
// cron endpoint and the in-process scheduler both call this.
func (s *PlanService) GenerateForAllUsers(ctx context.Context) (int, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}
	date := planner.DateOnly(s.now())
	generated := 0
	for i := range users {
		plan, err := s.GenerateForDate(ctx, &users[i], date)
		if err != nil {
			return generated, fmt.Errorf("generate plan for user %d: %w", users[i].ID, err)
		}
		if plan != nil {
			generated++
		}
	}
	return generated, nil
}
