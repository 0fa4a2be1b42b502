package service

import (
	"context"
	"fmt"

	"plates-planner/internal/model"
	"plates-planner/internal/repository"
)

// OnboardInput is the onboarding submission: schedule settings plus the
// catalog plates the user picked.
type OnboardInput struct {
	Schedule model.UserScheduleUpdate
	Plates   []string
}

// UserService manages the single local account, onboarding, and reset.
type UserService struct {
	users   *repository.UserRepository
	plates  *repository.PlateRepository
	plans   *repository.PlanRepository
	reviews *repository.ReviewRepository
	taskSvc *TaskService
}

func NewUserService(
	users *repository.UserRepository,
	plates *repository.PlateRepository,
	plans *repository.PlanRepository,
	reviews *repository.ReviewRepository,
	taskSvc *TaskService,
) *UserService {
	return &UserService{
		users:   users,
		plates:  plates,
		plans:   plans,
		reviews: reviews,
		taskSvc: taskSvc,
	}
}

// Current returns the local account, creating it on first run.
func (s *UserService) Current(ctx context.Context) (*model.User, error) {
	return s.users.EnsureDefault(ctx)
}

func (s *UserService) UpdateSchedule(ctx context.Context, id uint, update model.UserScheduleUpdate) (*model.User, error) {
	return s.users.UpdateSchedule(ctx, id, update)
}

// Onboard applies the schedule settings, seeds the picked catalog plates
// with their starter tasks, and marks the account onboarded. Picks that
// are not in the catalog are ignored.
func (s *UserService) Onboard(ctx context.Context, userID uint, input OnboardInput) (*model.User, error) {
	if _, err := s.users.UpdateSchedule(ctx, userID, input.Schedule); err != nil {
		return nil, err
	}

	for _, name := range input.Plates {
		suggested, ok := suggestedPlateByName(name)
		if !ok {
			continue
		}
		plate := &model.Plate{
			UserID:      userID,
			Name:        suggested.Name,
			Description: suggested.Description,
			Icon:        suggested.Icon,
			Color:       suggested.Color,
			Type:        suggested.Type,
			Status:      model.PlateStatusActive,
		}
		if err := s.plates.Create(ctx, plate); err != nil {
			return nil, fmt.Errorf("seed plate %q: %w", name, err)
		}
		for _, starter := range SuggestedTasks[name] {
			task := &model.Task{
				PlateID:  plate.ID,
				Title:    starter.Title,
				Status:   model.TaskStatusPending,
				Priority: model.TaskPriorityMedium,
			}
			if starter.Recurrence != "" {
				task.IsRecurring = true
				task.RecurrenceRule = model.RuleJSON(model.RecurrenceRule{
					Pattern: starter.Recurrence,
					Days:    starter.Days,
				})
			}
			if err := s.taskSvc.Create(ctx, userID, task); err != nil {
				return nil, fmt.Errorf("seed task %q: %w", starter.Title, err)
			}
		}
	}

	if err := s.users.MarkOnboarded(ctx, userID); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

// Reset wipes all plates, tasks, milestones, plans, and reviews and
// sends the account back through onboarding. Schedule settings survive.
func (s *UserService) Reset(ctx context.Context, userID uint) (*model.User, error) {
	if err := s.plans.DeleteAllForUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.reviews.DeleteAllForUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.plates.DeleteAllForUser(ctx, userID); err != nil {
		return nil, err
	}
	onboarded := false
	return s.users.UpdateSchedule(ctx, userID, model.UserScheduleUpdate{Onboarded: &onboarded})
}
