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

// TaskService manages tasks, including the recurring completion cycle.
type TaskService struct {
	tasks  *repository.TaskRepository
	plates *repository.PlateRepository
	now    func() time.Time
}

func NewTaskService(tasks *repository.TaskRepository, plates *repository.PlateRepository) *TaskService {
	return &TaskService{tasks: tasks, plates: plates, now: time.Now}
}

func (s *TaskService) List(ctx context.Context, userID uint, filter repository.TaskFilter) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID, filter)
}

func (s *TaskService) Get(ctx context.Context, userID, id uint) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, userID, id)
	switch {
	case err == nil:
		return task, nil
	case err == gorm.ErrRecordNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get task: %w", err)
	}
}

// Create stores a new task. Recurring tasks start due immediately so
// they show up in the next generated plan.
func (s *TaskService) Create(ctx context.Context, userID uint, task *model.Task) error {
	if _, err := s.plates.GetByID(ctx, userID, task.PlateID); err != nil {
		switch {
		case err == gorm.ErrRecordNotFound:
			return ErrNotFound
		default:
			return fmt.Errorf("check plate: %w", err)
		}
	}
	if task.Status == "" {
		task.Status = model.TaskStatusPending
	}
	if task.IsRecurring && task.NextOccurrence == nil {
		today := planner.DateOnly(s.now())
		task.NextOccurrence = &today
	}
	return s.tasks.Create(ctx, task)
}

// QuickAdd creates a bare pending task from just a title.
func (s *TaskService) QuickAdd(ctx context.Context, userID, plateID uint, title string) (*model.Task, error) {
	task := &model.Task{
		PlateID:  plateID,
		Title:    title,
		Status:   model.TaskStatusPending,
		Priority: model.TaskPriorityMedium,
	}
	if err := s.Create(ctx, userID, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id uint, update model.TaskUpdate) (*model.Task, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.tasks.Update(ctx, userID, id, update)
}

func (s *TaskService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

// Complete finishes a task. One-time tasks close permanently. Recurring
// tasks record the completion and roll forward to their next occurrence;
// when the recurrence has ended they close permanently too.
func (s *TaskService) Complete(ctx context.Context, userID, id uint) (*model.Task, error) {
	task, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rule := task.Rule()
	if !task.IsRecurring || rule == nil {
		if err := s.tasks.CompletePermanently(ctx, id, now); err != nil {
			return nil, err
		}
		return s.Get(ctx, userID, id)
	}

	next := planner.NextOccurrence(*rule, s.occurrenceBase(task))
	if next == nil {
		if err := s.tasks.CompletePermanently(ctx, id, now); err != nil {
			return nil, err
		}
		return s.Get(ctx, userID, id)
	}
	if err := s.tasks.RescheduleRecurring(ctx, id, *next, now); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// Skip pushes a recurring task to its next occurrence without recording
// a completion. Skipping a one-time task changes nothing.
func (s *TaskService) Skip(ctx context.Context, userID, id uint) (*model.Task, error) {
	task, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	rule := task.Rule()
	if !task.IsRecurring || rule == nil {
		return task, nil
	}
	next := planner.NextOccurrence(*rule, s.occurrenceBase(task))
	if next == nil {
		return task, nil
	}
	if err := s.tasks.PushOccurrence(ctx, id, *next); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// occurrenceBase is the date the next occurrence is computed from: today,
// or the scheduled occurrence when it is still in the future.
func (s *TaskService) occurrenceBase(task *model.Task) time.Time {
	base := planner.DateOnly(s.now())
	if task.NextOccurrence != nil {
		if due := planner.DateOnly(*task.NextOccurrence); due.After(base) {
			base = due
		}
	}
	return base
}
