package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"plates-planner/internal/model"
)

// TaskFilter narrows task listings; zero values mean "any".
type TaskFilter struct {
	PlateID  uint
	Status   model.TaskStatus
	Priority model.TaskPriority
	Context  model.TaskContext
}

// TaskRepository handles CRUD for tasks. All listings are scoped to
// non-archived plates, so archived areas disappear from planning input.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) scoped(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Joins("JOIN plates ON plates.id = tasks.plate_id").
		Where("plates.user_id = ? AND plates.status <> ?", userID, model.PlateStatusArchived)
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint, filter TaskFilter) ([]model.Task, error) {
	query := r.scoped(ctx, userID)
	if filter.PlateID != 0 {
		query = query.Where("tasks.plate_id = ?", filter.PlateID)
	}
	if filter.Status != "" {
		query = query.Where("tasks.status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("tasks.priority = ?", filter.Priority)
	}
	if filter.Context != "" {
		query = query.Where("tasks.context = ?", filter.Context)
	}

	var tasks []model.Task
	if err := query.Order("tasks.sort_order ASC, tasks.created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.scoped(ctx, userID).Where("tasks.id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	db := r.db.WithContext(ctx)
	var nextOrder int
	if err := db.Model(&model.Task{}).
		Select("COALESCE(MAX(sort_order), -1) + 1").
		Where("plate_id = ?", task.PlateID).
		Scan(&nextOrder).Error; err != nil {
		return fmt.Errorf("next task order: %w", err)
	}
	task.SortOrder = nextOrder
	if err := db.Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Update applies the whitelisted task fields and returns the result.
func (r *TaskRepository) Update(ctx context.Context, userID, id uint, update model.TaskUpdate) (*model.Task, error) {
	updates := map[string]interface{}{}
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}
	if update.Priority != nil {
		updates["priority"] = *update.Priority
	}
	if update.EffortMinutes != nil {
		updates["effort_minutes"] = *update.EffortMinutes
	}
	if update.EnergyLevel != nil {
		updates["energy_level"] = *update.EnergyLevel
	}
	if update.Context != nil {
		updates["context"] = *update.Context
	}
	if update.TimePreference != nil {
		updates["time_preference"] = *update.TimePreference
	}
	if update.DueDate != nil {
		updates["due_date"] = *update.DueDate
	}
	if update.IsRecurring != nil {
		updates["is_recurring"] = *update.IsRecurring
	}
	if update.RecurrenceRule != nil {
		updates["recurrence_rule"] = model.RuleJSON(*update.RecurrenceRule)
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&model.Task{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update task: %w", err)
		}
	}
	return r.GetByID(ctx, userID, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// CompletePermanently closes a task for good.
func (r *TaskRepository) CompletePermanently(ctx context.Context, id uint, at time.Time) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       model.TaskStatusCompleted,
			"completed_at": at,
		}).Error; err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

// RescheduleRecurring records a completion, moves the task to its next
// occurrence, and resets it to pending so it cycles instead of closing.
func (r *TaskRepository) RescheduleRecurring(ctx context.Context, id uint, next, at time.Time) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          model.TaskStatusPending,
			"completed_at":    at,
			"next_occurrence": next,
		}).Error; err != nil {
		return fmt.Errorf("reschedule task: %w", err)
	}
	return nil
}

// PushOccurrence moves a recurring task forward without recording a
// completion (the skip workflow).
func (r *TaskRepository) PushOccurrence(ctx context.Context, id uint, next time.Time) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).
		Update("next_occurrence", next).Error; err != nil {
		return fmt.Errorf("push task occurrence: %w", err)
	}
	return nil
}

// RecentCompletions projects (plate, completed-at) pairs since the given
// time, most recent first. Feeds the planner and the health scorer.
func (r *TaskRepository) RecentCompletions(ctx context.Context, userID uint, since time.Time) ([]model.Completion, error) {
	var completions []model.Completion
	if err := r.scoped(ctx, userID).
		Select("tasks.plate_id AS plate_id, tasks.completed_at AS completed_at").
		Where("tasks.completed_at IS NOT NULL AND tasks.completed_at >= ?", since).
		Order("tasks.completed_at DESC").
		Scan(&completions).Error; err != nil {
		return nil, fmt.Errorf("recent completions: %w", err)
	}
	return completions, nil
}

// CountByStatus returns total and completed task counts for the user.
func (r *TaskRepository) CountByStatus(ctx context.Context, userID uint) (total, completed int64, err error) {
	if err = r.scoped(ctx, userID).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("count tasks: %w", err)
	}
	if err = r.scoped(ctx, userID).
		Where("tasks.status = ?", model.TaskStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, fmt.Errorf("count completed tasks: %w", err)
	}
	return total, completed, nil
}

func (r *TaskRepository) CountOverdue(ctx context.Context, userID uint, date time.Time) (int64, error) {
	var count int64
	if err := r.scoped(ctx, userID).
		Where("tasks.status <> ? AND tasks.due_date IS NOT NULL AND tasks.due_date < ?",
			model.TaskStatusCompleted, date).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count overdue: %w", err)
	}
	return count, nil
}

// UpcomingDeadlines lists unfinished tasks due in [from, to], soonest first.
func (r *TaskRepository) UpcomingDeadlines(ctx context.Context, userID uint, from, to time.Time, limit int) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.scoped(ctx, userID).
		Where("tasks.status <> ? AND tasks.due_date IS NOT NULL AND tasks.due_date >= ? AND tasks.due_date <= ?",
			model.TaskStatusCompleted, from, to).
		Order("tasks.due_date ASC").
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("upcoming deadlines: %w", err)
	}
	return tasks, nil
}
