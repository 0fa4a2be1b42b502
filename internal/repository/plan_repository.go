package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"plates-planner/internal/model"
)

// PlanRepository persists generated daily plans and their items.
type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// GetByUserAndDate returns the plan for the date, or nil when none exists.
func (r *PlanRepository) GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*model.DailyPlan, error) {
	var plan model.DailyPlan
	err := r.withItems(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&plan).Error
	switch {
	case err == nil:
		return &plan, nil
	case err == gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("find plan: %w", err)
	}
}

func (r *PlanRepository) GetByID(ctx context.Context, userID, id uint) (*model.DailyPlan, error) {
	var plan model.DailyPlan
	if err := r.withItems(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("plan_items.sort_order ASC")
		}).
		Preload("Items.Task")
}

// Replace deletes any existing plan for the same (user, date) and inserts
// the new plan with its items as one logical unit, so at most one plan
// per date ever exists.
func (r *PlanRepository) Replace(ctx context.Context, plan *model.DailyPlan) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existingIDs []uint
		if err := tx.Model(&model.DailyPlan{}).
			Where("user_id = ? AND date = ?", plan.UserID, plan.Date).
			Pluck("id", &existingIDs).Error; err != nil {
			return err
		}
		if len(existingIDs) > 0 {
			if err := tx.Where("daily_plan_id IN ?", existingIDs).
				Delete(&model.PlanItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.DailyPlan{}, existingIDs).Error; err != nil {
				return err
			}
		}
		// Items carry an embedded Task for reads only; never cascade it.
		return tx.Omit("Items.Task").Create(plan).Error
	})
	if err != nil {
		return fmt.Errorf("replace plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) GetItem(ctx context.Context, planID, itemID uint) (*model.PlanItem, error) {
	var item model.PlanItem
	if err := r.db.WithContext(ctx).
		Where("daily_plan_id = ? AND id = ?", planID, itemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ReorderItems rewrites item sort order to match the given id sequence.
func (r *PlanRepository) ReorderItems(ctx context.Context, planID uint, itemIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range itemIDs {
			if err := tx.Model(&model.PlanItem{}).
				Where("daily_plan_id = ? AND id = ?", planID, id).
				Update("sort_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reorder plan items: %w", err)
	}
	return nil
}

func (r *PlanRepository) CompleteItem(ctx context.Context, planID, itemID uint, at time.Time) (*model.PlanItem, error) {
	if err := r.db.WithContext(ctx).Model(&model.PlanItem{}).
		Where("daily_plan_id = ? AND id = ?", planID, itemID).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at,
		}).Error; err != nil {
		return nil, fmt.Errorf("complete plan item: %w", err)
	}
	return r.GetItem(ctx, planID, itemID)
}

func (r *PlanRepository) SkipItem(ctx context.Context, planID, itemID uint) (*model.PlanItem, error) {
	if err := r.db.WithContext(ctx).Model(&model.PlanItem{}).
		Where("daily_plan_id = ? AND id = ?", planID, itemID).
		Update("skipped", true).Error; err != nil {
		return nil, fmt.Errorf("skip plan item: %w", err)
	}
	return r.GetItem(ctx, planID, itemID)
}

// ItemTally counts plan items for the user across plans dated in
// [from, to], splitting out completed and skipped.
func (r *PlanRepository) ItemTally(ctx context.Context, userID uint, from, to time.Time) (total, completed, skipped int64, err error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.PlanItem{}).
			Joins("JOIN daily_plans ON daily_plans.id = plan_items.daily_plan_id").
			Where("daily_plans.user_id = ? AND daily_plans.date >= ? AND daily_plans.date <= ?",
				userID, from, to)
	}
	if err = base().Count(&total).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("count plan items: %w", err)
	}
	if err = base().Where("plan_items.completed = ?", true).Count(&completed).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("count completed plan items: %w", err)
	}
	if err = base().Where("plan_items.skipped = ?", true).Count(&skipped).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("count skipped plan items: %w", err)
	}
	return total, completed, skipped, nil
}

// DeleteAllForUser removes every plan and item for the user (reset workflow).
func (r *PlanRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var planIDs []uint
		if err := tx.Model(&model.DailyPlan{}).Where("user_id = ?", userID).
			Pluck("id", &planIDs).Error; err != nil {
			return err
		}
		if len(planIDs) == 0 {
			return nil
		}
		if err := tx.Where("daily_plan_id IN ?", planIDs).
			Delete(&model.PlanItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.DailyPlan{}, planIDs).Error
	})
	if err != nil {
		return fmt.Errorf("delete plans: %w", err)
	}
	return nil
}
