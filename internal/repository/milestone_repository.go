package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"plates-planner/internal/model"
)

// MilestoneRepository handles CRUD for plate milestones.
type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) ListByPlate(ctx context.Context, plateID uint) ([]model.Milestone, error) {
	var milestones []model.Milestone
	if err := r.db.WithContext(ctx).
		Where("plate_id = ?", plateID).
		Order("sort_order ASC, created_at ASC").
		Find(&milestones).Error; err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	return milestones, nil
}

func (r *MilestoneRepository) GetByID(ctx context.Context, id uint) (*model.Milestone, error) {
	var milestone model.Milestone
	if err := r.db.WithContext(ctx).First(&milestone, id).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (r *MilestoneRepository) Create(ctx context.Context, milestone *model.Milestone) error {
	db := r.db.WithContext(ctx)
	var nextOrder int
	if err := db.Model(&model.Milestone{}).
		Select("COALESCE(MAX(sort_order), -1) + 1").
		Where("plate_id = ?", milestone.PlateID).
		Scan(&nextOrder).Error; err != nil {
		return fmt.Errorf("next milestone order: %w", err)
	}
	milestone.SortOrder = nextOrder
	if err := db.Create(milestone).Error; err != nil {
		return fmt.Errorf("create milestone: %w", err)
	}
	return nil
}

// Update applies the whitelisted milestone fields. Setting Completed
// stamps or clears the completion time accordingly.
func (r *MilestoneRepository) Update(ctx context.Context, id uint, update model.MilestoneUpdate, now time.Time) (*model.Milestone, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.TargetDate != nil {
		updates["target_date"] = *update.TargetDate
	}
	if update.Completed != nil {
		updates["completed"] = *update.Completed
		if *update.Completed {
			updates["completed_at"] = now
		} else {
			updates["completed_at"] = nil
		}
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&model.Milestone{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update milestone: %w", err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *MilestoneRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Milestone{}, id).Error; err != nil {
		return fmt.Errorf("delete milestone: %w", err)
	}
	return nil
}
