package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"plates-planner/internal/model"
)

// PlateRepository manages the user's life-area plates.
type PlateRepository struct {
	db *gorm.DB
}

func NewPlateRepository(db *gorm.DB) *PlateRepository {
	return &PlateRepository{db: db}
}

// ListByUser returns all non-archived plates with their task tallies,
// ordered for display.
func (r *PlateRepository) ListByUser(ctx context.Context, userID uint) ([]model.PlateWithCounts, error) {
	var plates []model.Plate
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status <> ?", userID, model.PlateStatusArchived).
		Order("sort_order ASC, created_at ASC").
		Find(&plates).Error; err != nil {
		return nil, fmt.Errorf("list plates: %w", err)
	}

	type tally struct {
		PlateID   uint
		Total     int
		Pending   int
		Completed int
	}
	var tallies []tally
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select(`plate_id,
			COUNT(*) AS total,
			SUM(CASE WHEN status IN ('pending', 'in_progress') THEN 1 ELSE 0 END) AS pending,
			SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END) AS completed`).
		Group("plate_id").
		Scan(&tallies).Error; err != nil {
		return nil, fmt.Errorf("count plate tasks: %w", err)
	}
	byPlate := make(map[uint]tally, len(tallies))
	for _, t := range tallies {
		byPlate[t.PlateID] = t
	}

	result := make([]model.PlateWithCounts, len(plates))
	for i, plate := range plates {
		counts := byPlate[plate.ID]
		result[i] = model.PlateWithCounts{
			Plate:          plate,
			TaskCount:      counts.Total,
			PendingCount:   counts.Pending,
			CompletedCount: counts.Completed,
		}
	}
	return result, nil
}

// ListForPlanning returns non-archived plates without tallies, the shape
// the plan generator consumes.
func (r *PlateRepository) ListForPlanning(ctx context.Context, userID uint) ([]model.Plate, error) {
	var plates []model.Plate
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status <> ?", userID, model.PlateStatusArchived).
		Order("sort_order ASC, created_at ASC").
		Find(&plates).Error; err != nil {
		return nil, fmt.Errorf("list planning plates: %w", err)
	}
	return plates, nil
}

func (r *PlateRepository) GetByID(ctx context.Context, userID, id uint) (*model.Plate, error) {
	var plate model.Plate
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&plate).Error; err != nil {
		return nil, err
	}
	return &plate, nil
}

func (r *PlateRepository) Create(ctx context.Context, plate *model.Plate) error {
	db := r.db.WithContext(ctx)
	var nextOrder int
	if err := db.Model(&model.Plate{}).
		Select("COALESCE(MAX(sort_order), -1) + 1").
		Where("user_id = ?", plate.UserID).
		Scan(&nextOrder).Error; err != nil {
		return fmt.Errorf("next plate order: %w", err)
	}
	plate.SortOrder = nextOrder
	if err := db.Create(plate).Error; err != nil {
		return fmt.Errorf("create plate: %w", err)
	}
	return nil
}

// Update applies the whitelisted plate fields and returns the result.
func (r *PlateRepository) Update(ctx context.Context, userID, id uint, update model.PlateUpdate) (*model.Plate, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Icon != nil {
		updates["icon"] = *update.Icon
	}
	if update.Color != nil {
		updates["color"] = *update.Color
	}
	if update.Type != nil {
		updates["type"] = *update.Type
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&model.Plate{}).
			Where("user_id = ? AND id = ?", userID, id).
			Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update plate: %w", err)
		}
	}
	return r.GetByID(ctx, userID, id)
}

// Archive soft-deletes a plate; its tasks stay in place but drop out of
// every planning query.
func (r *PlateRepository) Archive(ctx context.Context, userID, id uint) (*model.Plate, error) {
	status := model.PlateStatusArchived
	return r.Update(ctx, userID, id, model.PlateUpdate{Status: &status})
}

// Reorder rewrites sort_order to match the given id sequence.
func (r *PlateRepository) Reorder(ctx context.Context, userID uint, ids []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&model.Plate{}).
				Where("user_id = ? AND id = ?", userID, id).
				Update("sort_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reorder plates: %w", err)
	}
	return nil
}

// DeleteAllForUser removes every plate (and, via cascade, every dependent
// task and milestone) for the user. Used by the reset workflow.
func (r *PlateRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	var plateIDs []uint
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.Plate{}).Where("user_id = ?", userID).
		Pluck("id", &plateIDs).Error; err != nil {
		return fmt.Errorf("list plate ids: %w", err)
	}
	if len(plateIDs) == 0 {
		return nil
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plate_id IN ?", plateIDs).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plate_id IN ?", plateIDs).Delete(&model.Milestone{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.Plate{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete plates: %w", err)
	}
	return nil
}
