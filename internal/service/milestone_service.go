package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"plates-planner/internal/model"
	"plates-planner/internal/repository"
)

// MilestoneService manages checkpoints on goal-type plates. Every call
// verifies the plate chain back to the user before touching anything.
type MilestoneService struct {
	milestones *repository.MilestoneRepository
	plates     *repository.PlateRepository
	now        func() time.Time
}

func NewMilestoneService(milestones *repository.MilestoneRepository, plates *repository.PlateRepository) *MilestoneService {
	return &MilestoneService{milestones: milestones, plates: plates, now: time.Now}
}

func (s *MilestoneService) ListByPlate(ctx context.Context, userID, plateID uint) ([]model.Milestone, error) {
	if err := s.ownPlate(ctx, userID, plateID); err != nil {
		return nil, err
	}
	return s.milestones.ListByPlate(ctx, plateID)
}

func (s *MilestoneService) Create(ctx context.Context, userID uint, milestone *model.Milestone) error {
	if err := s.ownPlate(ctx, userID, milestone.PlateID); err != nil {
		return err
	}
	return s.milestones.Create(ctx, milestone)
}

func (s *MilestoneService) Update(ctx context.Context, userID, id uint, update model.MilestoneUpdate) (*model.Milestone, error) {
	if _, err := s.get(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.milestones.Update(ctx, id, update, s.now())
}

func (s *MilestoneService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.get(ctx, userID, id); err != nil {
		return err
	}
	return s.milestones.Delete(ctx, id)
}

func (s *MilestoneService) get(ctx context.Context, userID, id uint) (*model.Milestone, error) {
	milestone, err := s.milestones.GetByID(ctx, id)
	switch {
	case err == nil:
	case err == gorm.ErrRecordNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get milestone: %w", err)
	}
	if err := s.ownPlate(ctx, userID, milestone.PlateID); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *MilestoneService) ownPlate(ctx context.Context, userID, plateID uint) error {
	_, err := s.plates.GetByID(ctx, userID, plateID)
	switch {
	case err == nil:
		return nil
	case err == gorm.ErrRecordNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("check plate: %w", err)
	}
}
