package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"plates-planner/internal/model"
	"plates-planner/internal/repository"
)

// PlateService manages the user's life-area plates.
type PlateService struct {
	plates     *repository.PlateRepository
	milestones *repository.MilestoneRepository
	tasks      *repository.TaskRepository
}

func NewPlateService(plates *repository.PlateRepository, milestones *repository.MilestoneRepository, tasks *repository.TaskRepository) *PlateService {
	return &PlateService{plates: plates, milestones: milestones, tasks: tasks}
}

func (s *PlateService) List(ctx context.Context, userID uint) ([]model.PlateWithCounts, error) {
	return s.plates.ListByUser(ctx, userID)
}

// Get returns one plate with its tasks and milestones loaded.
func (s *PlateService) Get(ctx context.Context, userID, id uint) (*model.Plate, error) {
	plate, err := s.plates.GetByID(ctx, userID, id)
	switch {
	case err == nil:
	case err == gorm.ErrRecordNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("get plate: %w", err)
	}

	tasks, err := s.tasks.ListByUser(ctx, userID, repository.TaskFilter{PlateID: id})
	if err != nil {
		return nil, err
	}
	milestones, err := s.milestones.ListByPlate(ctx, id)
	if err != nil {
		return nil, err
	}
	plate.Tasks = tasks
	plate.Milestones = milestones
	return plate, nil
}

func (s *PlateService) Create(ctx context.Context, userID uint, plate *model.Plate) error {
	plate.UserID = userID
	if plate.Type == "" {
		plate.Type = model.PlateTypeOngoing
	}
	if plate.Status == "" {
		plate.Status = model.PlateStatusActive
	}
	return s.plates.Create(ctx, plate)
}

func (s *PlateService) Update(ctx context.Context, userID, id uint, update model.PlateUpdate) (*model.Plate, error) {
	plate, err := s.plates.Update(ctx, userID, id, update)
	switch {
	case err == nil:
		return plate, nil
	case err == gorm.ErrRecordNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// Archive retires a plate without deleting its history.
func (s *PlateService) Archive(ctx context.Context, userID, id uint) (*model.Plate, error) {
	plate, err := s.plates.Archive(ctx, userID, id)
	switch {
	case err == nil:
		return plate, nil
	case err == gorm.ErrRecordNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (s *PlateService) Reorder(ctx context.Context, userID uint, ids []uint) ([]model.PlateWithCounts, error) {
	if err := s.plates.Reorder(ctx, userID, ids); err != nil {
		return nil, err
	}
	return s.plates.ListByUser(ctx, userID)
}
