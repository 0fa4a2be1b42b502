package service

import (
	"context"
	"math"
	"time"

	"plates-planner/internal/model"
	"plates-planner/internal/planner"
	"plates-planner/internal/repository"
)

// ratingSampleLimit bounds how many dated ratings feed health scoring.
const ratingSampleLimit = 200

// PlateHealthEntry is one plate's composite health score for display.
type PlateHealthEntry struct {
	PlateID uint   `json:"plate_id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	Health  int    `json:"health"`
}

// Dashboard aggregates the numbers the home screen shows.
type Dashboard struct {
	ReviewStreak         int                `json:"review_streak"`
	WeeklyCompletionRate int                `json:"weekly_completion_rate"`
	CompletedThisWeek    int                `json:"completed_this_week"`
	TotalTasks           int64              `json:"total_tasks"`
	CompletedTasks       int64              `json:"completed_tasks"`
	TodayPlanTotal       int                `json:"today_plan_total"`
	TodayPlanCompleted   int                `json:"today_plan_completed"`
	OverdueCount         int64              `json:"overdue_count"`
	UpcomingDeadlines    []model.Task       `json:"upcoming_deadlines"`
	PlateHealth          []PlateHealthEntry `json:"plate_health"`
}

// StatsService assembles the dashboard from the other stores.
type StatsService struct {
	plans     *repository.PlanRepository
	tasks     *repository.TaskRepository
	plates    *repository.PlateRepository
	reviews   *repository.ReviewRepository
	reviewSvc *ReviewService
	now       func() time.Time
}

func NewStatsService(
	plans *repository.PlanRepository,
	tasks *repository.TaskRepository,
	plates *repository.PlateRepository,
	reviews *repository.ReviewRepository,
	reviewSvc *ReviewService,
) *StatsService {
	return &StatsService{
		plans:     plans,
		tasks:     tasks,
		plates:    plates,
		reviews:   reviews,
		reviewSvc: reviewSvc,
		now:       time.Now,
	}
}

func (s *StatsService) Dashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	now := s.now()
	today := planner.DateOnly(now)
	weekAgo := today.AddDate(0, 0, -6)

	streak, err := s.reviewSvc.Streak(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, completed, _, err := s.plans.ItemTally(ctx, userID, weekAgo, today)
	if err != nil {
		return nil, err
	}
	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(completed) / float64(total) * 100))
	}

	completions, err := s.tasks.RecentCompletions(ctx, userID, today.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	totalTasks, completedTasks, err := s.tasks.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	overdue, err := s.tasks.CountOverdue(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.tasks.UpcomingDeadlines(ctx, userID, today, today.AddDate(0, 0, 7), 5)
	if err != nil {
		return nil, err
	}

	todayTotal, todayCompleted := 0, 0
	if plan, err := s.plans.GetByUserAndDate(ctx, userID, today); err != nil {
		return nil, err
	} else if plan != nil {
		todayTotal = len(plan.Items)
		for _, item := range plan.Items {
			if item.Completed {
				todayCompleted++
			}
		}
	}

	health, err := s.plateHealth(ctx, userID, completions, now)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		ReviewStreak:         streak,
		WeeklyCompletionRate: rate,
		CompletedThisWeek:    len(completions),
		TotalTasks:           totalTasks,
		CompletedTasks:       completedTasks,
		TodayPlanTotal:       todayTotal,
		TodayPlanCompleted:   todayCompleted,
		OverdueCount:         overdue,
		UpcomingDeadlines:    upcoming,
		PlateHealth:          health,
	}, nil
}

// plateHealth scores every non-archived plate from recent ratings and
// completions.
func (s *StatsService) plateHealth(ctx context.Context, userID uint, completions []model.Completion, now time.Time) ([]PlateHealthEntry, error) {
	plates, err := s.plates.ListForPlanning(ctx, userID)
	if err != nil {
		return nil, err
	}
	samples, err := s.reviews.RatingSamples(ctx, userID, ratingSampleLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]PlateHealthEntry, len(plates))
	for i, plate := range plates {
		entries[i] = PlateHealthEntry{
			PlateID: plate.ID,
			Name:    plate.Name,
			Icon:    plate.Icon,
			Color:   plate.Color,
			Health:  planner.PlateHealth(plate.ID, samples, completions, now),
		}
	}
	return entries, nil
}
