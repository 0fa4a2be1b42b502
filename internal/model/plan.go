package model

import "time"

// DayType classifies a planned day.
type DayType string

const (
	DayTypeWorkday DayType = "workday"
	DayTypeWeekend DayType = "weekend"
	DayTypeHoliday DayType = "holiday"
	DayTypeDayOff  DayType = "day_off"
)

// DailyPlan is the generated schedule for one user and one calendar date.
// Regenerating replaces the existing plan and its items wholesale.
type DailyPlan struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"index:idx_plans_user_date,unique" json:"user_id"`
	Date             time.Time  `gorm:"index:idx_plans_user_date,unique" json:"date"`
	DayType          DayType    `gorm:"default:workday" json:"day_type"`
	AvailableMinutes int        `json:"available_minutes"`
	GeneratedAt      time.Time  `json:"generated_at"`
	IsLocked         bool       `gorm:"default:false" json:"is_locked"`
	Items            []PlanItem `gorm:"foreignKey:DailyPlanID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// PlanItem references one task slotted into a daily plan.
type PlanItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	DailyPlanID  uint       `gorm:"index:idx_items_plan_task,unique" json:"daily_plan_id"`
	TaskID       uint       `gorm:"index:idx_items_plan_task,unique" json:"task_id"`
	SortOrder    int        `json:"sort_order"`
	ContextGroup string     `json:"context_group"`
	Completed    bool       `gorm:"default:false" json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`
	Skipped      bool       `gorm:"default:false" json:"skipped"`
	Task         Task       `json:"task"`
}

// Completion is a (plate, time) pair from recently completed tasks,
// fed to the planner and the health scorer.
type Completion struct {
	PlateID     uint      `json:"plate_id"`
	CompletedAt time.Time `json:"completed_at"`
}
