package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority ranks how important a task is.
type TaskPriority string

const (
	TaskPriorityCritical TaskPriority = "critical"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityLow      TaskPriority = "low"
)

// TaskContext marks where a task can be performed.
type TaskContext string

const (
	ContextAtWork   TaskContext = "at_work"
	ContextAtHome   TaskContext = "at_home"
	ContextErrands  TaskContext = "errands"
	ContextAnywhere TaskContext = "anywhere"
)

// TimePreference marks when during the day a task fits best.
type TimePreference string

const (
	PreferMorning   TimePreference = "morning"
	PreferAfternoon TimePreference = "afternoon"
	PreferEvening   TimePreference = "evening"
	PreferAnytime   TimePreference = "anytime"
)

// RecurrencePattern names a repeat cadence.
type RecurrencePattern string

const (
	RecurDaily    RecurrencePattern = "daily"
	RecurWeekly   RecurrencePattern = "weekly"
	RecurBiweekly RecurrencePattern = "biweekly"
	RecurMonthly  RecurrencePattern = "monthly"
	RecurCustom   RecurrencePattern = "custom"
)

// RecurrenceRule describes how a recurring task repeats.
// Days holds weekday indexes (0 = Sunday) for weekly patterns,
// Interval is a day count for custom patterns, and EndDate
// ("2006-01-02") terminates the recurrence when set.
type RecurrenceRule struct {
	Pattern    RecurrencePattern `json:"pattern"`
	Days       []int             `json:"days,omitempty"`
	DayOfMonth int               `json:"dayOfMonth,omitempty"`
	Interval   int               `json:"interval,omitempty"`
	EndDate    string            `json:"endDate,omitempty"`
}

// Task is a single actionable item belonging to a plate.
type Task struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	PlateID        uint           `gorm:"index:idx_tasks_plate_status" json:"plate_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Status         TaskStatus     `gorm:"index:idx_tasks_plate_status;default:pending" json:"status"`
	Priority       TaskPriority   `gorm:"default:medium" json:"priority"`
	EffortMinutes  *int           `json:"effort_minutes"`
	EnergyLevel    string         `gorm:"default:medium" json:"energy_level"`
	Context        TaskContext    `gorm:"default:anywhere" json:"context"`
	TimePreference TimePreference `gorm:"default:anytime" json:"time_preference"`
	DueDate        *time.Time     `json:"due_date"`
	CompletedAt    *time.Time     `json:"completed_at"`
	IsRecurring    bool           `gorm:"default:false" json:"is_recurring"`
	RecurrenceRule datatypes.JSON `json:"recurrence_rule"`
	NextOccurrence *time.Time     `gorm:"index" json:"next_occurrence"`
	SortOrder      int            `gorm:"default:0" json:"sort_order"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Rule decodes the stored recurrence rule, nil when absent or unreadable.
func (t Task) Rule() *RecurrenceRule {
	if len(t.RecurrenceRule) == 0 {
		return nil
	}
	var rule RecurrenceRule
	if err := json.Unmarshal(t.RecurrenceRule, &rule); err != nil {
		return nil
	}
	return &rule
}

// RuleJSON encodes a recurrence rule for storage.
func RuleJSON(rule RecurrenceRule) datatypes.JSON {
	raw, err := json.Marshal(rule)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// TaskUpdate is the whitelisted set of mutable task fields.
type TaskUpdate struct {
	Title          *string
	Description    *string
	Status         *TaskStatus
	Priority       *TaskPriority
	EffortMinutes  *int
	EnergyLevel    *string
	Context        *TaskContext
	TimePreference *TimePreference
	DueDate        *time.Time
	IsRecurring    *bool
	RecurrenceRule *RecurrenceRule
}
