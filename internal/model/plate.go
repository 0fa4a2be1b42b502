package model

import "time"

// PlateType distinguishes open-ended life areas from finite goals.
type PlateType string

const (
	PlateTypeOngoing PlateType = "ongoing"
	PlateTypeGoal    PlateType = "goal"
)

// PlateStatus is the lifecycle state of a plate.
type PlateStatus string

const (
	PlateStatusActive    PlateStatus = "active"
	PlateStatusCompleted PlateStatus = "completed"
	PlateStatusArchived  PlateStatus = "archived"
)

// Plate is a user-defined life area grouping tasks (work, health, etc.).
// Archived plates are kept but excluded from planning.
type Plate struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"index:idx_plates_user_status" json:"user_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Color       string      `json:"color"`
	Type        PlateType   `gorm:"default:ongoing" json:"type"`
	Status      PlateStatus `gorm:"index:idx_plates_user_status;default:active" json:"status"`
	SortOrder   int         `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Tasks       []Task      `gorm:"foreignKey:PlateID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Milestones  []Milestone `gorm:"foreignKey:PlateID;constraint:OnDelete:CASCADE" json:"milestones,omitempty"`
}

// PlateUpdate is the whitelisted set of mutable plate fields.
type PlateUpdate struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
	Type        *PlateType
	Status      *PlateStatus
}

// PlateWithCounts pairs a plate with its task tallies for list views.
type PlateWithCounts struct {
	Plate
	TaskCount      int `json:"task_count"`
	PendingCount   int `json:"pending_count"`
	CompletedCount int `json:"completed_count"`
}
