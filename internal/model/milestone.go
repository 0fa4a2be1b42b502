package model

import "time"

// Milestone is a checkpoint toward a plate's goal.
type Milestone struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PlateID     uint       `gorm:"index" json:"plate_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MilestoneUpdate is the whitelisted set of mutable milestone fields.
type MilestoneUpdate struct {
	Name        *string
	Description *string
	TargetDate  *time.Time
	Completed   *bool
}
