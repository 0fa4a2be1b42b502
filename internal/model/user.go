package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// User holds the single account's profile and daily schedule settings.
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Username      string         `gorm:"uniqueIndex" json:"username"`
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	WakeTime      string         `gorm:"default:06:30" json:"wake_time"`
	SleepTime     string         `gorm:"default:22:30" json:"sleep_time"`
	WorkStartTime string         `gorm:"default:08:00" json:"work_start_time"`
	WorkEndTime   string         `gorm:"default:17:00" json:"work_end_time"`
	WorkDays      datatypes.JSON `json:"work_days"`
	Timezone      string         `gorm:"default:UTC" json:"timezone"`
	ReviewTime    string         `gorm:"default:21:00" json:"review_time"`
	Onboarded     bool           `gorm:"default:false" json:"onboarded"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// DefaultWorkDays is Monday through Friday (0 = Sunday).
var DefaultWorkDays = []int{1, 2, 3, 4, 5}

// WorkDayList decodes the stored work-day set, falling back to Mon-Fri.
func (u User) WorkDayList() []int {
	if len(u.WorkDays) == 0 {
		return DefaultWorkDays
	}
	var days []int
	if err := json.Unmarshal(u.WorkDays, &days); err != nil {
		return DefaultWorkDays
	}
	return days
}

// WorkDaysJSON encodes a weekday-index set for storage.
func WorkDaysJSON(days []int) datatypes.JSON {
	raw, err := json.Marshal(days)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// UserScheduleUpdate is the whitelisted set of mutable user fields.
// Nil pointers leave the current value untouched.
type UserScheduleUpdate struct {
	Name          *string
	WakeTime      *string
	SleepTime     *string
	WorkStartTime *string
	WorkEndTime   *string
	WorkDays      []int
	Timezone      *string
	ReviewTime    *string
	Onboarded     *bool
}
