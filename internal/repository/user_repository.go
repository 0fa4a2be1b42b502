package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"plates-planner/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureDefault returns the single local account, seeding it on first run.
// This is the v1 auth stand-in: no login, one user per database.
func (r *UserRepository) EnsureDefault(ctx context.Context) (*model.User, error) {
	var user model.User
	db := r.db.WithContext(ctx)
	err := db.Order("created_at ASC").First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case err == gorm.ErrRecordNotFound:
		user = model.User{
			Username: "default",
			Name:     "Default User",
			WorkDays: model.WorkDaysJSON(model.DefaultWorkDays),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create default user: %w", err)
		}
		return &user, nil
	default:
		return nil, fmt.Errorf("find default user: %w", err)
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateSchedule applies the whitelisted schedule fields and returns the
// refreshed user.
func (r *UserRepository) UpdateSchedule(ctx context.Context, id uint, update model.UserScheduleUpdate) (*model.User, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.WakeTime != nil {
		updates["wake_time"] = *update.WakeTime
	}
	if update.SleepTime != nil {
		updates["sleep_time"] = *update.SleepTime
	}
	if update.WorkStartTime != nil {
		updates["work_start_time"] = *update.WorkStartTime
	}
	if update.WorkEndTime != nil {
		updates["work_end_time"] = *update.WorkEndTime
	}
	if update.WorkDays != nil {
		updates["work_days"] = model.WorkDaysJSON(update.WorkDays)
	}
	if update.Timezone != nil {
		updates["timezone"] = *update.Timezone
	}
	if update.ReviewTime != nil {
		updates["review_time"] = *update.ReviewTime
	}
	if update.Onboarded != nil {
		updates["onboarded"] = *update.Onboarded
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) MarkOnboarded(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Update("onboarded", true).Error; err != nil {
		return fmt.Errorf("mark onboarded: %w", err)
	}
	return nil
}
