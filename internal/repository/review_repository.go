package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"plates-planner/internal/model"
)

// ReviewRepository persists daily reviews and their per-plate ratings.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// RecentByUser returns up to limit reviews, most recent first, with ratings.
func (r *ReviewRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).
		Preload("Ratings").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// GetByDate returns the review for the date, or nil when none exists.
func (r *ReviewRepository) GetByDate(ctx context.Context, userID uint, date time.Time) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Preload("Ratings").
		Where("user_id = ? AND date = ?", userID, date).
		First(&review).Error
	switch {
	case err == nil:
		return &review, nil
	case err == gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("find review: %w", err)
	}
}

// Upsert creates or updates the (user, date) review and its ratings, one
// rating per plate.
func (r *ReviewRepository) Upsert(ctx context.Context, review *model.Review, ratings []model.PlateRating) (*model.Review, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Review
		err := tx.Where("user_id = ? AND date = ?", review.UserID, review.Date).
			First(&existing).Error
		switch {
		case err == nil:
			review.ID = existing.ID
			review.CreatedAt = existing.CreatedAt
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"mood":  review.Mood,
				"notes": review.Notes,
			}).Error; err != nil {
				return err
			}
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(review).Error; err != nil {
				return err
			}
		default:
			return err
		}

		for i := range ratings {
			ratings[i].ReviewID = review.ID
			var current model.PlateRating
			err := tx.Where("review_id = ? AND plate_id = ?", review.ID, ratings[i].PlateID).
				First(&current).Error
			switch {
			case err == nil:
				if err := tx.Model(&current).Updates(map[string]interface{}{
					"rating": ratings[i].Rating,
					"note":   ratings[i].Note,
				}).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				if err := tx.Create(&ratings[i]).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("upsert review: %w", err)
	}
	return r.GetByDate(ctx, review.UserID, review.Date)
}

// Dates returns review dates, most recent first, for streak computation.
func (r *ReviewRepository) Dates(ctx context.Context, userID uint, limit int) ([]time.Time, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Pluck("date", &dates).Error; err != nil {
		return nil, fmt.Errorf("list review dates: %w", err)
	}
	return dates, nil
}

// RatingSamples joins ratings with their review dates, most recent first.
// The exported health scorer consumes these.
func (r *ReviewRepository) RatingSamples(ctx context.Context, userID uint, limit int) ([]model.RatingSample, error) {
	var samples []model.RatingSample
	if err := r.db.WithContext(ctx).Model(&model.PlateRating{}).
		Select("plate_ratings.plate_id AS plate_id, plate_ratings.rating AS rating, reviews.date AS date").
		Joins("JOIN reviews ON reviews.id = plate_ratings.review_id").
		Where("reviews.user_id = ?", userID).
		Order("reviews.date DESC").
		Limit(limit).
		Scan(&samples).Error; err != nil {
		return nil, fmt.Errorf("list rating samples: %w", err)
	}
	return samples, nil
}

// DeleteAllForUser removes every review and rating for the user.
func (r *ReviewRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reviewIDs []uint
		if err := tx.Model(&model.Review{}).Where("user_id = ?", userID).
			Pluck("id", &reviewIDs).Error; err != nil {
			return err
		}
		if len(reviewIDs) == 0 {
			return nil
		}
		if err := tx.Where("review_id IN ?", reviewIDs).
			Delete(&model.PlateRating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Review{}, reviewIDs).Error
	})
	if err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}
	return nil
}
