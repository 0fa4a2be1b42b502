package service

import (
	"context"
	"time"

	"plates-planner/internal/model"
	"plates-planner/internal/planner"
	"plates-planner/internal/repository"
)

// streakLookback bounds how far back the streak scan reaches.
const streakLookback = 60

// RatingInput is one plate score inside a review submission.
type RatingInput struct {
	PlateID uint   `json:"plate_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Note    string `json:"note"`
}

// ReviewService manages daily check-ins and the review streak.
type ReviewService struct {
	reviews *repository.ReviewRepository
	now     func() time.Time
}

func NewReviewService(reviews *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews, now: time.Now}
}

// Today returns today's review, or nil when the check-in has not
// happened yet.
func (s *ReviewService) Today(ctx context.Context, userID uint) (*model.Review, error) {
	return s.reviews.GetByDate(ctx, userID, planner.DateOnly(s.now()))
}

// Submit records today's check-in. Submitting again the same day
// overwrites the previous one instead of adding a duplicate.
func (s *ReviewService) Submit(ctx context.Context, userID uint, mood int, notes string, ratings []RatingInput) (*model.Review, error) {
	review := &model.Review{
		UserID: userID,
		Date:   planner.DateOnly(s.now()),
		Mood:   mood,
		Notes:  notes,
	}
	plateRatings := make([]model.PlateRating, len(ratings))
	for i, r := range ratings {
		plateRatings[i] = model.PlateRating{
			PlateID: r.PlateID,
			Rating:  r.Rating,
			Note:    r.Note,
		}
	}
	return s.reviews.Upsert(ctx, review, plateRatings)
}

func (s *ReviewService) History(ctx context.Context, userID uint, limit int) ([]model.Review, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.reviews.RecentByUser(ctx, userID, limit)
}

// Streak counts consecutive review days ending today or yesterday, so
// the streak survives until the current day's check-in is missed for
// a full day.
func (s *ReviewService) Streak(ctx context.Context, userID uint) (int, error) {
	dates, err := s.reviews.Dates(ctx, userID, streakLookback)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	today := planner.DateOnly(s.now())
	expected := today
	if !planner.DateOnly(dates[0]).Equal(today) {
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range dates {
		if !planner.DateOnly(d).Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak, nil
}
