package model

import "time"

// Review is a daily well-being check-in, one per user per date.
type Review struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"index:idx_reviews_user_date,unique" json:"user_id"`
	Date      time.Time     `gorm:"index:idx_reviews_user_date,unique" json:"date"`
	Mood      int           `json:"mood"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"created_at"`
	Ratings   []PlateRating `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"ratings,omitempty"`
}

// PlateRating is a 1-5 score for one plate within a review.
type PlateRating struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ReviewID uint   `gorm:"index:idx_ratings_review_plate,unique" json:"review_id"`
	PlateID  uint   `gorm:"index:idx_ratings_review_plate,unique" json:"plate_id"`
	Rating   int    `json:"rating"`
	Note     string `json:"note"`
}

// RatingSample is a dated plate rating used by the health scorer.
type RatingSample struct {
	PlateID uint      `json:"plate_id"`
	Rating  int       `json:"rating"`
	Date    time.Time `json:"date"`
}
