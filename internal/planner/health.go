package planner

import (
	"math"
	"time"

	"plates-planner/internal/model"
)

// Weights for the exported plate health composite.
const (
	healthWeightReview     = 0.40
	healthWeightCompletion = 0.35
	healthWeightRecency    = 0.25
)

// healthRatingWindow caps how many recent ratings feed the review signal.
const healthRatingWindow = 7

// PlateHealth scores how well-attended a plate has been, 0-100
// (100 = well-managed, 0 = neglected). Ratings must be ordered most
// recent first; completions older than seven days before now are ignored.
// The plan generator uses the INVERSE of this idea so neglected plates
// get a priority boost, but with its own cheaper estimate.
func PlateHealth(plateID uint, ratings []model.RatingSample, completions []model.Completion, now time.Time) int {
	reviewScore := 50.0
	ratingSum, ratingCount := 0, 0
	for _, r := range ratings {
		if r.PlateID != plateID {
			continue
		}
		ratingSum += r.Rating
		ratingCount++
		if ratingCount == healthRatingWindow {
			break
		}
	}
	if ratingCount > 0 {
		reviewScore = float64(ratingSum) / float64(ratingCount) / 5 * 100
	}

	cutoff := now.AddDate(0, 0, -7)
	var latest time.Time
	completionCount := 0
	for _, c := range completions {
		if c.PlateID != plateID || c.CompletedAt.Before(cutoff) {
			continue
		}
		completionCount++
		if c.CompletedAt.After(latest) {
			latest = c.CompletedAt
		}
	}
	// 0 completions = 20, each one adds 20, saturating at 100.
	completionScore := float64(min(20+completionCount*20, 100))

	recencyScore := 20.0
	if completionCount > 0 {
		switch days := int(now.Sub(latest).Hours() / 24); {
		case days <= 0:
			recencyScore = 100
		case days == 1:
			recencyScore = 85
		case days <= 3:
			recencyScore = 60
		case days <= 7:
			recencyScore = 30
		}
	}

	health := int(math.Round(
		reviewScore*healthWeightReview +
			completionScore*healthWeightCompletion +
			recencyScore*healthWeightRecency))

	return clamp(health, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
