package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"plates-planner/internal/model"
)

func TestPlateHealth_NoSignals(t *testing.T) {
	now := date(2025, time.June, 2)
	// review 50*0.4 + completion 20*0.35 + recency 20*0.25 = 32
	assert.Equal(t, 32, PlateHealth(1, nil, nil, now))
}

func TestPlateHealth_RatingsOnly(t *testing.T) {
	now := date(2025, time.June, 2)
	ratings := []model.RatingSample{
		{PlateID: 1, Rating: 5, Date: date(2025, time.June, 1)},
		{PlateID: 1, Rating: 5, Date: date(2025, time.May, 31)},
	}
	// review 100*0.4 + completion 20*0.35 + recency 20*0.25 = 52
	assert.Equal(t, 52, PlateHealth(1, ratings, nil, now))
}

func TestPlateHealth_IgnoresOtherPlates(t *testing.T) {
	now := date(2025, time.June, 2)
	ratings := []model.RatingSample{
		{PlateID: 2, Rating: 1, Date: date(2025, time.June, 1)},
	}
	completions := []model.Completion{
		{PlateID: 2, CompletedAt: now},
	}
	assert.Equal(t, 32, PlateHealth(1, ratings, completions, now))
}

func TestPlateHealth_RatingWindowCapsAtSeven(t *testing.T) {
	now := date(2025, time.June, 2)
	var ratings []model.RatingSample
	for i := 0; i < 7; i++ {
		ratings = append(ratings, model.RatingSample{PlateID: 1, Rating: 5, Date: now.AddDate(0, 0, -i)})
	}
	// An eighth, older, terrible rating must not drag the mean down.
	ratings = append(ratings, model.RatingSample{PlateID: 1, Rating: 1, Date: now.AddDate(0, 0, -8)})
	assert.Equal(t, 52, PlateHealth(1, ratings, nil, now))
}

func TestPlateHealth_CompletionSignalSaturates(t *testing.T) {
	now := date(2025, time.June, 2)
	var completions []model.Completion
	for i := 0; i < 6; i++ {
		completions = append(completions, model.Completion{PlateID: 1, CompletedAt: now})
	}
	// review 50*0.4 + completion 100*0.35 + recency 100*0.25 = 80
	assert.Equal(t, 80, PlateHealth(1, nil, completions, now))
}

func TestPlateHealth_RecencySteps(t *testing.T) {
	now := date(2025, time.June, 8)
	tests := []struct {
		name     string
		daysAgo  int
		expected int
	}{
		// completion 40*0.35 = 14, review 50*0.4 = 20, plus the recency step
		{name: "same day", daysAgo: 0, expected: 20 + 14 + 25},   // recency 100
		{name: "one day", daysAgo: 1, expected: 20 + 14 + 21},    // recency 85 -> 21.25 rounds via sum
		{name: "three days", daysAgo: 3, expected: 20 + 14 + 15}, // recency 60
		{name: "seven days", daysAgo: 7, expected: 20 + 14 + 8},  // recency 30 -> 7.5 rounds via sum
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completions := []model.Completion{
				{PlateID: 1, CompletedAt: now.AddDate(0, 0, -tt.daysAgo)},
			}
			assert.Equal(t, tt.expected, PlateHealth(1, nil, completions, now))
		})
	}
}

func TestPlateHealth_StaleCompletionsIgnored(t *testing.T) {
	now := date(2025, time.June, 8)
	completions := []model.Completion{
		{PlateID: 1, CompletedAt: now.AddDate(0, 0, -10)},
	}
	assert.Equal(t, 32, PlateHealth(1, nil, completions, now))
}
