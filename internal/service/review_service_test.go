package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plates-planner/internal/model"
)

func TestSubmitUpsertsSameDay(t *testing.T) {
	env := newTestEnv(t)
	plate := env.createPlate(t, "Health")

	first, err := env.reviewSvc.Submit(context.Background(), env.user.ID, 3, "rough day",
		[]RatingInput{{PlateID: plate.ID, Rating: 2}})
	require.NoError(t, err)

	second, err := env.reviewSvc.Submit(context.Background(), env.user.ID, 5, "better after all",
		[]RatingInput{{PlateID: plate.ID, Rating: 4, Note: "turned around"}})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same-day submission overwrites")
	assert.Equal(t, 5, second.Mood)
	assert.Equal(t, "better after all", second.Notes)
	require.Len(t, second.Ratings, 1, "rating upserted, not duplicated")
	assert.Equal(t, 4, second.Ratings[0].Rating)
	assert.Equal(t, "turned around", second.Ratings[0].Note)

	history, err := env.reviewSvc.History(context.Background(), env.user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestTodayNilBeforeCheckIn(t *testing.T) {
	env := newTestEnv(t)

	review, err := env.reviewSvc.Today(context.Background(), env.user.ID)
	require.NoError(t, err)
	assert.Nil(t, review)
}

func TestStreakCountsConsecutiveDays(t *testing.T) {
	env := newTestEnv(t)
	for _, daysAgo := range []int{0, 1, 2, 4} {
		seedReview(t, env, daysAgo)
	}

	streak, err := env.reviewSvc.Streak(context.Background(), env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, streak, "the gap at three days ago ends the run")
}

func TestStreakSurvivesUntilYesterday(t *testing.T) {
	env := newTestEnv(t)
	seedReview(t, env, 1)
	seedReview(t, env, 2)

	streak, err := env.reviewSvc.Streak(context.Background(), env.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestStreakBrokenByFullMissedDay(t *testing.T) {
	env := newTestEnv(t)
	seedReview(t, env, 2)
	seedReview(t, env, 3)

	streak, err := env.reviewSvc.Streak(context.Background(), env.user.ID)
	require.NoError(t, err)
	assert.Zero(t, streak)
}

func TestStreakEmptyHistory(t *testing.T) {
	env := newTestEnv(t)

	streak, err := env.reviewSvc.Streak(context.Background(), env.user.ID)
	require.NoError(t, err)
	assert.Zero(t, streak)
}

func seedReview(t *testing.T, env *testEnv, daysAgo int) {
	t.Helper()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
	_, err := env.reviews.Upsert(context.Background(),
		&model.Review{UserID: env.user.ID, Date: date, Mood: 3}, nil)
	require.NoError(t, err)
}
