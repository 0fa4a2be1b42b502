package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plates-planner/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name string
		rule model.RecurrenceRule
		from time.Time
		want time.Time
	}{
		{
			name: "daily advances one day",
			rule: model.RecurrenceRule{Pattern: model.RecurDaily},
			from: date(2025, time.March, 10),
			want: date(2025, time.March, 11),
		},
		{
			name: "daily strips time of day",
			rule: model.RecurrenceRule{Pattern: model.RecurDaily},
			from: time.Date(2025, time.March, 10, 18, 45, 12, 0, time.UTC),
			want: date(2025, time.March, 11),
		},
		{
			name: "weekly without weekday set advances seven days",
			rule: model.RecurrenceRule{Pattern: model.RecurWeekly},
			from: date(2025, time.January, 7),
			want: date(2025, time.January, 14),
		},
		{
			name: "weekly picks next weekday in set",
			rule: model.RecurrenceRule{Pattern: model.RecurWeekly, Days: []int{1, 3, 5}},
			from: date(2025, time.January, 7), // Tuesday
			want: date(2025, time.January, 8), // Wednesday
		},
		{
			name: "weekly wraps to next week",
			rule: model.RecurrenceRule{Pattern: model.RecurWeekly, Days: []int{1, 3, 5}},
			from: date(2025, time.January, 10), // Friday
			want: date(2025, time.January, 13), // Monday
		},
		{
			name: "weekly handles unsorted weekday set",
			rule: model.RecurrenceRule{Pattern: model.RecurWeekly, Days: []int{5, 1, 3}},
			from: date(2025, time.January, 7),
			want: date(2025, time.January, 8),
		},
		{
			name: "biweekly advances fourteen days",
			rule: model.RecurrenceRule{Pattern: model.RecurBiweekly},
			from: date(2025, time.March, 1),
			want: date(2025, time.March, 15),
		},
		{
			name: "monthly keeps day of month",
			rule: model.RecurrenceRule{Pattern: model.RecurMonthly, DayOfMonth: 10},
			from: date(2025, time.March, 15),
			want: date(2025, time.April, 10),
		},
		{
			name: "monthly clamps to short month",
			rule: model.RecurrenceRule{Pattern: model.RecurMonthly, DayOfMonth: 31},
			from: date(2025, time.January, 15),
			want: date(2025, time.February, 28),
		},
		{
			name: "monthly clamps to leap February",
			rule: model.RecurrenceRule{Pattern: model.RecurMonthly, DayOfMonth: 31},
			from: date(2024, time.January, 15),
			want: date(2024, time.February, 29),
		},
		{
			name: "monthly crosses year boundary",
			rule: model.RecurrenceRule{Pattern: model.RecurMonthly, DayOfMonth: 10},
			from: date(2025, time.December, 12),
			want: date(2026, time.January, 10),
		},
		{
			name: "monthly without day keeps anchor day",
			rule: model.RecurrenceRule{Pattern: model.RecurMonthly},
			from: date(2025, time.March, 14),
			want: date(2025, time.April, 14),
		},
		{
			name: "custom advances by interval",
			rule: model.RecurrenceRule{Pattern: model.RecurCustom, Interval: 3},
			from: date(2025, time.March, 10),
			want: date(2025, time.March, 13),
		},
		{
			name: "custom defaults to one day",
			rule: model.RecurrenceRule{Pattern: model.RecurCustom},
			from: date(2025, time.March, 10),
			want: date(2025, time.March, 11),
		},
		{
			name: "unknown pattern falls back to one day",
			rule: model.RecurrenceRule{Pattern: "fortnightly"},
			from: date(2025, time.March, 10),
			want: date(2025, time.March, 11),
		},
		{
			name: "end date on the computed day still recurs",
			rule: model.RecurrenceRule{Pattern: model.RecurDaily, EndDate: "2025-03-11"},
			from: date(2025, time.March, 10),
			want: date(2025, time.March, 11),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.rule, tt.from)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestNextOccurrence_Terminated(t *testing.T) {
	rule := model.RecurrenceRule{Pattern: model.RecurDaily, EndDate: "2025-03-10"}
	assert.Nil(t, NextOccurrence(rule, date(2025, time.March, 10)))

	rule = model.RecurrenceRule{Pattern: model.RecurWeekly, Days: []int{1}, EndDate: "2025-01-10"}
	assert.Nil(t, NextOccurrence(rule, date(2025, time.January, 10)))
}

func TestNextOccurrence_MalformedEndDateIgnored(t *testing.T) {
	rule := model.RecurrenceRule{Pattern: model.RecurDaily, EndDate: "not-a-date"}
	got := NextOccurrence(rule, date(2025, time.March, 10))
	require.NotNil(t, got)
	assert.Equal(t, date(2025, time.March, 11), *got)
}
