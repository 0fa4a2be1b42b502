package planner

import (
	"sort"
	"time"

	"plates-planner/internal/model"
)

const dateLayout = "2006-01-02"

// DateOnly truncates a timestamp to its calendar date. All planner math
// works on naive dates, so the result is pinned to UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// NextOccurrence computes the next eligible date for a recurring task
// after fromDate. It returns nil once the rule's end date has passed,
// which tells the caller to complete the task permanently instead of
// rescheduling it.
func NextOccurrence(rule model.RecurrenceRule, from time.Time) *time.Time {
	next := DateOnly(from)

	switch rule.Pattern {
	case model.RecurDaily:
		next = next.AddDate(0, 0, 1)

	case model.RecurWeekly:
		if len(rule.Days) > 0 {
			days := append([]int(nil), rule.Days...)
			sort.Ints(days)
			current := int(next.Weekday())
			advanced := false
			for _, d := range days {
				if d > current {
					next = next.AddDate(0, 0, d-current)
					advanced = true
					break
				}
			}
			if !advanced {
				// Wrap to the earliest weekday in the following week.
				next = next.AddDate(0, 0, 7-current+days[0])
			}
		} else {
			next = next.AddDate(0, 0, 7)
		}

	case model.RecurBiweekly:
		next = next.AddDate(0, 0, 14)

	case model.RecurMonthly:
		year, month, day := next.Date()
		if rule.DayOfMonth > 0 {
			day = rule.DayOfMonth
		}
		anchor := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
		if last := daysInMonth(anchor.Year(), anchor.Month()); day > last {
			day = last
		}
		next = time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, time.UTC)

	default:
		// custom, and unrecognized patterns by defensive default: every N days.
		interval := rule.Interval
		if interval <= 0 {
			interval = 1
		}
		next = next.AddDate(0, 0, interval)
	}

	if rule.EndDate != "" {
		if end, err := time.ParseInLocation(dateLayout, rule.EndDate, time.UTC); err == nil && next.After(end) {
			return nil
		}
	}

	return &next
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
