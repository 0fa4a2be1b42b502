package service

import "plates-planner/internal/model"

// SuggestedPlate is a starter life area offered during onboarding.
type SuggestedPlate struct {
	Name        string          `json:"name"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	Type        model.PlateType `json:"type"`
	Description string          `json:"description"`
}

// SuggestedTask is a starter task attached to a suggested plate.
// Days holds weekday indexes (0 = Sunday) for weekly cadences.
type SuggestedTask struct {
	Title      string                  `json:"title"`
	Recurrence model.RecurrencePattern `json:"recurrence,omitempty"`
	Days       []int                   `json:"days,omitempty"`
}

// SuggestedPlates is the onboarding catalog of common life areas.
var SuggestedPlates = []SuggestedPlate{
	{Name: "Work", Icon: "💼", Color: "#3B82F6", Type: model.PlateTypeOngoing, Description: "Career and professional growth"},
	{Name: "Family & Home", Icon: "🏠", Color: "#10B981", Type: model.PlateTypeOngoing, Description: "Family life and household management"},
	{Name: "Health & Fitness", Icon: "💪", Color: "#EF4444", Type: model.PlateTypeOngoing, Description: "Physical and mental wellbeing"},
	{Name: "Side Business", Icon: "🚀", Color: "#8B5CF6", Type: model.PlateTypeOngoing, Description: "Entrepreneurial ventures"},
	{Name: "Recreation", Icon: "🎮", Color: "#F59E0B", Type: model.PlateTypeOngoing, Description: "Hobbies, fun, and relaxation"},
	{Name: "Buying a Home", Icon: "🏡", Color: "#06B6D4", Type: model.PlateTypeGoal, Description: "Home buying process and goals"},
	{Name: "Education", Icon: "📚", Color: "#6366F1", Type: model.PlateTypeOngoing, Description: "Learning and personal development"},
	{Name: "Social", Icon: "👥", Color: "#EC4899", Type: model.PlateTypeOngoing, Description: "Friendships and community"},
	{Name: "Finances", Icon: "💰", Color: "#14B8A6", Type: model.PlateTypeOngoing, Description: "Budgeting, saving, and investing"},
}

// SuggestedTasks maps a suggested plate name to its starter tasks.
// An empty Recurrence means a one-time task.
var SuggestedTasks = map[string][]SuggestedTask{
	"Work": {
		{Title: "Check email & messages", Recurrence: model.RecurDaily},
		{Title: "Team standup", Recurrence: model.RecurWeekly, Days: []int{1, 2, 3, 4, 5}},
		{Title: "Weekly report", Recurrence: model.RecurWeekly, Days: []int{5}},
		{Title: "Review priorities for the day", Recurrence: model.RecurDaily},
		{Title: "1:1 with manager", Recurrence: model.RecurWeekly, Days: []int{3}},
		{Title: "Professional development time", Recurrence: model.RecurWeekly, Days: []int{4}},
	},
	"Family & Home": {
		{Title: "Laundry", Recurrence: model.RecurWeekly, Days: []int{6}},
		{Title: "Grocery shopping", Recurrence: model.RecurWeekly, Days: []int{0}},
		{Title: "Cook dinner", Recurrence: model.RecurDaily},
		{Title: "Kids' homework help", Recurrence: model.RecurWeekly, Days: []int{1, 2, 3, 4}},
		{Title: "Yard work", Recurrence: model.RecurWeekly, Days: []int{6}},
		{Title: "Pet care", Recurrence: model.RecurDaily},
		{Title: "Family activity / outing", Recurrence: model.RecurWeekly, Days: []int{6}},
		{Title: "Clean house", Recurrence: model.RecurWeekly, Days: []int{6}},
	},
	"Health & Fitness": {
		{Title: "Morning workout", Recurrence: model.RecurWeekly, Days: []int{1, 3, 5}},
		{Title: "Meal prep", Recurrence: model.RecurWeekly, Days: []int{0}},
		{Title: "Meditation / mindfulness", Recurrence: model.RecurDaily},
		{Title: "Get 8 hours of sleep", Recurrence: model.RecurDaily},
		{Title: "Drink 8 glasses of water", Recurrence: model.RecurDaily},
		{Title: "Doctor / dentist checkup"},
	},
	"Side Business": {
		{Title: "Work on product", Recurrence: model.RecurWeekly, Days: []int{2, 4}},
		{Title: "Update social media", Recurrence: model.RecurWeekly, Days: []int{1}},
		{Title: "Customer outreach", Recurrence: model.RecurWeekly, Days: []int{3}},
		{Title: "Review analytics", Recurrence: model.RecurWeekly, Days: []int{1}},
		{Title: "Bookkeeping", Recurrence: model.RecurWeekly, Days: []int{5}},
	},
	"Recreation": {
		{Title: "Read for 30 minutes", Recurrence: model.RecurDaily},
		{Title: "Play video games", Recurrence: model.RecurWeekly, Days: []int{5, 6}},
		{Title: "Watch a movie", Recurrence: model.RecurWeekly, Days: []int{5}},
		{Title: "Work on hobby project", Recurrence: model.RecurWeekly, Days: []int{6}},
	},
	"Buying a Home": {
		{Title: "Research neighborhoods"},
		{Title: "Get pre-approved for mortgage"},
		{Title: "Browse listings", Recurrence: model.RecurWeekly, Days: []int{6}},
		{Title: "Schedule home tours"},
		{Title: "Review finances / savings", Recurrence: model.RecurWeekly, Days: []int{0}},
	},
	"Education": {
		{Title: "Online course lesson", Recurrence: model.RecurWeekly, Days: []int{2, 4}},
		{Title: "Read industry articles", Recurrence: model.RecurDaily},
		{Title: "Practice new skill", Recurrence: model.RecurWeekly, Days: []int{1, 3, 5}},
		{Title: "Listen to educational podcast", Recurrence: model.RecurWeekly, Days: []int{1, 3}},
	},
	"Social": {
		{Title: "Call a friend or family member", Recurrence: model.RecurWeekly, Days: []int{3}},
		{Title: "Plan a social outing", Recurrence: model.RecurWeekly, Days: []int{4}},
		{Title: "Reply to messages", Recurrence: model.RecurDaily},
		{Title: "Attend community event"},
	},
	"Finances": {
		{Title: "Review budget", Recurrence: model.RecurWeekly, Days: []int{0}},
		{Title: "Pay bills", Recurrence: model.RecurWeekly, Days: []int{1}},
		{Title: "Check investments", Recurrence: model.RecurWeekly, Days: []int{1}},
		{Title: "Update expense tracker", Recurrence: model.RecurDaily},
		{Title: "Review subscriptions"},
	},
}

// Timezones is the set offered in the onboarding schedule step.
var Timezones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Anchorage",
	"Pacific/Honolulu",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Asia/Kolkata",
	"Australia/Sydney",
}

func suggestedPlateByName(name string) (SuggestedPlate, bool) {
	for _, plate := range SuggestedPlates {
		if plate.Name == name {
			return plate, true
		}
	}
	return SuggestedPlate{}, false
}
