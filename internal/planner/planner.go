// Package planner holds the pure daily-planning core: the plan generator,
// the plate health scorer, and the recurrence calculator. Nothing in here
// touches the database or the wall clock; everything is computed from the
// snapshot passed in, so the whole package is deterministic and swappable.
package planner

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"plates-planner/internal/model"
)

// Scoring weights for task selection.
const (
	weightUrgency   = 0.35
	weightPriority  = 0.30
	weightBalance   = 0.20
	weightStaleness = 0.15
)

// Selection limits and buffers per day type.
const (
	workdayMinTasks = 8
	workdayMaxTasks = 12
	weekendMinTasks = 10
	weekendMaxTasks = 15

	defaultEffortMinutes = 30
	workdayBufferMinutes = 120
	weekendBufferMinutes = 180
)

// contextLabels maps task contexts to the plan item group labels shown in
// the UI. Unknown contexts fall back to "Anywhere".
var contextLabels = map[model.TaskContext]string{
	model.ContextAtWork:   "At Work",
	model.ContextAtHome:   "At Home",
	model.ContextErrands:  "Errands",
	model.ContextAnywhere: "Anywhere",
}

// timePrefOrder groups the day into morning, afternoon, anytime, evening
// blocks. Unknown preferences land in the anytime slot.
var timePrefOrder = map[model.TimePreference]int{
	model.PreferMorning:   0,
	model.PreferAfternoon: 1,
	model.PreferAnytime:   2,
	model.PreferEvening:   3,
}

// Input is the immutable snapshot the generator works from.
// Precondition: Tasks must already be scoped to non-archived plates;
// the generator does not re-check plate archival.
type Input struct {
	User              model.User
	Date              time.Time
	Tasks             []model.Task
	Plates            []model.Plate
	RecentReviews     []model.Review
	RecentCompletions []model.Completion
}

// Item references one selected task in final plan order.
type Item struct {
	TaskID       uint   `json:"task_id"`
	SortOrder    int    `json:"sort_order"`
	ContextGroup string `json:"context_group"`
}

// Plan is the generator output, ready to be persisted as a daily plan.
type Plan struct {
	Date             time.Time     `json:"date"`
	DayType          model.DayType `json:"day_type"`
	AvailableMinutes int           `json:"available_minutes"`
	Items            []Item        `json:"items"`
}

// Generator produces a plan from a snapshot. Callers depend on this
// interface so the heuristic implementation can later be swapped for a
// different strategy without touching call sites.
type Generator interface {
	Generate(input Input) Plan
}

// HeuristicGenerator is the scoring-based Generator implementation.
type HeuristicGenerator struct{}

func (HeuristicGenerator) Generate(input Input) Plan {
	return GenerateDailyPlan(input)
}

type scoredTask struct {
	task  model.Task
	score float64
}

// GenerateDailyPlan selects, sizes, and orders a subset of the user's
// tasks into a schedule for the given date. Identical input yields
// identical output.
func GenerateDailyPlan(input Input) Plan {
	date := DateOnly(input.Date)

	dayType := model.DayTypeWeekend
	for _, d := range input.User.WorkDayList() {
		if d == int(date.Weekday()) {
			dayType = model.DayTypeWorkday
			break
		}
	}

	available := availableMinutes(input.User, dayType)

	candidates := make([]model.Task, 0, len(input.Tasks))
	for _, task := range input.Tasks {
		if eligible(task, date, dayType) {
			candidates = append(candidates, task)
		}
	}

	health := plateHealthEstimate(input.Plates, input.RecentReviews, input.RecentCompletions, date)

	scored := make([]scoredTask, len(candidates))
	for i, task := range candidates {
		scored[i] = scoredTask{task: task, score: scoreTask(task, date, health)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	minTasks, maxTasks := weekendMinTasks, weekendMaxTasks
	if dayType == model.DayTypeWorkday {
		minTasks, maxTasks = workdayMinTasks, workdayMaxTasks
	}

	// Greedy fill by score until the time budget runs out, but never stop
	// below the day-type minimum and never exceed the maximum.
	var selected []scoredTask
	picked := make(map[uint]bool)
	platesCovered := make(map[uint]bool)
	totalMinutes := 0
	for _, st := range scored {
		if len(selected) >= maxTasks {
			break
		}
		effort := effortOrDefault(st.task)
		if totalMinutes+effort > available && len(selected) >= minTasks {
			break
		}
		selected = append(selected, st)
		totalMinutes += effort
		picked[st.task.ID] = true
		platesCovered[st.task.PlateID] = true
	}

	// Coverage top-up: every active plate with candidates left gets its
	// best remaining one, so no life area disappears from the day.
	for _, plate := range input.Plates {
		if plate.Status != model.PlateStatusActive || platesCovered[plate.ID] {
			continue
		}
		if len(selected) >= maxTasks {
			break
		}
		for _, st := range scored {
			if st.task.PlateID != plate.ID || picked[st.task.ID] {
				continue
			}
			selected = append(selected, st)
			picked[st.task.ID] = true
			platesCovered[plate.ID] = true
			break
		}
	}

	// Final ordering: time-of-day block, then context so co-located tasks
	// run together, then score as the tiebreak.
	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if ao, bo := prefOrder(a.task.TimePreference), prefOrder(b.task.TimePreference); ao != bo {
			return ao < bo
		}
		if ac, bc := contextKey(a.task.Context), contextKey(b.task.Context); ac != bc {
			return ac < bc
		}
		return a.score > b.score
	})

	items := make([]Item, len(selected))
	for i, st := range selected {
		items[i] = Item{
			TaskID:       st.task.ID,
			SortOrder:    i,
			ContextGroup: contextLabel(st.task.Context),
		}
	}

	return Plan{
		Date:             date,
		DayType:          dayType,
		AvailableMinutes: available,
		Items:            items,
	}
}

func eligible(task model.Task, date time.Time, dayType model.DayType) bool {
	if task.Status != model.TaskStatusPending && task.Status != model.TaskStatusInProgress {
		return false
	}
	if task.IsRecurring && task.NextOccurrence != nil && DateOnly(*task.NextOccurrence).After(date) {
		return false
	}
	if dayType == model.DayTypeWeekend && task.Context == model.ContextAtWork {
		return false
	}
	return true
}

func scoreTask(task model.Task, date time.Time, health map[uint]int) float64 {
	return urgencyScore(task, date)*weightUrgency +
		priorityScore(task.Priority)*weightPriority +
		balanceScore(task.PlateID, health)*weightBalance +
		stalenessScore(task, date)*weightStaleness
}

func urgencyScore(task model.Task, date time.Time) float64 {
	if task.DueDate == nil {
		return 10
	}
	switch days := daysBetween(date, DateOnly(*task.DueDate)); {
	case days < 0:
		return 100 // overdue
	case days == 0:
		return 90
	case days == 1:
		return 70
	case days <= 7:
		return 50
	case days <= 30:
		return 30
	default:
		return 10
	}
}

func priorityScore(priority model.TaskPriority) float64 {
	switch priority {
	case model.TaskPriorityCritical:
		return 100
	case model.TaskPriorityHigh:
		return 75
	case model.TaskPriorityMedium:
		return 50
	case model.TaskPriorityLow:
		return 25
	default:
		return 50
	}
}

// balanceScore inverts plate health: neglected plates score higher, which
// steers attention toward underserved areas.
func balanceScore(plateID uint, health map[uint]int) float64 {
	h, ok := health[plateID]
	if !ok {
		return 50
	}
	return float64(100 - h)
}

func stalenessScore(task model.Task, date time.Time) float64 {
	days := daysBetween(DateOnly(task.CreatedAt), date)
	if days < 0 {
		return 0
	}
	if days > 50 {
		return 50
	}
	return float64(days)
}

// plateHealthEstimate is a deliberately cheaper signal than PlateHealth:
// the balance term only needs a rough neglect ranking, not the full
// composite, and the two are kept divergent on purpose.
func plateHealthEstimate(plates []model.Plate, reviews []model.Review, completions []model.Completion, date time.Time) map[uint]int {
	cutoff := date.AddDate(0, 0, -7)
	estimates := make(map[uint]int, len(plates))
	for _, plate := range plates {
		if plate.Status != model.PlateStatusActive {
			continue
		}
		count := 0
		for _, c := range completions {
			if c.PlateID == plate.ID && !c.CompletedAt.Before(cutoff) {
				count++
			}
		}
		health := 20 + min(count*15, 60)
		if len(reviews) > 0 {
			health = min(health+10, 100)
		}
		estimates[plate.ID] = min(health, 100)
	}
	return estimates
}

func availableMinutes(user model.User, dayType model.DayType) int {
	awake := clockMinutes(user.SleepTime) - clockMinutes(user.WakeTime)
	if dayType == model.DayTypeWorkday {
		work := clockMinutes(user.WorkEndTime) - clockMinutes(user.WorkStartTime)
		return max(awake-work-workdayBufferMinutes, workdayBufferMinutes)
	}
	return max(awake-weekendBufferMinutes, weekendBufferMinutes)
}

// clockMinutes parses "HH:MM" into minutes since midnight, 0 when malformed.
func clockMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

func effortOrDefault(task model.Task) int {
	if task.EffortMinutes != nil && *task.EffortMinutes > 0 {
		return *task.EffortMinutes
	}
	return defaultEffortMinutes
}

func prefOrder(pref model.TimePreference) int {
	if order, ok := timePrefOrder[pref]; ok {
		return order
	}
	return timePrefOrder[model.PreferAnytime]
}

func contextKey(ctx model.TaskContext) string {
	if ctx == "" {
		return string(model.ContextAnywhere)
	}
	return string(ctx)
}

func contextLabel(ctx model.TaskContext) string {
	if label, ok := contextLabels[ctx]; ok {
		return label
	}
	return contextLabels[model.ContextAnywhere]
}
