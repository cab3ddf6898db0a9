package record

// Priority orders tasks by importance.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists the known priorities from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Known reports whether p is one of the defined priorities.
func (p Priority) Known() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// Categories lists the known task categories. A task may also carry an
// empty category.
var Categories = []string{"work", "personal", "study", "health", "other"}

// Task is a dated planner entry.
type Task struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Category         string   `json:"category,omitempty"`
	Priority         Priority `json:"priority"`
	Description      string   `json:"description,omitempty"`
	Completed        bool     `json:"completed"`
	EstimatedMinutes int      `json:"estimatedMinutes"`
	Reminder         bool     `json:"reminder"`
}

// DefaultTaskTime is used when a task is added without a time.
const DefaultTaskTime = "09:00"

// FillDefaults backfills optional task fields.
func (t *Task) FillDefaults() {
	if t.ID == "" {
		t.ID = NewID()
	}
	if t.Time == "" {
		t.Time = DefaultTaskTime
	}
	if !t.Priority.Known() {
		t.Priority = PriorityMedium
	}
	if t.EstimatedMinutes < 0 {
		t.EstimatedMinutes = 0
	}
}

// SortKey orders tasks by date then time.
func (t Task) SortKey() string {
	return t.Date + t.Time
}
