package record

import "time"

// Goal is a free-form objective, optionally bounded by a due date.
type Goal struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	StartDate   string     `json:"startDate,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
}

// Toggle flips completion and keeps CompletedAt in step: set when the goal
// closes, cleared when it reopens.
func (g *Goal) Toggle(now time.Time) {
	g.Completed = !g.Completed
	if g.Completed {
		g.CompletedAt = &now
	} else {
		g.CompletedAt = nil
	}
}
