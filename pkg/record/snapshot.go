// Package record defines the planner's domain entities and the in-memory
// snapshot that holds one user's records for a session.
package record

import "github.com/google/uuid"

// Snapshot is the in-memory copy of one user's collections. It is loaded
// once per session and mutated only through the app service, which writes
// every change back to the store.
type Snapshot struct {
	User     string             `json:"-"`
	Tasks    []Task             `json:"tasks"`
	Goals    []Goal             `json:"objetivos"`
	Gym      map[string]Routine `json:"gym"`
	Workouts []Workout          `json:"gymWorkouts"`
	Notes    []Note             `json:"notes"`
	Metrics  []Metric           `json:"metrics"`
}

// NewSnapshot returns an empty snapshot for the given user.
func NewSnapshot(user string) *Snapshot {
	return &Snapshot{
		User:     user,
		Tasks:    []Task{},
		Goals:    []Goal{},
		Gym:      map[string]Routine{},
		Workouts: []Workout{},
		Notes:    []Note{},
		Metrics:  []Metric{},
	}
}

// Normalize coerces nil collections back to their empty containers so
// corrupt or pre-schema stored values degrade to "no data" instead of
// crashing downstream code.
func (s *Snapshot) Normalize() {
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.Gym == nil {
		s.Gym = map[string]Routine{}
	}
	if s.Workouts == nil {
		s.Workouts = []Workout{}
	}
	if s.Notes == nil {
		s.Notes = []Note{}
	}
	if s.Metrics == nil {
		s.Metrics = []Metric{}
	}
}

// NewID returns a fresh unique record id.
func NewID() string {
	return uuid.New().String()
}
