// Package app provides the high-level operations over a user's planner
// snapshot. It owns the only writer to the snapshot: UIs and CLIs call its
// typed mutators and re-read derived views after each change.
package app

import (
	"sort"
	"strings"
	"time"

	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/store"
)

// Service wraps persistence and the in-memory snapshot for one user.
// Every mutator applies the change in memory first and then writes the
// affected collection through; a failed write surfaces as *StorageError but
// never rolls the session state back.
type Service struct {
	Persistence store.Persistence

	// Now stands in for time.Now so derived views can be computed against a
	// fixed reference date in tests.
	Now func() time.Time

	user string
	snap *record.Snapshot
}

// New loads the user's snapshot, runs the legacy-task migration once, and
// returns a ready Service.
func New(p store.Persistence, user string) *Service {
	if user == "" {
		user = record.LocalUser
	}
	s := &Service{
		Persistence: p,
		Now:         time.Now,
		user:        user,
		snap:        p.Load(user),
	}
	s.migrateLegacyTasks()
	return s
}

// User returns the identity that owns this session's records.
func (s *Service) User() string { return s.user }

// Snapshot exposes the current in-memory records. Callers must treat it as
// read-only; all mutation goes through the typed operations.
func (s *Service) Snapshot() *record.Snapshot { return s.snap }

func (s *Service) today() string { return dates.FormatDay(s.Now()) }

func (s *Service) persist(op string, c store.Collection, v any) error {
	if err := s.Persistence.SaveCollection(s.user, c, v); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

// TaskInput carries the caller-supplied fields for adding or updating a
// task. Name and Date are required; everything else defaults.
type TaskInput struct {
	Name             string
	Date             string
	Time             string
	Category         string
	Priority         record.Priority
	Description      string
	EstimatedMinutes int
	Reminder         bool
}

func (in TaskInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if in.Date == "" {
		return &ValidationError{Field: "date", Reason: "required"}
	}
	if !dates.IsDay(in.Date) {
		return &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	if in.Time != "" && !dates.IsClock(in.Time) {
		return &ValidationError{Field: "time", Reason: "expected HH:MM"}
	}
	if in.EstimatedMinutes < 0 {
		return &ValidationError{Field: "estimatedMinutes", Reason: "must not be negative"}
	}
	return nil
}

// AddTask creates a task with a fresh id and filled defaults.
func (s *Service) AddTask(in TaskInput) (record.Task, error) {
	if err := in.validate(); err != nil {
		return record.Task{}, err
	}
	t := record.Task{
		Name:             strings.TrimSpace(in.Name),
		Date:             in.Date,
		Time:             in.Time,
		Category:         in.Category,
		Priority:         in.Priority,
		Description:      strings.TrimSpace(in.Description),
		EstimatedMinutes: in.EstimatedMinutes,
		Reminder:         in.Reminder,
	}
	t.FillDefaults()
	s.snap.Tasks = append(s.snap.Tasks, t)
	return t, s.persist("add task", store.Tasks, s.snap.Tasks)
}

// UpdateTask replaces the editable fields of an existing task. Completion is
// untouched; use ToggleTask for that.
func (s *Service) UpdateTask(id string, in TaskInput) (record.Task, error) {
	if err := in.validate(); err != nil {
		return record.Task{}, err
	}
	for i := range s.snap.Tasks {
		if s.snap.Tasks[i].ID != id {
			continue
		}
		t := &s.snap.Tasks[i]
		t.Name = strings.TrimSpace(in.Name)
		t.Date = in.Date
		t.Time = in.Time
		t.Category = in.Category
		t.Priority = in.Priority
		t.Description = strings.TrimSpace(in.Description)
		t.EstimatedMinutes = in.EstimatedMinutes
		t.Reminder = in.Reminder
		t.FillDefaults()
		return *t, s.persist("update task", store.Tasks, s.snap.Tasks)
	}
	return record.Task{}, &NotFoundError{Kind: "task", ID: id}
}

// ToggleTask flips a task's completed flag.
func (s *Service) ToggleTask(id string) (record.Task, error) {
	for i := range s.snap.Tasks {
		if s.snap.Tasks[i].ID != id {
			continue
		}
		s.snap.Tasks[i].Completed = !s.snap.Tasks[i].Completed
		return s.snap.Tasks[i], s.persist("toggle task", store.Tasks, s.snap.Tasks)
	}
	return record.Task{}, &NotFoundError{Kind: "task", ID: id}
}

// RemoveTask deletes a task by id. A missing id is a no-op, not an error.
func (s *Service) RemoveTask(id string) error {
	kept := s.snap.Tasks[:0]
	for _, t := range s.snap.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.snap.Tasks = kept
	return s.persist("remove task", store.Tasks, s.snap.Tasks)
}

// TasksByDate returns the tasks scheduled on one day id.
func (s *Service) TasksByDate(date string) []record.Task {
	var out []record.Task
	for _, t := range s.snap.Tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

// AllTasksSorted returns every task ordered by date then time.
func (s *Service) AllTasksSorted() []record.Task {
	out := make([]record.Task, len(s.snap.Tasks))
	copy(out, s.snap.Tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortKey() < out[j].SortKey()
	})
	return out
}

// SearchTasks matches tasks whose name or description contains the query,
// case-insensitively.
func (s *Service) SearchTasks(query string) []record.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.AllTasksSorted()
	}
	var out []record.Task
	for _, t := range s.AllTasksSorted() {
		if strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
		}
	}
	return out
}

// TaskFilter narrows AllTasksSorted. Zero values mean "no constraint";
// State is one of "", "pending", "completed".
type TaskFilter struct {
	Category string
	Priority record.Priority
	State    string
	Date     string
}

// FilterTasks returns the sorted tasks matching every set filter field.
func (s *Service) FilterTasks(f TaskFilter) []record.Task {
	var out []record.Task
	for _, t := range s.AllTasksSorted() {
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.State == "pending" && t.Completed {
			continue
		}
		if f.State == "completed" && !t.Completed {
			continue
		}
		if f.Date != "" && t.Date != f.Date {
			continue
		}
		out = append(out, t)
	}
	return out
}

// UpcomingTasks returns the first n pending tasks in schedule order.
func (s *Service) UpcomingTasks(n int) []record.Task {
	var out []record.Task
	for _, t := range s.AllTasksSorted() {
		if t.Completed {
			continue
		}
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}

// ClearAll wipes every collection for the current user. Irreversible.
func (s *Service) ClearAll() error {
	s.snap = record.NewSnapshot(s.user)
	if err := s.Persistence.Save(s.snap); err != nil {
		return &StorageError{Op: "clear all", Err: err}
	}
	return nil
}
