package app

import (
	"strings"

	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/store"
)

// AddGoal creates a goal. Text is required; startDate and dueDate are
// optional day ids.
func (s *Service) AddGoal(text, startDate, dueDate string) (record.Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return record.Goal{}, &ValidationError{Field: "text", Reason: "required"}
	}
	if startDate != "" && !dates.IsDay(startDate) {
		return record.Goal{}, &ValidationError{Field: "startDate", Reason: "expected YYYY-MM-DD"}
	}
	if dueDate != "" && !dates.IsDay(dueDate) {
		return record.Goal{}, &ValidationError{Field: "dueDate", Reason: "expected YYYY-MM-DD"}
	}
	g := record.Goal{
		ID:        record.NewID(),
		Text:      text,
		StartDate: startDate,
		DueDate:   dueDate,
	}
	s.snap.Goals = append(s.snap.Goals, g)
	return g, s.persist("add goal", store.Goals, s.snap.Goals)
}

// ToggleGoal flips completion and sets or clears CompletedAt atomically
// with it.
func (s *Service) ToggleGoal(id string) (record.Goal, error) {
	for i := range s.snap.Goals {
		if s.snap.Goals[i].ID != id {
			continue
		}
		s.snap.Goals[i].Toggle(s.Now())
		return s.snap.Goals[i], s.persist("toggle goal", store.Goals, s.snap.Goals)
	}
	return record.Goal{}, &NotFoundError{Kind: "goal", ID: id}
}

// RemoveGoal deletes a goal by id; missing ids are a no-op.
func (s *Service) RemoveGoal(id string) error {
	kept := s.snap.Goals[:0]
	for _, g := range s.snap.Goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.snap.Goals = kept
	return s.persist("remove goal", store.Goals, s.snap.Goals)
}

// Goals returns the current goal list.
func (s *Service) Goals() []record.Goal {
	out := make([]record.Goal, len(s.snap.Goals))
	copy(out, s.snap.Goals)
	return out
}
