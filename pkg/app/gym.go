package app

import (
	"sort"
	"strings"

	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/store"
)

// SetRoutine installs or replaces the routine for a weekday. The snapshot
// holds at most one routine per weekday key.
func (s *Service) SetRoutine(day, focus string, exercises []record.Exercise) (record.Routine, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	if dates.DayKeyIndex(day) < 0 {
		return record.Routine{}, &ValidationError{Field: "day", Reason: "expected a weekday key (monday..sunday)"}
	}
	if len(exercises) == 0 {
		return record.Routine{}, &ValidationError{Field: "exercises", Reason: "at least one exercise required"}
	}
	for _, ex := range exercises {
		if ex.Weight < 0 {
			return record.Routine{}, &ValidationError{Field: "weight", Reason: "must not be negative"}
		}
	}
	r := record.Routine{Focus: focus, Exercises: exercises}
	s.snap.Gym[day] = r
	return r, s.persist("set routine", store.Gym, s.snap.Gym)
}

// RemoveRoutine deletes the routine for a weekday; a missing day is a no-op.
func (s *Service) RemoveRoutine(day string) error {
	delete(s.snap.Gym, strings.ToLower(strings.TrimSpace(day)))
	return s.persist("remove routine", store.Gym, s.snap.Gym)
}

// Routine looks up the routine for a weekday key.
func (s *Service) Routine(day string) (record.Routine, bool) {
	r, ok := s.snap.Gym[strings.ToLower(strings.TrimSpace(day))]
	return r, ok
}

// Routines returns the weekday→routine map in week order as (day, routine)
// pairs.
func (s *Service) Routines() []RoutineDay {
	var out []RoutineDay
	for _, day := range dates.DayKeys {
		if r, ok := s.snap.Gym[day]; ok {
			out = append(out, RoutineDay{Day: day, Routine: r})
		}
	}
	return out
}

// RoutineDay pairs a weekday key with its routine.
type RoutineDay struct {
	Day     string
	Routine record.Routine
}

// LogWorkout appends a dated workout performed against the weekday's
// routine. performed maps exercise name to the sets actually done; exercises
// without an entry are logged with no sets. The log stays valid even if the
// routine is later edited or deleted.
func (s *Service) LogWorkout(day string, performed map[string][]record.WorkoutSet, notes string) (record.Workout, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	r, ok := s.snap.Gym[day]
	if !ok {
		return record.Workout{}, &NotFoundError{Kind: "routine", ID: day}
	}
	w := record.Workout{
		ID:    record.NewID(),
		Day:   day,
		Focus: r.Focus,
		Date:  s.today(),
		Notes: strings.TrimSpace(notes),
	}
	for _, ex := range r.Exercises {
		w.Exercises = append(w.Exercises, record.WorkoutExercise{
			Name: ex.Name,
			Sets: performed[ex.Name],
		})
	}
	s.snap.Workouts = append(s.snap.Workouts, w)
	return w, s.persist("log workout", store.Workouts, s.snap.Workouts)
}

// RemoveWorkout deletes a logged workout by id; missing ids are a no-op.
func (s *Service) RemoveWorkout(id string) error {
	kept := s.snap.Workouts[:0]
	for _, w := range s.snap.Workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	s.snap.Workouts = kept
	return s.persist("remove workout", store.Workouts, s.snap.Workouts)
}

// Workouts returns the workout history, most recent date first.
func (s *Service) Workouts() []record.Workout {
	out := make([]record.Workout, len(s.snap.Workouts))
	copy(out, s.snap.Workouts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
