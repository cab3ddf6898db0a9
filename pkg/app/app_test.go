package app_test

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/semana/pkg/app"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/stats"
	"tableflip.dev/semana/pkg/store"
)

func newService(t *testing.T) (*app.Service, *store.Memory) {
	t.Helper()
	m := store.NewMemory()
	s := app.New(m, "")
	// Monday 2024-03-04, 10:00 local.
	s.Now = func() time.Time { return time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local) }
	return s, m
}

func TestAddTaskValidation(t *testing.T) {
	s, _ := newService(t)

	cases := []struct {
		name string
		in   app.TaskInput
	}{
		{"missing name", app.TaskInput{Date: "2024-03-04"}},
		{"missing date", app.TaskInput{Name: "run"}},
		{"bad date", app.TaskInput{Name: "run", Date: "04/03/2024"}},
		{"bad time", app.TaskInput{Name: "run", Date: "2024-03-04", Time: "7am"}},
		{"negative minutes", app.TaskInput{Name: "run", Date: "2024-03-04", EstimatedMinutes: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddTask(tc.in)
			var verr *app.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want *ValidationError, got %v", err)
			}
		})
	}
}

func TestTaskLifecycle(t *testing.T) {
	s, m := newService(t)

	added, err := s.AddTask(app.TaskInput{Name: "Gym", Date: "2024-03-04", Time: "07:00"})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected a generated id")
	}
	if added.Priority != record.PriorityMedium {
		t.Fatalf("default priority = %q, want medium", added.Priority)
	}

	today := s.TasksByDate("2024-03-04")
	if len(today) != 1 || today[0].Name != "Gym" {
		t.Fatalf("TasksByDate = %+v", today)
	}

	toggled, err := s.ToggleTask(added.ID)
	if err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if !toggled.Completed {
		t.Fatal("expected completed after toggle")
	}
	if got := stats.Streak(s.Snapshot().Tasks, "2024-03-04"); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}

	updated, err := s.UpdateTask(added.ID, app.TaskInput{Name: "Gym AM", Date: "2024-03-05", Time: "08:00"})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Name != "Gym AM" || updated.Date != "2024-03-05" {
		t.Fatalf("UpdateTask = %+v", updated)
	}
	if !updated.Completed {
		t.Fatal("update must not clear completion")
	}

	// Changes survive a reload from the same store.
	s2 := app.New(m, "")
	if got := len(s2.Snapshot().Tasks); got != 1 {
		t.Fatalf("reloaded tasks = %d, want 1", got)
	}

	if err := s.RemoveTask(added.ID); err != nil {
		t.Fatalf("RemoveTask: %v", err)
	}
	if err := s.RemoveTask("no-such-id"); err != nil {
		t.Fatalf("removing a missing id must be a no-op, got %v", err)
	}
	if got := len(s.Snapshot().Tasks); got != 0 {
		t.Fatalf("tasks after remove = %d, want 0", got)
	}
}

func TestToggleUnknownTask(t *testing.T) {
	s, _ := newService(t)
	_, err := s.ToggleTask("missing")
	var nf *app.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want *NotFoundError, got %v", err)
	}
}

func TestStorageFailureKeepsSessionState(t *testing.T) {
	s, m := newService(t)
	m.FailWrites = true

	added, err := s.AddTask(app.TaskInput{Name: "Gym", Date: "2024-03-04"})
	var serr *app.StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("want *StorageError, got %v", err)
	}
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("want wrapped ErrUnavailable, got %v", err)
	}

	// The mutation stays applied in memory even though the write failed.
	if got := s.TasksByDate("2024-03-04"); len(got) != 1 || got[0].ID != added.ID {
		t.Fatalf("in-memory tasks = %+v", got)
	}
}

func TestSearchAndFilter(t *testing.T) {
	s, _ := newService(t)
	mustAdd := func(in app.TaskInput) record.Task {
		t.Helper()
		task, err := s.AddTask(in)
		if err != nil {
			t.Fatalf("AddTask: %v", err)
		}
		return task
	}

	rent := mustAdd(app.TaskInput{Name: "Pay rent", Date: "2024-03-04", Category: "finance", Priority: record.PriorityHigh})
	mustAdd(app.TaskInput{Name: "Leg day", Date: "2024-03-05", Category: "gym"})
	done := mustAdd(app.TaskInput{Name: "Groceries", Date: "2024-03-04", Description: "rent a cart"})
	if _, err := s.ToggleTask(done.ID); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}

	// Matches name and description, case-insensitive.
	if got := s.SearchTasks("RENT"); len(got) != 2 {
		t.Fatalf("search = %d results, want 2", len(got))
	}

	if got := s.FilterTasks(app.TaskFilter{Category: "gym"}); len(got) != 1 {
		t.Fatalf("category filter = %d, want 1", len(got))
	}
	if got := s.FilterTasks(app.TaskFilter{State: "pending"}); len(got) != 2 {
		t.Fatalf("pending filter = %d, want 2", len(got))
	}
	if got := s.FilterTasks(app.TaskFilter{State: "completed", Date: "2024-03-04"}); len(got) != 1 {
		t.Fatalf("completed+date filter = %d, want 1", len(got))
	}

	up := s.UpcomingTasks(1)
	if len(up) != 1 || up[0].ID != rent.ID {
		t.Fatalf("upcoming = %+v", up)
	}
}

func TestGoalToggleSetsCompletedAt(t *testing.T) {
	s, _ := newService(t)

	g, err := s.AddGoal("run a 10k", "", "2024-06-01")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}

	toggled, err := s.ToggleGoal(g.ID)
	if err != nil {
		t.Fatalf("ToggleGoal: %v", err)
	}
	if !toggled.Completed || toggled.CompletedAt == nil {
		t.Fatalf("toggle on = %+v", toggled)
	}

	back, err := s.ToggleGoal(g.ID)
	if err != nil {
		t.Fatalf("ToggleGoal: %v", err)
	}
	if back.Completed || back.CompletedAt != nil {
		t.Fatalf("toggle off must clear CompletedAt, got %+v", back)
	}
}

func TestRoutineValidation(t *testing.T) {
	s, _ := newService(t)
	bench := []record.Exercise{{Name: "Bench Press", Sets: 4, Reps: 8, Weight: 60}}

	if _, err := s.SetRoutine("someday", "chest", bench); err == nil {
		t.Fatal("expected error for bad weekday key")
	}
	if _, err := s.SetRoutine("monday", "chest", nil); err == nil {
		t.Fatal("expected error for empty exercises")
	}
	if _, err := s.SetRoutine("monday", "chest", []record.Exercise{{Name: "Bench", Weight: -1}}); err == nil {
		t.Fatal("expected error for negative weight")
	}

	if _, err := s.SetRoutine("Monday", "chest", bench); err != nil {
		t.Fatalf("day keys must be case-insensitive: %v", err)
	}
	if _, ok := s.Routine("monday"); !ok {
		t.Fatal("routine not installed")
	}
}

func TestLogWorkout(t *testing.T) {
	s, _ := newService(t)

	if _, err := s.LogWorkout("monday", nil, ""); err == nil {
		t.Fatal("expected NotFoundError without a routine")
	}

	_, err := s.SetRoutine("monday", "chest", []record.Exercise{
		{Name: "Bench Press", Sets: 4, Reps: 8, Weight: 60},
		{Name: "Dips", Sets: 3, Reps: 10},
	})
	if err != nil {
		t.Fatalf("SetRoutine: %v", err)
	}

	w, err := s.LogWorkout("monday", map[string][]record.WorkoutSet{
		"Bench Press": {{Reps: 8, Weight: 60}, {Reps: 6, Weight: 65}},
	}, "solid")
	if err != nil {
		t.Fatalf("LogWorkout: %v", err)
	}
	if w.Date != "2024-03-04" || w.Focus != "chest" {
		t.Fatalf("workout = %+v", w)
	}
	if len(w.Exercises) != 2 {
		t.Fatalf("exercises = %d, want both routine entries", len(w.Exercises))
	}
	if got := w.Volume(); got != 8*60+6*65 {
		t.Fatalf("volume = %v", got)
	}

	// The log is a copy; deleting the routine keeps it intact.
	if err := s.RemoveRoutine("monday"); err != nil {
		t.Fatalf("RemoveRoutine: %v", err)
	}
	if got := s.Workouts(); len(got) != 1 {
		t.Fatalf("workouts = %d, want 1", len(got))
	}
}

func TestClearAll(t *testing.T) {
	s, m := newService(t)
	if _, err := s.AddTask(app.TaskInput{Name: "Gym", Date: "2024-03-04"}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.AddNote("remember"); err != nil {
		t.Fatalf("AddNote: %v", err)
	}

	if err := s.ClearAll(); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	s2 := app.New(m, "")
	snap := s2.Snapshot()
	if len(snap.Tasks)+len(snap.Goals)+len(snap.Notes)+len(snap.Workouts)+len(snap.Metrics) != 0 {
		t.Fatalf("snapshot not empty after clear: %+v", snap)
	}
}
