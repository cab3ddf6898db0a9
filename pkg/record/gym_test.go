package record

import (
	"encoding/json"
	"testing"
	"time"
)

func TestExerciseListStructured(t *testing.T) {
	raw := `[{"name":"Squat","sets":5,"reps":5,"weight":100}]`
	var list ExerciseList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(list))
	}
	if list[0].Name != "Squat" || list[0].Sets != 5 || list[0].Reps != 5 || list[0].Weight != 100 {
		t.Fatalf("unexpected exercise: %+v", list[0])
	}
}

func TestExerciseListLegacyString(t *testing.T) {
	raw := `"Bench Press 4x8\nLateral Raise 3x12\nPlank"`
	var list ExerciseList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 exercises, got %d", len(list))
	}
	if list[0].Name != "Bench Press" || list[0].Sets != 4 || list[0].Reps != 8 {
		t.Fatalf("unexpected first exercise: %+v", list[0])
	}
	if list[1].Sets != 3 || list[1].Reps != 12 {
		t.Fatalf("unexpected second exercise: %+v", list[1])
	}
	// Unparseable lines keep their name so no planned work is dropped.
	if list[2].Name != "Plank" || list[2].Sets != 0 {
		t.Fatalf("unexpected third exercise: %+v", list[2])
	}
}

func TestRoutineDualShapeDecode(t *testing.T) {
	legacy := `{"focus":"chest","exercises":"Bench Press 4x8"}`
	var r Routine
	if err := json.Unmarshal([]byte(legacy), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Exercises) != 1 || r.Exercises[0].Name != "Bench Press" {
		t.Fatalf("unexpected exercises: %+v", r.Exercises)
	}

	// Re-encoding always produces the structured shape.
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var again Routine
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.Exercises) != 1 || again.Exercises[0].Sets != 4 {
		t.Fatalf("round trip lost structure: %+v", again.Exercises)
	}
}

func TestWorkoutVolume(t *testing.T) {
	w := Workout{Exercises: []WorkoutExercise{
		{Name: "Squat", Sets: []WorkoutSet{{Reps: 5, Weight: 100}, {Reps: 5, Weight: 110}}},
		{Name: "Leg Press", Sets: []WorkoutSet{{Reps: 10, Weight: 200}}},
	}}
	if got := w.Volume(); got != 5*100+5*110+10*200 {
		t.Fatalf("unexpected volume: %v", got)
	}
}

func TestTaskFillDefaults(t *testing.T) {
	task := Task{Name: "Gym", Date: "2024-03-04"}
	task.FillDefaults()
	if task.ID == "" {
		t.Fatal("expected an id to be assigned")
	}
	if task.Time != DefaultTaskTime {
		t.Fatalf("expected default time %s, got %s", DefaultTaskTime, task.Time)
	}
	if task.Priority != PriorityMedium {
		t.Fatalf("expected medium priority, got %s", task.Priority)
	}
}

func TestGoalToggleCompletedAt(t *testing.T) {
	g := Goal{ID: "g1", Text: "Run a 10k"}
	now := g.CompletedAt
	if now != nil {
		t.Fatal("expected nil CompletedAt on a fresh goal")
	}
	g.Toggle(time.Now())
	if !g.Completed || g.CompletedAt == nil {
		t.Fatalf("expected completed goal with timestamp, got %+v", g)
	}
	g.Toggle(time.Now())
	if g.Completed || g.CompletedAt != nil {
		t.Fatalf("expected reopened goal with cleared timestamp, got %+v", g)
	}
}
