package backup_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/semana/pkg/backup"
	"tableflip.dev/semana/pkg/record"
)

func sampleSnapshot() *record.Snapshot {
	s := record.NewSnapshot("local")
	s.Tasks = []record.Task{{ID: "t1", Name: "Gym", Date: "2024-03-04", Time: "07:00", Priority: record.PriorityMedium}}
	s.Goals = []record.Goal{{ID: "g1", Text: "run a 10k", DueDate: "2024-06-01"}}
	s.Gym = map[string]record.Routine{
		"monday": {Focus: "chest", Exercises: record.ExerciseList{{Name: "Bench Press", Sets: 4, Reps: 8, Weight: 60}}},
	}
	s.Workouts = []record.Workout{{ID: "w1", Day: "monday", Focus: "chest", Date: "2024-03-04"}}
	s.Notes = []record.Note{{ID: "n1", Text: "deload soon", Date: "2024-03-04", Time: "10:00"}}
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	src := sampleSnapshot()
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	data, err := backup.ExportJSON(src, now)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	got, err := backup.Import(data, "local")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if !reflect.DeepEqual(got.Tasks, src.Tasks) {
		t.Fatalf("tasks: got %+v, want %+v", got.Tasks, src.Tasks)
	}
	if !reflect.DeepEqual(got.Goals, src.Goals) {
		t.Fatalf("goals: got %+v, want %+v", got.Goals, src.Goals)
	}
	if !reflect.DeepEqual(got.Gym, src.Gym) {
		t.Fatalf("gym: got %+v, want %+v", got.Gym, src.Gym)
	}
	if !reflect.DeepEqual(got.Workouts, src.Workouts) {
		t.Fatalf("workouts: got %+v, want %+v", got.Workouts, src.Workouts)
	}
	if !reflect.DeepEqual(got.Notes, src.Notes) {
		t.Fatalf("notes: got %+v, want %+v", got.Notes, src.Notes)
	}
}

func TestExportStamp(t *testing.T) {
	now := time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC)
	doc := backup.Export(sampleSnapshot(), now)
	if doc.ExportDate != "2024-03-04T10:30:00Z" {
		t.Fatalf("export date = %q", doc.ExportDate)
	}
}

func TestImportMalformed(t *testing.T) {
	for _, raw := range []string{`not json`, `"just a string"`, `[1,2,3]`, `{"tasks": "nope"}`} {
		_, err := backup.Import([]byte(raw), "local")
		var ierr *backup.ImportError
		if !errors.As(err, &ierr) {
			t.Fatalf("raw %q: want *ImportError, got %v", raw, err)
		}
	}
}

func TestImportMissingCollectionsDefaultEmpty(t *testing.T) {
	got, err := backup.Import([]byte(`{"tasks": []}`), "local")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if got.User != "local" {
		t.Fatalf("user = %q", got.User)
	}
	if got.Tasks == nil || got.Goals == nil || got.Gym == nil || got.Workouts == nil || got.Notes == nil {
		t.Fatalf("collections must default to empty, got %+v", got)
	}
	if len(got.Tasks)+len(got.Goals)+len(got.Workouts)+len(got.Notes) != 0 {
		t.Fatalf("expected everything empty, got %+v", got)
	}
}

func TestImportLegacyRoutineShape(t *testing.T) {
	raw := []byte(`{"gym": {"monday": {"focus": "chest", "exercises": "Bench Press 4x8\nDips 3x10"}}}`)

	got, err := backup.Import(raw, "local")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	r, ok := got.Gym["monday"]
	if !ok || len(r.Exercises) != 2 {
		t.Fatalf("routine = %+v", r)
	}
	if r.Exercises[0].Name != "Bench Press" || r.Exercises[0].Sets != 4 || r.Exercises[0].Reps != 8 {
		t.Fatalf("first exercise = %+v", r.Exercises[0])
	}
}
