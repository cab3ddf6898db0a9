package stats_test

import (
	"testing"
	"time"

	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/stats"
)

func task(date string, completed bool) record.Task {
	t := record.Task{Name: "t", Date: date, Completed: completed}
	t.FillDefaults()
	return t
}

func TestStreak(t *testing.T) {
	cases := []struct {
		name  string
		tasks []record.Task
		asOf  string
		want  int
	}{
		{"empty", nil, "2024-01-05", 0},
		{
			"five consecutive days",
			[]record.Task{
				task("2024-01-01", true), task("2024-01-02", true), task("2024-01-03", true),
				task("2024-01-04", true), task("2024-01-05", true),
			},
			"2024-01-05", 5,
		},
		{
			"empty day breaks the walk",
			[]record.Task{task("2024-01-01", true), task("2024-01-03", true)},
			"2024-01-05", 1,
		},
		{
			"incomplete latest day",
			[]record.Task{task("2024-01-04", true), task("2024-01-05", false)},
			"2024-01-05", 0,
		},
		{
			"mixed day not fully complete",
			[]record.Task{task("2024-01-05", true), task("2024-01-05", false)},
			"2024-01-05", 0,
		},
		{
			"future tasks ignored",
			[]record.Task{task("2024-01-05", true), task("2024-01-10", false)},
			"2024-01-05", 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stats.Streak(tc.tasks, tc.asOf); got != tc.want {
				t.Fatalf("Streak = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestWeeklyProgress(t *testing.T) {
	week := dates.WeekDates(time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local))

	if got := stats.WeeklyProgress(nil, week); got != 0 {
		t.Fatalf("empty week = %d%%, want 0", got)
	}

	tasks := []record.Task{
		task("2024-03-04", true),
		task("2024-03-05", true),
		task("2024-03-06", false),
		task("2024-02-01", false), // outside the week, ignored
	}
	if got := stats.WeeklyProgress(tasks, week); got != 67 {
		t.Fatalf("progress = %d%%, want 67", got)
	}
}

func TestOverdueAndPending(t *testing.T) {
	tasks := []record.Task{
		task("2024-03-01", false),
		task("2024-03-03", true),
		task("2024-03-04", false),
	}
	tasks[2].EstimatedMinutes = 90
	tasks[0].EstimatedMinutes = 30

	if got := stats.OverdueCount(tasks, "2024-03-04"); got != 1 {
		t.Fatalf("overdue = %d, want 1", got)
	}
	if got := stats.PendingMinutes(tasks); got != 120 {
		t.Fatalf("pending minutes = %d, want 120", got)
	}
	if got := stats.HoursLabel(90); got != "1.5h" {
		t.Fatalf("label = %q", got)
	}
}

func TestTimeBand(t *testing.T) {
	cases := map[string]stats.Band{
		"06:00": stats.BandMorning,
		"11:59": stats.BandMorning,
		"12:00": stats.BandAfternoon,
		"17:59": stats.BandAfternoon,
		"18:00": stats.BandNight,
		"05:59": stats.BandNight,
		"23:30": stats.BandNight,
	}
	for clock, want := range cases {
		if got := stats.TimeBand(clock); got != want {
			t.Fatalf("TimeBand(%s) = %s, want %s", clock, got, want)
		}
	}
}

func TestGoalBucket(t *testing.T) {
	today := "2024-03-04"

	cases := []struct {
		due    string
		bucket stats.Bucket
		days   int
		ok     bool
	}{
		{"2024-03-03", stats.BucketOverdue, -1, true},
		{"2024-03-04", stats.BucketDueToday, 0, true},
		{"2024-03-05", stats.BucketUrgent, 1, true},
		{"2024-03-11", stats.BucketUrgent, 7, true},
		{"2024-03-12", stats.BucketNormal, 8, true},
		{"", stats.BucketNormal, 0, false},
		{"soon", stats.BucketNormal, 0, false},
	}
	for _, tc := range cases {
		bucket, days, ok := stats.GoalBucket(tc.due, today)
		if bucket != tc.bucket || days != tc.days || ok != tc.ok {
			t.Fatalf("GoalBucket(%q) = (%s, %d, %v), want (%s, %d, %v)",
				tc.due, bucket, days, ok, tc.bucket, tc.days, tc.ok)
		}
	}
}

func TestUrgentGoals(t *testing.T) {
	goals := []record.Goal{
		{ID: "a", Text: "later", DueDate: "2024-04-01"},
		{ID: "b", Text: "soonest", DueDate: "2024-03-05"},
		{ID: "c", Text: "done", DueDate: "2024-03-05", Completed: true},
		{ID: "d", Text: "no due date"},
		{ID: "e", Text: "middle", DueDate: "2024-03-08"},
	}

	got := stats.UrgentGoals(goals, "2024-03-04", 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Goal.ID != "b" || got[1].Goal.ID != "e" {
		t.Fatalf("order = %s, %s; want b, e", got[0].Goal.ID, got[1].Goal.ID)
	}
	if got[0].Bucket != stats.BucketUrgent || got[0].DaysRemaining != 1 {
		t.Fatalf("first = %+v", got[0])
	}
}

func TestComputeDistributions(t *testing.T) {
	morning := task("2024-03-04", true) // monday
	morning.Time = "07:00"
	morning.Category = "gym"
	night := task("2024-03-05", true)
	night.Time = "22:00"
	pending := task("2024-03-06", false)
	pending.Category = "gym"

	d := stats.ComputeDistributions([]record.Task{morning, night, pending})

	if d.ByWeekday["monday"] != 1 || d.ByWeekday["tuesday"] != 1 || d.ByWeekday["wednesday"] != 0 {
		t.Fatalf("weekdays = %+v", d.ByWeekday)
	}
	if d.ByBand[stats.BandMorning] != 1 || d.ByBand[stats.BandNight] != 1 {
		t.Fatalf("bands = %+v", d.ByBand)
	}
	// Categories and priorities count all tasks, not only completed ones.
	if d.ByCategory["gym"] != 2 {
		t.Fatalf("categories = %+v", d.ByCategory)
	}
	if d.ByPriority[record.PriorityMedium] != 3 {
		t.Fatalf("priorities = %+v", d.ByPriority)
	}
}

func TestWeekSummaryWorkload(t *testing.T) {
	week := dates.WeekDates(time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local))

	var tasks []record.Task
	tasks = append(tasks, task("2024-03-04", true)) // light
	for i := 0; i < 3; i++ {
		tasks = append(tasks, task("2024-03-05", false)) // medium
	}
	for i := 0; i < 6; i++ {
		tasks = append(tasks, task("2024-03-06", false)) // heavy
	}

	days := stats.WeekSummary(tasks, week)
	if len(days) != 7 {
		t.Fatalf("days = %d, want 7", len(days))
	}
	if days[0].Workload != stats.WorkloadLight || !days[0].Complete {
		t.Fatalf("monday = %+v", days[0])
	}
	if days[1].Workload != stats.WorkloadMedium {
		t.Fatalf("tuesday = %+v", days[1])
	}
	if days[2].Workload != stats.WorkloadHeavy {
		t.Fatalf("wednesday = %+v", days[2])
	}
	if days[3].Workload != stats.WorkloadNone || days[3].Complete {
		t.Fatalf("thursday = %+v", days[3])
	}
}

func TestComputeDashboard(t *testing.T) {
	snap := record.NewSnapshot("local")
	snap.Tasks = []record.Task{
		task("2024-03-04", true),
		task("2024-03-04", false),
		task("2024-03-01", false), // overdue
	}

	d := stats.ComputeDashboard(snap, time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local))
	if d.Today != "2024-03-04" || d.TasksToday != 2 || d.CompletedToday != 1 {
		t.Fatalf("dashboard = %+v", d)
	}
	if d.Overdue != 1 {
		t.Fatalf("overdue = %d, want 1", d.Overdue)
	}
}

func TestWorkoutStats(t *testing.T) {
	workouts := []record.Workout{
		{Date: "2024-03-04", Focus: "chest", Exercises: []record.WorkoutExercise{
			{Name: "Bench", Sets: []record.WorkoutSet{{Reps: 10, Weight: 60}}},
		}},
		{Date: "2024-03-06", Focus: "legs", Exercises: []record.WorkoutExercise{
			{Name: "Squat", Sets: []record.WorkoutSet{{Reps: 5, Weight: 100}}},
		}},
		{Date: "2024-02-01", Focus: "back"},
	}

	if got := stats.Volume(workouts, "2024-03-04", "2024-03-10"); got != 10*60+5*100 {
		t.Fatalf("volume = %v", got)
	}

	week := dates.WeekDates(time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local))
	ww := stats.ComputeWorkoutWeek(workouts, week)
	if ww.Count != 2 || ww.Volume != 1100 {
		t.Fatalf("week = %+v", ww)
	}
	if len(ww.FocusGroups) != 2 || ww.FocusGroups[0] != "chest" || ww.FocusGroups[1] != "legs" {
		t.Fatalf("focus groups = %v", ww.FocusGroups)
	}
}

func TestMetricsDeltas(t *testing.T) {
	metrics := []record.Metric{
		{ID: "1", Date: "2024-03-01", Weight: 84},
		{ID: "2", Date: "2024-03-10", Weight: 83},
		{ID: "3", Date: "2024-03-12", Weight: 82.5},
	}

	got := stats.MetricsDeltas(metrics, 7)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Newest first.
	if got[0].Metric.ID != "3" || got[2].Metric.ID != "1" {
		t.Fatalf("order = %s..%s", got[0].Metric.ID, got[2].Metric.ID)
	}
	if !got[0].HasPrevious || got[0].DeltaPrevious != -0.5 {
		t.Fatalf("delta prev = %+v", got[0])
	}
	// Window delta skips the 2-day-old entry and lands on the 11-day-old one.
	if !got[0].HasWindow || got[0].DeltaWindow != -1.5 {
		t.Fatalf("delta window = %+v", got[0])
	}
	if got[2].HasPrevious || got[2].HasWindow {
		t.Fatalf("oldest entry must have no deltas: %+v", got[2])
	}
}
