package stats

import (
	"sort"
	"strings"
	"time"

	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
)

// Volume sums reps×weight over every set of every workout dated within
// [from, to] inclusive.
func Volume(workouts []record.Workout, from, to string) float64 {
	var total float64
	for _, w := range workouts {
		if w.Date < from || w.Date > to {
			continue
		}
		total += w.Volume()
	}
	return total
}

// WorkoutWeek summarizes the workouts performed during one week.
type WorkoutWeek struct {
	Count       int
	Volume      float64
	FocusGroups []string
}

// ComputeWorkoutWeek rolls up the workouts falling inside the given week.
func ComputeWorkoutWeek(workouts []record.Workout, week []time.Time) WorkoutWeek {
	from := dates.FormatDay(week[0])
	to := dates.FormatDay(week[len(week)-1])

	out := WorkoutWeek{}
	seen := make(map[string]bool)
	for _, w := range workouts {
		if w.Date < from || w.Date > to {
			continue
		}
		out.Count++
		out.Volume += w.Volume()
		focus := strings.TrimSpace(w.Focus)
		if focus != "" && !seen[focus] {
			seen[focus] = true
			out.FocusGroups = append(out.FocusGroups, focus)
		}
	}
	sort.Strings(out.FocusGroups)
	return out
}

// MetricDelta annotates a body measurement with its change against the
// previous measurement and against the most recent one at least N days
// older (window deltas use NDays).
type MetricDelta struct {
	Metric        record.Metric
	DeltaPrevious float64
	HasPrevious   bool
	DeltaWindow   float64
	HasWindow     bool
}

// MetricsDeltas orders measurements newest first and computes per-entry
// deltas: vs the immediately preceding measurement, and vs the newest
// measurement at least windowDays older.
func MetricsDeltas(metrics []record.Metric, windowDays int) []MetricDelta {
	sorted := make([]record.Metric, len(metrics))
	copy(sorted, metrics)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	out := make([]MetricDelta, len(sorted))
	for i, m := range sorted {
		d := MetricDelta{Metric: m}
		if i+1 < len(sorted) {
			d.DeltaPrevious = m.Weight - sorted[i+1].Weight
			d.HasPrevious = true
		}
		if day, err := dates.ParseDay(m.Date); err == nil {
			cutoff := dates.FormatDay(day.AddDate(0, 0, -windowDays))
			for _, older := range sorted[i+1:] {
				if older.Date <= cutoff {
					d.DeltaWindow = m.Weight - older.Weight
					d.HasWindow = true
					break
				}
			}
		}
		out[i] = d
	}
	return out
}
