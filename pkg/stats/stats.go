// Package stats computes derived views over a planner snapshot: streaks,
// weekly rollups, histograms and urgency buckets. Every function is pure
// given the records and a reference date; nothing here mutates the store.
package stats

import (
	"fmt"
	"math"
	"time"

	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
)

// Streak counts consecutive fully-completed task-days walking backward from
// the most recent day with tasks at or before asOf. A calendar day with no
// tasks breaks the streak; it is not skipped.
func Streak(tasks []record.Task, asOf string) int {
	byDate := tasksByDate(tasks)

	var latest string
	for date := range byDate {
		if date <= asOf && date > latest {
			latest = date
		}
	}
	if latest == "" {
		return 0
	}

	day, err := dates.ParseDay(latest)
	if err != nil {
		return 0
	}
	streak := 0
	for {
		todays := byDate[dates.FormatDay(day)]
		if len(todays) == 0 || !allCompleted(todays) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklyProgress returns completed/total across the given week as a rounded
// percentage. An empty week is 0%, never a division error.
func WeeklyProgress(tasks []record.Task, week []time.Time) int {
	byDate := tasksByDate(tasks)
	total, completed := 0, 0
	for _, day := range week {
		for _, t := range byDate[dates.FormatDay(day)] {
			total++
			if t.Completed {
				completed++
			}
		}
	}
	return percent(completed, total)
}

// OverdueCount counts incomplete tasks dated strictly before today.
func OverdueCount(tasks []record.Task, today string) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed && t.Date < today {
			n++
		}
	}
	return n
}

// PendingMinutes sums the estimated minutes of incomplete tasks.
func PendingMinutes(tasks []record.Task) int {
	sum := 0
	for _, t := range tasks {
		if !t.Completed {
			sum += t.EstimatedMinutes
		}
	}
	return sum
}

// HoursLabel renders a minute total as hours with one decimal, e.g. "2.5h".
func HoursLabel(minutes int) string {
	return fmt.Sprintf("%.1fh", float64(minutes)/60)
}

// Band is a time-of-day bucket for habit distributions.
type Band string

const (
	BandMorning   Band = "morning"   // 06:00–12:00
	BandAfternoon Band = "afternoon" // 12:00–18:00
	BandNight     Band = "night"     // everything else
)

// TimeBand buckets an HH:MM clock string.
func TimeBand(clock string) Band {
	switch {
	case clock >= "06:00" && clock < "12:00":
		return BandMorning
	case clock >= "12:00" && clock < "18:00":
		return BandAfternoon
	default:
		return BandNight
	}
}

// Distributions holds the habit/analytics count maps: completed tasks by
// weekday and time band, and all tasks by category and priority.
type Distributions struct {
	ByWeekday  map[string]int
	ByBand     map[Band]int
	ByCategory map[string]int
	ByPriority map[record.Priority]int
}

// ComputeDistributions buckets tasks for comparative bars and charts.
func ComputeDistributions(tasks []record.Task) Distributions {
	d := Distributions{
		ByWeekday:  make(map[string]int),
		ByBand:     make(map[Band]int),
		ByCategory: make(map[string]int),
		ByPriority: make(map[record.Priority]int),
	}
	for _, t := range tasks {
		if t.Category != "" {
			d.ByCategory[t.Category]++
		}
		d.ByPriority[t.Priority]++
		if !t.Completed {
			continue
		}
		if day, err := dates.ParseDay(t.Date); err == nil {
			d.ByWeekday[dates.DayKey(day)]++
		}
		d.ByBand[TimeBand(t.Time)]++
	}
	return d
}

// Workload classifies how loaded a day is by task count.
type Workload string

const (
	WorkloadNone   Workload = ""
	WorkloadLight  Workload = "light"
	WorkloadMedium Workload = "medium"
	WorkloadHeavy  Workload = "heavy"
)

// Day-count thresholds for Workload. Display heuristics, not invariants.
const (
	MediumDayTasks = 3
	HeavyDayTasks  = 6
)

// DaySummary is one day of the week rollup.
type DaySummary struct {
	Date      string
	DayKey    string
	Total     int
	Completed int
	Minutes   int
	Complete  bool // at least one task and all of them done
	Workload  Workload
}

// WeekSummary rolls up each day of the given week.
func WeekSummary(tasks []record.Task, week []time.Time) []DaySummary {
	byDate := tasksByDate(tasks)
	out := make([]DaySummary, 0, len(week))
	for _, day := range week {
		date := dates.FormatDay(day)
		s := DaySummary{Date: date, DayKey: dates.DayKey(day)}
		for _, t := range byDate[date] {
			s.Total++
			s.Minutes += t.EstimatedMinutes
			if t.Completed {
				s.Completed++
			}
		}
		s.Complete = s.Total > 0 && s.Completed == s.Total
		switch {
		case s.Total >= HeavyDayTasks:
			s.Workload = WorkloadHeavy
		case s.Total >= MediumDayTasks:
			s.Workload = WorkloadMedium
		case s.Total > 0:
			s.Workload = WorkloadLight
		}
		out = append(out, s)
	}
	return out
}

// Dashboard bundles the headline numbers for the landing view.
type Dashboard struct {
	Today          string
	TasksToday     int
	CompletedToday int
	Streak         int
	WeeklyPercent  int
	PendingMinutes int
	Overdue        int
}

// ComputeDashboard derives the dashboard numbers as of ref.
func ComputeDashboard(s *record.Snapshot, ref time.Time) Dashboard {
	today := dates.FormatDay(ref)
	d := Dashboard{
		Today:          today,
		Streak:         Streak(s.Tasks, today),
		WeeklyPercent:  WeeklyProgress(s.Tasks, dates.WeekDates(ref)),
		PendingMinutes: PendingMinutes(s.Tasks),
		Overdue:        OverdueCount(s.Tasks, today),
	}
	for _, t := range s.Tasks {
		if t.Date != today {
			continue
		}
		d.TasksToday++
		if t.Completed {
			d.CompletedToday++
		}
	}
	return d
}

func tasksByDate(tasks []record.Task) map[string][]record.Task {
	byDate := make(map[string][]record.Task)
	for _, t := range tasks {
		byDate[t.Date] = append(byDate[t.Date], t)
	}
	return byDate
}

func allCompleted(tasks []record.Task) bool {
	for _, t := range tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
