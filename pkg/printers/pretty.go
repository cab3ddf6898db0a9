package printers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/semana/pkg/app"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/stats"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Tasks prints a task list, one line per task.
func (pp *PrettyPrint) Tasks(tasks ...record.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)

	for _, task := range tasks {
		if pp.ShowID {
			_, _ = y.Print(shortID(task.ID))
		}
		printer := t
		mark := "·"
		if task.Completed {
			printer = done
			mark = "✔"
		}
		line := fmt.Sprintf("%s %s %s  %s", mark, task.Date, task.Time, task.Name)
		if task.Category != "" {
			line += fmt.Sprintf(" [%s]", task.Category)
		}
		if task.Priority == record.PriorityHigh {
			line += " !"
		}
		if task.EstimatedMinutes > 0 {
			line += fmt.Sprintf(" (%dmin)", task.EstimatedMinutes)
		}
		_, _ = printer.Println(line)
	}
	_, _ = t.Println("")
}

// Goals prints goals with their urgency relative to today.
func (pp *PrettyPrint) Goals(today string, goals ...record.Goal) {
	if len(goals) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	overdue := color.New(color.FgHiRed)
	urgent := color.New(color.FgHiYellow)
	done := color.New(color.Faint, color.CrossedOut)

	for _, g := range goals {
		if pp.ShowID {
			_, _ = y.Print(shortID(g.ID))
		}
		mark := "·"
		printer := t
		if g.Completed {
			mark = "✔"
			printer = done
		}
		suffix := ""
		if !g.Completed {
			if bucket, days, ok := stats.GoalBucket(g.DueDate, today); ok {
				switch bucket {
				case stats.BucketOverdue:
					printer = overdue
					suffix = fmt.Sprintf("  (overdue by %dd)", -days)
				case stats.BucketDueToday:
					printer = urgent
					suffix = "  (due today)"
				case stats.BucketUrgent:
					printer = urgent
					suffix = fmt.Sprintf("  (%dd left)", days)
				default:
					suffix = fmt.Sprintf("  (%dd left)", days)
				}
			}
		}
		_, _ = printer.Printf("%s %s%s\n", mark, g.Text, suffix)
	}
	_, _ = t.Println("")
}

// Routines prints the weekly gym plan.
func (pp *PrettyPrint) Routines(routines []app.RoutineDay) {
	if len(routines) == 0 {
		pp.none()
		return
	}
	day := color.New(color.Bold)
	focus := color.New(color.Faint, color.Italic)
	t := color.New()
	for _, r := range routines {
		_, _ = day.Print(titleCase(r.Day))
		_, _ = focus.Printf("  %s\n", r.Routine.Focus)
		for _, ex := range r.Routine.Exercises {
			line := fmt.Sprintf("  %s %dx%d", ex.Name, ex.Sets, ex.Reps)
			if ex.Weight > 0 {
				line += fmt.Sprintf(" @ %.1fkg", ex.Weight)
			}
			_, _ = t.Println(line)
		}
	}
	_, _ = t.Println("")
}

// Workouts prints logged sessions, most recent first.
func (pp *PrettyPrint) Workouts(workouts ...record.Workout) {
	if len(workouts) == 0 {
		pp.none()
		return
	}
	head := color.New(color.Bold)
	t := color.New()
	f := color.New(color.Faint)
	for _, w := range workouts {
		_, _ = head.Printf("%s  %s (%s)\n", w.Date, w.Focus, w.Day)
		for _, ex := range w.Exercises {
			var sets []string
			for _, set := range ex.Sets {
				sets = append(sets, fmt.Sprintf("%dx%.1fkg", set.Reps, set.Weight))
			}
			_, _ = t.Printf("  %s: %s\n", ex.Name, strings.Join(sets, ", "))
		}
		if w.Notes != "" {
			_, _ = f.Printf("  %s\n", w.Notes)
		}
	}
	_, _ = t.Println("")
}

// Notes prints quick notes, newest first.
func (pp *PrettyPrint) Notes(notes ...record.Note) {
	if len(notes) == 0 {
		pp.none()
		return
	}
	t := color.New()
	f := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, n := range notes {
		if pp.ShowID {
			_, _ = y.Print(shortID(n.ID))
		}
		_, _ = t.Print(n.Text)
		_, _ = f.Printf("  %s %s\n", n.Date, n.Time)
	}
	_, _ = t.Println("")
}

// Metrics prints body measurements with their deltas.
func (pp *PrettyPrint) Metrics(deltas ...stats.MetricDelta) {
	if len(deltas) == 0 {
		pp.none()
		return
	}
	table := uitable.New()
	table.AddRow("DATE", "WEIGHT", "Δ PREV", "Δ WINDOW", "NOTES")
	for _, d := range deltas {
		prev, window := "-", "-"
		if d.HasPrevious {
			prev = fmt.Sprintf("%+.1f", d.DeltaPrevious)
		}
		if d.HasWindow {
			window = fmt.Sprintf("%+.1f", d.DeltaWindow)
		}
		table.AddRow(d.Metric.Date, fmt.Sprintf("%.1f", d.Metric.Weight), prev, window, d.Metric.Notes)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Dashboard prints the headline numbers.
func (pp *PrettyPrint) Dashboard(d stats.Dashboard, gym stats.WorkoutWeek) {
	table := uitable.New()
	table.AddRow("today:", fmt.Sprintf("%d tasks, %d completed", d.TasksToday, d.CompletedToday))
	table.AddRow("streak:", fmt.Sprintf("%d days", d.Streak))
	table.AddRow("week:", fmt.Sprintf("%d%% complete", d.WeeklyPercent))
	table.AddRow("pending:", stats.HoursLabel(d.PendingMinutes)+" estimated")
	table.AddRow("overdue:", fmt.Sprintf("%d tasks", d.Overdue))
	table.AddRow("gym:", fmt.Sprintf("%d workouts, %.0f volume", gym.Count, gym.Volume))
	fmt.Println(table)
	fmt.Println("")
}

// Distributions prints the habit histograms as comparative bars.
func (pp *PrettyPrint) Distributions(d stats.Distributions) {
	section := color.New(color.Bold)

	_, _ = section.Println("completed by weekday")
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		pp.bar(day, d.ByWeekday[day])
	}
	_, _ = section.Println("completed by time of day")
	for _, band := range []stats.Band{stats.BandMorning, stats.BandAfternoon, stats.BandNight} {
		pp.bar(string(band), d.ByBand[band])
	}
	_, _ = section.Println("by category")
	cats := make([]string, 0, len(d.ByCategory))
	for cat := range d.ByCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		pp.bar(cat, d.ByCategory[cat])
	}
	_, _ = section.Println("by priority")
	for _, p := range record.Priorities {
		pp.bar(string(p), d.ByPriority[p])
	}
	fmt.Println("")
}

func (pp *PrettyPrint) bar(label string, n int) {
	f := color.New(color.Faint)
	b := color.New(color.FgHiCyan)
	_, _ = f.Printf("  %-10s", label)
	_, _ = b.Println(strings.Repeat("█", n))
}

// Catalog prints exercise catalog entries.
func (pp *PrettyPrint) Catalog(entries ...record.CatalogEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("ID", "NAME", "GROUP", "TAGS")
	for _, e := range entries {
		table.AddRow(e.ID, e.Name, e.Group, strings.Join(e.Tags, ", "))
	}
	fmt.Println(table)
	fmt.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func shortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return id + strings.Repeat(" ", len(spacing)-len(id))
}
