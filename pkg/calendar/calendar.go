// Package calendar builds the Monday-start month grid consumed by the
// calendar views.
package calendar

import (
	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
)

// Cell is one visible day of a month grid, including the leading and
// trailing days borrowed from adjacent months. Those carry real dates so
// task lookups stay correct across month boundaries.
type Cell struct {
	Day       int
	Date      string
	InMonth   bool
	IsToday   bool
	TaskCount int
	TaskIDs   []string
	Completed bool // at least one task and all of them done
}

// BuildMonthGrid returns the full-week grid for (year, month) with weeks
// starting Monday. The cell count is always a multiple of 7. A month
// outside 1..12 rolls into the adjacent year; that is normalization, not an
// error.
func BuildMonthGrid(year, month int, tasks []record.Task, today string) []Cell {
	first := dates.MonthStart(year, month)
	daysInMonth := dates.DaysIn(first)

	byDate := make(map[string][]record.Task)
	for _, t := range tasks {
		byDate[t.Date] = append(byDate[t.Date], t)
	}

	startOffset := (int(first.Weekday()) + 6) % 7
	total := startOffset + daysInMonth
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	grid := make([]Cell, 0, total)
	for i := 0; i < total; i++ {
		day := first.AddDate(0, 0, i-startOffset)
		date := dates.FormatDay(day)
		cell := Cell{
			Day:     day.Day(),
			Date:    date,
			InMonth: day.Month() == first.Month() && day.Year() == first.Year(),
			IsToday: date == today,
		}
		for _, t := range byDate[date] {
			cell.TaskCount++
			cell.TaskIDs = append(cell.TaskIDs, t.ID)
		}
		if cell.TaskCount > 0 {
			cell.Completed = true
			for _, t := range byDate[date] {
				if !t.Completed {
					cell.Completed = false
					break
				}
			}
		}
		grid = append(grid, cell)
	}
	return grid
}

// Weeks splits a grid into rows of seven cells.
func Weeks(grid []Cell) [][]Cell {
	var weeks [][]Cell
	for i := 0; i+7 <= len(grid); i += 7 {
		weeks = append(weeks, grid[i:i+7])
	}
	return weeks
}
