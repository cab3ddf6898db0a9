// Package dates holds the calendar arithmetic shared by the planner core:
// canonical day ids, Monday-start weeks, and weekday keys.
package dates

import (
	"fmt"
	"time"
)

const (
	// LayoutISO is the canonical day id layout, YYYY-MM-DD.
	LayoutISO = "2006-01-02"
	// LayoutClock is the canonical task time layout, HH:MM.
	LayoutClock = "15:04"
)

// DayKeys lists the weekday keys in week order, Monday first.
var DayKeys = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// FormatDay renders t as a canonical day id.
func FormatDay(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseDay parses a canonical day id in the local timezone.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutISO, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dates: invalid day %q: %w", s, err)
	}
	return t, nil
}

// IsDay reports whether s is a well-formed day id.
func IsDay(s string) bool {
	_, err := ParseDay(s)
	return err == nil
}

// IsClock reports whether s is a well-formed HH:MM time.
func IsClock(s string) bool {
	_, err := time.Parse(LayoutClock, s)
	return err == nil
}

// Today returns the current local day id.
func Today() string {
	return FormatDay(time.Now())
}

// WeekStart returns the Monday of the week containing t, at midnight.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// WeekDates returns the seven days of the Monday-start week containing t.
func WeekDates(t time.Time) []time.Time {
	monday := WeekStart(t)
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// DayKey maps t to its weekday key, e.g. "monday".
func DayKey(t time.Time) string {
	return DayKeys[(int(t.Weekday())+6)%7]
}

// DayKeyIndex returns the week-order position of a weekday key, or -1.
func DayKeyIndex(key string) int {
	for i, k := range DayKeys {
		if k == key {
			return i
		}
	}
	return -1
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// MonthStart normalizes a (year, month) pair into the first day of that
// month. Months outside 1..12 roll into the adjacent year, so callers can
// step a displayed month back and forth without bounds checks.
func MonthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
}

// DiffDays returns the whole-day difference b-a between two day ids.
func DiffDays(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
