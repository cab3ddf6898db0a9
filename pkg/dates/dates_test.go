package dates

import (
	"testing"
	"time"
)

func TestWeekStartMonday(t *testing.T) {
	// 2024-03-06 is a Wednesday.
	wed := time.Date(2024, 3, 6, 15, 30, 0, 0, time.Local)
	monday := WeekStart(wed)
	if got := FormatDay(monday); got != "2024-03-04" {
		t.Fatalf("expected 2024-03-04, got %s", got)
	}
	if monday.Weekday() != time.Monday {
		t.Fatalf("expected Monday, got %v", monday.Weekday())
	}
}

func TestWeekStartSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	sun := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	if got := FormatDay(WeekStart(sun)); got != "2024-03-04" {
		t.Fatalf("expected 2024-03-04, got %s", got)
	}
}

func TestWeekDates(t *testing.T) {
	week := WeekDates(time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local))
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if got := FormatDay(week[0]); got != "2024-03-04" {
		t.Fatalf("expected week to open on 2024-03-04, got %s", got)
	}
	if got := FormatDay(week[6]); got != "2024-03-10" {
		t.Fatalf("expected week to close on 2024-03-10, got %s", got)
	}
}

func TestDayKey(t *testing.T) {
	cases := map[string]string{
		"2024-03-04": "monday",
		"2024-03-08": "friday",
		"2024-03-10": "sunday",
	}
	for day, want := range cases {
		parsed, err := ParseDay(day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := DayKey(parsed); got != want {
			t.Errorf("%s: expected %s, got %s", day, want, got)
		}
	}
}

func TestMonthStartOverflow(t *testing.T) {
	if got := MonthStart(2024, 13); FormatDay(got) != "2025-01-01" {
		t.Fatalf("expected 2025-01-01, got %s", FormatDay(got))
	}
	if got := MonthStart(2024, 0); FormatDay(got) != "2023-12-01" {
		t.Fatalf("expected 2023-12-01, got %s", FormatDay(got))
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(MonthStart(2024, 2)); got != 29 {
		t.Fatalf("expected 29 days in Feb 2024, got %d", got)
	}
	if got := DaysIn(MonthStart(2023, 2)); got != 28 {
		t.Fatalf("expected 28 days in Feb 2023, got %d", got)
	}
}

func TestDiffDays(t *testing.T) {
	a, _ := ParseDay("2024-03-04")
	b, _ := ParseDay("2024-03-10")
	if got := DiffDays(a, b); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	if got := DiffDays(b, a); got != -6 {
		t.Fatalf("expected -6, got %d", got)
	}
}

func TestIsClock(t *testing.T) {
	if !IsClock("09:00") {
		t.Fatal("expected 09:00 to be valid")
	}
	if IsClock("25:00") {
		t.Fatal("expected 25:00 to be invalid")
	}
}
