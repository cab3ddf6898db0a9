package app

import (
	"sort"
	"strings"

	"tableflip.dev/semana/pkg/dates"
	"tableflip.dev/semana/pkg/record"
	"tableflip.dev/semana/pkg/store"
)

// AddNote appends a quick note stamped with the current date and time.
func (s *Service) AddNote(text string) (record.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return record.Note{}, &ValidationError{Field: "text", Reason: "required"}
	}
	now := s.Now()
	n := record.Note{
		ID:   record.NewID(),
		Text: text,
		Date: dates.FormatDay(now),
		Time: now.Format(dates.LayoutClock),
	}
	s.snap.Notes = append(s.snap.Notes, n)
	return n, s.persist("add note", store.Notes, s.snap.Notes)
}

// RemoveNote deletes a note by id; missing ids are a no-op.
func (s *Service) RemoveNote(id string) error {
	kept := s.snap.Notes[:0]
	for _, n := range s.snap.Notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.snap.Notes = kept
	return s.persist("remove note", store.Notes, s.snap.Notes)
}

// Notes returns the note list, newest first.
func (s *Service) Notes() []record.Note {
	out := make([]record.Note, len(s.snap.Notes))
	copy(out, s.snap.Notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date+out[i].Time > out[j].Date+out[j].Time
	})
	return out
}

// AddMetric records a dated body measurement.
func (s *Service) AddMetric(date string, weight float64, photo, notes string) (record.Metric, error) {
	if date == "" {
		date = s.today()
	}
	if !dates.IsDay(date) {
		return record.Metric{}, &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	if weight <= 0 {
		return record.Metric{}, &ValidationError{Field: "weight", Reason: "must be positive"}
	}
	m := record.Metric{
		ID:     record.NewID(),
		Date:   date,
		Weight: weight,
		Photo:  photo,
		Notes:  strings.TrimSpace(notes),
	}
	s.snap.Metrics = append(s.snap.Metrics, m)
	return m, s.persist("add metric", store.Metrics, s.snap.Metrics)
}

// RemoveMetric deletes a measurement by id; missing ids are a no-op.
func (s *Service) RemoveMetric(id string) error {
	kept := s.snap.Metrics[:0]
	for _, m := range s.snap.Metrics {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.snap.Metrics = kept
	return s.persist("remove metric", store.Metrics, s.snap.Metrics)
}

// Metrics returns measurements ordered by date descending for display.
func (s *Service) Metrics() []record.Metric {
	out := make([]record.Metric, len(s.snap.Metrics))
	copy(out, s.snap.Metrics)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
