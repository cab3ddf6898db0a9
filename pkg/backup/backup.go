// Package backup serializes a full record set to a portable JSON document
// and restores it.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/semana/pkg/record"
)

// Document is the portable export shape. Field names are part of the file
// contract and must not change.
type Document struct {
	Tasks      []record.Task             `json:"tasks"`
	Goals      []record.Goal             `json:"objetivos"`
	Gym        map[string]record.Routine `json:"gym"`
	Workouts   []record.Workout          `json:"gymWorkouts"`
	Notes      []record.Note             `json:"notes"`
	ExportDate string                    `json:"exportDate"`
}

// ImportError reports a document that could not be parsed. No part of a
// failed import is ever applied.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("backup: malformed import document: %v", e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// Export captures the snapshot's collections into a document stamped with
// the current time.
func Export(s *record.Snapshot, now time.Time) Document {
	s.Normalize()
	return Document{
		Tasks:      s.Tasks,
		Goals:      s.Goals,
		Gym:        s.Gym,
		Workouts:   s.Workouts,
		Notes:      s.Notes,
		ExportDate: now.UTC().Format(time.RFC3339),
	}
}

// ExportJSON renders the document as indented JSON for the backup file.
func ExportJSON(s *record.Snapshot, now time.Time) ([]byte, error) {
	return json.MarshalIndent(Export(s, now), "", "  ")
}

// Import parses a backup document into a snapshot for the given user.
// Missing collections default to empty; anything that is not a JSON object
// of the expected shape is an *ImportError. The caller replaces its current
// snapshot wholesale; import is a destructive overwrite, not a merge.
func Import(raw []byte, user string) (*record.Snapshot, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ImportError{Err: err}
	}
	s := record.NewSnapshot(user)
	if doc.Tasks != nil {
		s.Tasks = doc.Tasks
	}
	if doc.Goals != nil {
		s.Goals = doc.Goals
	}
	if doc.Gym != nil {
		s.Gym = doc.Gym
	}
	if doc.Workouts != nil {
		s.Workouts = doc.Workouts
	}
	if doc.Notes != nil {
		s.Notes = doc.Notes
	}
	return s, nil
}
