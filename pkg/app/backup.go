package app

import (
	"tableflip.dev/semana/pkg/backup"
)

// ExportJSON serializes the current snapshot as a portable backup document.
func (s *Service) ExportJSON() ([]byte, error) {
	return backup.ExportJSON(s.snap, s.Now())
}

// ImportJSON replaces the current snapshot with the parsed document and
// persists it. A malformed document returns *backup.ImportError with
// nothing applied.
func (s *Service) ImportJSON(raw []byte) error {
	snap, err := backup.Import(raw, s.user)
	if err != nil {
		return err
	}
	s.snap = snap
	if err := s.Persistence.Save(snap); err != nil {
		return &StorageError{Op: "import", Err: err}
	}
	return nil
}
