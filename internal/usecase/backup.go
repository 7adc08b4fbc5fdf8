package usecase

import (
	"time"

	"resume-builder/internal/adapter/repository"
)

// ExportBackup serializes the whole session as a downloadable snapshot.
func (s *Session) ExportBackup(now time.Time) ([]byte, error) {
	data, settings := s.Snapshot()
	return repository.EncodeBackup(data, settings, now)
}

// ImportBackup restores a snapshot. Partial payloads apply only the key
// they carry; a malformed payload leaves in-memory state fully untouched.
func (s *Session) ImportBackup(raw []byte) error {
	b, err := repository.DecodeBackup(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ResumeData != nil {
		s.data = b.ResumeData.Clone()
		s.persistData()
	}
	if b.Settings != nil {
		s.settings = b.Settings.Clone()
		s.persistSettings()
	}
	return nil
}
