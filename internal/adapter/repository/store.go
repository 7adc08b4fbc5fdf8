package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resume-builder/internal/model"
)

// Storage keys, one file per key so data and settings save independently,
// like the two auto-save keys of the builder UI.
const (
	dataFile     = "resume_data.json"
	settingsFile = "resume_settings.json"
)

// FileStore persists the session snapshot under a local data directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) writeKey(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := filepath.Join(s.dir, name+".tmp")
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(s.dir, name))
}

func (s *FileStore) SaveData(data model.ResumeData) error {
	return s.writeKey(dataFile, data)
}

func (s *FileStore) SaveSettings(settings model.ResumeSettings) error {
	return s.writeKey(settingsFile, settings)
}

// LoadData reads the persisted resume data. A missing or unreadable file
// reports ok=false so the caller falls back to defaults; startup never
// fails on a corrupt snapshot.
func (s *FileStore) LoadData() (model.ResumeData, bool) {
	var data model.ResumeData
	b, err := os.ReadFile(filepath.Join(s.dir, dataFile))
	if err != nil {
		return data, false
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return model.ResumeData{}, false
	}
	return data, true
}

func (s *FileStore) LoadSettings() (model.ResumeSettings, bool) {
	var settings model.ResumeSettings
	b, err := os.ReadFile(filepath.Join(s.dir, settingsFile))
	if err != nil {
		return settings, false
	}
	if err := json.Unmarshal(b, &settings); err != nil {
		return model.ResumeSettings{}, false
	}
	return settings, true
}

// Backup is the downloadable snapshot format. A payload may carry only one
// of the two top-level keys; the absent one leaves current state untouched
// on restore.
type Backup struct {
	ResumeData *model.ResumeData     `json:"resumeData,omitempty"`
	Settings   *model.ResumeSettings `json:"settings,omitempty"`
	Timestamp  string                `json:"timestamp,omitempty"`
}

// ErrInvalidBackup reports a malformed or schema-violating import payload.
var ErrInvalidBackup = errors.New("invalid backup payload")

func EncodeBackup(data model.ResumeData, settings model.ResumeSettings, now time.Time) ([]byte, error) {
	b := Backup{
		ResumeData: &data,
		Settings:   &settings,
		Timestamp:  now.UTC().Format(time.RFC3339),
	}
	return json.MarshalIndent(b, "", "  ")
}

// DecodeBackup parses and validates an imported backup. Errors are reported
// without touching any state; the caller applies the result.
func DecodeBackup(raw []byte) (*Backup, error) {
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := model.ValidateSnapshot(generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	var b Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if b.ResumeData == nil && b.Settings == nil {
		return nil, fmt.Errorf("%w: no resumeData or settings key", ErrInvalidBackup)
	}
	return &b, nil
}
