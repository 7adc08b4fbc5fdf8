package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"resume-builder/internal/model"
)

// Saver is the durable local copy of the session (the file store).
type Saver interface {
	SaveData(model.ResumeData) error
	SaveSettings(model.ResumeSettings) error
}

// Mirror is an optional secondary sink for auto-saves (the Postgres
// snapshots repo). Failures are logged, never surfaced.
type Mirror interface {
	SaveData(ctx context.Context, data model.ResumeData) error
	SaveSettings(ctx context.Context, settings model.ResumeSettings) error
}

// ErrNotFound reports an update or removal that names an entry the owning
// sequence does not contain.
type ErrNotFound struct {
	Section string
	Key     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s entry %q not found", e.Section, e.Key)
}

// Session exclusively owns one ResumeData and one ResumeSettings. All
// mutations go through it; each mutation replaces the owned value wholesale
// (copy-on-write) so readers holding the previous snapshot never observe a
// partial update, then persists both stores synchronously.
type Session struct {
	mu       sync.Mutex
	data     model.ResumeData
	settings model.ResumeSettings
	store    Saver
	mirror   Mirror
}

// NewSession starts a session from the given state, normally recovered via
// Restore.
func NewSession(data model.ResumeData, settings model.ResumeSettings, store Saver, mirror Mirror) *Session {
	return &Session{data: data, settings: settings, store: store, mirror: mirror}
}

// Loader recovers persisted state at startup.
type Loader interface {
	LoadData() (model.ResumeData, bool)
	LoadSettings() (model.ResumeSettings, bool)
}

// Restore loads the persisted snapshot, falling back to empty defaults when
// a key is absent or corrupt. Startup never fails on bad snapshots.
func Restore(loader Loader) (model.ResumeData, model.ResumeSettings) {
	data, ok := loader.LoadData()
	if !ok {
		data = model.DefaultResumeData()
	}
	settings, ok := loader.LoadSettings()
	if !ok {
		settings = model.DefaultSettings()
	}
	return data, settings
}

// Data returns an independent copy of the current resume data.
func (s *Session) Data() model.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Settings returns an independent copy of the current settings.
func (s *Session) Settings() model.ResumeSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

// Snapshot returns both halves of the session state at once.
func (s *Session) Snapshot() (model.ResumeData, model.ResumeSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone(), s.settings.Clone()
}

func (s *Session) persistData() {
	if s.store != nil {
		if err := s.store.SaveData(s.data); err != nil {
			log.Printf("warning: failed to save resume data: %v", err)
		}
	}
	if s.mirror != nil {
		if err := s.mirror.SaveData(context.Background(), s.data); err != nil {
			log.Printf("warning: snapshot mirror save failed: %v", err)
		}
	}
}

func (s *Session) persistSettings() {
	if s.store != nil {
		if err := s.store.SaveSettings(s.settings); err != nil {
			log.Printf("warning: failed to save settings: %v", err)
		}
	}
	if s.mirror != nil {
		if err := s.mirror.SaveSettings(context.Background(), s.settings); err != nil {
			log.Printf("warning: snapshot mirror save failed: %v", err)
		}
	}
}

// mutate applies fn to a fresh clone and swaps it in when fn succeeds.
func (s *Session) mutate(fn func(*model.ResumeData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.data.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.data = next
	s.persistData()
	return nil
}

// SetData replaces the whole resume.
func (s *Session) SetData(data model.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data.Clone()
	s.persistData()
}

// SetSettings replaces the presentation configuration.
func (s *Session) SetSettings(settings model.ResumeSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings.Clone()
	s.persistSettings()
}

func (s *Session) SetPersonalInfo(pi model.PersonalInfo) {
	_ = s.mutate(func(d *model.ResumeData) error {
		d.PersonalInfo = pi
		return nil
	})
}

func (s *Session) SetSummary(summary string) {
	_ = s.mutate(func(d *model.ResumeData) error {
		d.Summary = summary
		return nil
	})
}

// ApplySuggestion replaces the summary with the chosen suggestion text.
func (s *Session) ApplySuggestion(text string) {
	s.SetSummary(text)
}
