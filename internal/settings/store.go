package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store owns the live settings record: loaded once at startup (merged over
// defaults), read concurrently by the decorator, and persisted atomically on
// every change from the settings panel.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	current  Settings
	patterns []*regexp.Regexp
}

// NewStore loads settings from path, merging the file's values over the
// defaults. A missing file is not an error; the defaults apply until the
// first update persists them.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	s := &Store{path: path, logger: logger}

	cfg := NewDefault()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run: defaults only.
	case err != nil:
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("settings: parse %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("settings: validate: %w", err)
	}

	s.current = cfg
	s.patterns = CompilePatterns(cfg.CommandPatternList(), logger)
	return s, nil
}

// Current returns a snapshot of the live settings.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Patterns returns the compiled command-hide patterns for the live settings.
func (s *Store) Patterns() []*regexp.Regexp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patterns
}

// Update validates next, persists it, and swaps it in. The write is atomic
// (tmp file, fsync, rename) so a crash never leaves a torn settings file.
func (s *Store) Update(next Settings) error {
	if err := next.Validate(); err != nil {
		return fmt.Errorf("settings: validate: %w", err)
	}
	if err := s.persist(next); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = next
	s.patterns = CompilePatterns(next.CommandPatternList(), s.logger)
	s.mu.Unlock()

	s.logger.Info("settings: updated", slog.String("path", s.path))
	return nil
}

func (s *Store) persist(cfg Settings) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ansuz-settings-*")
	if err != nil {
		return fmt.Errorf("settings: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("settings: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("settings: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("settings: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("settings: rename: %w", err)
	}
	success = true
	return nil
}
