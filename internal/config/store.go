package config

import "fmt"

// Store keeps the configuration currently in force and the file it came
// from. A failed load leaves the current configuration untouched.
type Store struct {
	path    string
	current Config
}

// NewStore loads path (or the defaults when path is empty).
func NewStore(path string) (*Store, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, current: cfg}, nil
}

// Current returns the configuration in force. The pointer is stable: a
// successful Reload or LoadFrom overwrites it in place.
func (s *Store) Current() *Config { return &s.current }

// Path returns the file the current configuration was read from.
func (s *Store) Path() string { return s.path }

// Reload re-reads the current file.
func (s *Store) Reload() error {
	return s.LoadFrom(s.path)
}

// LoadFrom switches to a new file.
func (s *Store) LoadFrom(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}
	s.path = path
	s.current = cfg
	return nil
}
