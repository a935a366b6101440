// Copyright 2024 The PackMySeal Authors. All rights reserved.

package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"packmyseal.io/pms/pkg/constants"
	"packmyseal.io/pms/pkg/errors"
)

// Record is the persisted authentication state of the current user.
// A record loaded from disk always has all three fields set, a record
// missing any of them is treated as absent.
type Record struct {
	Username     string `json:"username"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Store persists the credential record at an injected file path so tests
// can point it at a temporary location.
type Store struct {
	path string
}

// NewStore returns a credential store persisting at 'path'.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewDefaultStore returns a credential store at the platform-specific
// per-user location.
func NewDefaultStore() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewStore(path), nil
}

// DefaultPath returns the per-user credential file path:
// '~/.packmyseal' on linux, '~/Library/Application Support/PackMySeal'
// on darwin and '%APPDATA%\PackMySeal' on windows.
func DefaultPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.InternalBug
		}
		base = filepath.Join(home, "Library", "Application Support", "PackMySeal")
	case "windows":
		base = filepath.Join(os.Getenv("APPDATA"), "PackMySeal")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.InternalBug
		}
		base = filepath.Join(home, ".packmyseal")
	}
	return filepath.Join(base, constants.CredFileName), nil
}

// Path returns the file path the store persists at.
func (s *Store) Path() string {
	return s.path
}

// Load reads the credential record. A missing, unreadable or incomplete
// record yields errors.Unauthenticated, the caller must log in first.
// The refresh token may be empty, a login against an older registry does
// not issue one; EnsureSession demands a fresh login in that case.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Unauthenticated
	}

	record := Record{}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Unauthenticated
	}

	if record.Username == "" || record.Token == "" {
		return nil, errors.Unauthenticated
	}

	return &record, nil
}

// Save writes the credential record, creating parent directories as needed.
func (s *Store) Save(record *Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}

// Clear removes the credential record. Removing an absent record is not
// an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
