// Package update implements the self-update check for a launcher plugin:
// a persisted version record, a time-gated release feed poll, and the
// signals a plugin surfaces to its host.
package update

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Record is the persisted version record. The JSON field names are the
// on-disk contract shared with existing plugin installations; do not
// rename them.
type Record struct {
	Version         string `json:"version"`
	LastCheckedTime int64  `json:"lastcheckedtime"`
	NeedUpdate      bool   `json:"needupdate"`
	LatestVersion   string `json:"latestversion,omitempty"`
	DownloadURL     string `json:"downloadurl,omitempty"`
}

// NewRecord creates a record for a plugin that has never checked for
// updates. LastCheckedTime is left at epoch zero so the first check
// polls immediately.
func NewRecord(version string) *Record {
	return &Record{Version: version}
}

// Store reads and writes the version record as a whole-file replace.
// There is no cross-process locking: two invocations racing on Save
// resolve last-write-wins.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full record. A missing file returns ErrMissingState;
// an unreadable or malformed file returns a PersistError.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissingState
		}
		return nil, &PersistError{Op: "load", Path: s.path, Err: err}
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &PersistError{Op: "load", Path: s.path, Err: err}
	}

	return &rec, nil
}

// Save replaces the record on disk. The record must be fully computed
// before calling; nothing is written incrementally.
func (s *Store) Save(rec *Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &PersistError{Op: "save", Path: s.path, Err: err}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return &PersistError{Op: "save", Path: s.path, Err: err}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &PersistError{Op: "save", Path: s.path, Err: err}
	}

	return nil
}
