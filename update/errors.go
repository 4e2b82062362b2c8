package update

import (
	"errors"
	"fmt"
)

// ErrMissingState reports that no version record has been persisted yet.
// Callers treat this as a first run: the plugin has never checked for
// updates, so the next check polls immediately.
var ErrMissingState = errors.New("no persisted version record")

// FetchError represents a failed release feed request (transport error
// or non-success status).
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("release fetch %s failed: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("release fetch %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents a malformed release payload or version string,
// such as a missing tag, a release with no assets, or a tag that is not
// a semantic version.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse release %s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PersistError represents a version record that could not be read or
// written.
type PersistError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s version record %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
