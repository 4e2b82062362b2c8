package update

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "version.json"))

	_, err := store.Load()
	if !errors.Is(err, ErrMissingState) {
		t.Fatalf("expected ErrMissingState, got %v", err)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "version.json"))
	rec := &Record{
		Version:         "1.0.0",
		LastCheckedTime: 1700000000,
		NeedUpdate:      true,
		LatestVersion:   "1.1.0",
		DownloadURL:     "http://example.com/url1",
	}

	if err := store.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *rec {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, rec)
	}
}

func TestStore_SaveAfterLoadIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.json")
	store := NewStore(path)

	if err := store.Save(&Record{Version: "1.0.0", LastCheckedTime: 42}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := store.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("save(load()) changed the file:\nbefore: %s\nafter:  %s", first, second)
	}
}

func TestStore_OnDiskFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.json")
	store := NewStore(path)

	rec := &Record{
		Version:         "1.0.0",
		LastCheckedTime: 1700000000,
		NeedUpdate:      true,
		LatestVersion:   "1.1.0",
		DownloadURL:     "http://example.com/url1",
	}
	if err := store.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	// These names are the on-disk contract with existing installations.
	for _, field := range []string{"version", "lastcheckedtime", "needupdate", "latestversion", "downloadurl"} {
		if !strings.Contains(string(data), `"`+field+`"`) {
			t.Errorf("expected field %q in %s", field, data)
		}
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := NewStore(path).Load()

	var persistErr *PersistError
	if !errors.As(err, &persistErr) {
		t.Fatalf("expected PersistError, got %v", err)
	}
	if errors.Is(err, ErrMissingState) {
		t.Error("corrupt record must not read as first run")
	}
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "version.json")
	store := NewStore(path)

	if err := store.Save(NewRecord("1.0.0")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected record file to exist: %v", err)
	}
}
