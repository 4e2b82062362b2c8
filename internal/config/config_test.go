package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/egoavara/launchkit/update"
)

func TestLoad_MissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "auto" {
		t.Errorf("default locale = %q, want auto", cfg.Locale)
	}
	if cfg.PollInterval() != update.DefaultPollInterval {
		t.Errorf("default poll interval = %s, want %s", cfg.PollInterval(), update.DefaultPollInterval)
	}
	if cfg.Update.DefaultForceRecheck {
		t.Error("defaultForceRecheck should default to false")
	}
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"locale": "ko-KR"}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "ko-KR" {
		t.Errorf("locale = %q", cfg.Locale)
	}
	if cfg.Update.PollIntervalSeconds != int64(update.DefaultPollInterval.Seconds()) {
		t.Errorf("poll interval not defaulted: %d", cfg.Update.PollIntervalSeconds)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	in := NewConfig()
	in.Locale = "en-US"
	in.Update.PollIntervalSeconds = 86400
	in.Update.DefaultForceRecheck = true

	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed config")
	}
}
