package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_Disabled(t *testing.T) {
	if err := Init(false); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer Close()

	// Must be a no-op, not a panic.
	Printf("dropped %s", "message")
}

func TestInit_EnabledWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	orig := getLogPath
	getLogPath = func() string { return logPath }
	defer func() { getLogPath = orig }()

	if err := Init(true); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Printf("checked %s", "owner/repo")
	Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "checked owner/repo") {
		t.Errorf("log missing entry: %s", data)
	}
}

func TestInit_TruncatesPreviousLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	orig := getLogPath
	getLogPath = func() string { return logPath }
	defer func() { getLogPath = orig }()

	if err := os.WriteFile(logPath, []byte("stale entry\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "stale entry") {
		t.Error("previous log not truncated")
	}
}
