package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitTeesToFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "benchsum.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	LogEvent("[TEST] parsed %d files", 3)
	if err := Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "[TEST] parsed 3 files") {
		t.Fatalf("log file missing event, got %q", data)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	LogEvent("stderr only")
	if err := Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close on clean state returned error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
}
