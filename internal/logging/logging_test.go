package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Level: "warn", Writer: &buf, Prefix: "test"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "game", "snake")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "game=snake") || !strings.Contains(out, "test") {
		t.Errorf("output = %q, expected prefix, message and field", out)
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minigames.log")
	logger, closeFn, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("session started", "session", "abc")
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file = %q, expected message", data)
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("New() with an unknown level should fail")
	}
}

func TestNewBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	if _, _, err := New(Options{File: path}); err == nil {
		t.Error("New() with an unwritable path should fail")
	}
}
