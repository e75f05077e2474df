package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/echoes/internal/config"
)

func TestConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(config.LogConfig{Level: "info"}, Options{Prefix: "echoes", Console: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.Info("zone entered", "zone", "Maze")
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "zone entered") || !strings.Contains(out, "zone=Maze") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "echoes") {
		t.Errorf("prefix missing from %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug line should be filtered at info level")
	}
	if l.Path() != "" {
		t.Errorf("Path = %q, want empty", l.Path())
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "echoes.log")
	l, err := New(config.LogConfig{Level: "debug", MaxSizeMB: 1}, Options{DefaultFile: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Debug("gem given", "npc", "elder")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if l.Path() != path {
		t.Errorf("Path = %q, want %q", l.Path(), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "gem given") {
		t.Errorf("log file missing line: %q", data)
	}
}

func TestConfiguredFileWins(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "configured.log")
	l, err := New(config.LogConfig{Level: "info", File: want}, Options{DefaultFile: filepath.Join(dir, "default.log")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	if l.Path() != want {
		t.Errorf("Path = %q, want %q", l.Path(), want)
	}
}

func TestBadLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}, Options{}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info("nothing")
	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
