package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/ballchase/config"
)

func TestTelemetryOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Telemetry.StatsWindow = 1

	g, err := NewGame(Options{
		Seed:      3,
		Width:     400,
		Height:    300,
		Config:    cfg,
		Clock:     &fakeClock{now: time.Unix(0, 0), step: 5 * time.Millisecond},
		OutputDir: dir,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	parkEvil(g)

	// Two FPS reports, one window each
	for i := 0; i < 40; i++ {
		g.Step(&recordingCanvas{})
	}
	g.Unload()

	data, err := os.ReadFile(filepath.Join(dir, "window.csv"))
	if err != nil {
		t.Fatalf("reading window.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("window.csv has %d lines, want header + 2 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "window_end,") {
		t.Errorf("header = %q, want window_end first", lines[0])
	}
	if !strings.HasPrefix(lines[1], "20,") || !strings.HasPrefix(lines[2], "40,") {
		t.Errorf("rows = %q, %q, want window ends 20 and 40", lines[1], lines[2])
	}

	for _, name := range []string{"perf.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestNewGameOutputDirError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewGame(Options{Config: config.Default(), OutputDir: filepath.Join(file, "out")})
	if err == nil {
		t.Fatal("NewGame succeeded with an unusable output directory")
	}
}
