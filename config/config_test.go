package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Ball.MinSize != 10 || cfg.Ball.MaxSize != 40 {
		t.Errorf("ball size range = [%d, %d], want [10, 40]", cfg.Ball.MinSize, cfg.Ball.MaxSize)
	}
	if cfg.Ball.MinSpeed < 1 {
		t.Errorf("ball min speed = %d, want >= 1", cfg.Ball.MinSpeed)
	}
	if cfg.Schedule.HeavyFadeEvery != 40 || cfg.Schedule.FPSEvery != 20 || cfg.Schedule.SpawnEvery != 50 {
		t.Errorf("schedule = %+v, want heavy fade 40, fps 20, spawn 50", cfg.Schedule)
	}
	if cfg.Derived.HoldRepeat != 200*time.Millisecond {
		t.Errorf("HoldRepeat = %v, want 200ms", cfg.Derived.HoldRepeat)
	}
	if cfg.Derived.ScreenW != float64(cfg.Screen.Width) {
		t.Errorf("ScreenW = %v, want %d", cfg.Derived.ScreenW, cfg.Screen.Width)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  max_size: 25\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Ball.MaxSize != 25 {
		t.Errorf("MaxSize = %d, want 25", cfg.Ball.MaxSize)
	}
	if cfg.Ball.MinSize != 10 {
		t.Errorf("MinSize = %d, want default 10", cfg.Ball.MinSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero ball speed", "ball:\n  min_speed: 0\n"},
		{"inverted sizes", "evil:\n  min_size: 30\n  max_size: 10\n"},
		{"zero spawn interval", "schedule:\n  spawn_every: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Evil.GrowFactor = 3

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Evil.GrowFactor != 3 {
		t.Errorf("GrowFactor = %v, want 3", loaded.Evil.GrowFactor)
	}
}
