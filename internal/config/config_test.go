package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FrameRate != 12 {
		t.Errorf("expected frame rate 12, got %d", cfg.FrameRate)
	}
	if cfg.Dimensions != 800 {
		t.Errorf("expected dimensions 800, got %d", cfg.Dimensions)
	}
	if cfg.Size != 10 {
		t.Errorf("expected size 10, got %d", cfg.Size)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{"in range", Config{12, 800, 10, "ocean"}, Config{12, 800, 10, "ocean"}},
		{"too low", Config{1, 100, 3, ""}, Config{10, 800, 10, DefaultTheme}},
		{"too high", Config{99, 5000, 25, "retro"}, Config{40, 2000, 18, "retro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Normalize()
			if cfg != tt.want {
				t.Errorf("got %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sieve.yaml")
	data := "frame_rate: 100\nwindow_dimension: 1000\nsize: 14\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FrameRate != 40 {
		t.Errorf("expected clamped frame rate 40, got %d", cfg.FrameRate)
	}
	if cfg.Dimensions != 1000 || cfg.Size != 14 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("size: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := &Config{FrameRate: 30, Dimensions: 1500, Size: 16, Theme: "sunset"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg, err := GetPreset("large")
	if err != nil {
		t.Fatalf("expected preset, got %v", err)
	}
	if cfg.Size != 18 {
		t.Errorf("expected size 18, got %d", cfg.Size)
	}

	cfg.Size = 11
	if Presets["large"].Size != 18 {
		t.Error("GetPreset must return a copy")
	}

	if _, err := GetPreset("nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}
