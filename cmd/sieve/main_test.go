package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/sieve/internal/config"
	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/storage"
	"github.com/spf13/cobra"
)

func newLaunchCmd() *cobra.Command {
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "test"}
	addLaunchFlags(cmd)
	return cmd
}

func TestWriteSequence(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSequence(&buf, grid.New(10)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 101 {
		t.Fatalf("expected header + 100 rows, got %d lines", len(lines))
	}
	if f := strings.Fields(lines[2]); f[1] != "2" || f[2] != "P" {
		t.Errorf("expected 2P on the second row, got %q", lines[2])
	}
	if f := strings.Fields(lines[3]); f[1] != "4" || f[2] != "C" || f[3] != "0" || f[4] != "3" {
		t.Errorf("unexpected third row %q", lines[3])
	}
}

func TestSizeArg(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Size = 13

	tests := []struct {
		args []string
		want int
		err  bool
	}{
		{nil, 13, false},
		{[]string{"16"}, 16, false},
		{[]string{"3"}, 10, false},
		{[]string{"40"}, 18, false},
		{[]string{"x"}, 0, true},
	}

	for _, tt := range tests {
		g, err := sizeArg(tt.args, cfg)
		if (err != nil) != tt.err {
			t.Errorf("sizeArg(%v): err = %v", tt.args, err)
			continue
		}
		if !tt.err && g.Size() != tt.want {
			t.Errorf("sizeArg(%v) = %d, want %d", tt.args, g.Size(), tt.want)
		}
	}
}

func TestResolveConfig_Flags(t *testing.T) {
	cmd := newLaunchCmd()
	if err := cmd.Flags().Set("frame-rate", "99"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("size", "12"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.FrameRate != 40 || cfg.Size != 12 || cfg.Dimensions != 800 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestResolveConfig_PresetThenFlag(t *testing.T) {
	cmd := newLaunchCmd()
	preset = "large"
	defer func() { preset = "" }()
	if err := cmd.Flags().Set("theme", "ocean"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Size != 18 || cfg.FrameRate != 20 {
		t.Errorf("preset values lost: %+v", cfg)
	}
	if cfg.Theme != "ocean" {
		t.Errorf("changed flag should override preset, got %s", cfg.Theme)
	}
}

func TestResolveConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sieve.yaml")
	if err := os.WriteFile(path, []byte("size: 15\nwindow_dimension: 5000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newLaunchCmd()
	configFile = path
	defer func() { configFile = "" }()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Size != 15 || cfg.Dimensions != 2000 || cfg.FrameRate != 12 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestResolveConfig_UnknownPreset(t *testing.T) {
	cmd := newLaunchCmd()
	preset = "nope"
	defer func() { preset = "" }()

	if _, err := resolveConfig(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestRootCmd_OutputDefaults(t *testing.T) {
	root := newRootCmd()

	if gifOut != "sieve.gif" {
		t.Errorf("gif output defaults to %q, want sieve.gif", gifOut)
	}
	if svgOut != "sieve.svg" {
		t.Errorf("svg output defaults to %q, want sieve.svg", svgOut)
	}

	for name, want := range map[string]string{"gif": "sieve.gif", "svg": "sieve.svg"} {
		sub, _, err := root.Find([]string{name})
		if err != nil {
			t.Fatalf("find %s: %v", name, err)
		}
		if got := sub.Flags().Lookup("out").DefValue; got != want {
			t.Errorf("%s --out default = %q, want %q", name, got, want)
		}
	}
}

func TestSaveRun_UsesPreset(t *testing.T) {
	cmd := newLaunchCmd()
	dataDir = t.TempDir()
	preset = "large"
	defer func() { preset, dataDir = "", ".sieve" }()

	if err := saveRun(cmd, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := storage.New(dataDir).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Size != 18 {
		t.Errorf("expected one 18x18 run, got %+v", runs)
	}
}

func TestPresetOptions_KeepsChangedFlags(t *testing.T) {
	cmd := newLaunchCmd()
	if err := cmd.Flags().Set("frame-rate", "33"); err != nil {
		t.Fatal(err)
	}

	opts, err := presetOptions(cmd)("large")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if opts.Size != 18 || opts.Dimensions != 1200 {
		t.Errorf("preset values lost: %+v", opts)
	}
	if opts.FrameRate != 33 {
		t.Errorf("changed flag should win over preset, got %d fps", opts.FrameRate)
	}
	if preset != "" {
		t.Errorf("preset flag not restored, got %q", preset)
	}

	if _, err := presetOptions(cmd)("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
