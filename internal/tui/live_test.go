package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/sieve/internal/playback"
)

func TestLiveRenderer_DrawsReveals(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, false)
	e := playback.New(10, playback.WithObserver(r))

	e.Advance() // 1C
	e.Advance() // 2P

	if r.canvas[0][0] != '.' || r.canvas[0][1] != '#' {
		t.Errorf("unexpected first row: %q", string(r.canvas[0]))
	}
	if r.frames != 2 {
		t.Errorf("expected 2 frames, got %d", r.frames)
	}
	if strings.Contains(buf.String(), clearScreen) {
		t.Error("plain output must not contain ANSI clear")
	}
	if !strings.Contains(buf.String(), "2 prime") {
		t.Error("missing reveal caption")
	}
}

func TestLiveRenderer_ClearsOnWrap(t *testing.T) {
	r := NewLiveRenderer(&bytes.Buffer{}, true)
	e := playback.New(10, playback.WithObserver(r))

	for i := 0; i < e.Len(); i++ {
		e.Advance()
	}
	for _, row := range r.canvas {
		if strings.TrimSpace(string(row)) != "" {
			t.Fatalf("row not cleared after wrap: %q", string(row))
		}
	}
}

func TestLiveRenderer_Resize(t *testing.T) {
	r := NewLiveRenderer(&bytes.Buffer{}, false)
	e := playback.New(10, playback.WithObserver(r))
	e.Reconfigure(12)

	if len(r.canvas) != 12 || len(r.canvas[0]) != 12 {
		t.Errorf("expected 12x12 canvas, got %dx%d", len(r.canvas), len(r.canvas[0]))
	}
}

func TestRun_StopsAfterCycles(t *testing.T) {
	e := playback.New(10)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := Run(ctx, e, 1000, 1); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if e.Cycle() != 1 || e.Index() != 0 {
		t.Errorf("expected one full cycle, cycle %d index %d", e.Cycle(), e.Index())
	}
}

func TestRun_Canceled(t *testing.T) {
	e := playback.New(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, e, 10, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
