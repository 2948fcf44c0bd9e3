package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/playback"
	"github.com/san-kum/sieve/internal/sieve"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints the grid as plain text after every reveal. It needs
// no terminal capabilities beyond ANSI clear, so it works over pipes and
// dumb terminals where the full-screen UI does not.
type LiveRenderer struct {
	out    io.Writer
	ansi   bool
	cfg    grid.Config
	canvas [][]rune
	last   playback.Reveal
	frames int
}

func NewLiveRenderer(out io.Writer, ansi bool) *LiveRenderer {
	return &LiveRenderer{out: out, ansi: ansi}
}

func (r *LiveRenderer) OnReset(cfg grid.Config) {
	r.cfg = cfg
	r.canvas = make([][]rune, cfg.Size())
	for i := range r.canvas {
		r.canvas[i] = make([]rune, cfg.Size())
	}
	r.clear()
}

func (r *LiveRenderer) OnReveal(rv playback.Reveal) {
	r.last = rv
	switch {
	case rv.Wrapped:
		r.clear()
	case !rv.Pause:
		row, col := r.cfg.CellPosition(rv.Value)
		if rv.Kind == sieve.Prime {
			r.canvas[row][col] = '#'
		} else {
			r.canvas[row][col] = '.'
		}
	}
	r.render()
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) render() {
	var b strings.Builder
	if r.ansi {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  sieve %dx%d  frame=%d", r.cfg.Size(), r.cfg.Size(), r.frames))
	if !r.last.Pause {
		b.WriteString(fmt.Sprintf("  %d %s", r.last.Value, r.last.Kind))
	}
	b.WriteString("\n")
	b.WriteString("  +" + strings.Repeat("-", r.cfg.Size()*2) + "+\n")

	for _, row := range r.canvas {
		b.WriteString("  |")
		for _, c := range row {
			b.WriteRune(c)
			b.WriteRune(' ')
		}
		b.WriteString("|\n")
	}

	b.WriteString("  +" + strings.Repeat("-", r.cfg.Size()*2) + "+\n")
	fmt.Fprint(r.out, b.String())
	r.frames++
}

func (r *LiveRenderer) Start() {
	if r.ansi {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.ansi {
		fmt.Fprint(r.out, showCursor)
	}
}

// Run advances e once per frame until ctx is done. A non-positive cycles
// runs forever; otherwise Run returns after that many completed cycles.
func Run(ctx context.Context, e *playback.Engine, frameRate, cycles int) error {
	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.Advance()
			if cycles > 0 && e.Cycle() >= cycles {
				return nil
			}
		}
	}
}
