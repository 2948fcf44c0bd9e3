// Package playback replays the sieve's discovery sequence one tick at a time.
//
// An [Engine] is driven by exactly one caller: Advance on every tick and
// Reconfigure on a resize request. It is not safe for concurrent use.
package playback

import (
	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/sieve"
)

type Engine struct {
	config    grid.Config
	sequence  []Entry
	index     int
	revealed  []CellState
	primes    int
	cycle     int
	observers []Observer
}

// New builds an engine for a size x size grid; size is clamped.
func New(size int, opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.rebuild(grid.New(size))
	return e
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Reconfigure switches to a new grid size and restarts the animation.
// Requests that clamp to the current size are ignored and return false.
func (e *Engine) Reconfigure(size int) bool {
	cfg := grid.New(size)
	if cfg == e.config {
		return false
	}
	e.rebuild(cfg)
	return true
}

func (e *Engine) rebuild(cfg grid.Config) {
	e.config = cfg
	e.sequence = BuildSequence(cfg)
	e.revealed = make([]CellState, cfg.Cells())
	e.index = 0
	e.primes = 0
	e.cycle = 0
	for _, o := range e.observers {
		o.OnReset(cfg)
	}
}

// BuildSequence returns the discovery order for cfg followed by PauseTicks
// pause markers.
func BuildSequence(cfg grid.Config) []Entry {
	seq := make([]Entry, 0, cfg.Cells()+PauseTicks)
	for cv := range sieve.Generate(cfg.Limit()) {
		seq = append(seq, Entry{ClassifiedValue: cv})
	}
	pause := Entry{ClassifiedValue: sieve.ClassifiedValue{Value: 1, Kind: sieve.Composite}, Pause: true}
	for i := 0; i < PauseTicks; i++ {
		seq = append(seq, pause)
	}
	return seq
}

// Advance plays the entry at the current index. After the last pause marker
// the grid is cleared and the same sequence starts over.
func (e *Engine) Advance() Reveal {
	entry := e.sequence[e.index]
	r := Reveal{
		Value: entry.Value,
		Cell:  e.config.CellIndex(entry.Value),
		Kind:  entry.Kind,
		Pause: entry.Pause,
	}

	if !entry.Pause {
		e.revealed[r.Cell] = stateFor(entry.Kind)
		if entry.Kind == sieve.Prime {
			e.primes++
		}
	}

	e.index++
	if e.index == len(e.sequence) {
		e.index = 0
		e.primes = 0
		e.cycle++
		clear(e.revealed)
		r.Wrapped = true
	}

	for _, o := range e.observers {
		o.OnReveal(r)
	}
	return r
}

func (e *Engine) Config() grid.Config { return e.config }

func (e *Engine) Index() int { return e.index }

func (e *Engine) Len() int { return len(e.sequence) }

// Cycle counts completed passes over the sequence since the last rebuild.
func (e *Engine) Cycle() int { return e.cycle }

// Done reports whether every real value has been revealed and the engine
// is playing pause markers.
func (e *Engine) Done() bool { return e.index >= e.config.Cells() }

func (e *Engine) Progress() float64 {
	return float64(e.index) / float64(len(e.sequence))
}

// Revealed reports the classification of value if its cell is visible.
func (e *Engine) Revealed(value int) (sieve.Kind, bool) {
	idx := e.config.CellIndex(value)
	if idx < 0 || idx >= len(e.revealed) {
		return sieve.Composite, false
	}
	s := e.revealed[idx]
	return s.Kind(), s.Visible()
}

// Cell returns the state of the cell at row-major index idx.
func (e *Engine) Cell(idx int) CellState { return e.revealed[idx] }

// RevealedCells returns a snapshot of every cell, row-major.
func (e *Engine) RevealedCells() []CellState {
	out := make([]CellState, len(e.revealed))
	copy(out, e.revealed)
	return out
}

// Counts returns how many primes and composites are currently visible.
func (e *Engine) Counts() (primes, composites int) {
	shown := min(e.index, e.config.Cells())
	return e.primes, shown - e.primes
}

func (e *Engine) Sequence() []Entry {
	out := make([]Entry, len(e.sequence))
	copy(out, e.sequence)
	return out
}
