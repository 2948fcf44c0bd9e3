package playback

import (
	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/sieve"
)

// PauseTicks is how many ticks the completed grid stays on screen before
// the animation loops.
const PauseTicks = 35

// Entry is one tick of the sequence: a classified value, or a pause marker
// when Pause is set. Pause markers point at the no-op target 1.
type Entry struct {
	sieve.ClassifiedValue
	Pause bool
}

// Reveal is reported for every advance.
type Reveal struct {
	Value int
	Cell  int
	Kind  sieve.Kind
	Pause bool
	// Wrapped is set when this advance finished the cycle and cleared the grid.
	Wrapped bool
}

type CellState uint8

const (
	Hidden CellState = iota
	RevealedComposite
	RevealedPrime
)

func (s CellState) Visible() bool { return s != Hidden }

func (s CellState) Kind() sieve.Kind {
	if s == RevealedPrime {
		return sieve.Prime
	}
	return sieve.Composite
}

func stateFor(k sieve.Kind) CellState {
	if k == sieve.Prime {
		return RevealedPrime
	}
	return RevealedComposite
}

type Observer interface {
	OnReveal(r Reveal)
	OnReset(cfg grid.Config)
}

type Option func(*Engine)

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}
