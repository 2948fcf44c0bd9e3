package viz

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/log"
	"github.com/san-kum/sieve/internal/playback"
	"github.com/san-kum/sieve/internal/render"
	"github.com/san-kum/sieve/internal/sieve"
)

const cellWidth = 4

type TickMsg time.Time

// tickCmd schedules the next animation frame.
func tickCmd(frameRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Options are the launch parameters of the live view. FrameRate and
// Dimensions are expected to be clamped already.
type Options struct {
	Size       int
	FrameRate  int
	Dimensions int
	Theme      Theme
	RecordPath string
}

// fadeTracker remembers on which tick each cell was revealed.
type fadeTracker struct {
	tick int
	born []int
}

func (f *fadeTracker) OnReveal(r playback.Reveal) {
	f.tick++
	if !r.Pause && !r.Wrapped {
		f.born[r.Cell] = f.tick
	}
}

func (f *fadeTracker) OnReset(cfg grid.Config) {
	f.born = make([]int, cfg.Cells())
}

func (f *fadeTracker) age(cell int) int { return f.tick - f.born[cell] }

// Model drives a playback engine from Bubble Tea ticks and draws the grid.
type Model struct {
	engine        *playback.Engine
	fade          *fadeTracker
	opts          Options
	theme         Theme
	primeHistory  []float64
	recording     bool
	frames        []*image.Paletted
	showHelp      bool
	width, height int
}

func NewModel(opts Options) Model {
	if opts.RecordPath == "" {
		opts.RecordPath = "sieve.gif"
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeClassic
	}
	fade := &fadeTracker{}
	e := playback.New(opts.Size, playback.WithObserver(fade))
	return Model{
		engine:       e,
		fade:         fade,
		opts:         opts,
		theme:        opts.Theme,
		primeHistory: make([]float64, 0, e.Len()),
	}
}

func (m Model) Init() tea.Cmd { return tickCmd(m.opts.FrameRate) }

func (m Model) Engine() *playback.Engine { return m.engine }

// Update handles input events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			if m.recording {
				m.saveGIF()
			}
			return m, tea.Quit
		case "t":
			m.theme = m.theme.Next()
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		default:
			if size, ok := grid.SizeForKey(key); ok && m.engine.Reconfigure(size) {
				m.primeHistory = m.primeHistory[:0]
				log.Info("grid resized", "size", m.engine.Config().Size())
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		r := m.engine.Advance()
		if r.Wrapped {
			m.primeHistory = m.primeHistory[:0]
			log.Debug("cycle complete", "cycle", m.engine.Cycle())
		} else if !r.Pause {
			primes, _ := m.engine.Counts()
			m.primeHistory = append(m.primeHistory, float64(primes))
		}
		if m.recording {
			m.captureFrame()
		}
		return m, tickCmd(m.opts.FrameRate)
	}
	return m, nil
}

// captureFrame records the current grid. A recording holds at most one
// cycle; reaching that length saves it and stops recording.
func (m *Model) captureFrame() {
	frame := render.Frame(m.engine.Config(), m.engine.RevealedCells(), m.opts.Dimensions, m.theme.Palette())
	m.frames = append(m.frames, frame)
	if len(m.frames) >= m.engine.Len() {
		m.saveGIF()
		m.recording = false
		m.frames = nil
	}
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	f, err := os.Create(m.opts.RecordPath)
	if err != nil {
		log.Error("create recording", "path", m.opts.RecordPath, "err", err)
		return
	}
	defer f.Close()
	if err := render.Encode(f, m.frames, m.opts.FrameRate); err != nil {
		log.Error("encode recording", "path", m.opts.RecordPath, "err", err)
		return
	}
	log.Info("recording saved", "path", m.opts.RecordPath, "frames", len(m.frames))
}

// View renders the grid and the stats panel side by side.
func (m Model) View() string {
	gridView := gridStyle.Render(m.renderGrid())

	cfg := m.engine.Config()
	primes, composites := m.engine.Counts()

	var s strings.Builder
	title := lipgloss.NewStyle().Foreground(m.theme.Accent).Inherit(headerStyle)
	s.WriteString(title.Render("SIEVE OF ERATOSTHENES") + "\n")

	status := StatusRunning.Render("RUNNING")
	if m.engine.Done() {
		status = StatusHolding.Render("HOLDING")
	}
	if m.recording {
		status += "  " + StatusRecording.Render("● REC")
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%d x %d", cfg.Size(), cfg.Size())) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d / %d", m.engine.Index(), m.engine.Len())) + "\n")
	s.WriteString(labelStyle.Render("Cycle") + valueStyle.Render(fmt.Sprintf("%d", m.engine.Cycle()+1)) + "\n")
	s.WriteString(labelStyle.Render("Primes") + lipgloss.NewStyle().Foreground(m.theme.Prime).Render(fmt.Sprintf("%d", primes)) + "\n")
	s.WriteString(labelStyle.Render("Composites") + lipgloss.NewStyle().Foreground(m.theme.Composite).Render(fmt.Sprintf("%d", composites)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%d", m.opts.FrameRate)) + "\n\n")
	s.WriteString(ProgressBar(m.engine.Progress(), 30, m.theme) + "\n")

	if len(m.primeHistory) > 1 {
		chart := asciigraph.Plot(m.primeHistory, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("primes found"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\n" + keyHints("1-9", "size", "t", "theme", "g", "rec") + "\n" + keyHints("?", "help", "q", "quit")))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, gridView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  1-9      - Grid size 10x10 to 18x18 ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m Model) renderGrid() string {
	cfg := m.engine.Config()
	pal := m.theme.Palette()
	hidden := lipgloss.NewStyle().Foreground(m.theme.Muted)

	var b strings.Builder
	for row := 0; row < cfg.Size(); row++ {
		for col := 0; col < cfg.Size(); col++ {
			v := cfg.ValueAt(row, col)
			idx := cfg.CellIndex(v)
			label := fmt.Sprintf("%*d", cellWidth, v)

			state := m.engine.Cell(idx)
			if !state.Visible() {
				b.WriteString(hidden.Render(label))
				continue
			}

			settled := pal.Composite
			if state.Kind() == sieve.Prime {
				settled = pal.Prime
			}
			c := pal.Fade(settled, m.fade.age(idx))
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(c.Hex())).
				Foreground(m.theme.Background).
				Bold(state.Kind() == sieve.Prime)
			b.WriteString(style.Render(label))
		}
		if row < cfg.Size()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RunLive starts the animation directly.
func RunLive(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}
