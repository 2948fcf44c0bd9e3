package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sieve/internal/config"
	"github.com/san-kum/sieve/internal/log"
)

const (
	stateMenu = iota
	stateLive
)

// PresetResolver turns a preset name into launch options.
type PresetResolver func(name string) (Options, error)

// Menu lets the user pick a preset before the animation starts.
type Menu struct {
	state, cursor int
	presets       []string
	base          Options
	resolve       PresetResolver
	live          Model
}

// NewMenu builds the preset picker. A nil resolve applies the preset's
// values over base.
func NewMenu(base Options, resolve PresetResolver) Menu {
	if resolve == nil {
		resolve = func(name string) (Options, error) { return applyPreset(base, name) }
	}
	return Menu{
		state:   stateMenu,
		presets: config.ListPresets(),
		base:    base,
		resolve: resolve,
	}
}

func applyPreset(opts Options, name string) (Options, error) {
	p, err := config.GetPreset(name)
	if err != nil {
		return opts, err
	}
	p.Normalize()
	opts.Size, opts.FrameRate, opts.Dimensions = p.Size, p.FrameRate, p.Dimensions
	opts.Theme, _ = ResolveTheme(p.Theme)
	return opts, nil
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		newLive, cmd := m.live.Update(msg)
		m.live = newLive.(Model)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m Menu) start() (Menu, tea.Cmd) {
	name := m.presets[m.cursor]
	opts, err := m.resolve(name)
	if err != nil {
		log.Warn("preset not applied", "preset", name, "err", err)
		opts = m.base
	}
	m.live = NewModel(opts)
	m.state = stateLive
	return m, m.live.Init()
}

func (m Menu) View() string {
	if m.state == stateLive {
		return m.live.View()
	}

	var b strings.Builder
	h, sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true), lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	b.WriteString("\n\n    " + h.Render("SIEVE") + "\n    " + sub.Render("sieve of eratosthenes, step by step") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.presets {
		p := config.Presets[name]
		desc := fmt.Sprintf("%dx%d @ %d fps, %s", p.Size, p.Size, p.FrameRate, p.Theme)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true).Render("▸"), lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Render(fmt.Sprintf("%-10s", name)), lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("#555566")).Render(fmt.Sprintf("  %-10s", name)), lipgloss.NewStyle().Foreground(lipgloss.Color("#444455")).Render(desc)))
		}
	}
	b.WriteString("\n    " + keyHints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

// RunInteractive shows the preset menu, then the animation.
func RunInteractive(base Options, resolve PresetResolver) error {
	_, err := tea.NewProgram(NewMenu(base, resolve), tea.WithAltScreen()).Run()
	return err
}
