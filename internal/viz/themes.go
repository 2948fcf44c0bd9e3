package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/san-kum/sieve/internal/render"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Prime      lipgloss.Color
	Composite  lipgloss.Color
	Grid       lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Highlight  lipgloss.Color
}

// Available themes
var (
	// Colors of the original pyglet window
	ThemeClassic = Theme{
		Name:       "classic",
		Prime:      lipgloss.Color("#ff3333"),
		Composite:  lipgloss.Color("#99ffff"),
		Grid:       lipgloss.Color("#00e600"),
		Background: lipgloss.Color("#333333"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#777777"),
		Accent:     lipgloss.Color("#00e600"),
		Highlight:  lipgloss.Color("#ffff66"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Prime:      lipgloss.Color("#ff00ff"),
		Composite:  lipgloss.Color("#00ffff"),
		Grid:       lipgloss.Color("#444466"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#ffff00"),
		Highlight:  lipgloss.Color("#ffffff"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Prime:      lipgloss.Color("#88ff88"), // bright phosphor
		Composite:  lipgloss.Color("#005500"),
		Grid:       lipgloss.Color("#003300"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#00ff00"),
		Highlight:  lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Prime:      lipgloss.Color("#ffffff"),
		Composite:  lipgloss.Color("#444444"),
		Grid:       lipgloss.Color("#222222"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#cccccc"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
		Highlight:  lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Prime:      lipgloss.Color("#ffd700"),
		Composite:  lipgloss.Color("#0077be"),
		Grid:       lipgloss.Color("#00a8cc"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#00ff88"),
		Highlight:  lipgloss.Color("#ffffff"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Prime:      lipgloss.Color("#ff6b6b"),
		Composite:  lipgloss.Color("#feca57"),
		Grid:       lipgloss.Color("#8b6b8c"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Highlight:  lipgloss.Color("#ffffff"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// ResolveTheme finds a theme by exact name, then by fuzzy match, so
// "oce" or "cyb" are enough. It falls back to classic.
func ResolveTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	if name != "" {
		if matches := fuzzy.Find(name, ThemeNames()); len(matches) > 0 {
			return Themes[matches[0].Index], true
		}
	}
	return ThemeClassic, false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after t in Themes, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// Palette converts the theme for raster output.
func (t Theme) Palette() render.Palette {
	return render.Palette{
		Background: render.MustHex(string(t.Background)),
		Grid:       render.MustHex(string(t.Grid)),
		Hidden:     render.MustHex(string(t.Background)),
		Prime:      render.MustHex(string(t.Prime)),
		Composite:  render.MustHex(string(t.Composite)),
		Text:       render.MustHex(string(t.Text)),
		Highlight:  render.MustHex(string(t.Highlight)),
	}
}
