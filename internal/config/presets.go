package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"classic": {FrameRate: 12, Dimensions: 800, Size: 10, Theme: "classic"},
	"large":   {FrameRate: 20, Dimensions: 1200, Size: 18, Theme: "classic"},
	"slow":    {FrameRate: 10, Dimensions: 800, Size: 10, Theme: "ocean"},
	"fast":    {FrameRate: 40, Dimensions: 800, Size: 14, Theme: "retro"},
	"poster":  {FrameRate: 24, Dimensions: 2000, Size: 18, Theme: "minimal"},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := *p
	return &cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
