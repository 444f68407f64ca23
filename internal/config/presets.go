package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Digits: 5, MinDigits: 3, MaxDigits: 20, Separator: " ",
		Duration: 3.0, Pacing: 0.05, Multiplier: 1.5, Policy: "distinct",
		ShuffleReveal: true, PreReveal: true, SuppressErrors: true, ResizePause: 1.0,
		Theme: "retro",
	},
	"quick": {
		Digits: 4, MinDigits: 3, MaxDigits: 20, Separator: " ",
		Duration: 1.0, Pacing: 0.03, Multiplier: 1.3, Policy: "independent",
		PreReveal: true, Theme: "minimal",
	},
	"dramatic": {
		Digits: 8, MinDigits: 3, MaxDigits: 20, Separator: "  ",
		Duration: 5.0, Pacing: 0.06, Multiplier: 1.8, Policy: "distinct",
		ShuffleReveal: true, PreReveal: true, ResizePause: 1.0, Theme: "sunset",
	},
	"marathon": {
		Digits: 20, MinDigits: 3, MaxDigits: 20, Separator: " ",
		Duration: 8.0, Pacing: 0.04, Multiplier: 1.2, Policy: "distinct",
		ShuffleReveal: true, PreReveal: true, ResizePause: 1.0, Theme: "ocean",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
