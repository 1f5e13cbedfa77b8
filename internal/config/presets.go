package config

// Presets are named starting points keyed by model kind then preset name.
// Each builder returns a fresh config so callers can mutate freely;
// unrelated model bounds keep their defaults so switching models
// mid-session stays valid.
var Presets = map[string]map[string]func() *Config{
	"erdos_renyi": {
		"sparse": func() *Config {
			cfg := DefaultConfig()
			cfg.EdgeProbMin, cfg.EdgeProbMax = 0.01, 0.05
			return cfg
		},
		"dense": func() *Config {
			cfg := DefaultConfig()
			cfg.EdgeProbMin, cfg.EdgeProbMax = 0.3, 0.5
			cfg.NoiseNorm = 5.0
			return cfg
		},
	},
	"barabasi_albert": {
		"tree": func() *Config {
			cfg := DefaultConfig()
			cfg.NumEdgesMin, cfg.NumEdgesMax = 2, 2
			return cfg
		},
		"hub": func() *Config {
			cfg := DefaultConfig()
			cfg.NumNodes = 200
			cfg.NumEdgesMin, cfg.NumEdgesMax = 8, 16
			return cfg
		},
	},
	"watts_strogatz": {
		"smallworld": func() *Config {
			cfg := DefaultConfig()
			cfg.NumNeighborsMin, cfg.NumNeighborsMax = 6, 10
			cfg.RewireProbMin, cfg.RewireProbMax = 0.01, 0.05
			return cfg
		},
		"scrambled": func() *Config {
			cfg := DefaultConfig()
			cfg.RewireProbMin, cfg.RewireProbMax = 0.5, 0.9
			return cfg
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	build, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
