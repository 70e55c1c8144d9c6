package config

import "sort"

// Presets are named sweep settings. Render settings always come from
// DefaultConfig.
var Presets = map[string]SweepConfig{
	"classic": {
		RMin: 2.9, RMax: 4.0, RSteps: 1000,
		XIn: 0.01, Transient: 1_000_000, Samples: 3000,
	},
	"quick": {
		RMin: 2.9, RMax: 4.0, RSteps: 400,
		XIn: 0.01, Transient: 10_000, Samples: 500,
	},
	"full": {
		RMin: 0.0, RMax: 4.0, RSteps: 1600,
		XIn: 0.01, Transient: 100_000, Samples: 1000,
	},
	"period-doubling": {
		RMin: 2.95, RMax: 3.57, RSteps: 800,
		XIn: 0.01, Transient: 200_000, Samples: 1000,
	},
	"window-3": {
		RMin: 3.82, RMax: 3.86, RSteps: 800,
		XIn: 0.01, Transient: 200_000, Samples: 1000,
	},
}

// GetPreset returns DefaultConfig with the named sweep settings applied, or
// nil if the preset does not exist.
func GetPreset(name string) *Config {
	sweep, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Sweep = sweep
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
