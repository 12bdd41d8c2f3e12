package config

import (
	"sort"

	"github.com/san-kum/racketlab/internal/sim"
)

// Presets are ready-made run configurations. Values not set here fall back
// to the defaults when applied.
var Presets = map[string]*Config{
	"quick": {
		Samples: 1000, Seed: DefaultSeed, TopN: 10, Workers: DefaultWorkers,
		Weights:   Weights{Speed: sim.DefaultWSpeed, Shock: sim.DefaultWShock},
		Bounds:    sim.DefaultBounds(),
		Constants: sim.DefaultConstants(),
	},
	"full": {
		Samples: 20000, Seed: DefaultSeed, TopN: 25, Workers: 4,
		Weights:   Weights{Speed: sim.DefaultWSpeed, Shock: sim.DefaultWShock},
		Bounds:    sim.DefaultBounds(),
		Constants: sim.DefaultConstants(),
	},
	"power": {
		Samples: DefaultSamples, Seed: DefaultSeed, TopN: DefaultTopN, Workers: DefaultWorkers,
		Weights:   Weights{Speed: 0.85, Shock: 0.15},
		Bounds:    sim.DefaultBounds(),
		Constants: sim.DefaultConstants(),
	},
	"comfort": {
		Samples: DefaultSamples, Seed: DefaultSeed, TopN: DefaultTopN, Workers: DefaultWorkers,
		Weights:   Weights{Speed: 0.30, Shock: 0.70},
		Bounds:    sim.DefaultBounds(),
		Constants: sim.DefaultConstants(),
	},
	"stiff-bed": {
		Samples: DefaultSamples, Seed: DefaultSeed, TopN: DefaultTopN, Workers: DefaultWorkers,
		Weights: Weights{Speed: sim.DefaultWSpeed, Shock: sim.DefaultWShock},
		Bounds: sim.Bounds{
			MRacket: sim.Range{Lo: 0.285, Hi: 0.340},
			KString: sim.Range{Lo: 3400, Hi: 4200},
			Damping: sim.Range{Lo: 0.01, Hi: 0.08},
			XNorm:   sim.Range{Lo: 0.15, Hi: 0.95},
		},
		Constants: sim.DefaultConstants(),
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
