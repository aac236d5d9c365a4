package signal

import (
	"fmt"
	"math"
	"sort"
)

// Preset is a named, fixed-shape parameter record. The preset table is a
// closed enumeration: nothing at runtime can add to it, and every entry is
// validated by TestPresetsValid, so ByName never hands out a bad record.
type Preset struct {
	Name        string
	Description string
	Params      Params
}

var presets = map[string]Preset{
	"calm": {
		Name:        "calm",
		Description: "single slow sinusoid, no divergence drama",
		Params: Params{
			FreqPrimary:   0.8,
			FreqSecondary: 1.6,
			Phase:         0,
			Amplitude:     1.0,
			Noise:         0,
			XMin:          0,
			XMax:          10,
			SplitPoint:    8,
			Upper:         Branch{Slope: 0.1, Amplitude: 0.2, Freq: 1.0},
			Lower:         Branch{Slope: -0.1, Amplitude: 0.2, Freq: 1.0},
		},
	},
	"beat": {
		Name:        "beat",
		Description: "two close frequencies producing a visible beat envelope",
		Params: Params{
			FreqPrimary:   2.2,
			FreqSecondary: 2.5,
			Phase:         math.Pi / 3,
			Amplitude:     1.2,
			Noise:         0.03,
			XMin:          0,
			XMax:          10,
			SplitPoint:    7,
			Upper:         Branch{Slope: 0.25, Amplitude: 0.5, Freq: 2.0, Phase: 0.4},
			Lower:         Branch{Slope: -0.25, Amplitude: 0.5, Freq: 2.0, Phase: -0.4},
		},
	},
	"schism": {
		Name:        "schism",
		Description: "early split with strongly divergent branches",
		Params: Params{
			FreqPrimary:   1.4,
			FreqSecondary: 3.1,
			Phase:         math.Pi / 2,
			Amplitude:     1.0,
			Noise:         0.05,
			XMin:          0,
			XMax:          10,
			SplitPoint:    4,
			Upper:         Branch{Slope: 0.6, Amplitude: 0.8, Freq: 3.0, Phase: 1.1},
			Lower:         Branch{Slope: -0.6, Amplitude: 0.8, Freq: 1.5, Phase: 2.3},
		},
	},
	"binaural": {
		Name:        "binaural",
		Description: "carrier plus small offset, the tone exporter's default",
		Params: Params{
			FreqPrimary:   2.0,
			FreqSecondary: 2.07,
			Phase:         0,
			Amplitude:     0.8,
			Noise:         0,
			XMin:          0,
			XMax:          10,
			SplitPoint:    9,
			Upper:         Branch{Slope: 0.05, Amplitude: 0.1, Freq: 2.0},
			Lower:         Branch{Slope: -0.05, Amplitude: 0.1, Freq: 2.07},
		},
	},
}

// DefaultPreset is the scene loaded when neither config nor the parameter
// echo supplies anything.
const DefaultPreset = "beat"

// Names returns the preset names in stable sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName looks up a preset. Unknown names are an error, not a fallback;
// callers wanting a fallback ask for DefaultPreset explicitly.
func ByName(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (have %v)", name, Names())
	}
	return p, nil
}

// Next returns the preset name following the given one in sorted order,
// wrapping around. Unknown input lands on the first preset.
func Next(name string) string {
	names := Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
