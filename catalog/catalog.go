// Package catalog holds the compile-time constant table of supported Razer
// laptop models and is the single source of truth for "is this PID
// supported" and "what commands are legal on this model".
package catalog

import "strings"

// Feature names the closed set of optional capabilities a descriptor may
// declare support for.
type Feature string

const (
	FeatureBatteryCare    Feature = "battery-care"
	FeatureLidLogo        Feature = "lid-logo"
	FeatureLightsAlwaysOn Feature = "lights-always-on"
	FeatureKbdBacklight   Feature = "kbd-backlight"
	FeatureFan            Feature = "fan"
	FeaturePerf           Feature = "perf"
)

// AllFeatures is the closed set every descriptor's Features must be a subset of.
var AllFeatures = map[Feature]bool{
	FeatureBatteryCare:    true,
	FeatureLidLogo:        true,
	FeatureLightsAlwaysOn: true,
	FeatureKbdBacklight:   true,
	FeatureFan:            true,
	FeaturePerf:           true,
}

// Descriptor is the immutable metadata for one supported laptop model.
type Descriptor struct {
	PID               uint16
	Name              string
	ModelNumberPrefix string
	Features          []Feature
}

// Supports reports whether the descriptor declares the given feature.
func (d Descriptor) Supports(f Feature) bool {
	for _, have := range d.Features {
		if have == f {
			return true
		}
	}
	return false
}

// Supported is the compile-time catalog of every laptop model this module
// knows how to drive. Model-number prefixes are the stable first nine
// characters of the platform model identifier, the length platform.ReadModel
// truncates to (SPEC_FULL.md §3/§4.3).
var Supported = []Descriptor{
	{
		PID:               0x0253,
		Name:              "Razer Blade 14 (2023)",
		ModelNumberPrefix: "RZ09-0483",
		Features: []Feature{
			FeaturePerf, FeatureFan, FeatureKbdBacklight,
			FeatureLidLogo, FeatureLightsAlwaysOn, FeatureBatteryCare,
		},
	},
	{
		PID:               0x029f,
		Name:              "Razer Blade 15 (2023) Advanced",
		ModelNumberPrefix: "RZ09-0484",
		Features: []Feature{
			FeaturePerf, FeatureFan, FeatureKbdBacklight,
			FeatureLidLogo, FeatureLightsAlwaysOn, FeatureBatteryCare,
		},
	},
	{
		PID:               0x02a6,
		Name:              "Razer Blade 16 (2023)",
		ModelNumberPrefix: "RZ09-0482",
		Features: []Feature{
			FeaturePerf, FeatureFan, FeatureKbdBacklight,
			FeatureLidLogo, FeatureLightsAlwaysOn, FeatureBatteryCare,
		},
	},
	{
		PID:               0x0277,
		Name:              "Razer Blade 15 (2022) Base",
		ModelNumberPrefix: "RZ09-0421",
		Features: []Feature{
			FeaturePerf, FeatureFan, FeatureKbdBacklight, FeatureBatteryCare,
		},
	},
	{
		PID:               0x028d,
		Name:              "Razer Blade 17 (2022)",
		ModelNumberPrefix: "RZ09-0423",
		Features: []Feature{
			FeaturePerf, FeatureFan, FeatureKbdBacklight,
			FeatureLidLogo, FeatureBatteryCare,
		},
	},
}

// ByPID returns the descriptor for an exact PID match.
func ByPID(pid uint16) (Descriptor, bool) {
	for _, d := range Supported {
		if d.PID == pid {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ByModelPrefix returns the first descriptor whose model-number prefix is a
// prefix of model.
func ByModelPrefix(model string) (Descriptor, bool) {
	for _, d := range Supported {
		if strings.HasPrefix(model, d.ModelNumberPrefix) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// init validates the catalog invariant at load time: every feature tag in
// every descriptor must be in the closed set. This is the Go equivalent of
// the original source's const-eval validate_features check, run once as the
// package initializes rather than at compile time.
func init() {
	for _, d := range Supported {
		for _, f := range d.Features {
			if !AllFeatures[f] {
				panic("catalog: descriptor " + d.Name + " declares unknown feature " + string(f))
			}
		}
	}
}
