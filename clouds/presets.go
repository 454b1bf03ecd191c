package clouds

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JFK drifts diagonally through violet storm clouds.
var JFK = Variant{
	Name:     "JFK",
	Subtitle: "young, naive",
	Ambience: "cabin-ambience-1",
	Speed:    0.2,

	Zoom: 4.0,

	Octaves:    8,
	Amplitude:  0.7,
	Gain:       0.5,
	Rotation:   0.7,
	Lacunarity: 2.5,
	Shift:      200,

	Motion: Motion{
		Path:  MotionDiagonal,
		Drift: Vec2{2.0, 1.5},
	},
	Warp: Warp{
		QDrift:   0.3,
		Strength: 1.2,
		RXOffset: Vec2{2.0, 10.2},
		RXDrift:  0.3,
		RYOffset: Vec2{9.3, 3.8},
		RYDrift:  0.3,
	},
	Palette: Palette{
		Low:       RGB{0.2, 0.1, 0.3},
		Mid:       RGB{0.4, 0.2, 0.5},
		Shadow:    RGB{0.1, 0.05, 0.2},
		Accent:    RGB{0.6, 0.3, 0.7},
		MidLinear: 0.6,
		MidGain:   5.0,
		Quadratic: 0.9,
		Linear:    0.4,
	},
}

// SFO turns slowly around the center in rust colored dusk.
var SFO = Variant{
	Name:     "SFO",
	Subtitle: "uncertain, full of anticipation",
	Ambience: "cabin-ambience-2",
	Speed:    0.4,

	Zoom: 3.8,

	Octaves:    7,
	Amplitude:  0.65,
	Gain:       0.55,
	Rotation:   0.6,
	Lacunarity: 2.3,
	Shift:      180,

	Motion: Motion{
		Path:       MotionRotational,
		Spin:       0.5,
		Center:     Vec2{0.5, 0.5},
		WobbleRate: 0.3,
		WobbleAmp:  0.1,
	},
	Warp: Warp{
		QDrift:   0.25,
		Strength: 1.1,
		RXOffset: Vec2{1.8, 9.5},
		RXDrift:  0.28,
		RYOffset: Vec2{8.5, 3.0},
		RYDrift:  0.25,
	},
	Palette: Palette{
		Low:       RGB{0.3, 0.15, 0.1},
		Mid:       RGB{0.5, 0.25, 0.15},
		Shadow:    RGB{0.15, 0.08, 0.05},
		Accent:    RGB{0.7, 0.35, 0.2},
		MidLinear: 0.55,
		MidGain:   4.5,
		Quadratic: 0.85,
		Linear:    0.35,
	},
}

// LAX rises through International Klein Blue with a gentle sideways wave.
var LAX = Variant{
	Name:     "LAX",
	Subtitle: "second home, familiar",
	Ambience: "cabin-ambience-3",
	Speed:    0.1,

	Zoom: 3.5,

	Octaves:    6,
	Amplitude:  0.6,
	Gain:       0.6,
	Rotation:   0.5,
	Lacunarity: 2.2,
	Shift:      150,

	Motion: Motion{
		Path:       MotionVerticalWave,
		Drift:      Vec2{0, 0.8},
		WaveFreq:   2.0,
		WobbleRate: 0.5,
		WobbleAmp:  0.1,
	},
	Warp: Warp{
		QDrift:   0.2,
		Strength: 1.0,
		RXOffset: Vec2{1.7, 9.2},
		RXDrift:  0.25,
		RYOffset: Vec2{8.3, 2.8},
		RYDrift:  0.226,
	},
	Palette: Palette{
		Low:       RGB{0.0, 0.1, 0.4},
		Mid:       RGB{0.0, 0.184, 0.655},
		Shadow:    RGB{0.0, 0.05, 0.3},
		Accent:    RGB{0.0, 0.25, 0.8},
		MidLinear: 0.5,
		MidGain:   4.0,
		Quadratic: 0.8,
		Linear:    0.3,
	},
}

// Presets returns the built in variants in tab order.
func Presets() []Variant {
	return []Variant{JFK, SFO, LAX}
}

// Lookup finds a variant by case insensitive name.
func Lookup(variants []Variant, name string) (Variant, bool) {
	for _, v := range variants {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Variant{}, false
}

// LoadVariants decodes a JSON array of variants and validates each one.
func LoadVariants(r io.Reader) ([]Variant, error) {
	var variants []Variant

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&variants); err != nil {
		return nil, fmt.Errorf("decoding variants: %w", err)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("variants file contains no variants")
	}

	seen := make(map[string]bool)
	for _, v := range variants {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		key := strings.ToUpper(v.Name)
		if seen[key] {
			return nil, fmt.Errorf("duplicate variant %s", v.Name)
		}
		seen[key] = true
	}

	return variants, nil
}

// MarshalVariant encodes v the same way LoadVariants expects a single entry.
// Colors are written as css hex strings unless that would lose precision.
func MarshalVariant(v Variant) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
