package clouds

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	css "github.com/mazznoer/csscolorparser"
)

type MotionPath int

const (
	MotionDiagonal MotionPath = iota
	MotionRotational
	MotionVerticalWave
)

var motionNames = [...]string{
	MotionDiagonal:     "diagonal",
	MotionRotational:   "rotational",
	MotionVerticalWave: "vertical-wave",
}

func (m MotionPath) String() string {
	if m < 0 || int(m) >= len(motionNames) {
		return fmt.Sprintf("MotionPath(%d)", int(m))
	}
	return motionNames[m]
}

func ParseMotionPath(s string) (MotionPath, error) {
	for i, name := range motionNames {
		if strings.EqualFold(name, s) {
			return MotionPath(i), nil
		}
	}
	return 0, fmt.Errorf("unknown motion path %q", s)
}

func (m MotionPath) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(motionNames) {
		return nil, fmt.Errorf("unknown motion path %d", int(m))
	}
	return []byte(motionNames[m]), nil
}

func (m *MotionPath) UnmarshalText(text []byte) error {
	parsed, err := ParseMotionPath(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Vec2 is a plain 2 component vector, serialized as [x, y].
type Vec2 [2]float64

// RGB is a normalized color. In JSON it is either [r, g, b] or any CSS color
// string.
type RGB [3]float64

func (c *RGB) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := ParseColor(str)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var arr [3]float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("color must be a css string or [r, g, b]: %w", err)
	}
	*c = RGB(arr)
	return nil
}

// MarshalJSON writes c as #RRGGBB when that is exact, otherwise as [r, g, b].
func (c RGB) MarshalJSON() ([]byte, error) {
	hex := c.Hex()
	if parsed, err := ParseColor(hex); err == nil && parsed == c {
		return json.Marshal(hex)
	}
	return json.Marshal([3]float64(c))
}

// Hex returns the color as #RRGGBB.
func (c RGB) Hex() string {
	to8 := func(f float64) uint8 {
		return uint8(math.Round(clamp01(f) * 255))
	}
	return fmt.Sprintf("#%02X%02X%02X", to8(c[0]), to8(c[1]), to8(c[2]))
}

// ParseColor parses a css color string, ignoring alpha.
func ParseColor(str string) (RGB, error) {
	c, err := css.Parse(str)
	if err != nil {
		return RGB{}, err
	}
	return RGB{c.R, c.G, c.B}, nil
}

// Motion describes how the working coordinate travels over time.
//
// Diagonal uses Drift for both axes. Rotational spins around Center at Spin
// radians per unit of scaled time and wobbles by WobbleAmp at WobbleRate.
// VerticalWave uses Drift[1] and a horizontal sine of frequency WaveFreq.
type Motion struct {
	Path       MotionPath `json:"path"`
	Drift      Vec2       `json:"drift,omitempty"`
	Spin       float64    `json:"spin,omitempty"`
	Center     Vec2       `json:"center,omitempty"`
	WobbleRate float64    `json:"wobble_rate,omitempty"`
	WobbleAmp  float64    `json:"wobble_amp,omitempty"`
	WaveFreq   float64    `json:"wave_freq,omitempty"`
}

// Warp holds the coefficients of the q -> r -> f domain warp.
type Warp struct {
	QDrift   float64 `json:"q_drift"`
	Strength float64 `json:"strength"`
	RXOffset Vec2    `json:"rx_offset"`
	RXDrift  float64 `json:"rx_drift"`
	RYOffset Vec2    `json:"ry_offset"`
	RYDrift  float64 `json:"ry_drift"`
}

// Palette is the color ramp and its blend coefficients.
type Palette struct {
	Low    RGB `json:"low"`
	Mid    RGB `json:"mid"`
	Shadow RGB `json:"shadow"`
	Accent RGB `json:"accent"`

	MidLinear float64 `json:"mid_linear"`
	MidGain   float64 `json:"mid_gain"`

	// brightness = f^3 + Quadratic*f^2 + Linear*f
	Quadratic float64 `json:"quadratic"`
	Linear    float64 `json:"linear"`
}

// Variant is everything that distinguishes one cloud look from another.
// A Variant is treated as immutable once handed to a Renderer.
type Variant struct {
	Name     string  `json:"name"`
	Subtitle string  `json:"subtitle,omitempty"`
	Ambience string  `json:"ambience,omitempty"`
	Speed    float64 `json:"speed"`

	Zoom float64 `json:"zoom"`

	Octaves    int     `json:"octaves"`
	Amplitude  float64 `json:"amplitude"`
	Gain       float64 `json:"gain"`
	Rotation   float64 `json:"rotation"`
	Lacunarity float64 `json:"lacunarity"`
	Shift      float64 `json:"shift"`

	Motion  Motion  `json:"motion"`
	Warp    Warp    `json:"warp"`
	Palette Palette `json:"palette"`
}

const MaxOctaves = 16

func (v Variant) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("variant has no name")
	}
	if v.Octaves < 1 || v.Octaves > MaxOctaves {
		return fmt.Errorf("variant %s: octaves %d out of range [1, %d]", v.Name, v.Octaves, MaxOctaves)
	}
	if _, err := v.Motion.Path.MarshalText(); err != nil {
		return fmt.Errorf("variant %s: %w", v.Name, err)
	}

	nums := []float64{
		v.Speed, v.Zoom, v.Amplitude, v.Gain, v.Rotation, v.Lacunarity, v.Shift,
		v.Motion.Drift[0], v.Motion.Drift[1], v.Motion.Spin,
		v.Motion.Center[0], v.Motion.Center[1],
		v.Motion.WobbleRate, v.Motion.WobbleAmp, v.Motion.WaveFreq,
		v.Warp.QDrift, v.Warp.Strength, v.Warp.RXDrift, v.Warp.RYDrift,
		v.Warp.RXOffset[0], v.Warp.RXOffset[1], v.Warp.RYOffset[0], v.Warp.RYOffset[1],
		v.Palette.MidLinear, v.Palette.MidGain, v.Palette.Quadratic, v.Palette.Linear,
	}
	for _, c := range []RGB{v.Palette.Low, v.Palette.Mid, v.Palette.Shadow, v.Palette.Accent} {
		nums = append(nums, c[0], c[1], c[2])
	}
	for _, n := range nums {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fmt.Errorf("variant %s: non finite parameter", v.Name)
		}
	}
	if v.Zoom <= 0 {
		return fmt.Errorf("variant %s: zoom must be positive", v.Name)
	}

	return nil
}
