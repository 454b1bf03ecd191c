package clouds

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestPresetsValid(t *testing.T) {
	for _, v := range Presets() {
		if err := v.Validate(); err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	v, ok := Lookup(Presets(), "sfo")
	if !ok || v.Name != "SFO" {
		t.Fatalf("Lookup(sfo) = %v, %v", v.Name, ok)
	}
	if _, ok := Lookup(Presets(), "ORD"); ok {
		t.Fatal("Lookup found a variant that does not exist")
	}
}

const variantsJSON = `[
  {
    "name": "ORD",
    "subtitle": "layover",
    "speed": 0.3,
    "zoom": 3,
    "octaves": 5,
    "amplitude": 0.6,
    "gain": 0.5,
    "rotation": 0.4,
    "lacunarity": 2,
    "shift": 100,
    "motion": {"path": "vertical-wave", "drift": [0, 1], "wave_freq": 1.5, "wobble_rate": 0.2, "wobble_amp": 0.05},
    "warp": {"q_drift": 0.1, "strength": 1, "rx_offset": [1, 2], "rx_drift": 0.1, "ry_offset": [3, 4], "ry_drift": 0.1},
    "palette": {
      "low": "#002FA7",
      "mid": "rebeccapurple",
      "shadow": [0.1, 0.2, 0.3],
      "accent": "rgb(255, 128, 0)",
      "mid_linear": 0.5, "mid_gain": 4, "quadratic": 0.8, "linear": 0.3
    }
  }
]`

func TestLoadVariants(t *testing.T) {
	variants, err := LoadVariants(strings.NewReader(variantsJSON))
	if err != nil {
		t.Fatalf("LoadVariants: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("%d variants, want 1", len(variants))
	}

	v := variants[0]
	if v.Motion.Path != MotionVerticalWave {
		t.Fatalf("motion %s, want vertical-wave", v.Motion.Path)
	}

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-3 }

	if low := v.Palette.Low; !near(low[0], 0) || !near(low[1], 47.0/255) || !near(low[2], 167.0/255) {
		t.Fatalf("low color %v", low)
	}
	if mid := v.Palette.Mid; !near(mid[0], 102.0/255) || !near(mid[1], 51.0/255) || !near(mid[2], 153.0/255) {
		t.Fatalf("mid color %v", mid)
	}
	if v.Palette.Shadow != (RGB{0.1, 0.2, 0.3}) {
		t.Fatalf("shadow color %v", v.Palette.Shadow)
	}
	if acc := v.Palette.Accent; !near(acc[0], 1) || !near(acc[1], 128.0/255) || !near(acc[2], 0) {
		t.Fatalf("accent color %v", acc)
	}
}

func TestLoadVariantsErrors(t *testing.T) {
	cases := map[string]string{
		"empty":         `[]`,
		"not an array":  `{"name": "X"}`,
		"unknown field": `[{"name": "X", "octaves": 3, "zoom": 1, "colour": 1}]`,
		"bad color":     `[{"name": "X", "octaves": 3, "zoom": 1, "palette": {"low": "not-a-color"}}]`,
		"bad motion":    `[{"name": "X", "octaves": 3, "zoom": 1, "motion": {"path": "zigzag"}}]`,
		"no octaves":    `[{"name": "X", "zoom": 1}]`,
		"duplicate":     `[{"name": "X", "octaves": 3, "zoom": 1}, {"name": "x", "octaves": 3, "zoom": 1}]`,
	}
	for name, input := range cases {
		if _, err := LoadVariants(strings.NewReader(input)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestMarshalVariantLoadsBack(t *testing.T) {
	for _, v := range Presets() {
		data, err := MarshalVariant(v)
		if err != nil {
			t.Fatal(err)
		}

		wrapped := append(append([]byte("["), data...), ']')
		variants, err := LoadVariants(bytes.NewReader(wrapped))
		if err != nil {
			t.Fatalf("loading marshalled %s: %v\n%s", v.Name, err, data)
		}

		got := variants[0]
		if got.Palette != v.Palette {
			t.Fatalf("%s: palette changed\ngot  %+v\nwant %+v", v.Name, got.Palette, v.Palette)
		}
		if got != v {
			t.Fatalf("%s: round trip changed parameters: %+v", v.Name, got)
		}

		u := Uniforms{Time: 1, Speed: v.Speed, Resolution: Vec2{800, 600}}
		at := Vec2{100.5, 100.5}
		if a, b := Shade(&got, at, u), Shade(&v, at, u); a != b {
			t.Fatalf("%s: shade %v after loading, %v before", v.Name, a, b)
		}
	}
}

func TestRGBMarshalJSON(t *testing.T) {
	cases := []struct {
		c    RGB
		want string
	}{
		{RGB{0, 0, 0}, `"#000000"`},
		{RGB{1, 1, 1}, `"#FFFFFF"`},
		{RGB{0, 0x2F / 255.0, 0xA7 / 255.0}, `"#002FA7"`},
		{RGB{0, 0.184, 0.655}, `[0,0.184,0.655]`},
		{RGB{1.5, 0, 0}, `[1.5,0,0]`},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.c)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != tc.want {
			t.Fatalf("%v: got %s, want %s", tc.c, data, tc.want)
		}

		var back RGB
		if err := json.Unmarshal(data, &back); err != nil || back != tc.c {
			t.Fatalf("%s loaded as %v, %v", data, back, err)
		}
	}
}

func TestMotionPathText(t *testing.T) {
	for _, m := range []MotionPath{MotionDiagonal, MotionRotational, MotionVerticalWave} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back MotionPath
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Fatalf("%s did not survive text encoding: %v %v", m, back, err)
		}
	}
	if _, err := MotionPath(9).MarshalText(); err == nil {
		t.Fatal("expected error for unknown motion path")
	}
}
