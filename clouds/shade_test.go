package clouds

import (
	"math"
	"testing"
)

func isFinite(c RGB) bool {
	for _, x := range c {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func TestShadeFinite(t *testing.T) {
	for _, v := range Presets() {
		u := Uniforms{Speed: v.Speed, Resolution: Vec2{64, 48}}
		for _, tm := range []float64{0, 0.5, 17, 3600, 86400 * 3} {
			u.Time = tm
			for y := 0; y < 48; y += 7 {
				for x := 0; x < 64; x += 5 {
					c := Shade(&v, Vec2{float64(x) + 0.5, float64(y) + 0.5}, u)
					if !isFinite(c) {
						t.Fatalf("%s: pixel (%d,%d) at t=%v is %v", v.Name, x, y, tm, c)
					}
				}
			}
		}
	}
}

func TestSpeedOnlyScalesMotion(t *testing.T) {
	st := Vec2{1.25, 2.5}
	const tm = 3.0

	for _, v := range Presets() {
		slow := v.Motion.Move(st, tm, 0.2)
		fast := v.Motion.Move(st, tm, 0.4)
		if slow == fast {
			t.Fatalf("%s: speed change did not move the coordinate", v.Name)
		}

		// at a fixed coordinate the field ignores speed
		f1, q1, r1 := Field(&v, slow, tm)
		f2, q2, r2 := Field(&v, slow, tm)
		if f1 != f2 || q1 != q2 || r1 != r2 {
			t.Fatalf("%s: field at fixed st changed between evaluations", v.Name)
		}

		// the lattice never sees speed
		if FBM(&v, st) != FBM(&v, st) {
			t.Fatalf("%s: fbm not stable", v.Name)
		}
	}
}

func TestDiagonalMotionIsLinearInSpeed(t *testing.T) {
	v := JFK
	st := Vec2{0.5, 0.5}

	slow := v.Motion.Move(st, 10, 0.2)
	fast := v.Motion.Move(st, 10, 0.4)

	wantDX := 10 * 0.2 * v.Motion.Drift[0]
	wantDY := 10 * 0.2 * v.Motion.Drift[1]

	if d := fast[0] - slow[0]; math.Abs(d-wantDX) > 1e-9 {
		t.Fatalf("x difference %v, want %v", d, wantDX)
	}
	if d := fast[1] - slow[1]; math.Abs(d-wantDY) > 1e-9 {
		t.Fatalf("y difference %v, want %v", d, wantDY)
	}
}

func TestShadeAtTimeZeroIgnoresSpeed(t *testing.T) {
	for _, v := range Presets() {
		a := Shade(&v, Vec2{10.5, 20.5}, Uniforms{Time: 0, Speed: 0.2, Resolution: Vec2{100, 100}})
		b := Shade(&v, Vec2{10.5, 20.5}, Uniforms{Time: 0, Speed: 0.4, Resolution: Vec2{100, 100}})
		if a != b {
			t.Fatalf("%s: at time zero speed changed the color: %v vs %v", v.Name, a, b)
		}
	}
}

func TestRotationalMotionKeepsCenterDistance(t *testing.T) {
	m := SFO.Motion
	m.WobbleAmp = 0

	st := Vec2{1.5, -0.25}
	dist := math.Hypot(st[0]-m.Center[0], st[1]-m.Center[1])

	for _, tm := range []float64{0, 1, 7.5, 100} {
		moved := m.Move(st, tm, 0.4)
		got := math.Hypot(moved[0]-m.Center[0], moved[1]-m.Center[1])
		if math.Abs(got-dist) > 1e-9 {
			t.Fatalf("t=%v: distance to center %v, want %v", tm, got, dist)
		}
	}
}
