package clouds

import "math"

// Uniforms are the per frame inputs shared by every pixel of a draw.
type Uniforms struct {
	Time       float64
	Speed      float64
	Resolution Vec2
}

// Move applies the motion path to st. Only the scaled time (time*speed)
// depends on speed; wobble terms follow wall clock time alone.
func (m *Motion) Move(st Vec2, time, speed float64) Vec2 {
	t := time * speed

	switch m.Path {
	case MotionDiagonal:
		st[0] += t * m.Drift[0]
		st[1] += t * m.Drift[1]

	case MotionRotational:
		angle := t * m.Spin
		cos, sin := math.Cos(angle), math.Sin(angle)
		x, y := st[0]-m.Center[0], st[1]-m.Center[1]
		st[0] = cos*x + sin*y + m.Center[0]
		st[1] = -sin*x + cos*y + m.Center[1]
		st[0] += math.Sin(time*m.WobbleRate) * m.WobbleAmp
		st[1] += math.Cos(time*m.WobbleRate) * m.WobbleAmp

	case MotionVerticalWave:
		st[1] += t * m.Drift[1]
		st[0] += math.Sin(st[1]*m.WaveFreq+time*m.WobbleRate) * m.WobbleAmp
	}

	return st
}

// Field is the domain warped scalar field at an already moved coordinate,
// along with the intermediate warp vectors.
func Field(v *Variant, st Vec2, time float64) (f float64, q, r Vec2) {
	w := &v.Warp

	q[0] = FBM(v, Vec2{st[0] + w.QDrift*time, st[1]})
	q[1] = FBM(v, Vec2{st[0] + 1, st[1] + 1})

	base := Vec2{st[0] + w.Strength*q[0], st[1] + w.Strength*q[1]}

	r[0] = FBM(v, Vec2{
		base[0] + w.RXOffset[0] + w.RXDrift*time,
		base[1] + w.RXOffset[1],
	})
	r[1] = FBM(v, Vec2{
		base[0] + w.RYOffset[0] + w.RYDrift*time,
		base[1] + w.RYOffset[1] + w.RYDrift*time,
	})

	f = FBM(v, Vec2{st[0] + r[0], st[1] + r[1]})

	return f, q, r
}

// Colorize maps the warp outputs onto the palette.
func (p *Palette) Colorize(f float64, q, r Vec2) RGB {
	var c RGB

	midT := clamp01((f*f + p.MidLinear*f) * p.MidGain)
	shadowT := clamp01(math.Hypot(q[0], q[1]))
	accentT := clamp01(math.Abs(r[0]))

	brightness := f*f*f + p.Quadratic*f*f + p.Linear*f

	for i := 0; i < 3; i++ {
		c[i] = mix(p.Low[i], p.Mid[i], midT)
		c[i] = mix(c[i], p.Shadow[i], shadowT)
		c[i] = mix(c[i], p.Accent[i], accentT)
		c[i] *= brightness
	}

	return c
}

// Shade computes the color of the pixel whose center is fragCoord, measured
// from the bottom left corner of the viewport. Alpha is always 1.
func Shade(v *Variant, fragCoord Vec2, u Uniforms) RGB {
	st := Vec2{
		fragCoord[0] / u.Resolution[0] * v.Zoom,
		fragCoord[1] / u.Resolution[1] * v.Zoom,
	}
	st = v.Motion.Move(st, u.Time, u.Speed)

	f, q, r := Field(v, st, u.Time)

	return v.Palette.Colorize(f, q, r)
}
