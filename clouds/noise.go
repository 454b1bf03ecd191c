package clouds

import "math"

func fract(x float64) float64 {
	f := x - math.Floor(x)
	// x - floor(x) rounds up to 1 for tiny negative x.
	if f >= 1 {
		return math.Nextafter(1, 0)
	}
	return f
}

func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp01(x float64) float64 {
	return math.Min(math.Max(x, 0), 1)
}

// Random is the lattice hash. It returns a value in [0, 1).
func Random(p Vec2) float64 {
	return fract(math.Sin(p[0]*12.9898+p[1]*78.233) * 43758.5453123)
}

// Noise is 2D value noise: lattice hashes blended with a smoothstep curve.
func Noise(p Vec2) float64 {
	ix, iy := math.Floor(p[0]), math.Floor(p[1])
	fx, fy := p[0]-ix, p[1]-iy

	a := Random(Vec2{ix, iy})
	b := Random(Vec2{ix + 1, iy})
	c := Random(Vec2{ix, iy + 1})
	d := Random(Vec2{ix + 1, iy + 1})

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	return mix(a, b, ux) + (c-a)*uy*(1-ux) + (d-b)*ux*uy
}

// FBM sums v.Octaves layers of Noise. Each layer is rotated by v.Rotation,
// scaled by v.Lacunarity and shifted, while its weight decays by v.Gain.
func FBM(v *Variant, p Vec2) float64 {
	sum := 0.0
	amp := v.Amplitude

	cos, sin := math.Cos(v.Rotation), math.Sin(v.Rotation)

	for i := 0; i < v.Octaves; i++ {
		sum += amp * Noise(p)
		x := (cos*p[0] - sin*p[1]) * v.Lacunarity
		y := (sin*p[0] + cos*p[1]) * v.Lacunarity
		p = Vec2{x + v.Shift, y + v.Shift}
		amp *= v.Gain
	}

	return sum
}
