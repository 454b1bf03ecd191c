package stage

import (
	"math/rand/v2"
	"time"
)

type flickerStep struct {
	on  bool
	dur time.Duration
}

// Flicker simulates failing cabin lights. Each pattern is one of
//
//	30%: a burst of 2-4 blinks, 100-250ms each, 100-300ms apart
//	20%: one long blink of 200-500ms
//	50%: one blink of 100-250ms
//
// followed by 1-3s of steady light.
type Flicker struct {
	rng *rand.Rand

	steps []flickerStep
	cur   flickerStep
	left  time.Duration
}

func NewFlicker(seed uint64) *Flicker {
	f := &Flicker{rng: rand.New(rand.NewPCG(seed, 0))}
	f.advance()
	return f
}

// On reports whether the lights are currently out.
func (f *Flicker) On() bool {
	return f.cur.on
}

func (f *Flicker) Update(dt time.Duration) {
	f.left -= dt
	for f.left <= 0 {
		carry := f.left
		f.advance()
		f.left += carry
	}
}

func (f *Flicker) advance() {
	if len(f.steps) == 0 {
		f.plan()
	}
	f.cur = f.steps[0]
	f.steps = f.steps[1:]
	f.left = f.cur.dur
}

func (f *Flicker) between(lo, hi time.Duration) time.Duration {
	return lo + time.Duration(f.rng.Float64()*float64(hi-lo))
}

func (f *Flicker) plan() {
	const ms = time.Millisecond

	kind := f.rng.Float64()

	switch {
	case kind < 0.3:
		count := f.rng.IntN(3) + 2
		for i := 0; i < count; i++ {
			f.steps = append(f.steps, flickerStep{on: true, dur: f.between(100*ms, 250*ms)})
			if i < count-1 {
				f.steps = append(f.steps, flickerStep{on: false, dur: f.between(100*ms, 300*ms)})
			}
		}
	case kind < 0.5:
		f.steps = append(f.steps, flickerStep{on: true, dur: f.between(200*ms, 500*ms)})
	default:
		f.steps = append(f.steps, flickerStep{on: true, dur: f.between(100*ms, 250*ms)})
	}

	f.steps = append(f.steps, flickerStep{on: false, dur: f.between(1000*ms, 3000*ms)})
}
