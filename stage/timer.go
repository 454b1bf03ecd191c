package stage

import "time"

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickUp(dt time.Duration) {
	t.Current += dt
}

func (t *Timer) Done() bool {
	return t.Current >= t.Duration
}

// Fader eases Value toward Target, covering the full 0..1 range in Duration.
type Fader struct {
	Value    float64
	Target   float64
	Duration time.Duration
}

func (f *Fader) Update(dt time.Duration) {
	if f.Duration <= 0 {
		f.Value = f.Target
		return
	}

	step := float64(dt) / float64(f.Duration)
	if f.Value < f.Target {
		f.Value = min(f.Value+step, f.Target)
	} else {
		f.Value = max(f.Value-step, f.Target)
	}
}
