package stage

import (
	"testing"
	"time"
)

func TestFlickerDurations(t *testing.T) {
	const ms = time.Millisecond

	f := NewFlicker(42)

	for i := 0; i < 2000; i++ {
		step := f.cur
		if step.on {
			if step.dur < 100*ms || step.dur >= 500*ms {
				t.Fatalf("blink of %v", step.dur)
			}
		} else if step.dur < 100*ms || step.dur >= 3000*ms {
			t.Fatalf("gap of %v", step.dur)
		}
		f.advance()
	}
}

func TestFlickerStartsDark(t *testing.T) {
	// every pattern opens with a blink
	for seed := uint64(0); seed < 50; seed++ {
		if !NewFlicker(seed).On() {
			t.Fatalf("seed %d: first step is not a blink", seed)
		}
	}
}

func TestFlickerDeterministic(t *testing.T) {
	a, b := NewFlicker(7), NewFlicker(7)
	for i := 0; i < 500; i++ {
		a.Update(16 * time.Millisecond)
		b.Update(16 * time.Millisecond)
		if a.On() != b.On() {
			t.Fatalf("flickers with the same seed diverged at frame %d", i)
		}
	}
}

func TestFlickerDutyCycle(t *testing.T) {
	f := NewFlicker(3)

	var dark, total time.Duration
	const frame = 10 * time.Millisecond
	for total < 10*time.Minute {
		if f.On() {
			dark += frame
		}
		f.Update(frame)
		total += frame
	}

	ratio := float64(dark) / float64(total)
	if ratio < 0.02 || ratio > 0.4 {
		t.Fatalf("lights out %.1f%% of the time", ratio*100)
	}
}
