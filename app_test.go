package main

import (
	"math"
	"testing"

	"shaderclouds/clouds"
)

func TestCloudColorScale(t *testing.T) {
	near := func(a float32, b float64) bool { return math.Abs(float64(a)-b) < 1e-6 }

	shown := CloudColorScale(1)
	if !near(shown.R(), 1) || !near(shown.A(), 1) {
		t.Fatalf("fully shown clouds are tinted: %v %v", shown.R(), shown.A())
	}

	// color scales are premultiplied, so rgb carries both the dim and the fade
	half := CloudColorScale(0.5)
	if !near(half.A(), 0.5) || !near(half.R(), 0.5*(CloudDim+(1-CloudDim)*0.5)) {
		t.Fatalf("half faded: r %v a %v", half.R(), half.A())
	}
	if half.R() != half.G() || half.G() != half.B() {
		t.Fatal("dim is not neutral")
	}

	if hidden := CloudColorScale(-1); hidden.A() != 0 || hidden.R() != 0 {
		t.Fatalf("hidden clouds still visible: %v %v", hidden.R(), hidden.A())
	}
}

func TestSpeedSticksAfterAdjusting(t *testing.T) {
	a := &App{cfg: AppConfig{Speed: 0.2}}

	if got := a.speedFor(clouds.SFO); got != 0.2 {
		t.Fatalf("speedFor = %v, want the configured 0.2", got)
	}

	a.setSpeed(0.2 + SpeedStep)
	if got := a.speedFor(clouds.LAX); got != 0.25 {
		t.Fatalf("speedFor after adjusting = %v, want 0.25", got)
	}

	perVariant := &App{cfg: AppConfig{Speed: -1}}
	if got := perVariant.speedFor(clouds.LAX); got != clouds.LAX.Speed {
		t.Fatalf("speedFor = %v, want the variant's %v", got, clouds.LAX.Speed)
	}
}
