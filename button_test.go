package main

import (
	"image/color"
	"testing"
)

func TestTabButtonLabel(t *testing.T) {
	b := NewTabButton("Jfk")

	if b.Label() != "jfk" || b.Color() != b.TextColorInactive {
		t.Fatalf("inactive tab: %q %v", b.Label(), b.Color())
	}

	b.State = ButtonStateHover
	if b.Color() != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatal("hovered tab is not white")
	}

	b.State = ButtonStateNormal
	b.Active = true
	if b.Label() != "JFK" || b.Color() != b.TextColor {
		t.Fatalf("active tab: %q %v", b.Label(), b.Color())
	}
}
