package main

import (
	"testing"

	"shaderclouds/clouds"
)

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("640x360")
	if err != nil || w != 640 || h != 360 {
		t.Fatalf("ParseSize = %d, %d, %v", w, h, err)
	}

	w, h, err = ParseSize(" 32 X 16 ")
	if err != nil || w != 32 || h != 16 {
		t.Fatalf("ParseSize with spaces = %d, %d, %v", w, h, err)
	}

	for _, bad := range []string{"", "640", "0x10", "ax2", "2x-1"} {
		if _, _, err := ParseSize(bad); err == nil {
			t.Fatalf("ParseSize(%q) succeeded", bad)
		}
	}
}

func TestTabsFromVariants(t *testing.T) {
	tabs := TabsFromVariants(clouds.Presets())

	if len(tabs) != 3 {
		t.Fatalf("%d tabs", len(tabs))
	}

	want := []struct{ name, subtitle, ambience string }{
		{"JFK", "young, naive", "cabin-ambience-1"},
		{"SFO", "uncertain, full of anticipation", "cabin-ambience-2"},
		{"LAX", "second home, familiar", "cabin-ambience-3"},
	}
	for i, w := range want {
		if tabs[i].Name != w.name || tabs[i].Subtitle != w.subtitle || tabs[i].Ambience != w.ambience {
			t.Fatalf("tab %d = %+v", i, tabs[i])
		}
	}
}
