package main

import "testing"

func TestDebugText(t *testing.T) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = nil
	dm.PersistentDebugMsgs = nil

	DebugPutsPersist("backend", "soft")
	DebugPrint("FPS", 60)
	DebugPrintf("speed", "%.2f", 0.25)
	DebugPrint("FPS", 59)

	want := "backend: soft\nFPS: 59\nspeed: 0.25"
	if got := DebugText(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	ClearDebugMsgs()
	DebugPutsPersist("backend", "kage")
	if got := DebugText(); got != "backend: kage" {
		t.Fatalf("after clear got %q", got)
	}
}
