package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func IsMouseButtonPressed(button eb.MouseButton) bool {
	return eb.IsMouseButtonPressed(button)
}

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

// HandleKeyRepeat reports true when key is first pressed, once more after
// firstRate and then every repeatRate while it is held.
func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		delete(keyRepeatMap, key)
		return false
	}

	now := GlobalTimerNow()

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = now + firstRate
		return true
	}

	next, ok := keyRepeatMap[key]
	if !ok {
		keyRepeatMap[key] = now + firstRate
		return true
	}

	if now >= next {
		keyRepeatMap[key] = now + repeatRate
		return true
	}

	return false
}
