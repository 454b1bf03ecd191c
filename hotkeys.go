package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadVariantsKey   eb.Key = eb.KeyF5
	ShowDebugConsoleKey eb.Key = eb.KeyF1

	SpeedUpKey   eb.Key = eb.KeyArrowUp
	SpeedDownKey eb.Key = eb.KeyArrowDown

	CopyVariantKey eb.Key = eb.KeyC
	ScreenshotKey  eb.Key = eb.KeyP
	QuitKey        eb.Key = eb.KeyEscape
)

// TabKeys selects tabs in order.
var TabKeys = []eb.Key{eb.KeyDigit1, eb.KeyDigit2, eb.KeyDigit3}

const SpeedStep = 0.05
