// golang.design/x/clipboard needs cgo outside of windows
// and has no browser support.

//go:build js || (!windows && !cgo)

package main

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	WarnLogger.Print("clipboard is disabled")
}

func ClipboardWriteText(str string) bool {
	return false
}
