//go:build !js && (windows || cgo)

package main

import (
	"golang.design/x/clipboard"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager
	err := clipboard.Init()
	cm.Initialized = err == nil
	if err != nil {
		WarnLogger.Printf("clipboard is disabled: %v", err)
	}
}

// ClipboardWriteText reports whether str was written.
func ClipboardWriteText(str string) bool {
	cm := &TheClipboardManager
	if !cm.Initialized {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(str))
	return true
}
