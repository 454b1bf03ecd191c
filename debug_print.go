package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func putDebugMsg(msgs []DebugMsg, key, value string) []DebugMsg {
	for i, msg := range msgs {
		if msg.Key == key {
			msgs[i].Value = value
			return msgs
		}
	}
	return append(msgs, DebugMsg{Key: key, Value: value})
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

// DebugPuts shows key: value until the next ClearDebugMsgs.
func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = putDebugMsg(dm.DebugMsgs, key, value)
}

// DebugPutsPersist shows key: value for the rest of the program.
func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = putDebugMsg(dm.PersistentDebugMsgs, key, value)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}

// DebugText joins persistent and per frame messages, one per line.
func DebugText() string {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	for _, list := range [][]DebugMsg{dm.PersistentDebugMsgs, dm.DebugMsgs} {
		for _, msg := range list {
			if dm.builder.Len() > 0 {
				dm.builder.WriteString("\n")
			}
			// builder doesn't actually errors out
			// no need to check error
			dm.builder.WriteString(msg.Key)
			dm.builder.WriteString(": ")
			dm.builder.WriteString(msg.Value)
		}
	}

	return dm.builder.String()
}

// DrawDebugMsgs draws the console in the bottom right corner of dst.
func DrawDebugMsgs(dst *eb.Image) {
	text := DebugText()
	if text == "" {
		return
	}

	const fontSize = 16
	const hozMargin = 5
	const vertMargin = 5

	scale := fontSize / FontSize(ClearFace)
	lineSpacing := FontLineSpacing(ClearFace) + 3

	w, h := ebt.Measure(text, ClearFace, lineSpacing)
	boxW, boxH := w*scale+hozMargin*2, h*scale+vertMargin*2

	bounds := dst.Bounds()
	rect := FRectWH(boxW, boxH)
	rect.Min.X += f64(bounds.Max.X) - boxW
	rect.Max.X += f64(bounds.Max.X) - boxW
	rect.Min.Y += f64(bounds.Max.Y) - boxH
	rect.Max.Y += f64(bounds.Max.Y) - boxH

	FillRect(dst, rect, color.NRGBA{255, 255, 255, 200})
	FillRect(dst, rect.Inset(2), color.NRGBA{0, 0, 0, 200})

	op := &DrawTextOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(rect.Min.X+hozMargin, rect.Min.Y+vertMargin)
	op.ColorScale.ScaleWithColor(color.NRGBA{255, 255, 255, 255})
	op.LayoutOptions.LineSpacing = lineSpacing

	DrawText(dst, text, ClearFace, op)
}
