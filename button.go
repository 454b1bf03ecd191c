package main

import (
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type ButtonState int

const (
	ButtonStateNormal ButtonState = iota
	ButtonStateHover
	ButtonStateDown
)

type BaseButton struct {
	Rect FRectangle

	// fires on the frame the left button goes down inside Rect
	OnPress func()

	State ButtonState
}

func (b *BaseButton) Update() {
	inRect := CursorFPt().In(b.Rect)

	if inRect {
		if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
			b.State = ButtonStateDown
			if b.OnPress != nil {
				b.OnPress()
			}
		}

		if b.State != ButtonStateDown || !IsMouseButtonPressed(eb.MouseButtonLeft) {
			b.State = ButtonStateHover
		}
	} else {
		b.State = ButtonStateNormal
	}
}

func (b *BaseButton) Hovered() bool {
	return b.State != ButtonStateNormal
}

// TabButton is a text only tab label. The active tab is shown in upper case,
// the others in lower case and dimmed until hovered.
type TabButton struct {
	BaseButton

	Text   string
	Active bool

	TextColor         color.Color
	TextColorInactive color.Color
}

var DefaultTabButton = TabButton{
	TextColor:         color.NRGBA{255, 255, 255, 255},
	TextColorInactive: color.NRGBA{0x9C, 0xA3, 0xAF, 255},
}

func NewTabButton(text string) *TabButton {
	copy := DefaultTabButton
	copy.Text = text
	return &copy
}

func (b *TabButton) Label() string {
	if b.Active {
		return strings.ToUpper(b.Text)
	}
	return strings.ToLower(b.Text)
}

func (b *TabButton) Color() color.Color {
	if b.Active || b.State != ButtonStateNormal {
		return b.TextColor
	}
	return b.TextColorInactive
}

func (b *TabButton) Draw(dst *eb.Image, fontSize float64) {
	label := b.Label()
	if len(label) == 0 {
		return
	}

	scale := fontSize / FontSize(ClearFace)
	textW, textH := ebt.Measure(label, ClearFace, FontLineSpacing(ClearFace))

	op := &DrawTextOptions{}
	op.ColorScale.ScaleWithColor(b.Color())
	op.GeoM.Translate(-textW*0.5, -textH*0.5)
	op.GeoM.Scale(scale, scale)
	center := FRectangleCenter(b.Rect)
	op.GeoM.Translate(center.X, center.Y)

	DrawText(dst, label, ClearFace, op)
}

// MeasureLabel returns the size of text drawn with ClearFace at fontSize.
func MeasureLabel(text string, fontSize float64) (float64, float64) {
	scale := fontSize / FontSize(ClearFace)
	w, h := ebt.Measure(text, ClearFace, FontLineSpacing(ClearFace))
	return w * scale, h * scale
}
