package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

func FillRect(
	dst *eb.Image,
	rect FRectangle,
	clr color.Color,
) {
	ebv.DrawFilledRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		clr,
		TheGraphicsContext.AntiAlias,
	)
}

// RoundRectPath returns a closed path around rect with corners of the given
// radius. The radius is clamped to half of the shorter side.
func RoundRectPath(rect FRectangle, radius float64) *ebv.Path {
	radius = Clamp(radius, 0, min(rect.Dx(), rect.Dy())*0.5)

	x0, y0 := f32(rect.Min.X), f32(rect.Min.Y)
	x1, y1 := f32(rect.Max.X), f32(rect.Max.Y)
	r := f32(radius)

	p := &ebv.Path{}
	p.MoveTo(x0+r, y0)
	p.ArcTo(x1, y0, x1, y0+r, r)
	p.ArcTo(x1, y1, x1-r, y1, r)
	p.ArcTo(x0, y1, x0, y1-r, r)
	p.ArcTo(x0, y0, x0+r, y0, r)
	p.Close()

	return p
}

// DrawImageRounded draws src at rect with its corners cut to radius.
// src is stretched to fill rect.
func DrawImageRounded(
	dst *eb.Image,
	src *eb.Image,
	rect FRectangle,
	radius float64,
	options *DrawImageOptions,
) {
	if rect.Empty() {
		return
	}
	if options == nil {
		options = &DrawImageOptions{}
	}

	vs, is := RoundRectPath(rect, radius).AppendVerticesAndIndicesForFilling(nil, nil)

	srcW, srcH := f64(src.Bounds().Dx()), f64(src.Bounds().Dy())
	scaleX, scaleY := srcW/rect.Dx(), srcH/rect.Dy()

	r, g, b, a := options.ColorScale.R(), options.ColorScale.G(), options.ColorScale.B(), options.ColorScale.A()

	for i := range vs {
		vs[i].SrcX = f32((f64(vs[i].DstX)-rect.Min.X)*scaleX) + f32(src.Bounds().Min.X)
		vs[i].SrcY = f32((f64(vs[i].DstY)-rect.Min.Y)*scaleY) + f32(src.Bounds().Min.Y)
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &eb.DrawTrianglesOptions{}
	op.Blend = CurrentBlend()
	op.Filter = CurrentFilter()
	op.FillRule = eb.FillRuleNonZero
	op.AntiAlias = TheGraphicsContext.AntiAlias

	dst.DrawTriangles(vs, is, src, op)
}
