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
		IsAntiAliasOn(),
	)
}

func StrokeRect(
	dst *eb.Image,
	rect FRectangle,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		f32(strokeWidth),
		clr,
		IsAntiAliasOn(),
	)
}

func FillCircle(
	dst *eb.Image,
	x, y, r float64,
	clr color.Color,
) {
	ebv.DrawFilledCircle(
		dst, f32(x), f32(y), f32(r), clr, IsAntiAliasOn())
}
