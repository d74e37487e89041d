package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func TouchFPt(id eb.TouchID) FPoint {
	x, y := eb.TouchPosition(id)
	return FPt(f64(x), f64(y))
}

func TransformToCenter(
	width, height float64,
	scaleX, scaleY float64,
) eb.GeoM {
	geom := eb.GeoM{}
	geom.Translate(-width*0.5, -height*0.5)
	geom.Scale(scaleX, scaleY)

	return geom
}

func FontSize(face ebt.Face) float64 {
	if gf, ok := face.(*ebt.GoTextFace); ok {
		return gf.Size
	}
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

func FontLineSpacing(face ebt.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
