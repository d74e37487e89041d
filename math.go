package main

import (
	"image"

	"golang.org/x/exp/constraints"

	"liquidplayer/glass"
)

// =================================
// FPoint
// =================================

type FPoint struct {
	X, Y float64
}

func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

func (p FPoint) Eq(q FPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p FPoint) In(r FRectangle) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Vec2 converts p for the glass package. Both are layout space here.
func (p FPoint) Vec2() glass.Vec2 {
	return glass.V2(p.X, p.Y)
}

// =================================
// FRectangle
// =================================

type FRectangle struct {
	Min, Max FPoint
}

func FRect(x0, y0, x1, y1 float64) FRectangle {
	return FRectangle{
		Min: FPt(x0, y0),
		Max: FPt(x1, y1),
	}
}

// Box converts r to a glass layout box.
func (r FRectangle) Box() glass.Box {
	return glass.Box{
		Left:   r.Min.X,
		Top:    r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

// =================================================
// below is copy pasted frorm go image package
// but modified to be used for FRectangle
// license is at below
// =================================================

// Dx returns r's width.
func (r FRectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r FRectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Inset returns the rectangle r inset by n, which may be negative. If either
// of r's dimensions is less than 2*n then an empty rectangle near the center
// of r will be returned.
func (r FRectangle) Inset(n float64) FRectangle {
	if r.Dx() < 2*n {
		r.Min.X = (r.Min.X + r.Max.X) / 2
		r.Max.X = r.Min.X
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Dy() < 2*n {
		r.Min.Y = (r.Min.Y + r.Max.Y) / 2
		r.Max.Y = r.Min.Y
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}

// =======================================
// end of things I copied from google
// =======================================

// =================================
// misc
// =================================

func PointToFPoint(p image.Point) FPoint {
	return FPoint{X: float64(p.X), Y: float64(p.Y)}
}

func RectToFRect(rect image.Rectangle) FRectangle {
	return FRectangle{
		Min: PointToFPoint(rect.Min),
		Max: PointToFPoint(rect.Max),
	}
}

func RectWH(w, h int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{},
		Max: image.Point{w, h},
	}
}

func FRectWH(w, h float64) FRectangle {
	return FRectangle{
		Min: FPoint{0, 0},
		Max: FPoint{w, h},
	}
}

// FRectXYWH is a rectangle at x, y of size w, h.
func FRectXYWH(x, y, w, h float64) FRectangle {
	return FRect(x, y, x+w, y+h)
}

func FRectangleCenter(rect FRectangle) FPoint {
	return FPoint{
		X: (rect.Min.X + rect.Max.X) * 0.5,
		Y: (rect.Min.Y + rect.Max.Y) * 0.5,
	}
}

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

/*
Copyright (c) 2009 The Go Authors. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are
met:

   * Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.
   * Redistributions in binary form must reproduce the above
copyright notice, this list of conditions and the following disclaimer
in the documentation and/or other materials provided with the
distribution.
   * Neither the name of Google Inc. nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
