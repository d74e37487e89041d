package glass

import (
	"math"

	"golang.org/x/exp/constraints"
)

// =================================
// Vec2
// =================================

type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (p Vec2) Add(q Vec2) Vec2 {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p Vec2) Sub(q Vec2) Vec2 {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p Vec2) Scale(s float64) Vec2 {
	p.X *= s
	p.Y *= s
	return p
}

func (p Vec2) AddScalar(s float64) Vec2 {
	p.X += s
	p.Y += s
	return p
}

func (p Vec2) Dot(q Vec2) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Vec2) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns p scaled to unit length.
// Zero vector stays zero.
func (p Vec2) Normalize() Vec2 {
	l := p.Length()
	if l == 0 {
		return Vec2{}
	}
	return p.Scale(1 / l)
}

func (p Vec2) Distance(q Vec2) float64 {
	return p.Sub(q).Length()
}

func (p Vec2) Array() [2]float64 {
	return [2]float64{p.X, p.Y}
}

// =================================
// misc
// =================================

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// SmoothStep is the GLSL smoothstep.
func SmoothStep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}
