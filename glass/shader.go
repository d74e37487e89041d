package glass

import (
	_ "embed"
	"math"
)

// ShaderSource is the Kage program drawn over the tracked element.
//
//go:embed liquid_shader.go
var ShaderSource []byte

// ShaderPath is where ShaderSource lives relative to the module root.
// Used for hot reloading.
const ShaderPath = "glass/liquid_shader.go"

// BaseAlphaCap is the highest alpha before the interaction boost.
const BaseAlphaCap = 0.4

// Fragment is the output of Shade for one position.
type Fragment struct {
	Base  float64 // before interaction boost and visibility
	Alpha float64
	Color [3]float64 // premultiplied
}

// Shade evaluates the liquid shader on the CPU at uv,
// a position normalized to the quad (0 to 1, y up).
// It matches liquid_shader.go and exists to check its properties
// without a GPU.
func Shade(u UniformSet, uv Vec2) Fragment {
	p := uv.Scale(3)
	t := u.Time * 0.5

	n := snoise(p.Add(V2(t*0.2, t*0.3)))

	warp := SmoothStep(0, 1, u.Hover) * 0.1 * math.Sin(uv.Y*10+u.Time*5)
	dragWarp := u.Drag * 0.2 * snoise(p.Scale(2).AddScalar(t))

	height := n*0.05 + warp + dragWarp

	lightDir := V2(1, -1).Normalize()
	sheen := uv.AddScalar(height).Normalize().Dot(lightDir)

	hilite := SmoothStep(0.4, 0.6, sheen) * 0.1
	sharpHilite := SmoothStep(0.8, 0.85, sheen+height) * 0.3

	dist := uv.Distance(V2(0.5, 0.5))
	rim := SmoothStep(0.4, 0.5, dist) * 0.2

	base := Clamp(hilite+sharpHilite+rim, 0, BaseAlphaCap)

	liquidIntensity := u.Hover*0.2 + u.Drag*0.3
	alpha := base + liquidIntensity*(snoise(uv.Scale(10).AddScalar(t))*0.5+0.5)

	alpha *= u.Alpha

	return Fragment{
		Base:  base,
		Alpha: alpha,
		Color: [3]float64{u.Tint[0] * alpha, u.Tint[1] * alpha, u.Tint[2] * alpha},
	}
}

// =================================
// simplex noise
// =================================

func mod289(x float64) float64 {
	return x - math.Floor(x*(1.0/289.0))*289.0
}

func permute(x float64) float64 {
	return mod289(((x * 34.0) + 1.0) * x)
}

// snoise is 2D simplex noise, roughly within -1 to 1.
func snoise(v Vec2) float64 {
	const (
		cx = 0.211324865405187  // (3 - sqrt(3)) / 6
		cy = 0.366025403784439  // (sqrt(3) - 1) / 2
		cz = -0.577350269189626 // -1 + 2 * cx
		cw = 0.024390243902439  // 1 / 41
	)

	skew := (v.X + v.Y) * cy
	i := V2(math.Floor(v.X+skew), math.Floor(v.Y+skew))

	unskew := (i.X + i.Y) * cx
	x0 := v.Sub(i).AddScalar(unskew)

	i1 := V2(0, 1)
	if x0.X > x0.Y {
		i1 = V2(1, 0)
	}

	x1 := x0.AddScalar(cx).Sub(i1)
	x2 := x0.AddScalar(cz)

	i = V2(mod289(i.X), mod289(i.Y))

	var p [3]float64
	p[0] = permute(permute(i.Y+0) + i.X + 0)
	p[1] = permute(permute(i.Y+i1.Y) + i.X + i1.X)
	p[2] = permute(permute(i.Y+1) + i.X + 1)

	corners := [3]Vec2{x0, x1, x2}

	var sum float64

	for k := 0; k < 3; k++ {
		c := corners[k]

		m := max(0.5-c.Dot(c), 0)
		m = m * m
		m = m * m

		x := 2*fract(p[k]*cw) - 1
		h := math.Abs(x) - 0.5
		ox := math.Floor(x + 0.5)
		a0 := x - ox

		m *= 1.79284291400159 - 0.85373472095314*(a0*a0+h*h)

		g := a0*c.X + h*c.Y

		sum += m * g
	}

	return 130 * sum
}
