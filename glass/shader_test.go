package glass

import (
	"bytes"
	"math"
	"strconv"
	"testing"
)

func shadeGrid(t *testing.T, fn func(u UniformSet, uv Vec2, f Fragment)) {
	t.Helper()

	levels := []float64{0, 0.25, 0.5, 0.75, 1}
	times := []float64{0, 0.7, 13.3, 1234.5}

	for _, hover := range levels {
		for _, drag := range levels {
			for _, tm := range times {
				u := UniformSet{
					Time:  tm,
					Hover: hover,
					Drag:  drag,
					Alpha: 1,
					Tint:  [3]float64{0.8, 0.9, 1.0},
				}
				for x := 1; x < 20; x++ {
					for y := 1; y < 20; y++ {
						uv := V2(float64(x)/20, float64(y)/20)
						fn(u, uv, Shade(u, uv))
					}
				}
			}
		}
	}
}

func TestShadeBaseAlphaCap(t *testing.T) {
	shadeGrid(t, func(u UniformSet, uv Vec2, f Fragment) {
		if f.Base < 0 || f.Base > BaseAlphaCap {
			t.Fatalf("Shade(%+v, %v).Base = %v, want within [0, %v]", u, uv, f.Base, BaseAlphaCap)
		}
	})
}

func TestShadeNoInteractionNoBoost(t *testing.T) {
	u := UniformSet{Time: 3, Alpha: 1}

	for x := 1; x < 10; x++ {
		uv := V2(float64(x)/10, 0.3)
		f := Shade(u, uv)
		if f.Alpha != f.Base {
			t.Errorf("Shade(idle, %v).Alpha = %v, want Base %v", uv, f.Alpha, f.Base)
		}
	}
}

func TestShadeVisibilityMultiplies(t *testing.T) {
	shadeGrid(t, func(u UniformSet, uv Vec2, f Fragment) {
		hidden := u
		hidden.Alpha = 0
		if got := Shade(hidden, uv).Alpha; got != 0 {
			t.Fatalf("Shade with Alpha 0 = %v, want 0", got)
		}

		half := u
		half.Alpha = 0.5
		if got := Shade(half, uv).Alpha; math.Abs(got-f.Alpha*0.5) > 1e-12 {
			t.Fatalf("Shade with Alpha 0.5 = %v, want %v", got, f.Alpha*0.5)
		}
	})
}

func TestShadeIsDeterministic(t *testing.T) {
	u := UniformSet{Time: 42, Hover: 0.3, Drag: 0.6, Alpha: 0.9, Tint: [3]float64{1, 1, 1}}
	uv := V2(0.31, 0.77)

	if Shade(u, uv) != Shade(u, uv) {
		t.Error("Shade() differs for identical inputs")
	}
}

func TestShadeColorIsTintTimesAlpha(t *testing.T) {
	u := UniformSet{Time: 1, Hover: 1, Alpha: 1, Tint: [3]float64{0.8, 0.9, 1.0}}
	f := Shade(u, V2(0.9, 0.9))

	for i := range 3 {
		if want := u.Tint[i] * f.Alpha; math.Abs(f.Color[i]-want) > 1e-12 {
			t.Errorf("Color[%d] = %v, want %v", i, f.Color[i], want)
		}
	}
}

func TestSnoiseRange(t *testing.T) {
	for x := -50; x < 50; x++ {
		for y := -50; y < 50; y++ {
			v := V2(float64(x)*0.173, float64(y)*0.291)
			n := snoise(v)
			if math.IsNaN(n) || n < -1.5 || n > 1.5 {
				t.Fatalf("snoise(%v) = %v, out of range", v, n)
			}
		}
	}
}

func TestShaderSourceDeclaresUniforms(t *testing.T) {
	for name := range (UniformSet{}).Uniforms() {
		decl := []byte("var " + name + " ")
		if !bytes.Contains(ShaderSource, decl) {
			t.Errorf("ShaderSource does not declare uniform %q", name)
		}
	}
	if !bytes.Contains(ShaderSource, []byte("func Fragment(")) {
		t.Error("ShaderSource has no Fragment function")
	}
}

func TestShaderSourceMatchesShade(t *testing.T) {
	// lines Shade mirrors, an edit to one side must reach the other
	lines := []string{
		"rim := smoothstep(0.4, 0.5, dist) * 0.2",
		"hilite := smoothstep(0.4, 0.6, sheen) * 0.1",
		"sharpHilite := smoothstep(0.8, 0.85, sheen+height) * 0.3",
		"alpha = clamp(alpha, 0.0, " + strconv.FormatFloat(BaseAlphaCap, 'f', -1, 64) + ")",
		"liquidIntensity := Hover*0.2 + Drag*0.3",
		"alpha += liquidIntensity * (snoise(uv*10.0+vec2(t))*0.5 + 0.5)",
		"alpha *= Alpha",
		"return vec4(Tint*alpha, alpha)",
	}

	for _, line := range lines {
		if !bytes.Contains(ShaderSource, []byte(line)) {
			t.Errorf("ShaderSource is missing %q", line)
		}
	}
}
