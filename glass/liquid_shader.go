//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Resolution vec2
var ElementSize vec2
var ElementPos vec2 // bottom-left origin
var Time float
var Hover float
var Drag float
var Mouse vec2
var Alpha float
var Tint vec3

func mod289v3(x vec3) vec3 {
	return x - floor(x*(1.0/289.0))*289.0
}

func mod289v2(x vec2) vec2 {
	return x - floor(x*(1.0/289.0))*289.0
}

func permute(x vec3) vec3 {
	return mod289v3(((x * 34.0) + 1.0) * x)
}

// 2D simplex noise, roughly -1 to 1
func snoise(v vec2) float {
	C := vec4(
		0.211324865405187,
		0.366025403784439,
		-0.577350269189626,
		0.024390243902439,
	)

	i := floor(v + dot(v, C.yy))
	x0 := v - i + dot(i, C.xx)

	i1 := vec2(0, 1)
	if x0.x > x0.y {
		i1 = vec2(1, 0)
	}

	x12 := x0.xyxy + C.xxzz
	x12 = vec4(x12.xy-i1, x12.zw)

	i = mod289v2(i)
	p := permute(permute(vec3(i.y)+vec3(0, i1.y, 1)) + vec3(i.x) + vec3(0, i1.x, 1))

	m := max(vec3(0.5)-vec3(dot(x0, x0), dot(x12.xy, x12.xy), dot(x12.zw, x12.zw)), vec3(0))
	m = m * m
	m = m * m

	x := 2.0*fract(p*C.www) - 1.0
	h := abs(x) - 0.5
	ox := floor(x + 0.5)
	a0 := x - ox

	m *= 1.79284291400159 - 0.85373472095314*(a0*a0+h*h)

	g := vec3(a0.x*x0.x+h.x*x0.y, a0.yz*x12.xz+h.yz*x12.yw)

	return 130.0 * dot(m, g)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	_ = Mouse

	pos := dstPos.xy - imageDstOrigin()

	// element top edge in pixels from the top of the screen
	top := Resolution.y - (ElementPos.y + ElementSize.y)

	uv := vec2(
		(pos.x-ElementPos.x)/ElementSize.x,
		1-(pos.y-top)/ElementSize.y,
	)

	p := uv * 3.0
	t := Time * 0.5

	n := snoise(p + vec2(t*0.2, t*0.3))

	warp := smoothstep(0.0, 1.0, Hover) * 0.1 * sin(uv.y*10.0+Time*5.0)
	dragWarp := Drag * 0.2 * snoise(p*2.0+vec2(t))

	height := n*0.05 + warp + dragWarp

	lightDir := normalize(vec2(1.0, -1.0))
	sheen := dot(normalize(uv+vec2(height)), lightDir)

	hilite := smoothstep(0.4, 0.6, sheen) * 0.1
	sharpHilite := smoothstep(0.8, 0.85, sheen+height) * 0.3

	dist := distance(uv, vec2(0.5))
	rim := smoothstep(0.4, 0.5, dist) * 0.2

	alpha := hilite + sharpHilite + rim
	alpha = clamp(alpha, 0.0, 0.4)

	liquidIntensity := Hover*0.2 + Drag*0.3
	alpha += liquidIntensity * (snoise(uv*10.0+vec2(t))*0.5 + 0.5)

	alpha *= Alpha

	return vec4(Tint*alpha, alpha)
}
