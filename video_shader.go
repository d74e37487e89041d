//go:build ignore

//kage:unit pixels

package main

const Pi = 3.141592

// Uniform variables.
var Time float  // media position in seconds
var Drift float // wall clock in seconds
var Calm float  // 0 when the viewer is active, 1 when idle
var Background vec3

func ColorRamp(t float) vec4 {
	var colors [5]vec4
	colors[0] = vec4(0.10, 0.14, 0.24, 1)
	colors[1] = vec4(0.18, 0.32, 0.52, 1)
	colors[2] = vec4(0.52, 0.30, 0.48, 1)
	colors[3] = vec4(0.86, 0.52, 0.40, 1)
	colors[4] = vec4(0.10, 0.14, 0.24, 1)

	segment := (1.0 / 4.0)

	for i := 0; i < 4; i++ {
		limit := float(i+1) * segment
		if t < limit {
			t = (t - float(i)*segment) / segment
			return mix(colors[i], colors[i+1], t)
		}
	}

	return colors[4]
}

func rotateV(v vec2, theta float) vec2 {
	c := cos(theta)
	s := sin(theta)
	return vec2(v.x*c-v.y*s, v.x*s+v.y*c)
}

func hash(p vec2) float {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453)
}

// value noise, 0 to 1
func vnoise(p vec2) float {
	i := floor(p)
	f := fract(p)
	u := f * f * (vec2(3.0) - 2.0*f)

	a := hash(i)
	b := hash(i + vec2(1, 0))
	c := hash(i + vec2(0, 1))
	d := hash(i + vec2(1, 1))

	return mix(mix(a, b, u.x), mix(c, d, u.x), u.y)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	size := imageDstSize()
	pos := (dstPos.xy - imageDstOrigin()) / size
	pos.x *= size.x / size.y

	speed := mix(1.0, 0.3, Calm)
	time := Time*0.8 + Drift*0.05*speed

	rotV := pos - vec2(0.5, 0.5)
	rotV = rotateV(rotV, rotV.x+time*0.03)
	rotV += vec2(0.5, 0.5)

	waveV := pos
	waveV.y += cos(pos.x*Pi-2*Pi) * sin(time*0.1)

	n1 := vnoise((waveV*0.1+rotV*0.2+vec2(time*0.0004, time*0.001))*6.0)
	n2 := vnoise((waveV*0.1+rotV*-0.6*(0.8+n1*0.2)+vec2(time*0.01, time*0.0004))*4.0)

	c := ColorRamp(mod(n1*0.6+time*0.01+n2*0.2, 1))

	brightness := mix(1.0, 0.55, Calm)

	return vec4(mix(Background, c.rgb, 0.85)*brightness, 1)
}
