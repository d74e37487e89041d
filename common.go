package main

import (
	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func f64[N number](n N) float64 {
	return float64(n)
}

func f32[N number](n N) float32 {
	return float32(n)
}
