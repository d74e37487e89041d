package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

// UpdateDelta is the wall time one Update call stands for.
func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickUp() {
	t.Current += UpdateDelta()
}

func (t *Timer) TickDown() {
	t.Current -= UpdateDelta()
}

func (t *Timer) ClampCurrent() {
	t.Current = min(max(t.Current, 0), t.Duration)
}

func (t *Timer) Normalize() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return min(max(f64(t.Current)/f64(t.Duration), 0), 1)
}
