package player

import "time"

const DefaultAutoHideDelay = time.Second * 3

// AutoHide hides the controls after a period without pointer activity.
type AutoHide struct {
	Delay time.Duration

	remaining time.Duration
	hidden    bool
}

func NewAutoHide(delay time.Duration) *AutoHide {
	ah := new(AutoHide)
	ah.Delay = delay
	ah.remaining = delay
	return ah
}

// Poke shows the controls and restarts the countdown.
func (ah *AutoHide) Poke() {
	ah.hidden = false
	ah.remaining = ah.Delay
}

func (ah *AutoHide) Tick(dt time.Duration) {
	if ah.hidden || dt <= 0 {
		return
	}
	ah.remaining -= dt
	if ah.remaining <= 0 {
		ah.remaining = 0
		ah.hidden = true
	}
}

func (ah *AutoHide) Hidden() bool {
	return ah.hidden
}
