package player

import (
	"testing"
	"time"
)

func TestAutoHide(t *testing.T) {
	ah := NewAutoHide(3 * time.Second)

	if ah.Hidden() {
		t.Fatal("Hidden() = true right after creation")
	}

	ah.Tick(2 * time.Second)
	if ah.Hidden() {
		t.Error("Hidden() = true before the delay")
	}

	ah.Poke()
	ah.Tick(2 * time.Second)
	if ah.Hidden() {
		t.Error("Hidden() = true, Poke should restart the delay")
	}

	ah.Tick(time.Second)
	if !ah.Hidden() {
		t.Error("Hidden() = false after the delay")
	}

	ah.Poke()
	if ah.Hidden() {
		t.Error("Hidden() = true after Poke")
	}
}

func TestAutoHideIgnoresNegativeTicks(t *testing.T) {
	ah := NewAutoHide(time.Second)

	ah.Tick(-time.Hour)
	ah.Tick(0)
	if ah.Hidden() {
		t.Error("Hidden() = true after non-positive ticks")
	}
}
