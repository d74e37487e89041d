// Package player is a stand-in media clock with the same controls
// a browser video element exposes. Nothing is decoded.
package player

import (
	"fmt"
	"math"
	"time"
)

type Player struct {
	Duration time.Duration
	Position time.Duration

	Playing bool
	Volume  float64 // 0 to 1
	Muted   bool
	Speed   float64

	// called whenever playback pauses, including reaching the end
	OnPause func()
}

func New(duration time.Duration) *Player {
	p := new(Player)

	p.Duration = max(duration, 0)
	p.Volume = 1
	p.Speed = 1

	return p
}

func (p *Player) Play() {
	if p.Position >= p.Duration {
		p.Position = 0
	}
	p.Playing = true
}

func (p *Player) Pause() {
	if !p.Playing {
		return
	}
	p.Playing = false
	if p.OnPause != nil {
		p.OnPause()
	}
}

func (p *Player) Toggle() {
	if p.Playing {
		p.Pause()
	} else {
		p.Play()
	}
}

// Seek moves to t, clamped to the media.
func (p *Player) Seek(t time.Duration) {
	p.Position = min(max(t, 0), p.Duration)
}

func (p *Player) Skip(delta time.Duration) {
	p.Seek(p.Position + delta)
}

// SeekProgress seeks to a fraction of the duration.
func (p *Player) SeekProgress(t float64) {
	if math.IsNaN(t) {
		return
	}
	t = min(max(t, 0), 1)
	p.Seek(time.Duration(t * float64(p.Duration)))
}

func (p *Player) SetVolume(v float64) {
	p.Volume = min(max(v, 0), 1)
	p.Muted = p.Volume == 0
}

// ToggleMute mirrors the volume button: silence when audible, full otherwise.
func (p *Player) ToggleMute() {
	if p.Muted || p.Volume == 0 {
		p.SetVolume(1)
	} else {
		p.SetVolume(0)
	}
}

func (p *Player) SetSpeed(speed float64) error {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return fmt.Errorf("invalid playback speed %v", speed)
	}
	p.Speed = speed
	return nil
}

// Advance moves the clock forward by dt of wall time.
func (p *Player) Advance(dt time.Duration) {
	if !p.Playing || dt <= 0 {
		return
	}

	p.Position += time.Duration(float64(dt) * p.Speed)

	if p.Position >= p.Duration {
		p.Position = p.Duration
		p.Pause()
	}
}

// Progress returns the position as a fraction of the duration.
func (p *Player) Progress() float64 {
	if p.Duration <= 0 {
		return 0
	}
	return float64(p.Position) / float64(p.Duration)
}

// FormatTime formats seconds as m:ss.
// Minutes are not wrapped into hours.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}

	minutes := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))

	return fmt.Sprintf("%d:%02d", minutes, secs)
}

func FormatDuration(d time.Duration) string {
	return FormatTime(d.Seconds())
}
