package glass

import (
	"math"
	"time"
)

type SmoothingMode int

const (
	// fraction of the distance is derived from elapsed time
	SmoothElapsed SmoothingMode = iota
	// fixed fraction of the distance per frame
	SmoothPerFrame
)

const (
	DefaultDecay = 0.1

	// 1 - exp(-(1/60)/DefaultTau) == DefaultDecay
	DefaultTau = 0.158187
)

// Smoother moves levels toward their targets with first order
// exponential smoothing.
type Smoother struct {
	Mode SmoothingMode

	Decay float64 // SmoothPerFrame, in (0, 1]
	Tau   float64 // SmoothElapsed, seconds
}

func NewSmoother(mode SmoothingMode) Smoother {
	return Smoother{
		Mode:  mode,
		Decay: DefaultDecay,
		Tau:   DefaultTau,
	}
}

// Factor returns the fraction of the remaining distance closed over elapsed.
// The result is always within [0, 1].
func (s Smoother) Factor(elapsed time.Duration) float64 {
	switch s.Mode {
	case SmoothPerFrame:
		return Clamp(s.Decay, 0, 1)
	default:
		if elapsed <= 0 || s.Tau <= 0 {
			return 0
		}
		return 1 - math.Exp(-elapsed.Seconds()/s.Tau)
	}
}

// Step moves level toward target by factor.
// level' = level + (target-level)*factor is a convex combination of level
// and target, so it never leaves the interval spanned by them.
func Step(level, target, factor float64) float64 {
	return level + (target-level)*factor
}
