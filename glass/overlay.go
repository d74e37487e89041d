package glass

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

var warnLogger = log.New(os.Stderr, "[ WARN ]: ", log.Lshortfile)

var (
	ErrShaderCompile = errors.New("glass: shader compile failed")
	ErrNoSurface     = errors.New("glass: no drawing surface")
)

// Surface is the GPU side of the overlay.
type Surface interface {
	// Compile prepares the shader program. Called once before the first frame.
	Compile(src []byte) error
	// DrawQuad issues one additive draw of the compiled program.
	DrawQuad(quad Quad, proj Projection, u UniformSet)
	// Release frees the program.
	Release()
}

// Clock is a monotonic clock. Now is the time since some fixed start.
type Clock interface {
	Now() time.Duration
}

type monotonicClock struct {
	start time.Time
}

func NewMonotonicClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

type Options struct {
	Smoothing Smoother
	Missing   MissingPolicy

	MaxPixelRatio float64

	Tint [3]float64
}

func DefaultOptions() Options {
	return Options{
		Smoothing:     NewSmoother(SmoothElapsed),
		Missing:       MissingFreeze,
		MaxPixelRatio: 2,
		Tint:          [3]float64{0.8, 0.9, 1.0},
	}
}

// Host is everything the overlay borrows from its environment.
type Host struct {
	Surface Surface
	Element ElementLocator
	Signals SignalSource
	Clock   Clock
}

// Overlay is the liquid glass render loop.
// It is driven by calling Frame once per host frame.
type Overlay struct {
	ctx context.Context

	host    Host
	options Options

	viewport *ViewportManager
	sync     Synchronizer
	sampler  Sampler

	state    RenderState
	quad     Quad
	uniforms UniformSet

	prevFrame   time.Duration
	hadFrame    bool
	elementSeen bool

	stopped bool
}

// NewOverlay compiles the shader and returns a running overlay.
// A failure here is final, the caller should carry on without the overlay.
// Cancelling ctx stops the overlay at the start of the next frame.
func NewOverlay(ctx context.Context, host Host, options Options) (*Overlay, error) {
	if host.Surface == nil {
		return nil, ErrNoSurface
	}
	if err := host.Surface.Compile(ShaderSource); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	if host.Clock == nil {
		host.Clock = NewMonotonicClock()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	o := new(Overlay)

	o.ctx = ctx
	o.host = host
	o.options = options

	o.viewport = NewViewportManager(options.MaxPixelRatio)
	o.sync = Synchronizer{Policy: options.Missing}
	o.sampler = Sampler{Source: host.Signals}

	// overlay starts fully shown like the controls
	o.state.Visibility = 1

	o.uniforms.Tint = options.Tint

	return o, nil
}

// Resize forwards a host resize to the viewport manager.
// The new resolution reaches the shader on the next frame.
func (o *Overlay) Resize(width, height, pixelRatio float64) bool {
	return o.viewport.Resize(width, height, pixelRatio)
}

// Frame runs one iteration of the render loop.
// It returns false without drawing once the overlay is stopped.
func (o *Overlay) Frame() bool {
	if o.stopped {
		return false
	}
	if o.ctx.Err() != nil {
		o.Stop()
		return false
	}

	viewport := o.viewport.Viewport

	// ==========================
	// time
	// ==========================
	now := o.host.Clock.Now()

	var elapsed time.Duration
	if o.hadFrame {
		elapsed = now - o.prevFrame
	}
	o.prevFrame = now
	o.hadFrame = true

	o.state.Time = now.Seconds()

	// ==========================
	// geometry
	// ==========================
	found := o.sync.Sync(o.host.Element, viewport, &o.quad, &o.uniforms)
	if !found && o.elementSeen {
		warnLogger.Print("tracked element is gone, keeping last geometry")
	}
	o.elementSeen = found

	// ==========================
	// signals
	// ==========================
	targets, pointer, pointerOk := o.sampler.Sample(viewport)
	if pointerOk {
		o.state.Pointer = pointer
	}

	factor := o.options.Smoothing.Factor(elapsed)

	o.state.Hover = Step(o.state.Hover, boolLevel(targets.Hover), factor)
	o.state.Drag = Step(o.state.Drag, boolLevel(targets.Drag), factor)
	o.state.Visibility = Step(o.state.Visibility, boolLevel(targets.Visible), factor)

	// ==========================
	// draw
	// ==========================
	o.uniforms.Resolution = o.viewport.Resolution
	// a frozen quad may outlive a resize, keep the shader's idea of
	// the element where the quad actually lands
	o.uniforms.ElementPos = QuadToScreen(o.quad, o.viewport.Projection, o.viewport.Viewport)
	o.uniforms.Time = o.state.Time
	o.uniforms.Hover = o.state.Hover
	o.uniforms.Drag = o.state.Drag
	o.uniforms.Alpha = o.state.Visibility
	o.uniforms.Mouse = o.state.Pointer

	o.host.Surface.DrawQuad(o.quad, o.viewport.Projection, o.uniforms)

	return true
}

// Stop ends the loop and releases the surface. Safe to call more than once.
func (o *Overlay) Stop() {
	if o.stopped {
		return
	}
	o.stopped = true
	o.host.Surface.Release()
}

func (o *Overlay) Stopped() bool {
	return o.stopped
}

func (o *Overlay) State() RenderState {
	return o.state
}

func (o *Overlay) Quad() Quad {
	return o.quad
}

func (o *Overlay) Uniforms() UniformSet {
	return o.uniforms
}

func (o *Overlay) Viewport() *ViewportManager {
	return o.viewport
}
