package glass

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSurface struct {
	compileErr error
	compiled   []byte

	draws    int
	lastQuad Quad
	lastProj Projection
	lastU    UniformSet

	released int
}

func (f *fakeSurface) Compile(src []byte) error {
	f.compiled = src
	return f.compileErr
}

func (f *fakeSurface) DrawQuad(quad Quad, proj Projection, u UniformSet) {
	f.draws++
	f.lastQuad = quad
	f.lastProj = proj
	f.lastU = u
}

func (f *fakeSurface) Release() {
	f.released++
}

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration {
	return c.now
}

func (c *fakeClock) tick() {
	c.now += time.Second / 60
}

type overlayFixture struct {
	surface *fakeSurface
	clock   *fakeClock
	element *fakeLocator
	signals *fakeSignals
	overlay *Overlay
}

func newOverlayFixture(t *testing.T, ctx context.Context, mode SmoothingMode) *overlayFixture {
	t.Helper()

	f := &overlayFixture{
		surface: &fakeSurface{},
		clock:   &fakeClock{},
		element: &fakeLocator{box: Box{Left: 100, Top: 50, Width: 200, Height: 40}, ok: true},
		signals: &fakeSignals{},
	}

	options := DefaultOptions()
	options.Smoothing = NewSmoother(mode)

	o, err := NewOverlay(ctx, Host{
		Surface: f.surface,
		Element: f.element,
		Signals: f.signals,
		Clock:   f.clock,
	}, options)
	if err != nil {
		t.Fatalf("NewOverlay() error = %v", err)
	}
	o.Resize(1000, 600, 1)

	f.overlay = o
	return f
}

func (f *overlayFixture) frame() bool {
	f.clock.tick()
	return f.overlay.Frame()
}

func TestNewOverlayCompilesShader(t *testing.T) {
	f := newOverlayFixture(t, context.Background(), SmoothPerFrame)

	if string(f.surface.compiled) != string(ShaderSource) {
		t.Error("surface was not given ShaderSource")
	}
}

func TestNewOverlayCompileFailure(t *testing.T) {
	surface := &fakeSurface{compileErr: errors.New("bad token")}

	o, err := NewOverlay(context.Background(), Host{Surface: surface}, DefaultOptions())
	if !errors.Is(err, ErrShaderCompile) {
		t.Fatalf("NewOverlay() error = %v, want ErrShaderCompile", err)
	}
	if o != nil {
		t.Error("NewOverlay() returned an overlay on compile failure")
	}
	if surface.draws != 0 {
		t.Errorf("draws = %d, want 0", surface.draws)
	}
}

func TestNewOverlayNoSurface(t *testing.T) {
	_, err := NewOverlay(context.Background(), Host{}, DefaultOptions())
	if !errors.Is(err, ErrNoSurface) {
		t.Errorf("NewOverlay() error = %v, want ErrNoSurface", err)
	}
}

func TestFrameDrawsOncePerCall(t *testing.T) {
	f := newOverlayFixture(t, context.Background(), SmoothPerFrame)

	for i := 1; i <= 5; i++ {
		if !f.frame() {
			t.Fatalf("Frame() = false on frame %d", i)
		}
		if f.surface.draws != i {
			t.Fatalf("draws = %d after %d frames", f.surface.draws, i)
		}
	}

	u := f.surface.lastU
	if u.Resolution != V2(1000, 600) {
		t.Errorf("Resolution = %v, want (1000, 600)", u.Resolution)
	}
	if u.ElementPos != V2(100, 510) {
		t.Errorf("ElementPos = %v, want (100, 510)", u.ElementPos)
	}
	if f.surface.lastQuad.Position != V2(-300, 230) {
		t.Errorf("quad position = %v, want (-300, 230)", f.surface.lastQuad.Position)
	}
	if u.Time != f.clock.now.Seconds() {
		t.Errorf("Time = %v, want %v", u.Time, f.clock.now.Seconds())
	}
	if u.Tint != DefaultOptions().Tint {
		t.Errorf("Tint = %v, want %v", u.Tint, DefaultOptions().Tint)
	}
}

func TestFrameHoverConverges(t *testing.T) {
	f := newOverlayFixture(t, context.Background(), SmoothPerFrame)
	f.signals.hover = true

	for range 10 {
		f.frame()
	}

	if got := f.overlay.State().Hover; !approxEqTol(got, 0.6513, 1e-4) {
		t.Errorf("Hover after 10 frames = %v, want ~0.6513", got)
	}
	if got := f.surface.lastU.Hover; got != f.overlay.State().Hover {
		t.Errorf("uniform Hover = %v, want %v", got, f.overlay.State().Hover)
	}
}

func approxEqTol(a, b, tol float64) bool {
	d := a - b
	return d < tol && d > -tol
}

func TestFrameVisibilityFade(t *testing.T) {
	for _, mode := range []SmoothingMode{SmoothPerFrame, SmoothElapsed} {
		f := newOverlayFixture(t, context.Background(), mode)

		f.frame()
		prev := f.surface.lastU.Alpha
		if prev != 1 {
			t.Fatalf("mode %v: initial Alpha = %v, want 1", mode, prev)
		}

		f.signals.hidden = true

		for i := 0; i < 200; i++ {
			f.frame()
			alpha := f.surface.lastU.Alpha
			if alpha >= prev && prev > 0 {
				t.Fatalf("mode %v frame %d: Alpha = %v, not below %v", mode, i, alpha, prev)
			}
			if alpha < 0 {
				t.Fatalf("mode %v frame %d: Alpha = %v, negative", mode, i, alpha)
			}
			prev = alpha
		}

		if prev > 1e-6 {
			t.Errorf("mode %v: Alpha after 200 frames = %v, want ~0", mode, prev)
		}
	}
}

func TestFrameSurvivesMissingElement(t *testing.T) {
	f := newOverlayFixture(t, context.Background(), SmoothPerFrame)

	f.frame()
	before := f.surface.lastQuad

	f.element.ok = false
	if !f.frame() {
		t.Fatal("Frame() = false with missing element")
	}
	if f.surface.lastQuad != before {
		t.Errorf("quad = %+v on missing frame, want frozen %+v", f.surface.lastQuad, before)
	}

	f.element.ok = true
	f.element.box = Box{Left: 0, Top: 560, Width: 1000, Height: 40}
	f.frame()

	if want := V2(0, -280); f.surface.lastQuad.Position != want {
		t.Errorf("quad position = %v, want %v", f.surface.lastQuad.Position, want)
	}
	if want := V2(0, 0); f.surface.lastU.ElementPos != want {
		t.Errorf("ElementPos = %v, want %v", f.surface.lastU.ElementPos, want)
	}
}

func TestFrameTracksResize(t *testing.T) {
	f := newOverlayFixture(t, context.Background(), SmoothPerFrame)
	f.frame()

	f.overlay.Resize(800, 400, 1)
	f.element.box = Box{Left: 0, Top: 0, Width: 800, Height: 400}
	f.frame()

	if f.surface.lastU.Resolution != V2(800, 400) {
		t.Errorf("Resolution = %v, want (800, 400)", f.surface.lastU.Resolution)
	}
	want := Projection{Left: -400, Right: 400, Top: 200, Bottom: -200}
	if f.surface.lastProj != want {
		t.Errorf("projection = %+v, want %+v", f.surface.lastProj, want)
	}
	if f.surface.lastQuad.Position != V2(0, 0) {
		t.Errorf("quad position = %v, want (0, 0)", f.surface.lastQuad.Position)
	}
}

func TestFrameFrozenQuadFollowsResize(t *testing.T) {
	f := newOverlayFixture(t, context.Background(), SmoothPerFrame)
	f.frame()

	f.element.ok = false
	f.overlay.Resize(1000, 800, 1)
	f.frame()

	quad := f.surface.lastQuad
	u := f.surface.lastU

	drawn := QuadToLayout(quad, f.surface.lastProj)

	// where the shader places the element, back in layout space
	shaded := V2(u.ElementPos.X, u.Resolution.Y-(u.ElementPos.Y+u.ElementSize.Y))

	if !vecApproxEq(drawn, shaded) {
		t.Errorf("quad drawn at %v, shader places element at %v", drawn, shaded)
	}
	if want := V2(100, 150); !vecApproxEq(drawn, want) {
		t.Errorf("frozen quad top-left = %v, want %v", drawn, want)
	}
	if u.ElementSize != quad.Scale {
		t.Errorf("ElementSize = %v, want quad scale %v", u.ElementSize, quad.Scale)
	}
}

func TestFramePointer(t *testing.T) {
	f := newOverlayFixture(t, context.Background(), SmoothPerFrame)

	f.signals.pointer = V2(10, 20)
	f.signals.pointerOk = true
	f.frame()

	if want := V2(10, 580); f.surface.lastU.Mouse != want {
		t.Errorf("Mouse = %v, want %v", f.surface.lastU.Mouse, want)
	}

	// pointer left, keep the last one
	f.signals.pointerOk = false
	f.frame()
	if want := V2(10, 580); f.surface.lastU.Mouse != want {
		t.Errorf("Mouse = %v, want %v", f.surface.lastU.Mouse, want)
	}
}

func TestStop(t *testing.T) {
	f := newOverlayFixture(t, context.Background(), SmoothPerFrame)
	f.frame()

	f.overlay.Stop()
	f.overlay.Stop()

	if f.surface.released != 1 {
		t.Errorf("released = %d, want 1", f.surface.released)
	}
	if f.frame() {
		t.Error("Frame() = true after Stop")
	}
	if f.surface.draws != 1 {
		t.Errorf("draws = %d, want 1", f.surface.draws)
	}
	if !f.overlay.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
}

func TestContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := newOverlayFixture(t, ctx, SmoothPerFrame)

	f.frame()
	cancel()

	if f.frame() {
		t.Error("Frame() = true after cancel")
	}
	if f.surface.draws != 1 {
		t.Errorf("draws = %d, want 1", f.surface.draws)
	}
	if f.surface.released != 1 {
		t.Errorf("released = %d, want 1", f.surface.released)
	}
	if !f.overlay.Stopped() {
		t.Error("Stopped() = false after cancel")
	}
}

func TestElapsedFirstFrameHoldsLevels(t *testing.T) {
	f := newOverlayFixture(t, context.Background(), SmoothElapsed)
	f.signals.hover = true

	f.frame()
	if got := f.overlay.State().Hover; got != 0 {
		t.Errorf("Hover after first frame = %v, want 0", got)
	}

	f.frame()
	if got := f.overlay.State().Hover; !approxEqTol(got, DefaultDecay, 1e-5) {
		t.Errorf("Hover after second frame = %v, want ~%v", got, DefaultDecay)
	}
}
