package glass

import (
	"math"
	"testing"
)

type fakeLocator struct {
	box Box
	ok  bool
}

func (f *fakeLocator) Bounds() (Box, bool) {
	return f.box, f.ok
}

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecApproxEq(a, b Vec2) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y)
}

func TestSyncMatchesLayout(t *testing.T) {
	loc := &fakeLocator{box: Box{Left: 100, Top: 50, Width: 200, Height: 40}, ok: true}
	v := Viewport{Width: 1000, Height: 600, PixelRatio: 1}

	var quad Quad
	var u UniformSet

	if !(Synchronizer{}).Sync(loc, v, &quad, &u) {
		t.Fatal("Sync() = false, want true")
	}

	if want := V2(-300, 230); !vecApproxEq(quad.Position, want) {
		t.Errorf("quad.Position = %v, want %v", quad.Position, want)
	}
	if want := V2(200, 40); !vecApproxEq(quad.Scale, want) {
		t.Errorf("quad.Scale = %v, want %v", quad.Scale, want)
	}
	if want := V2(100, 510); !vecApproxEq(u.ElementPos, want) {
		t.Errorf("ElementPos = %v, want %v", u.ElementPos, want)
	}
	if want := V2(200, 40); !vecApproxEq(u.ElementSize, want) {
		t.Errorf("ElementSize = %v, want %v", u.ElementSize, want)
	}
}

func TestSyncMissingElement(t *testing.T) {
	v := Viewport{Width: 1000, Height: 600, PixelRatio: 1}
	good := Box{Left: 100, Top: 50, Width: 200, Height: 40}

	tests := []struct {
		name      string
		locator   ElementLocator
		policy    MissingPolicy
		wantScale Vec2
	}{
		{"nil locator freeze", nil, MissingFreeze, V2(200, 40)},
		{"not mounted freeze", &fakeLocator{ok: false}, MissingFreeze, V2(200, 40)},
		{"zero size freeze", &fakeLocator{box: Box{Left: 10, Top: 10}, ok: true}, MissingFreeze, V2(200, 40)},
		{"negative size freeze", &fakeLocator{box: Box{Width: -5, Height: 10}, ok: true}, MissingFreeze, V2(200, 40)},
		{"not mounted collapse", &fakeLocator{ok: false}, MissingCollapse, V2(0, 0)},
		{"zero size collapse", &fakeLocator{box: Box{Width: 10}, ok: true}, MissingCollapse, V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Synchronizer{Policy: tt.policy}

			var quad Quad
			var u UniformSet
			s.Sync(&fakeLocator{box: good, ok: true}, v, &quad, &u)

			before := quad
			beforeU := u

			if s.Sync(tt.locator, v, &quad, &u) {
				t.Fatal("Sync() = true, want false")
			}
			if !vecApproxEq(quad.Scale, tt.wantScale) {
				t.Errorf("quad.Scale = %v, want %v", quad.Scale, tt.wantScale)
			}
			if quad.Position != before.Position {
				t.Errorf("quad.Position = %v, want unchanged %v", quad.Position, before.Position)
			}
			if u != beforeU {
				t.Errorf("uniforms changed on a skipped frame: %+v, want %+v", u, beforeU)
			}
		})
	}
}

func TestSyncResumesAfterMiss(t *testing.T) {
	v := Viewport{Width: 800, Height: 600, PixelRatio: 1}
	loc := &fakeLocator{box: Box{Left: 0, Top: 0, Width: 100, Height: 100}, ok: true}

	var quad Quad
	var u UniformSet
	s := Synchronizer{}

	s.Sync(loc, v, &quad, &u)

	loc.ok = false
	s.Sync(loc, v, &quad, &u)

	// element came back somewhere else
	loc.ok = true
	loc.box = Box{Left: 400, Top: 300, Width: 50, Height: 20}
	if !s.Sync(loc, v, &quad, &u) {
		t.Fatal("Sync() = false after element came back")
	}

	want := BoxCenterToCamera(loc.box, v)
	if !vecApproxEq(quad.Position, want) {
		t.Errorf("quad.Position = %v, want %v", quad.Position, want)
	}
	if !vecApproxEq(quad.Scale, V2(50, 20)) {
		t.Errorf("quad.Scale = %v, want (50, 20)", quad.Scale)
	}
}

func TestQuadToLayoutInvertsSync(t *testing.T) {
	vm := NewViewportManager(2)
	vm.Resize(1280, 720, 1)

	boxes := []Box{
		{Left: 0, Top: 0, Width: 1280, Height: 720},
		{Left: 100, Top: 50, Width: 200, Height: 40},
		{Left: 20, Top: 630, Width: 1240, Height: 70},
		{Left: -30, Top: -10, Width: 60, Height: 60},
	}

	for _, box := range boxes {
		var quad Quad
		var u UniformSet
		Synchronizer{}.Sync(&fakeLocator{box: box, ok: true}, vm.Viewport, &quad, &u)

		got := QuadToLayout(quad, vm.Projection)
		if want := V2(box.Left, box.Top); !vecApproxEq(got, want) {
			t.Errorf("QuadToLayout(%+v) = %v, want %v", box, got, want)
		}

		screen := QuadToScreen(quad, vm.Projection, vm.Viewport)
		if !vecApproxEq(screen, u.ElementPos) {
			t.Errorf("QuadToScreen(%+v) = %v, want ElementPos %v", box, screen, u.ElementPos)
		}
	}
}

func TestLayoutPointToScreen(t *testing.T) {
	v := Viewport{Width: 1000, Height: 600}

	got := LayoutPointToScreen(V2(10, 0), v)
	if want := V2(10, 600); got != want {
		t.Errorf("LayoutPointToScreen() = %v, want %v", got, want)
	}

	got = LayoutPointToScreen(V2(10, 600), v)
	if want := V2(10, 0); got != want {
		t.Errorf("LayoutPointToScreen() = %v, want %v", got, want)
	}
}
