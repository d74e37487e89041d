package glass

import "testing"

type fakeSignals struct {
	hover, drag, hidden bool

	pointer   Vec2
	pointerOk bool
}

func (f *fakeSignals) Hovering() bool       { return f.hover }
func (f *fakeSignals) Dragging() bool       { return f.drag }
func (f *fakeSignals) ControlsHidden() bool { return f.hidden }
func (f *fakeSignals) Pointer() (Vec2, bool) {
	return f.pointer, f.pointerOk
}

func TestSampleNilSource(t *testing.T) {
	targets, _, pointerOk := Sampler{}.Sample(Viewport{Width: 100, Height: 100})

	want := TargetSignals{Visible: true}
	if targets != want {
		t.Errorf("Sample() = %+v, want %+v", targets, want)
	}
	if pointerOk {
		t.Error("Sample() pointerOk = true, want false")
	}
}

func TestSampleTargets(t *testing.T) {
	tests := []struct {
		name string
		src  fakeSignals
		want TargetSignals
	}{
		{"idle", fakeSignals{}, TargetSignals{Visible: true}},
		{"hover", fakeSignals{hover: true}, TargetSignals{Hover: true, Visible: true}},
		{"drag", fakeSignals{drag: true, hover: true}, TargetSignals{Hover: true, Drag: true, Visible: true}},
		{"hidden", fakeSignals{hidden: true}, TargetSignals{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.src
			got, _, _ := Sampler{Source: &src}.Sample(Viewport{Width: 100, Height: 100})
			if got != tt.want {
				t.Errorf("Sample() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSamplePointerIsScreenSpace(t *testing.T) {
	src := &fakeSignals{pointer: V2(30, 100), pointerOk: true}

	_, pointer, ok := Sampler{Source: src}.Sample(Viewport{Width: 800, Height: 600})
	if !ok {
		t.Fatal("Sample() pointerOk = false, want true")
	}
	if want := V2(30, 500); pointer != want {
		t.Errorf("Sample() pointer = %v, want %v", pointer, want)
	}
}
