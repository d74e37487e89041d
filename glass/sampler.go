package glass

// SignalSource is the player chrome as seen by the overlay.
// All methods are cheap predicates over state the chrome owns.
type SignalSource interface {
	// pointer is over the tracked element
	Hovering() bool
	// progress bar drag in progress
	Dragging() bool
	// controls overlay is hidden
	ControlsHidden() bool
	// latest cursor position, layout space
	Pointer() (Vec2, bool)
}

type Sampler struct {
	Source SignalSource
}

// Sample reads the instantaneous targets and the pointer converted to
// screen space. pointerOk is false when there's no pointer to report.
func (s Sampler) Sample(v Viewport) (targets TargetSignals, pointer Vec2, pointerOk bool) {
	if s.Source == nil {
		targets.Visible = true
		return
	}

	targets.Hover = s.Source.Hovering()
	targets.Drag = s.Source.Dragging()
	targets.Visible = !s.Source.ControlsHidden()

	if p, ok := s.Source.Pointer(); ok {
		pointer = LayoutPointToScreen(p, v)
		pointerOk = true
	}

	return
}
