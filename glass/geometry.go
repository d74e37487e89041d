package glass

// ElementLocator reports the live layout box of the tracked element.
// ok is false when the element is not mounted.
type ElementLocator interface {
	Bounds() (box Box, ok bool)
}

type MissingPolicy int

const (
	// keep the last known transform
	MissingFreeze MissingPolicy = iota
	// shrink the quad to nothing
	MissingCollapse
)

// Synchronizer keeps the quad on top of the tracked element.
type Synchronizer struct {
	Policy MissingPolicy
}

// Sync refreshes quad and the element uniforms from the current layout.
// When the element is missing or degenerate it returns false and,
// under MissingFreeze, touches nothing.
func (s Synchronizer) Sync(
	loc ElementLocator,
	v Viewport,
	quad *Quad,
	u *UniformSet,
) bool {
	var box Box
	ok := false

	if loc != nil {
		box, ok = loc.Bounds()
	}
	if !ok || box.Degenerate() {
		if s.Policy == MissingCollapse {
			quad.Scale = Vec2{}
		}
		return false
	}

	quad.Scale = V2(box.Width, box.Height)
	quad.Position = BoxCenterToCamera(box, v)

	u.ElementSize = V2(box.Width, box.Height)
	u.ElementPos = BoxToScreen(box, v)

	return true
}
