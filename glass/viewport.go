package glass

// Projection is a symmetric orthographic projection in camera space.
type Projection struct {
	Left, Right float64
	Top, Bottom float64
}

// CameraToLayout maps a camera space point to layout space.
func (p Projection) CameraToLayout(pt Vec2) Vec2 {
	return Vec2{
		X: pt.X - p.Left,
		Y: p.Top - pt.Y,
	}
}

// ViewportManager tracks the host window size and everything derived from it.
type ViewportManager struct {
	Viewport   Viewport
	Projection Projection
	Resolution Vec2

	// pixel ratio reported by the host is capped to this
	MaxPixelRatio float64
}

func NewViewportManager(maxPixelRatio float64) *ViewportManager {
	vm := new(ViewportManager)
	vm.MaxPixelRatio = maxPixelRatio
	vm.Viewport.PixelRatio = 1
	return vm
}

// CapPixelRatio clamps a device pixel ratio to maxRatio.
// Non-positive ratios count as 1 and a non-positive maxRatio means no cap.
func CapPixelRatio(ratio, maxRatio float64) float64 {
	if ratio <= 0 {
		ratio = 1
	}
	if maxRatio > 0 {
		ratio = min(ratio, maxRatio)
	}
	return ratio
}

// Resize updates the viewport, projection and resolution uniform.
// It reports whether anything changed.
func (vm *ViewportManager) Resize(width, height, pixelRatio float64) bool {
	width = max(width, 0)
	height = max(height, 0)

	pixelRatio = CapPixelRatio(pixelRatio, vm.MaxPixelRatio)

	next := Viewport{Width: width, Height: height, PixelRatio: pixelRatio}
	if next == vm.Viewport && vm.Resolution == V2(width, height) {
		return false
	}

	vm.Viewport = next
	vm.Projection = Projection{
		Left:   -width * 0.5,
		Right:  width * 0.5,
		Top:    height * 0.5,
		Bottom: -height * 0.5,
	}
	vm.Resolution = V2(width, height)

	return true
}
