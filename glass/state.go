package glass

// RenderState holds everything the render loop mutates per frame.
// Levels are always within [0, 1].
type RenderState struct {
	Time float64 // seconds

	Hover      float64
	Drag       float64
	Visibility float64

	// screen space, bottom-left origin
	Pointer Vec2
}

// TargetSignals is the unsmoothed snapshot read from the player chrome.
type TargetSignals struct {
	Hover   bool
	Drag    bool
	Visible bool
}

func boolLevel(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

type Viewport struct {
	Width, Height float64
	PixelRatio    float64
}

// Box is a layout rectangle, top-left origin.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

func (b Box) Right() float64 {
	return b.Left + b.Width
}

func (b Box) Bottom() float64 {
	return b.Top + b.Height
}

// Degenerate reports whether the box can't be drawn.
func (b Box) Degenerate() bool {
	return !(b.Width > 0 && b.Height > 0)
}

// Quad is the unit square placed in camera space.
type Quad struct {
	Position Vec2
	Scale    Vec2
}

// Visible reports whether the quad covers any pixels.
func (q Quad) Visible() bool {
	return q.Scale.X > 0 && q.Scale.Y > 0
}

// UniformSet is the parameter bundle for one draw of the liquid shader.
type UniformSet struct {
	Resolution  Vec2
	ElementSize Vec2
	ElementPos  Vec2 // screen space, bottom-left origin

	Time  float64
	Hover float64
	Drag  float64
	Alpha float64

	Mouse Vec2

	Tint [3]float64
}

// Uniforms returns u keyed by the Kage uniform names.
func (u UniformSet) Uniforms() map[string]any {
	return map[string]any{
		"Resolution":  u.Resolution.Array(),
		"ElementSize": u.ElementSize.Array(),
		"ElementPos":  u.ElementPos.Array(),
		"Time":        u.Time,
		"Hover":       u.Hover,
		"Drag":        u.Drag,
		"Alpha":       u.Alpha,
		"Mouse":       u.Mouse.Array(),
		"Tint":        u.Tint,
	}
}
