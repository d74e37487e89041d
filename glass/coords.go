package glass

// There are three coordinate systems in play.
//
//   - layout: top-left origin, y down. Boxes and the raw cursor live here.
//   - camera: viewport center origin, y up. The quad lives here.
//   - screen: bottom-left origin, y up. Shader uniforms live here.
//
// Every conversion goes through one of the functions below.

// BoxCenterToCamera returns the center of b in camera space.
func BoxCenterToCamera(b Box, v Viewport) Vec2 {
	return Vec2{
		X: (b.Left + b.Width*0.5) - v.Width*0.5,
		Y: v.Height*0.5 - (b.Top + b.Height*0.5),
	}
}

// BoxToScreen returns the bottom-left corner of b in screen space.
func BoxToScreen(b Box, v Viewport) Vec2 {
	return Vec2{
		X: b.Left,
		Y: v.Height - b.Bottom(),
	}
}

// LayoutPointToScreen flips a layout point into screen space.
func LayoutPointToScreen(p Vec2, v Viewport) Vec2 {
	return Vec2{
		X: p.X,
		Y: v.Height - p.Y,
	}
}

// QuadToLayout returns the top-left corner of q in layout space
// under projection p.
func QuadToLayout(q Quad, p Projection) Vec2 {
	topLeft := Vec2{
		X: q.Position.X - q.Scale.X*0.5,
		Y: q.Position.Y + q.Scale.Y*0.5,
	}
	return p.CameraToLayout(topLeft)
}

// QuadToScreen returns the bottom-left corner of q in screen space,
// placed where QuadToLayout puts it under p.
func QuadToScreen(q Quad, p Projection, v Viewport) Vec2 {
	topLeft := QuadToLayout(q, p)
	return Vec2{
		X: topLeft.X,
		Y: v.Height - (topLeft.Y + q.Scale.Y),
	}
}
