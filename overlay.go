package main

import (
	"context"
	"image/color"
	"math"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"liquidplayer/config"
	"liquidplayer/glass"
)

// =================================
// ebiten surface
// =================================

// ebitenSurface draws the glass quad onto whatever image is set as dst.
type ebitenSurface struct {
	shader *eb.Shader
	dst    *eb.Image
}

func (s *ebitenSurface) Compile(src []byte) error {
	shader, err := eb.NewShader(src)
	if err != nil {
		return err
	}
	s.shader = shader
	return nil
}

// Reload swaps in a new program. On failure the old one stays.
func (s *ebitenSurface) Reload(src []byte) error {
	shader, err := eb.NewShader(src)
	if err != nil {
		return err
	}
	if s.shader != nil {
		s.shader.Deallocate()
	}
	s.shader = shader
	return nil
}

func (s *ebitenSurface) DrawQuad(quad glass.Quad, proj glass.Projection, u glass.UniformSet) {
	if s.dst == nil || s.shader == nil || !quad.Visible() {
		return
	}

	w := int(math.Ceil(quad.Scale.X))
	h := int(math.Ceil(quad.Scale.Y))
	if w <= 0 || h <= 0 {
		return
	}

	topLeft := glass.QuadToLayout(quad, proj)

	op := &DrawRectShaderOptions{}
	op.GeoM.Translate(topLeft.X, topLeft.Y)
	op.Uniforms = u.Uniforms()

	BeginBlend(eb.BlendLighter)
	DrawRectShader(s.dst, w, h, s.shader, op)
	EndBlend()
}

func (s *ebitenSurface) Release() {
	if s.shader != nil {
		s.shader.Deallocate()
		s.shader = nil
	}
}

// =================================
// GlassLayer
// =================================

// GlassLayer owns the liquid glass overlay on top of the controls.
// It can be torn down and started again at runtime.
type GlassLayer struct {
	Controls *Controls
	Options  glass.Options

	overlay *glass.Overlay
	surface *ebitenSurface
	cancel  context.CancelFunc

	width, height, pixelRatio float64
}

func NewGlassLayer(controls *Controls, cfg config.Config) *GlassLayer {
	gl := new(GlassLayer)

	gl.Controls = controls
	gl.Options = cfg.GlassOptions()

	return gl
}

func (gl *GlassLayer) Running() bool {
	return gl.overlay != nil && !gl.overlay.Stopped()
}

func (gl *GlassLayer) Start() {
	if gl.Running() {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	surface := new(ebitenSurface)

	overlay, err := glass.NewOverlay(ctx, glass.Host{
		Surface: surface,
		Element: gl.Controls,
		Signals: gl.Controls,
	}, gl.Options)

	if err != nil {
		cancel()
		ErrLogger.Printf("liquid glass disabled: %v", err)
		return
	}

	gl.overlay = overlay
	gl.surface = surface
	gl.cancel = cancel

	if gl.width > 0 && gl.height > 0 {
		gl.overlay.Resize(gl.width, gl.height, gl.pixelRatio)
	}

	InfoLogger.Print("liquid glass started")
}

func (gl *GlassLayer) Stop() {
	if gl.overlay == nil {
		return
	}

	gl.cancel()
	gl.overlay.Stop()

	gl.overlay = nil
	gl.surface = nil
	gl.cancel = nil

	InfoLogger.Print("liquid glass stopped")
}

func (gl *GlassLayer) Resize(width, height, pixelRatio float64) {
	gl.width, gl.height, gl.pixelRatio = width, height, pixelRatio

	if gl.overlay != nil {
		gl.overlay.Resize(width, height, pixelRatio)
	}
}

func (gl *GlassLayer) Draw(dst *eb.Image) {
	if gl.overlay == nil {
		return
	}

	gl.surface.dst = dst
	ok := gl.overlay.Frame()
	gl.surface.dst = nil

	if !ok {
		gl.Stop()
	}
}

// ReloadShader recompiles the glass shader from disk.
func (gl *GlassLayer) ReloadShader() {
	if gl.surface == nil {
		WarnLogger.Print("liquid glass is not running, nothing to reload")
		return
	}

	src, err := os.ReadFile(glass.ShaderPath)
	if err != nil {
		ErrLogger.Printf("failed to read glass shader: %v", err)
		return
	}

	if err := gl.surface.Reload(src); err != nil {
		ErrLogger.Printf("failed to reload glass shader, keeping the old one: %v", err)
		return
	}

	InfoLogger.Print("reloaded glass shader")
}

// UniformSnapshot returns the last uniform set as yaml.
func (gl *GlassLayer) UniformSnapshot() string {
	if gl.overlay == nil {
		return ""
	}

	out, err := yaml.Marshal(gl.overlay.Uniforms().Uniforms())
	if err != nil {
		ErrLogger.Printf("failed to encode uniforms: %v", err)
		return ""
	}

	return string(out)
}

func (gl *GlassLayer) PrintDebug() {
	DebugPrint("Glass Running", gl.Running())

	if gl.overlay == nil {
		return
	}

	state := gl.overlay.State()
	quad := gl.overlay.Quad()
	viewport := gl.overlay.Viewport().Viewport

	DebugPrintf("Glass Levels", "hover %.3f drag %.3f visible %.3f", state.Hover, state.Drag, state.Visibility)
	DebugPrintf("Glass Pointer", "%.0f, %.0f", state.Pointer.X, state.Pointer.Y)
	DebugPrintf("Glass Quad", "pos %.1f, %.1f size %.1f x %.1f",
		quad.Position.X, quad.Position.Y, quad.Scale.X, quad.Scale.Y)
	DebugPrintf("Viewport", "%.0f x %.0f @%.2f", viewport.Width, viewport.Height, viewport.PixelRatio)

	tint := gl.Options.Tint
	DebugPrint("Glass Tint", ColorToString(color.NRGBA{
		uint8(tint[0] * 255), uint8(tint[1] * 255), uint8(tint[2] * 255), 255,
	}))
}
