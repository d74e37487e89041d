package main

import (
	_ "embed"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"

	"liquidplayer/glass"
	"liquidplayer/player"
)

const VideoShaderPath = "video_shader.go"

//go:embed video_shader.go
var videoShaderSource []byte

// VideoBackground stands in for the video frame.
// It only animates while the player is playing and settles down when idle.
type VideoBackground struct {
	Shader          *eb.Shader
	ShaderLoadError error

	calm     float64
	smoother glass.Smoother
}

func NewVideoBackground() *VideoBackground {
	v := new(VideoBackground)

	v.smoother = glass.NewSmoother(glass.SmoothElapsed)
	// slower than the glass, the idle look should drift in
	v.smoother.Tau *= 6

	v.Shader, v.ShaderLoadError = eb.NewShader(videoShaderSource)
	if v.ShaderLoadError != nil {
		ErrLogger.Printf("failed to compile video shader: %v", v.ShaderLoadError)
	}

	return v
}

func (v *VideoBackground) ReloadShader() {
	shaderCode, err := os.ReadFile(VideoShaderPath)
	if err == nil {
		var shader *eb.Shader
		shader, err = eb.NewShader(shaderCode)
		if err == nil {
			if v.Shader != nil {
				v.Shader.Deallocate()
			}
			v.Shader = shader
		}
	}

	v.ShaderLoadError = err

	if err != nil {
		ErrLogger.Printf("failed to reload video shader: %v", err)
	} else {
		InfoLogger.Print("reloaded video shader")
	}
}

func (v *VideoBackground) Update(idle bool) {
	target := 0.0
	if idle {
		target = 1
	}
	v.calm = glass.Step(v.calm, target, v.smoother.Factor(UpdateDelta()))

	DebugPrintf("Video Calm", "%.3f", v.calm)
	if v.ShaderLoadError != nil {
		DebugPrint("Video Shader Error", v.ShaderLoadError)
	}
}

func (v *VideoBackground) Draw(dst *eb.Image, p *player.Player) {
	bounds := dst.Bounds()

	if v.Shader == nil {
		FillRect(dst, RectToFRect(bounds), ColorTable[ColorVideoBg])
		return
	}

	op := &DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Time":       p.Position.Seconds(),
		"Drift":      GlobalTimerNow().Seconds(),
		"Calm":       v.calm,
		"Background": ColorRGB(ColorTable[ColorVideoBg]),
	}
	op.GeoM.Translate(f64(bounds.Min.X), f64(bounds.Min.Y))

	DrawRectShader(dst, bounds.Dx(), bounds.Dy(), v.Shader, op)
}
