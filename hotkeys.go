package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey eb.Key = eb.KeyF1

	ReloadShadersKey eb.Key = eb.KeyF5
	CopyUniformsKey  eb.Key = eb.KeyF6
	ToggleMountKey   eb.Key = eb.KeyF7
	ToggleOverlayKey eb.Key = eb.KeyF8
	ScreenshotKey    eb.Key = eb.KeyF9

	PlayPauseKey  eb.Key = eb.KeySpace
	RewindKey     eb.Key = eb.KeyArrowLeft
	ForwardKey    eb.Key = eb.KeyArrowRight
	MuteKey       eb.Key = eb.KeyM
	FullscreenKey eb.Key = eb.KeyF
)
