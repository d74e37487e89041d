package main

import (
	"bytes"

	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// chrome labels
	UIFace *ebt.GoTextFace
	// debug console
	ClearFace *ebt.GoTextFace
)

func loadFace(ttf []byte, size float64) *ebt.GoTextFace {
	faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		ErrLogger.Fatalf("failed to load font : %v", err)
	}

	return &ebt.GoTextFace{
		Source: faceSource,
		Size:   size,
	}
}

func LoadAssets() {
	UIFace = loadFace(goregular.TTF, 32)
	ClearFace = loadFace(gomono.TTF, 64)
}
