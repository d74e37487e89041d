package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// TakeScreenshot writes img to a new png in the working directory.
// Must be called from Draw.
func TakeScreenshot(img *eb.Image) (string, error) {
	timeStr := time.Now().Format("0102150405")

	filename := fmt.Sprintf("pic-%s.png", timeStr)

	for nameCounter := 2; ; nameCounter++ {
		_, err := os.Stat(filename)
		if errors.Is(err, os.ErrNotExist) {
			break
		}
		if err != nil {
			return "", err
		}
		filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	img.ReadPixels(rgba.Pix)

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, rgba); err != nil {
		return "", err
	}

	if err := os.WriteFile(filename, buffer.Bytes(), 0644); err != nil {
		return "", err
	}

	return filename, nil
}
