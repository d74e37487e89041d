package main

import (
	"errors"
	"fmt"
	"image/color"
)

type ColorTableIndex int

const (
	ColorVideoBg ColorTableIndex = iota

	ColorControlsBg
	ColorControlsStroke

	ColorProgressTrack
	ColorProgressFill
	ColorProgressThumb

	ColorButton
	ColorButtonHover
	ColorButtonDown
	ColorButtonText

	ColorTimeText

	ColorMenuBg
	ColorMenuText
	ColorMenuActive

	ColorTableSize
)

var colorTableNames = [ColorTableSize]string{
	ColorVideoBg: "video_bg",

	ColorControlsBg:     "controls_bg",
	ColorControlsStroke: "controls_stroke",

	ColorProgressTrack: "progress_track",
	ColorProgressFill:  "progress_fill",
	ColorProgressThumb: "progress_thumb",

	ColorButton:      "button",
	ColorButtonHover: "button_hover",
	ColorButtonDown:  "button_down",
	ColorButtonText:  "button_text",

	ColorTimeText: "time_text",

	ColorMenuBg:     "menu_bg",
	ColorMenuText:   "menu_text",
	ColorMenuActive: "menu_active",
}

func (i ColorTableIndex) String() string {
	if i < 0 || i >= ColorTableSize {
		return fmt.Sprintf("ColorTableIndex(%d)", int(i))
	}
	return colorTableNames[i]
}

var ColorTable [ColorTableSize]color.NRGBA

func init() {
	ColorTable[ColorVideoBg] = color.NRGBA{8, 10, 14, 255}

	// the glass draws on top of this, so it stays faint
	ColorTable[ColorControlsBg] = color.NRGBA{20, 24, 32, 90}
	ColorTable[ColorControlsStroke] = color.NRGBA{255, 255, 255, 40}

	ColorTable[ColorProgressTrack] = color.NRGBA{255, 255, 255, 50}
	ColorTable[ColorProgressFill] = color.NRGBA{255, 255, 255, 230}
	ColorTable[ColorProgressThumb] = color.NRGBA{255, 255, 255, 255}

	ColorTable[ColorButton] = color.NRGBA{255, 255, 255, 0}
	ColorTable[ColorButtonHover] = color.NRGBA{255, 255, 255, 30}
	ColorTable[ColorButtonDown] = color.NRGBA{255, 255, 255, 60}
	ColorTable[ColorButtonText] = color.NRGBA{255, 255, 255, 255}

	ColorTable[ColorTimeText] = color.NRGBA{230, 235, 245, 255}

	ColorTable[ColorMenuBg] = color.NRGBA{16, 18, 24, 220}
	ColorTable[ColorMenuText] = color.NRGBA{220, 225, 235, 255}
	ColorTable[ColorMenuActive] = color.NRGBA{120, 190, 255, 255}
}

// ApplyColorOverrides replaces table entries by name.
// Unknown names and bad colors are collected, the rest still apply.
func ApplyColorOverrides(overrides map[string]string) error {
	stringToIndex := make(map[string]ColorTableIndex)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = i
	}

	var errs []error

	for name, str := range overrides {
		index, ok := stringToIndex[name]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown color %q", name))
			continue
		}
		c, err := ParseColorString(str)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		ColorTable[index] = c
	}

	return errors.Join(errs...)
}
