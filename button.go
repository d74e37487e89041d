package main

import (
	"image/color"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type ButtonState int

const (
	ButtonStateNormal ButtonState = iota
	ButtonStateHover
	ButtonStateDown
)

type BaseButton struct {
	Rect FRectangle

	Disabled bool

	// fires when pressed
	// if RepeateOnHold is true, then if fires up repeatedly when user holds the button
	OnPress   func(justPressed bool)
	OnRelease func()

	RepeateOnHold         bool
	FirstRate, RepeatRate time.Duration

	State ButtonState

	inputId InputGroupId

	readyToCallOnRelease bool
}

func (b *BaseButton) Update() {
	if b.inputId == 0 {
		b.inputId = NewInputGroupId()
	}

	if b.Disabled {
		b.State = ButtonStateNormal
		b.readyToCallOnRelease = false
		return
	}

	pt := CursorFPt()

	inRect := pt.In(b.Rect)

	if inRect { // if mouse in rect
		if b.RepeateOnHold {
			if HandleMouseButtonRepeat(
				b.inputId, b.Rect,
				b.FirstRate, b.RepeatRate, eb.MouseButtonLeft,
			) {
				b.State = ButtonStateDown
				if b.OnPress != nil {
					b.OnPress(IsMouseButtonJustPressed(eb.MouseButtonLeft))
				}
			}
		} else {
			if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
				b.State = ButtonStateDown
				b.readyToCallOnRelease = true
				if b.OnPress != nil {
					b.OnPress(true)
				}
			}
		}

		if b.readyToCallOnRelease && IsMouseButtonJustReleased(eb.MouseButtonLeft) {
			if b.OnRelease != nil {
				b.OnRelease()
			}
			b.readyToCallOnRelease = false
		}
	}

	// taps act as a single press
	if IsTouchJustPressed(b.Rect, nil) {
		b.State = ButtonStateDown
		if b.OnPress != nil {
			b.OnPress(true)
		}
		if b.OnRelease != nil {
			b.OnRelease()
		}
		return
	}

	if inRect {
		if b.State != ButtonStateDown || !IsMouseButtonPressed(eb.MouseButtonLeft) {
			b.State = ButtonStateHover
		}
	} else {
		b.State = ButtonStateNormal
	}

	if !inRect {
		b.readyToCallOnRelease = false
	}
}

type TextButton struct {
	BaseButton

	Text string

	// label height relative to the button
	TextScale float64
}

func NewTextButton(text string) *TextButton {
	b := new(TextButton)
	b.Text = text
	b.TextScale = 0.45
	return b
}

func (b *TextButton) Draw(dst *eb.Image) {
	var bgColor color.Color

	switch b.BaseButton.State {
	case ButtonStateNormal:
		bgColor = ColorTable[ColorButton]
	case ButtonStateHover:
		bgColor = ColorTable[ColorButtonHover]
	case ButtonStateDown:
		bgColor = ColorTable[ColorButtonDown]
	}

	FillRect(dst, b.Rect, bgColor)

	if len(b.Text) > 0 {
		DrawTextCentered(
			dst, b.Text, FRectangleCenter(b.Rect),
			b.Rect.Dy()*b.TextScale, ColorTable[ColorButtonText],
		)
	}
}

// DrawTextCentered draws text with its center at center, height tall.
func DrawTextCentered(
	dst *eb.Image,
	text string,
	center FPoint,
	height float64,
	clr color.Color,
) {
	textW, textH := ebt.Measure(text, UIFace, FontLineSpacing(UIFace))
	if textW <= 0 || textH <= 0 {
		return
	}

	scale := height / textH

	op := &DrawTextOptions{}
	op.ColorScale.ScaleWithColor(clr)

	op.GeoM.Concat(TransformToCenter(textW, textH, scale, scale))
	op.GeoM.Translate(center.X, center.Y)

	DrawText(dst, text, UIFace, op)
}
