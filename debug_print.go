package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs []DebugMsg

	DebugMsgRenderTarget *eb.Image

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	if len(dm.DebugMsgs) <= 0 {
		return
	}

	dm.builder.Reset()

	for i, msg := range dm.DebugMsgs {
		// builder doesn't actually errors out
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)

		if i != len(dm.DebugMsgs)-1 {
			dm.builder.WriteString("\n")
		}
	}

	const fontSize = 16
	const hozMargin = 5
	const vertMargin = 5

	scale := fontSize / FontSize(ClearFace)
	fontLineSpacing := FontLineSpacing(ClearFace) + 3

	text := dm.builder.String()

	w, h := ebt.Measure(text, ClearFace, fontLineSpacing)

	boxW, boxH := w*scale+hozMargin*2, h*scale+vertMargin*2

	rect := FRectWH(boxW, boxH)

	createBuf := dm.DebugMsgRenderTarget == nil
	createBuf = createBuf || dm.DebugMsgRenderTarget.Bounds().Dx() < int(boxW+1)
	createBuf = createBuf || dm.DebugMsgRenderTarget.Bounds().Dy() < int(boxH+1)

	if createBuf {
		if dm.DebugMsgRenderTarget != nil {
			dm.DebugMsgRenderTarget.Deallocate()
		}
		dm.DebugMsgRenderTarget = eb.NewImageWithOptions(
			RectWH(int(boxW+1), int(boxH+1)),
			&eb.NewImageOptions{Unmanaged: true},
		)
	}

	dm.DebugMsgRenderTarget.Clear()

	// draw background
	FillRect(
		dm.DebugMsgRenderTarget,
		rect,
		color.NRGBA{255, 255, 255, 255},
	)
	FillRect(
		dm.DebugMsgRenderTarget,
		rect.Inset(2),
		color.NRGBA{0, 0, 0, 230},
	)

	// draw text
	{
		op := &DrawTextOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(
			hozMargin, vertMargin,
		)
		op.ColorScale.ScaleWithColor(color.NRGBA{255, 255, 255, 255})
		op.LayoutOptions.LineSpacing = fontLineSpacing

		DrawText(dm.DebugMsgRenderTarget, text, ClearFace, op)
	}

	// top right, away from the controls
	{
		dstRect := RectToFRect(dst.Bounds())
		op := &DrawImageOptions{}
		op.GeoM.Translate(dstRect.Max.X-boxW, dstRect.Min.Y)
		DrawImage(dst, dm.DebugMsgRenderTarget, op)
	}
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
