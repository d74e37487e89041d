package main

import (
	"strconv"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"liquidplayer/glass"
	"liquidplayer/player"
)

const (
	controlsMargin = 24
	controlsHeight = 92
	controlsPad    = 14

	progressHitHeight   = 18
	progressTrackHeight = 5

	buttonHeight = 44
	buttonWidth  = 72
	buttonGap    = 6

	timeLabelWidth = 150

	menuRowHeight  = 38
	menuLabelWidth = 96
	menuCellWidth  = 62

	skipAmount = time.Second * 10
)

// =================================
// ProgressBar
// =================================

type ProgressBar struct {
	Rect FRectangle

	Dragging bool

	TrackHeight float64

	// called with the new fraction while dragging
	OnSeek func(t float64)

	touchDrag bool
	touchId   eb.TouchID
}

func (pb *ProgressBar) Fraction(x float64) float64 {
	if pb.Rect.Dx() <= 0 {
		return 0
	}
	return Clamp((x-pb.Rect.Min.X)/pb.Rect.Dx(), 0, 1)
}

func (pb *ProgressBar) Update() {
	if !pb.Dragging {
		if IsMouseButtonJustPressed(eb.MouseButtonLeft) && CursorFPt().In(pb.Rect) {
			pb.Dragging = true
			pb.touchDrag = false
		} else if IsTouchJustPressed(pb.Rect, &pb.touchId) {
			pb.Dragging = true
			pb.touchDrag = true
		}
	}

	if !pb.Dragging {
		return
	}

	var pos FPoint

	if pb.touchDrag {
		if !IsTouchIdTouching(pb.touchId) || IsTouchIdJustReleased(pb.touchId) {
			pb.Dragging = false
			return
		}
		pos = TouchFPt(pb.touchId)
	} else {
		if !IsMouseButtonPressed(eb.MouseButtonLeft) {
			pb.Dragging = false
			return
		}
		pos = CursorFPt()
	}

	if pb.OnSeek != nil {
		pb.OnSeek(pb.Fraction(pos.X))
	}
}

func (pb *ProgressBar) Draw(dst *eb.Image, progress float64) {
	center := FRectangleCenter(pb.Rect)

	track := FRect(
		pb.Rect.Min.X, center.Y-pb.TrackHeight*0.5,
		pb.Rect.Max.X, center.Y+pb.TrackHeight*0.5,
	)
	FillRect(dst, track, ColorTable[ColorProgressTrack])

	fill := track
	fill.Max.X = Lerp(track.Min.X, track.Max.X, Clamp(progress, 0, 1))
	FillRect(dst, fill, ColorTable[ColorProgressFill])

	if pb.Dragging || CursorFPt().In(pb.Rect) {
		FillCircle(dst, fill.Max.X, center.Y, pb.TrackHeight*1.6, ColorTable[ColorProgressThumb])
	}
}

// =================================
// Controls
// =================================

type menuCell struct {
	Rect  FRectangle
	Group string
	Value string
}

type menuRow struct {
	LabelRect FRectangle
	Group     string
}

// Controls is the player chrome. It is the element the glass tracks
// and the source of the glass interaction signals.
type Controls struct {
	Player   *player.Player
	Menu     *player.Menu
	AutoHide *player.AutoHide

	// unmounted controls have no layout box
	Mounted bool

	// layout pixels per device independent pixel
	Scale float64

	// bottom controls wrapper, the tracked element
	Wrapper FRectangle

	Progress ProgressBar

	RewindButton     *TextButton
	PlayButton       *TextButton
	ForwardButton    *TextButton
	VolumeButton     *TextButton
	SettingsButton   *TextButton
	FullscreenButton *TextButton

	TimeRect FRectangle

	MenuRect  FRectangle
	menuRows  []menuRow
	menuCells []menuCell

	fade Timer

	cursorHidden    bool
	wantFullscreen  bool
	checkFullscreen bool

	renderTarget *eb.Image
}

func NewControls(p *player.Player, autoHide time.Duration) *Controls {
	c := new(Controls)

	c.Player = p
	c.Menu = player.NewMenu()
	c.AutoHide = player.NewAutoHide(autoHide)

	c.Mounted = true

	c.fade = Timer{Duration: time.Millisecond * 300}
	c.fade.Current = c.fade.Duration

	// paused players always show their controls
	c.Player.OnPause = c.AutoHide.Poke

	c.Menu.OnSelect = func(group, value string) {
		switch group {
		case "speed":
			speed, err := strconv.ParseFloat(value, 64)
			if err == nil {
				err = c.Player.SetSpeed(speed)
			}
			if err != nil {
				ErrLogger.Printf("failed to set speed %q: %v", value, err)
			}
		default:
			InfoLogger.Printf("selected %s: %s", group, value)
		}
	}

	c.Progress.OnSeek = c.Player.SeekProgress

	c.RewindButton = NewTextButton("-10s")
	c.RewindButton.RepeateOnHold = true
	c.RewindButton.FirstRate = time.Millisecond * 400
	c.RewindButton.RepeatRate = time.Millisecond * 150
	c.RewindButton.OnPress = func(bool) { c.Player.Skip(-skipAmount) }

	c.PlayButton = NewTextButton("Play")
	c.PlayButton.OnPress = func(bool) { c.Player.Toggle() }

	c.ForwardButton = NewTextButton("+10s")
	c.ForwardButton.RepeateOnHold = true
	c.ForwardButton.FirstRate = time.Millisecond * 400
	c.ForwardButton.RepeatRate = time.Millisecond * 150
	c.ForwardButton.OnPress = func(bool) { c.Player.Skip(skipAmount) }

	c.VolumeButton = NewTextButton("Vol")
	c.VolumeButton.OnPress = func(bool) { c.Player.ToggleMute() }

	c.SettingsButton = NewTextButton("Settings")
	c.SettingsButton.TextScale = 0.38
	c.SettingsButton.OnPress = func(bool) { c.Menu.Toggle() }

	c.FullscreenButton = NewTextButton("Full")
	c.FullscreenButton.OnPress = func(bool) { c.ToggleFullscreen() }

	c.Layout(ScreenWidth, ScreenHeight, 1)

	return c
}

func (c *Controls) buttons() []*TextButton {
	return []*TextButton{
		c.RewindButton,
		c.PlayButton,
		c.ForwardButton,
		c.VolumeButton,
		c.SettingsButton,
		c.FullscreenButton,
	}
}

// Layout places the chrome in a width x height screen.
// scale is the number of screen pixels per device independent pixel.
func (c *Controls) Layout(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.Scale = scale

	margin := controlsMargin * scale
	pad := controlsPad * scale
	btnW, btnH := buttonWidth*scale, buttonHeight*scale
	gap := buttonGap * scale

	c.Wrapper = FRectXYWH(
		margin,
		height-margin-controlsHeight*scale,
		max(width-margin*2, 0),
		controlsHeight*scale,
	)

	c.Progress.Rect = FRectXYWH(
		c.Wrapper.Min.X+pad,
		c.Wrapper.Min.Y+8*scale,
		max(c.Wrapper.Dx()-pad*2, 0),
		progressHitHeight*scale,
	)
	c.Progress.TrackHeight = progressTrackHeight * scale

	rowY := c.Wrapper.Max.Y - pad*0.5 - btnH

	// left group
	x := c.Wrapper.Min.X + pad
	for _, b := range []*TextButton{c.RewindButton, c.PlayButton, c.ForwardButton, c.VolumeButton} {
		b.Rect = FRectXYWH(x, rowY, btnW, btnH)
		x += btnW + gap
	}
	c.TimeRect = FRectXYWH(x, rowY, timeLabelWidth*scale, btnH)

	// right group
	x = c.Wrapper.Max.X - pad - btnW
	c.FullscreenButton.Rect = FRectXYWH(x, rowY, btnW, btnH)
	x -= btnW + gap
	c.SettingsButton.Rect = FRectXYWH(x, rowY, btnW, btnH)

	c.layoutMenu()

	w, h := int(width), int(height)
	if w > 0 && h > 0 {
		if c.renderTarget == nil ||
			c.renderTarget.Bounds().Dx() != w || c.renderTarget.Bounds().Dy() != h {
			if c.renderTarget != nil {
				c.renderTarget.Deallocate()
			}
			c.renderTarget = eb.NewImage(w, h)
		}
	}
}

func (c *Controls) layoutMenu() {
	c.menuRows = c.menuRows[:0]
	c.menuCells = c.menuCells[:0]

	maxOptions := 0
	for _, g := range c.Menu.Groups {
		maxOptions = max(maxOptions, len(g.Options))
	}

	scale := c.Scale
	rowH := menuRowHeight * scale
	labelW := menuLabelWidth * scale
	cellW := menuCellWidth * scale
	inset := 4 * scale

	menuW := labelW + f64(maxOptions)*cellW + inset*2
	menuH := f64(len(c.Menu.Groups))*rowH + inset*2

	settings := c.SettingsButton.Rect
	c.MenuRect = FRectXYWH(
		max(settings.Max.X-menuW, 0),
		settings.Min.Y-controlsPad*scale*2-menuH,
		menuW, menuH,
	)

	y := c.MenuRect.Min.Y + inset
	for _, g := range c.Menu.Groups {
		c.menuRows = append(c.menuRows, menuRow{
			LabelRect: FRectXYWH(c.MenuRect.Min.X+inset, y, labelW, rowH),
			Group:     g.Name,
		})

		x := c.MenuRect.Min.X + inset + labelW
		for _, opt := range g.Options {
			c.menuCells = append(c.menuCells, menuCell{
				Rect:  FRectXYWH(x, y, cellW, rowH),
				Group: g.Name,
				Value: opt,
			})
			x += cellW
		}

		y += rowH
	}
}

func (c *Controls) ToggleFullscreen() {
	c.wantFullscreen = !eb.IsFullscreen()
	c.checkFullscreen = true
	eb.SetFullscreen(c.wantFullscreen)
}

func (c *Controls) Update() {
	// ==========================
	// auto hide
	// ==========================
	wasHidden := c.AutoHide.Hidden()

	if HadPointerActivity() {
		c.AutoHide.Poke()
	}
	c.AutoHide.Tick(UpdateDelta())

	hidden := c.AutoHide.Hidden()

	if hidden != c.cursorHidden {
		if hidden {
			eb.SetCursorMode(eb.CursorModeHidden)
		} else {
			eb.SetCursorMode(eb.CursorModeVisible)
		}
		c.cursorHidden = hidden
	}

	if hidden {
		c.fade.TickDown()
	} else {
		c.fade.TickUp()
	}
	c.fade.ClampCurrent()

	// ==========================
	// fullscreen
	// ==========================
	if c.checkFullscreen {
		c.checkFullscreen = false
		if eb.IsFullscreen() != c.wantFullscreen {
			WarnLogger.Printf("fullscreen request (%v) was not honored", c.wantFullscreen)
		}
	}

	// ==========================
	// keyboard
	// ==========================
	if IsKeyJustPressed(PlayPauseKey) {
		c.Player.Toggle()
		c.AutoHide.Poke()
	}
	if HandleKeyRepeat(time.Millisecond*400, time.Millisecond*150, RewindKey) {
		c.Player.Skip(-skipAmount)
		c.AutoHide.Poke()
	}
	if HandleKeyRepeat(time.Millisecond*400, time.Millisecond*150, ForwardKey) {
		c.Player.Skip(skipAmount)
		c.AutoHide.Poke()
	}
	if IsKeyJustPressed(MuteKey) {
		c.Player.ToggleMute()
	}
	if IsKeyJustPressed(FullscreenKey) {
		c.ToggleFullscreen()
	}

	// the click that wakes the controls up doesn't press anything
	if !c.Mounted || wasHidden {
		c.Progress.Dragging = false
		return
	}

	// ==========================
	// widgets
	// ==========================
	menuClick := false

	if c.Menu.Open && IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		cursor := CursorFPt()

		if cursor.In(c.MenuRect) {
			menuClick = true
			for _, cell := range c.menuCells {
				if cursor.In(cell.Rect) {
					if err := c.Menu.Select(cell.Group, cell.Value); err != nil {
						ErrLogger.Printf("settings: %v", err)
					}
					break
				}
			}
		} else if !cursor.In(c.SettingsButton.Rect) {
			c.Menu.Close()
		}
	}

	c.Progress.Update()

	if !menuClick {
		for _, b := range c.buttons() {
			b.Update()
		}
	}

	if c.Player.Playing {
		c.PlayButton.Text = "Pause"
	} else {
		c.PlayButton.Text = "Play"
	}
	if c.Player.Muted {
		c.VolumeButton.Text = "Muted"
	} else {
		c.VolumeButton.Text = "Vol"
	}
	if eb.IsFullscreen() {
		c.FullscreenButton.Text = "Exit"
	} else {
		c.FullscreenButton.Text = "Full"
	}

	// clicking the video itself toggles playback
	if !menuClick && IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		cursor := CursorFPt()
		if !cursor.In(c.Wrapper) && !(c.Menu.Open && cursor.In(c.MenuRect)) {
			c.Player.Toggle()
		}
	}
}

func (c *Controls) Draw(dst *eb.Image) {
	if !c.Mounted || c.renderTarget == nil {
		return
	}

	alpha := c.fade.Normalize()
	if alpha <= 0 {
		return
	}

	target := c.renderTarget
	target.Clear()

	FillRect(target, c.Wrapper, ColorTable[ColorControlsBg])
	StrokeRect(target, c.Wrapper, c.Scale, ColorTable[ColorControlsStroke])

	c.Progress.Draw(target, c.Player.Progress())

	for _, b := range c.buttons() {
		b.Draw(target)
	}

	timeText := player.FormatDuration(c.Player.Position) + " / " + player.FormatDuration(c.Player.Duration)
	DrawTextCentered(
		target, timeText, FRectangleCenter(c.TimeRect),
		c.TimeRect.Dy()*0.4, ColorTable[ColorTimeText],
	)

	if c.Menu.Open {
		c.drawMenu(target)
	}

	op := &DrawImageOptions{}
	op.ColorScale.ScaleAlpha(f32(alpha))
	DrawImage(dst, target, op)
}

func (c *Controls) drawMenu(dst *eb.Image) {
	FillRect(dst, c.MenuRect, ColorTable[ColorMenuBg])
	StrokeRect(dst, c.MenuRect, c.Scale, ColorTable[ColorControlsStroke])

	for _, row := range c.menuRows {
		DrawTextCentered(
			dst, row.Group, FRectangleCenter(row.LabelRect),
			row.LabelRect.Dy()*0.4, ColorTable[ColorMenuText],
		)
	}

	cursor := CursorFPt()

	for _, cell := range c.menuCells {
		active, _ := c.Menu.Active(cell.Group)

		clr := ColorTable[ColorMenuText]
		if cell.Value == active {
			clr = ColorTable[ColorMenuActive]
		} else if cursor.In(cell.Rect) {
			clr = LerpColorRGBA(ColorTable[ColorMenuText], ColorTable[ColorMenuActive], 0.5)
		}

		DrawTextCentered(
			dst, cell.Value, FRectangleCenter(cell.Rect),
			cell.Rect.Dy()*0.4, clr,
		)
	}
}

// =================================
// glass.SignalSource
// =================================

func (c *Controls) Hovering() bool {
	return c.Mounted && CursorFPt().In(c.Wrapper)
}

func (c *Controls) Dragging() bool {
	return c.Progress.Dragging
}

func (c *Controls) ControlsHidden() bool {
	return c.AutoHide.Hidden()
}

func (c *Controls) Pointer() (glass.Vec2, bool) {
	im := &TheInputManager
	if len(im.TouchingBuf) > 0 {
		return TouchFPt(im.TouchingBuf[0]).Vec2(), true
	}
	return CursorFPt().Vec2(), true
}

// =================================
// glass.ElementLocator
// =================================

func (c *Controls) Bounds() (glass.Box, bool) {
	if !c.Mounted {
		return glass.Box{}, false
	}
	return c.Wrapper.Box(), true
}
