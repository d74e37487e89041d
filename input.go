package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

var TheInputManager struct {
	// below fields are updated by TheInputManager
	// only public for convinience
	// don't write in to it

	TouchingMap     map[eb.TouchID]bool
	JustTouchedMap  map[eb.TouchID]bool
	JustReleasedMap map[eb.TouchID]bool

	TouchingBuf     []eb.TouchID
	JustTouchedBuf  []eb.TouchID
	JustReleasedBuf []eb.TouchID

	PrevCursor  FPoint
	CursorMoved bool
}

func UpdateInput() {
	im := &TheInputManager

	// =============================
	// update touch buffers
	// =============================
	im.TouchingBuf = eb.AppendTouchIDs(im.TouchingBuf[:0])
	im.JustTouchedBuf = ebi.AppendJustPressedTouchIDs(im.JustTouchedBuf[:0])
	im.JustReleasedBuf = ebi.AppendJustReleasedTouchIDs(im.JustReleasedBuf[:0])

	// =============================
	// update touch maps
	// =============================
	im.TouchingMap = nil
	im.JustTouchedMap = nil
	im.JustReleasedMap = nil

	if len(im.TouchingBuf) > 0 {
		im.TouchingMap = make(map[eb.TouchID]bool)
		for _, id := range im.TouchingBuf {
			im.TouchingMap[id] = true
		}
	}
	if len(im.JustTouchedBuf) > 0 {
		im.JustTouchedMap = make(map[eb.TouchID]bool)
		for _, id := range im.JustTouchedBuf {
			im.JustTouchedMap[id] = true
		}
	}
	if len(im.JustReleasedBuf) > 0 {
		im.JustReleasedMap = make(map[eb.TouchID]bool)
		for _, id := range im.JustReleasedBuf {
			im.JustReleasedMap[id] = true
		}
	}

	// =============================
	// cursor movement
	// =============================
	cursor := CursorFPt()
	im.CursorMoved = !cursor.Eq(im.PrevCursor)
	im.PrevCursor = cursor
}

// HadPointerActivity reports mouse movement, clicks or new touches this tick.
func HadPointerActivity() bool {
	im := &TheInputManager

	return im.CursorMoved ||
		len(im.JustTouchedBuf) > 0 ||
		IsMouseButtonJustPressed(eb.MouseButtonLeft) ||
		IsMouseButtonJustPressed(eb.MouseButtonRight)
}

type InputGroupId int64

var inputGroupIdMax InputGroupId

func NewInputGroupId() InputGroupId {
	inputGroupIdMax++
	return inputGroupIdMax
}

func IsMouseButtonPressed(button eb.MouseButton) bool {
	return eb.IsMouseButtonPressed(button)
}

func IsMouseButtonJustPressed(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustPressed(button)
}

func IsMouseButtonJustReleased(button eb.MouseButton) bool {
	return ebi.IsMouseButtonJustReleased(button)
}

type inputGroupButton struct {
	Id     InputGroupId
	Button eb.MouseButton
}

var mouseButtonRepeatMap = make(map[inputGroupButton]time.Duration)

func HandleMouseButtonRepeat(
	inputId InputGroupId,
	rect FRectangle,
	firstRate, repeatRate time.Duration,
	button eb.MouseButton,
) bool {
	idAndButton := inputGroupButton{
		Id:     inputId,
		Button: button,
	}

	cursor := CursorFPt()

	if !IsMouseButtonPressed(button) || !cursor.In(rect) {
		delete(mouseButtonRepeatMap, idAndButton)
		return false
	}

	if IsMouseButtonJustPressed(button) {
		mouseButtonRepeatMap[idAndButton] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := mouseButtonRepeatMap[idAndButton]

	if !ok {
		mouseButtonRepeatMap[idAndButton] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			mouseButtonRepeatMap[idAndButton] = now
			return true
		}
	}

	return false
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		delete(keyRepeatMap, key)
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			keyRepeatMap[key] = now
			return true
		}
	}

	return false
}

func IsTouchJustPressed(rect FRectangle, touchIdIn *eb.TouchID) bool {
	im := &TheInputManager

	for _, touchId := range im.JustTouchedBuf {
		pos := TouchFPt(touchId)

		if pos.In(rect) {
			if touchIdIn != nil {
				*touchIdIn = touchId
			}
			return true
		}
	}

	return false
}

func IsTouchIdTouching(touchId eb.TouchID) bool {
	im := &TheInputManager
	return im.TouchingMap[touchId]
}

func IsTouchIdJustReleased(touchId eb.TouchID) bool {
	im := &TheInputManager
	return im.JustReleasedMap[touchId]
}
