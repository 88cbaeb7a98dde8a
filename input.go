package arplace

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// MouseTouchID is the touch ID reported for the left mouse button when an
// EbitenTouchSource emulates touch with the mouse.
const MouseTouchID = -1

// RawTouchSource reports the fingers that are down this frame.
type RawTouchSource interface {
	AppendTouches(buf []RawTouch) []RawTouch
}

// EbitenTouchSource reads touches from ebiten and flips them into the
// bottom-left screen origin. Call it only from within ebiten's Update.
type EbitenTouchSource struct {
	// ScreenHeight is the logical screen height used to flip Y.
	ScreenHeight float64
	// MouseAsTouch reports the left mouse button as a touch so gestures
	// can be tried on desktop.
	MouseAsTouch bool

	ids []ebiten.TouchID
}

// AppendTouches appends every active ebiten touch to buf.
func (e *EbitenTouchSource) AppendTouches(buf []RawTouch) []RawTouch {
	e.ids = ebiten.AppendTouchIDs(e.ids[:0])
	for _, id := range e.ids {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, RawTouch{ID: int(id), Position: e.flip(x, y)})
	}
	if e.MouseAsTouch && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		buf = append(buf, RawTouch{ID: MouseTouchID, Position: e.flip(x, y)})
	}
	return buf
}

func (e *EbitenTouchSource) flip(x, y int) Vec2 {
	return Vec2{X: float64(x), Y: e.ScreenHeight - float64(y)}
}

// TouchInput is the gesture sample adapter: it collects raw touches for the
// current frame, from the injection queue when events are pending or from
// Source otherwise, and normalizes them through a TouchTracker.
type TouchInput struct {
	Source RawTouchSource

	tracker     TouchTracker
	injectQueue [][]RawTouch
	rawBuf      []RawTouch
}

// NewTouchInput creates an adapter over src. src may be nil, in which case
// only injected frames produce touches.
func NewTouchInput(src RawTouchSource) *TouchInput {
	return &TouchInput{Source: src}
}

// Next samples the touches for the frame at now. Injected frames take
// priority over the live source, one per call.
func (in *TouchInput) Next(now time.Duration) Frame {
	in.rawBuf = in.rawBuf[:0]
	if len(in.injectQueue) > 0 {
		in.rawBuf = append(in.rawBuf, in.injectQueue[0]...)
		copy(in.injectQueue, in.injectQueue[1:])
		in.injectQueue[len(in.injectQueue)-1] = nil
		in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
	} else if in.Source != nil {
		in.rawBuf = in.Source.AppendTouches(in.rawBuf)
	}
	return in.tracker.Sample(now, in.rawBuf)
}

// Cancel reports all active touches as cancelled on the next frame.
func (in *TouchInput) Cancel() {
	in.tracker.Cancel()
}

// Pending returns the number of injected frames not yet consumed.
func (in *TouchInput) Pending() int {
	return len(in.injectQueue)
}
