package arplace

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Touch IDs used by injected gestures. They are far from platform IDs so
// synthetic and live touches never share a slot.
const (
	injectTouchA = 1000
	injectTouchB = 1001
)

// InjectFrame queues one frame in which exactly the given touches are down.
// An empty call queues a frame with no touches, which releases every finger.
func (in *TouchInput) InjectFrame(touches ...RawTouch) {
	frame := make([]RawTouch, len(touches))
	copy(frame, touches)
	in.injectQueue = append(in.injectQueue, frame)
}

// InjectTap queues a press at p followed by a release. Consumes two frames.
func (in *TouchInput) InjectTap(p Vec2) {
	in.InjectFrame(RawTouch{ID: injectTouchA, Position: p})
	in.InjectFrame()
}

// InjectDoubleTap queues two taps at p back to back. Consumes four frames.
func (in *TouchInput) InjectDoubleTap(p Vec2) {
	in.InjectTap(p)
	in.InjectTap(p)
}

// InjectPan queues a two-finger pan whose midpoint travels from one point to
// another. The fingers sit spread pixels apart horizontally. The first frame
// puts both fingers down, the next frames-1 frames move them along fn, and a
// final frame releases them. A nil fn is linear. Minimum frames is 2.
func (in *TouchInput) InjectPan(from, to Vec2, spread float64, frames int, fn ease.TweenFunc) {
	half := Vec2{X: spread / 2}
	in.injectTwoFinger(frames, fn, func(p float64) (Vec2, Vec2) {
		mid := from.Add(to.Sub(from).Mul(p))
		return mid.Sub(half), mid.Add(half)
	})
}

// InjectPinch queues a horizontal two-finger pinch around center whose
// finger distance changes from fromDist to toDist. Frame layout matches
// InjectPan.
func (in *TouchInput) InjectPinch(center Vec2, fromDist, toDist float64, frames int, fn ease.TweenFunc) {
	in.injectTwoFinger(frames, fn, func(p float64) (Vec2, Vec2) {
		half := Vec2{X: (fromDist + (toDist-fromDist)*p) / 2}
		return center.Sub(half), center.Add(half)
	})
}

// InjectTwist queues a two-finger twist around center: the fingers sit
// radius pixels from center on opposite sides and the finger-to-finger
// vector turns by degrees (positive is counter-clockwise). Frame layout
// matches InjectPan.
func (in *TouchInput) InjectTwist(center Vec2, radius, degrees float64, frames int, fn ease.TweenFunc) {
	in.injectTwoFinger(frames, fn, func(p float64) (Vec2, Vec2) {
		sin, cos := math.Sincos(degrees * p * math.Pi / 180)
		arm := Vec2{X: cos * radius, Y: sin * radius}
		return center.Sub(arm), center.Add(arm)
	})
}

// injectTwoFinger queues a press frame, frames-1 eased move frames, and a
// release frame. pos maps eased progress in [0, 1] to the finger positions.
func (in *TouchInput) injectTwoFinger(frames int, fn ease.TweenFunc, pos func(p float64) (Vec2, Vec2)) {
	if frames < 2 {
		frames = 2
	}
	if fn == nil {
		fn = ease.Linear
	}
	steps := frames - 1
	for i := 0; i <= steps; i++ {
		p := float64(fn(float32(i), 0, 1, float32(steps)))
		if i == steps {
			p = 1
		}
		a, b := pos(p)
		in.InjectFrame(RawTouch{ID: injectTouchA, Position: a}, RawTouch{ID: injectTouchB, Position: b})
	}
	in.InjectFrame()
}
