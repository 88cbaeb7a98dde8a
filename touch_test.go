package arplace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phases(f Frame) []TouchPhase {
	out := make([]TouchPhase, len(f.Touches))
	for i, s := range f.Touches {
		out[i] = s.Phase
	}
	return out
}

func TestTouchTrackerLifecycle(t *testing.T) {
	var tr TouchTracker

	f := tr.Sample(0, []RawTouch{{ID: 7, Position: Vec2{10, 10}}})
	require.Equal(t, 1, f.TouchCount())
	assert.Equal(t, PhaseBegan, f.Touches[0].Phase)
	assert.Equal(t, Vec2{}, f.Touches[0].Delta)

	f = tr.Sample(time.Millisecond, []RawTouch{{ID: 7, Position: Vec2{10, 10}}})
	assert.Equal(t, PhaseStationary, f.Touches[0].Phase)

	f = tr.Sample(2*time.Millisecond, []RawTouch{{ID: 7, Position: Vec2{13, 14}}})
	assert.Equal(t, PhaseMoved, f.Touches[0].Phase)
	assert.Equal(t, Vec2{3, 4}, f.Touches[0].Delta)
	assert.Equal(t, Vec2{10, 10}, f.Touches[0].PreviousPosition())

	// Lifting reports Ended once, at the last known position.
	f = tr.Sample(3*time.Millisecond, nil)
	require.Equal(t, 1, f.TouchCount())
	assert.Equal(t, PhaseEnded, f.Touches[0].Phase)
	assert.Equal(t, Vec2{13, 14}, f.Touches[0].Position)
	assert.Equal(t, 3*time.Millisecond, f.Time)

	f = tr.Sample(4*time.Millisecond, nil)
	assert.Equal(t, 0, f.TouchCount())
	assert.Equal(t, 0, tr.Active())
}

func TestTouchTrackerOrdersByTouchDown(t *testing.T) {
	var tr TouchTracker
	tr.Sample(0, []RawTouch{{ID: 5, Position: Vec2{1, 0}}})
	// The platform lists the newer finger first; samples keep touch-down order.
	f := tr.Sample(1, []RawTouch{{ID: 2, Position: Vec2{2, 0}}, {ID: 5, Position: Vec2{1, 0}}})

	require.Equal(t, 2, f.TouchCount())
	assert.Equal(t, 5, f.Touches[0].ID)
	assert.Equal(t, 2, f.Touches[1].ID)
	assert.Equal(t, []TouchPhase{PhaseStationary, PhaseBegan}, phases(f))
}

func TestTouchTrackerSlotReuse(t *testing.T) {
	var tr TouchTracker
	tr.Sample(0, []RawTouch{{ID: 1}, {ID: 2}})
	f := tr.Sample(1, []RawTouch{{ID: 2}, {ID: 3, Position: Vec2{5, 5}}})

	assert.Equal(t, []TouchPhase{PhaseEnded, PhaseStationary, PhaseBegan}, phases(f))
	assert.Equal(t, 2, tr.Active())
}

func TestTouchTrackerCancel(t *testing.T) {
	var tr TouchTracker
	tr.Sample(0, []RawTouch{{ID: 1}, {ID: 2}})
	tr.Cancel()

	f := tr.Sample(1, []RawTouch{{ID: 1}, {ID: 2}})
	assert.Equal(t, []TouchPhase{PhaseCancelled, PhaseCancelled}, phases(f))
	assert.Equal(t, 0, tr.Active())

	// Fingers still down start over.
	f = tr.Sample(2, []RawTouch{{ID: 1}, {ID: 2}})
	assert.Equal(t, []TouchPhase{PhaseBegan, PhaseBegan}, phases(f))
}

func TestTouchTrackerMaxTouches(t *testing.T) {
	var tr TouchTracker
	raw := make([]RawTouch, maxTouches+3)
	for i := range raw {
		raw[i] = RawTouch{ID: i}
	}
	f := tr.Sample(0, raw)
	assert.Equal(t, maxTouches, f.TouchCount())
}

func TestTouchInputInjectedFirst(t *testing.T) {
	src := &fakeSource{touches: []RawTouch{{ID: 9, Position: Vec2{1, 1}}}}
	in := NewTouchInput(src)
	in.InjectFrame(RawTouch{ID: 1, Position: Vec2{5, 5}}, RawTouch{ID: 2})
	assert.Equal(t, 1, in.Pending())

	f := in.Next(0)
	assert.Equal(t, 2, f.TouchCount())
	assert.Equal(t, 0, in.Pending())

	// The queue is drained: the live source takes over, and the injected
	// fingers are reported as lifted.
	f = in.Next(1)
	require.Equal(t, 3, f.TouchCount())
	assert.Equal(t, []TouchPhase{PhaseEnded, PhaseEnded, PhaseBegan}, phases(f))
	assert.Equal(t, 9, f.Touches[2].ID)
}

func TestTouchInputNilSource(t *testing.T) {
	in := NewTouchInput(nil)
	assert.Equal(t, 0, in.Next(0).TouchCount())
}

func TestTouchInputCancel(t *testing.T) {
	src := &fakeSource{touches: []RawTouch{{ID: 1}}}
	in := NewTouchInput(src)
	in.Next(0)
	in.Cancel()
	assert.Equal(t, []TouchPhase{PhaseCancelled}, phases(in.Next(1)))
	assert.Equal(t, []TouchPhase{PhaseBegan}, phases(in.Next(2)))
}

type fakeSource struct {
	touches []RawTouch
}

func (f *fakeSource) AppendTouches(buf []RawTouch) []RawTouch {
	return append(buf, f.touches...)
}
