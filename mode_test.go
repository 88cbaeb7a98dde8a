package arplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeControllerSetMode(t *testing.T) {
	var c ModeController
	assert.Equal(t, ModeInactive, c.Mode())
	assert.False(t, c.SetMode(ModeInactive))
	assert.True(t, c.SetMode(ModeRotation))
	assert.Equal(t, ModeRotation, c.Mode())
}

func TestModeControllerTwoFinger(t *testing.T) {
	var c ModeController
	c.SetMode(ModeTranslation)

	_, ok := c.beginTwoFinger(Vec2{10, 10})
	assert.False(t, ok, "first frame records the baseline")
	assert.True(t, c.tracking())

	d, ok := c.beginTwoFinger(Vec2{15, 8})
	assert.True(t, ok)
	assert.Equal(t, Vec2{5, -2}, d)

	d, _ = c.beginTwoFinger(Vec2{15, 9})
	assert.Equal(t, Vec2{0, 1}, d, "delta is measured from the previous frame")

	c.endTwoFinger()
	assert.False(t, c.tracking())
}

func TestModeControllerChangeDropsBaseline(t *testing.T) {
	var c ModeController
	c.SetMode(ModeTranslation)
	c.beginTwoFinger(Vec2{})

	c.SetMode(ModeTranslation)
	assert.True(t, c.tracking(), "same mode keeps the baseline")

	c.SetMode(ModeRotation)
	assert.False(t, c.tracking())
}

func TestTrackedHandle(t *testing.T) {
	var h TrackedHandle
	_, ok := h.Get()
	assert.False(t, ok)

	n := NewContainer("n")
	h.Set(n)
	got, ok := h.Get()
	assert.True(t, ok)
	assert.Same(t, n, got)

	h.Clear()
	_, ok = h.Get()
	assert.False(t, ok)

	h.Set(n)
	n.Dispose()
	_, ok = h.Get()
	assert.False(t, ok)
	assert.Nil(t, h.node, "Get drops a disposed node")
}

func TestTrackedHandleClearIfWithin(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewContainer("leaf")
	other := NewContainer("other")
	root.AddChild(mid)
	mid.AddChild(leaf)

	var h TrackedHandle
	h.Set(leaf)
	h.clearIfWithin(other)
	assert.Same(t, leaf, h.node)
	h.clearIfWithin(mid)
	assert.Nil(t, h.node)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "placed", EventPlaced.String())
	assert.Equal(t, "surface-miss", EventSurfaceMiss.String())
	assert.Equal(t, "unknown", EventType(200).String())
}
