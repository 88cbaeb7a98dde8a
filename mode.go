package arplace

// twoFingerState is the baseline of an in-progress two-finger translation.
type twoFingerState struct {
	previousMidpoint Vec2
	tracking         bool
}

// interactionState couples the mode with the gesture baseline that belongs
// to it, so a baseline recorded in one mode never survives into another.
type interactionState struct {
	mode      InteractionMode
	twoFinger twoFingerState
}

// ModeController holds the current interaction mode. The mode changes only
// through SetMode; the dispatcher never infers it.
type ModeController struct {
	state interactionState
}

// SetMode switches modes. Changing to a different mode discards any
// two-finger baseline atomically with the switch. Returns true if the mode
// changed.
func (c *ModeController) SetMode(m InteractionMode) bool {
	if c.state.mode == m {
		return false
	}
	c.state = interactionState{mode: m}
	return true
}

// Mode returns the current interaction mode.
func (c *ModeController) Mode() InteractionMode {
	return c.state.mode
}

// beginTwoFinger starts or continues two-finger tracking at mid. It returns
// the midpoint delta since the previous frame and whether a baseline
// existed; the first frame of a contact only records the baseline.
func (c *ModeController) beginTwoFinger(mid Vec2) (Vec2, bool) {
	tf := &c.state.twoFinger
	if !tf.tracking {
		tf.previousMidpoint = mid
		tf.tracking = true
		return Vec2{}, false
	}
	delta := mid.Sub(tf.previousMidpoint)
	tf.previousMidpoint = mid
	return delta, true
}

// endTwoFinger drops the two-finger baseline.
func (c *ModeController) endTwoFinger() {
	c.state.twoFinger = twoFingerState{}
}

// tracking reports whether a two-finger baseline is recorded.
func (c *ModeController) tracking() bool {
	return c.state.twoFinger.tracking
}
