package arplace

import "time"

// --- Constants ---

const maxTouches = 10

// RawTouch is one finger as reported by the platform for the current frame:
// just an identifier and a screen position.
type RawTouch struct {
	ID       int
	Position Vec2
}

// TouchSample is one finger for the current frame after normalization.
type TouchSample struct {
	ID       int
	Position Vec2
	// Delta is the screen movement since the previous frame.
	Delta Vec2
	Phase TouchPhase
}

// PreviousPosition returns where the finger was one frame earlier.
func (t TouchSample) PreviousPosition() Vec2 {
	return t.Position.Sub(t.Delta)
}

// Frame is the input for one session update.
type Frame struct {
	// Time is the monotonic time since session start.
	Time    time.Duration
	Touches []TouchSample
}

// TouchCount returns the number of touches reported this frame, including
// those that ended or were cancelled this frame.
func (f Frame) TouchCount() int {
	return len(f.Touches)
}

// --- Per-touch state ---

type touchSlot struct {
	used  bool
	id    int
	pos   Vec2
	delta Vec2
	phase TouchPhase
	seen  bool
}

// TouchTracker turns per-frame raw touch positions into phased samples with
// frame-to-frame deltas. A touch that disappears is reported once as Ended.
// Samples are ordered by the time each finger went down.
type TouchTracker struct {
	slots   [maxTouches]touchSlot
	order   [maxTouches]int
	nextSeq int
	cancel  bool
	samples []TouchSample
}

// Cancel reports every active touch as Cancelled on the next Sample and
// forgets it. Fingers still down afterwards start over as Began.
func (t *TouchTracker) Cancel() {
	t.cancel = true
}

// Active returns the number of touches currently held down.
func (t *TouchTracker) Active() int {
	count := 0
	for i := range t.slots {
		if t.slots[i].used {
			count++
		}
	}
	return count
}

// Sample builds the frame for now from the raw touches. The returned
// Touches slice is reused by the next call.
func (t *TouchTracker) Sample(now time.Duration, raw []RawTouch) Frame {
	t.samples = t.samples[:0]

	if t.cancel {
		t.cancel = false
		for _, i := range t.sortedSlots() {
			s := &t.slots[i]
			t.samples = append(t.samples, TouchSample{ID: s.id, Position: s.pos, Phase: PhaseCancelled})
			*s = touchSlot{}
		}
		return Frame{Time: now, Touches: t.samples}
	}

	for i := range t.slots {
		t.slots[i].seen = false
	}

	for _, r := range raw {
		i := t.slotFor(r.ID)
		if i < 0 {
			continue
		}
		s := &t.slots[i]
		s.seen = true
		if !s.used {
			s.used = true
			s.id = r.ID
			s.pos = r.Position
			s.delta = Vec2{}
			s.phase = PhaseBegan
			t.order[i] = t.nextSeq
			t.nextSeq++
			continue
		}
		s.delta = r.Position.Sub(s.pos)
		s.pos = r.Position
		if s.delta == (Vec2{}) {
			s.phase = PhaseStationary
		} else {
			s.phase = PhaseMoved
		}
	}

	for _, i := range t.sortedSlots() {
		s := &t.slots[i]
		if !s.seen {
			t.samples = append(t.samples, TouchSample{ID: s.id, Position: s.pos, Phase: PhaseEnded})
			*s = touchSlot{}
			continue
		}
		t.samples = append(t.samples, TouchSample{ID: s.id, Position: s.pos, Delta: s.delta, Phase: s.phase})
	}
	return Frame{Time: now, Touches: t.samples}
}

// slotFor maps a touch ID to a slot, allocating a free one for new IDs.
// Returns -1 if all slots are in use.
func (t *TouchTracker) slotFor(id int) int {
	// Check existing mapping.
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].id == id {
			return i
		}
	}
	// Allocate new slot.
	for i := range t.slots {
		if !t.slots[i].used && !t.slots[i].seen {
			return i
		}
	}
	return -1
}

// sortedSlots returns the indices of used slots ordered by touch-down time.
func (t *TouchTracker) sortedSlots() []int {
	var idx [maxTouches]int
	n := 0
	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}
		// Insertion sort; at most maxTouches entries.
		j := n
		for j > 0 && t.order[idx[j-1]] > t.order[i] {
			idx[j] = idx[j-1]
			j--
		}
		idx[j] = i
		n++
	}
	return idx[:n]
}
