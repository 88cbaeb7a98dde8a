package arplace

// handleTranslation moves n by the two-finger midpoint delta. The new screen
// position is re-projected onto a surface, so n only ever lands on a surface
// hit. The first frame of a contact only records the baseline.
func (s *Session) handleTranslation(n *Node, t0, t1 TouchSample) {
	delta, ok := s.modes.beginTwoFinger(Midpoint(t0.Position, t1.Position))
	if !ok {
		return
	}

	screen, visible := s.camera.WorldToScreen(n.WorldPosition())
	if !visible {
		return
	}
	target := screen.Add(delta.Mul(s.cfg.MoveSpeed))

	// A miss leaves n where it is; the baseline has already advanced.
	s.hits = s.surfaces.HitTestSurfaces(target, s.hits[:0])
	if len(s.hits) == 0 {
		return
	}
	before := n.WorldPosition()
	n.SetWorldPosition(s.hits[0].Pose.Position)
	if n.WorldPosition().ApproxEqual(before) {
		return
	}
	ev := nodeEvent(EventMoved, n)
	ev.Screen = target
	s.emit(ev)
}
