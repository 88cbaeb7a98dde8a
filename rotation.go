package arplace

// handleRotation yaws n about the world up axis by the negated signed angle
// the finger-to-finger vector turned since the previous frame.
func (s *Session) handleRotation(n *Node, t0, t1 TouchSample) {
	currentVector := t1.Position.Sub(t0.Position)
	previousVector := t1.PreviousPosition().Sub(t0.PreviousPosition())

	angle := SignedAngle(previousVector, currentVector)
	if angle == 0 {
		return
	}
	n.RotateWorldYaw(-angle)

	ev := nodeEvent(EventRotated, n)
	ev.YawDelta = -angle
	s.emit(ev)
}
