package arplace

import "go.uber.org/zap"

// handleDeletion destroys the placed node under an accepted double-tap.
// Any placed node is eligible, not only the tracked one. Only the node that
// owns the hit collider is destroyed, together with its own subtree.
func (s *Session) handleDeletion(t TouchSample) {
	if t.Phase != PhaseBegan {
		return
	}
	if !s.deleteGate.Accept(s.now) {
		return
	}

	hit, ok := s.scene.Raycast(s.camera.ScreenPointToRay(t.Position))
	if !ok || hit.Node.Tag != TagPlaceable {
		return
	}

	target := hit.Node
	ev := nodeEvent(EventDeleted, target)
	ev.Screen = t.Position
	s.logger.Info("object deleted", append(nodeFields(target),
		zap.Float64("screenX", t.Position.X), zap.Float64("screenY", t.Position.Y))...)
	s.scene.Destroy(target)
	s.emit(ev)
}
