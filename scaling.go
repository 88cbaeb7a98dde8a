package arplace

import "github.com/go-gl/mathgl/mgl64"

// handleScaling converts the change in pinch distance since the previous
// frame into a uniform scale, clamped to [MinScale, MaxScale].
func (s *Session) handleScaling(n *Node, t0, t1 TouchSample) {
	prevDistance := Distance(t0.PreviousPosition(), t1.PreviousPosition())
	currentDistance := Distance(t0.Position, t1.Position)
	scaleChange := (currentDistance - prevDistance) * s.cfg.ScaleSpeed

	old := n.Scale.X()
	scale := mgl64.Clamp(old+scaleChange, s.cfg.MinScale, s.cfg.MaxScale)
	n.SetUniformScale(scale)
	if scale != old {
		s.emit(nodeEvent(EventScaled, n))
	}
}
