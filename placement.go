package arplace

import "go.uber.org/zap"

// handlePlacement spawns a copy of the loaded asset where an accepted
// double-tap meets a detected surface, and tracks it.
func (s *Session) handlePlacement(t TouchSample) {
	if t.Phase != PhaseBegan {
		return
	}
	if !s.placeGate.Accept(s.now) {
		return
	}

	s.hits = s.surfaces.HitTestSurfaces(t.Position, s.hits[:0])
	if len(s.hits) == 0 {
		s.logger.Warn("surface hit-test failed; no surface found",
			zap.Float64("x", t.Position.X), zap.Float64("y", t.Position.Y))
		s.emit(SessionEvent{Type: EventSurfaceMiss, Screen: t.Position})
		return
	}

	n := s.place(s.assets.LoadedAsset(), s.hits[0].Pose)
	s.logger.Info("object placed", nodeFields(n)...)
	ev := nodeEvent(EventPlaced, n)
	ev.Screen = t.Position
	s.emit(ev)
}

// place instantiates template at pose. The new node is tagged and has a
// collider before it becomes visible, and replaces the tracked node. The
// previously tracked node stays in the scene.
func (s *Session) place(template *Node, pose Pose) *Node {
	n := template.Clone()
	n.Visible = false

	parent := s.scene.Root()
	if s.placed != nil {
		parent = s.placed.Root()
	}
	parent.AddChild(n)
	n.SetWorldPose(pose)
	n.SetUniformScale(s.cfg.InitialScaleFactor)

	tagHierarchy(n, TagPlaceable)
	ensureCollider(n)

	n.Visible = true
	s.tracked.Set(n)
	return n
}

// ensureCollider keeps an existing collider anywhere in the subtree;
// otherwise it fits a box to the first part with render geometry, or puts a
// unit box on the root when there is none.
func ensureCollider(n *Node) {
	if findCollider(n) != nil {
		return
	}
	if r := findRenderable(n); r != nil {
		r.Collider = BoxColliderFromBounds(*r.Bounds)
		return
	}
	n.Collider = defaultBoxCollider
}
