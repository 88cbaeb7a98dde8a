package arplace

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// RaycastHit is the nearest collider a scene ray intersected.
type RaycastHit struct {
	// Node owns the collider that was hit.
	Node     *Node
	Point    mgl64.Vec3
	Distance float64
}

// Scene is the top-level object that owns the node tree.
type Scene struct {
	root  *Node
	debug bool

	handlers handlerRegistry
	stack    []*Node
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tree depth and child count warnings go to logger.
// A nil logger keeps the current one.
func (s *Scene) SetDebugMode(enabled bool, logger *zap.Logger) {
	s.debug = enabled
	globalDebug = enabled
	if logger != nil {
		debugLogger = logger
	}
}

// OnDestroy registers a callback fired by Destroy just before a node is
// disposed.
func (s *Scene) OnDestroy(fn func(*Node)) CallbackHandle {
	return s.handlers.addDestroy(fn)
}

// Destroy fires destroy callbacks and disposes n with its subtree.
// No-op for nil or already disposed nodes.
func (s *Scene) Destroy(n *Node) {
	if n == nil || n.IsDisposed() {
		return
	}
	for _, h := range s.handlers.destroy {
		h.fn(n)
	}
	n.Dispose()
}

// Raycast returns the nearest collider hit along ray among visible nodes.
// Hidden subtrees are skipped.
func (s *Scene) Raycast(ray Ray) (RaycastHit, bool) {
	best := RaycastHit{Distance: math.Inf(1)}
	found := false

	s.stack = append(s.stack[:0], s.root)
	for len(s.stack) > 0 {
		n := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if !n.Visible || n.disposed {
			continue
		}
		if n.Collider != nil {
			inv := n.WorldMatrix().Inv()
			origin := mgl64.TransformCoordinate(ray.Origin, inv)
			dir := mgl64.TransformNormal(ray.Dir, inv)
			if t, ok := n.Collider.IntersectRay(origin, dir); ok && t < best.Distance {
				best = RaycastHit{Node: n, Point: ray.At(t), Distance: t}
				found = true
			}
		}
		s.stack = append(s.stack, n.children...)
	}
	return best, found
}

// FindTagged returns every node in the scene whose tag equals tag and whose
// parent does not carry the same tag (the roots of tagged subtrees).
func (s *Scene) FindTagged(tag string) []*Node {
	var out []*Node
	for _, e := range flattenHierarchy(s.root, nil) {
		n := e.node
		if n.Tag == tag && (n.Parent == nil || n.Parent.Tag != tag) {
			out = append(out, n)
		}
	}
	return out
}
