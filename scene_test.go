package arplace

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true, nil)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false, nil)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

// box places a 1m cube collider at pos under the scene root.
func box(s *Scene, name string, pos mgl64.Vec3) *Node {
	n := NewMeshNode(name, Bounds{Min: mgl64.Vec3{-0.5, -0.5, -0.5}, Max: mgl64.Vec3{0.5, 0.5, 0.5}})
	n.Collider = BoxColliderFromBounds(*n.Bounds)
	n.Position = pos
	s.Root().AddChild(n)
	return n
}

func TestRaycastNearest(t *testing.T) {
	s := NewScene()
	far := box(s, "far", mgl64.Vec3{0, 0, -10})
	near := box(s, "near", mgl64.Vec3{0, 0, -5})

	hit, ok := s.Raycast(Ray{Dir: mgl64.Vec3{0, 0, -1}})
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Node != near {
		t.Errorf("hit %q, want near", hit.Node.Name)
	}
	assertNear(t, "Distance", hit.Distance, 4.5)
	assertVec3(t, "Point", hit.Point, mgl64.Vec3{0, 0, -4.5})
	_ = far
}

func TestRaycastSkipsHidden(t *testing.T) {
	s := NewScene()
	near := box(s, "near", mgl64.Vec3{0, 0, -5})
	far := box(s, "far", mgl64.Vec3{0, 0, -10})
	near.Visible = false

	hit, ok := s.Raycast(Ray{Dir: mgl64.Vec3{0, 0, -1}})
	if !ok || hit.Node != far {
		t.Errorf("hidden node should be skipped, got %+v", hit)
	}
}

func TestRaycastSkipsHiddenSubtree(t *testing.T) {
	s := NewScene()
	group := NewContainer("group")
	group.Visible = false
	s.Root().AddChild(group)
	n := NewMeshNode("inner", Bounds{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}})
	n.Collider = BoxColliderFromBounds(*n.Bounds)
	n.Position = mgl64.Vec3{0, 0, -5}
	group.AddChild(n)

	if _, ok := s.Raycast(Ray{Dir: mgl64.Vec3{0, 0, -1}}); ok {
		t.Error("node under hidden parent should not be hit")
	}
}

func TestRaycastScaledNode(t *testing.T) {
	s := NewScene()
	n := box(s, "scaled", mgl64.Vec3{0, 0, -5})
	n.SetUniformScale(0.25)

	if _, ok := s.Raycast(Ray{Origin: mgl64.Vec3{0.2, 0, 0}, Dir: mgl64.Vec3{0, 0, -1}}); ok {
		t.Error("ray outside the scaled box should miss")
	}
	hit, ok := s.Raycast(Ray{Origin: mgl64.Vec3{0.1, 0, 0}, Dir: mgl64.Vec3{0, 0, -1}})
	if !ok {
		t.Fatal("ray inside the scaled box should hit")
	}
	assertNearTol(t, "Distance", hit.Distance, 4.875, 1e-9)
}

func TestRaycastMiss(t *testing.T) {
	s := NewScene()
	box(s, "b", mgl64.Vec3{5, 0, -5})
	if _, ok := s.Raycast(Ray{Dir: mgl64.Vec3{0, 0, -1}}); ok {
		t.Error("expected miss")
	}
}

func TestSceneDestroyFiresHooks(t *testing.T) {
	s := NewScene()
	n := box(s, "b", mgl64.Vec3{})

	var got []*Node
	h := s.OnDestroy(func(d *Node) { got = append(got, d) })
	s.Destroy(n)
	s.Destroy(n) // already disposed
	s.Destroy(nil)

	if len(got) != 1 || got[0] != n {
		t.Errorf("hook calls = %v", got)
	}
	if !n.IsDisposed() {
		t.Error("node should be disposed")
	}

	h.Remove()
	s.Destroy(box(s, "c", mgl64.Vec3{}))
	if len(got) != 1 {
		t.Error("removed hook should not fire")
	}
}

func TestFindTagged(t *testing.T) {
	s := NewScene()
	a := NewContainer("a")
	a.AddChild(NewContainer("a.child"))
	tagHierarchy(a, TagPlaceable)
	b := NewContainer("b")
	b.Tag = TagPlaceable
	other := NewContainer("other")
	s.Root().AddChild(a)
	s.Root().AddChild(other)
	other.AddChild(b)

	got := s.FindTagged(TagPlaceable)
	if len(got) != 2 || got[0] != a || got[1] != b {
		names := make([]string, len(got))
		for i, n := range got {
			names[i] = n.Name
		}
		t.Errorf("FindTagged = %v, want [a b]", names)
	}
}
