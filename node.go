package arplace

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is a local-space axis-aligned box describing a node's render
// geometry. A node without Bounds has nothing to draw.
type Bounds struct {
	Min, Max mgl64.Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl64.Vec3 { return b.Max.Sub(b.Min) }

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl64.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

// --- ID counter ---

// nodeIDCounter is not atomic; arplace is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element for placed content, asset templates, and
// containers. A single flat struct is used for every kind of node.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Tag  string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3

	// Visible hides the node and its subtree from raycasts when false.
	Visible bool

	// Bounds is the render geometry in local space, nil for containers.
	Bounds *Bounds
	// Collider is the collision volume used by Scene.Raycast.
	Collider Collider

	// Metadata
	UserData any

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Rotation = mgl64.QuatIdent()
	n.Scale = mgl64.Vec3{1, 1, 1}
	n.Visible = true
}

// NewContainer creates a node with no render geometry.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewMeshNode creates a node whose render geometry occupies bounds.
func NewMeshNode(name string, bounds Bounds) *Node {
	n := &Node{Name: name, Bounds: &bounds}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("arplace: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("arplace: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("arplace: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetActive sets Visible. Mirrors the host-facing name used for containers.
func (n *Node) SetActive(active bool) {
	n.Visible = active
}

// ActiveInHierarchy reports whether this node and all its ancestors are visible.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, and
// disposes all descendants. Deep hierarchies are walked without recursion.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	arena := flattenHierarchy(n, nil)
	for i := range arena {
		arena[i].node.dispose()
	}
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	n.children = nil
	n.Parent = nil
	n.Collider = nil
	n.Bounds = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
