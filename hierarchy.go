package arplace

// hierEntry is one node of a flattened subtree. parent is the index of the
// parent entry in the same arena, or -1 for the subtree root.
type hierEntry struct {
	node   *Node
	parent int
}

// flattenHierarchy appends root and all its descendants to buf in
// depth-first pre-order and returns the arena. Imported models can nest
// arbitrarily deep, so the walk uses an explicit stack.
func flattenHierarchy(root *Node, buf []hierEntry) []hierEntry {
	if root == nil {
		return buf
	}
	stack := []hierEntry{{node: root, parent: -1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		idx := len(buf)
		buf = append(buf, e)
		children := e.node.children
		// Push in reverse so the first child is popped first.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, hierEntry{node: children[i], parent: idx})
		}
	}
	return buf
}

// tagHierarchy sets tag on root and every descendant.
func tagHierarchy(root *Node, tag string) {
	for _, e := range flattenHierarchy(root, nil) {
		e.node.Tag = tag
	}
}

// findCollider returns the first node in the subtree that carries a collider.
func findCollider(root *Node) *Node {
	for _, e := range flattenHierarchy(root, nil) {
		if e.node.Collider != nil {
			return e.node
		}
	}
	return nil
}

// findRenderable returns the first node in the subtree with render geometry.
func findRenderable(root *Node) *Node {
	for _, e := range flattenHierarchy(root, nil) {
		if e.node.Bounds != nil {
			return e.node
		}
	}
	return nil
}

// cloneHierarchy deep-copies a subtree. Clones get fresh IDs, no parent,
// and copies of transform, tag, visibility, bounds, collider, and user data.
func cloneHierarchy(root *Node) *Node {
	arena := flattenHierarchy(root, nil)
	clones := make([]*Node, len(arena))
	for i, e := range arena {
		src := e.node
		c := &Node{
			Name:     src.Name,
			Tag:      src.Tag,
			Position: src.Position,
			Rotation: src.Rotation,
			Scale:    src.Scale,
			Visible:  src.Visible,
			Collider: src.Collider,
			UserData: src.UserData,
		}
		c.ID = nextNodeID()
		if src.Bounds != nil {
			b := *src.Bounds
			c.Bounds = &b
		}
		clones[i] = c
		if e.parent >= 0 {
			p := clones[e.parent]
			c.Parent = p
			p.children = append(p.children, c)
		}
	}
	return clones[0]
}

// Clone returns a deep copy of the node and its subtree, detached from any
// parent. Colliders are values and are shared by reference only when they
// are pointer types.
func (n *Node) Clone() *Node {
	return cloneHierarchy(n)
}
