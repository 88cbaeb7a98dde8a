package arplace

// TrackedHandle is a weak reference to the node two-finger gestures act on.
// It never keeps a disposed node alive: Get validates liveness on every call
// and clears the handle when the node is gone.
type TrackedHandle struct {
	node *Node
}

// Set points the handle at n, replacing the previous target. The previous
// node is not touched.
func (h *TrackedHandle) Set(n *Node) {
	h.node = n
}

// Get returns the tracked node if it is still alive.
func (h *TrackedHandle) Get() (*Node, bool) {
	if h.node == nil {
		return nil, false
	}
	if h.node.IsDisposed() {
		h.node = nil
		return nil, false
	}
	return h.node, true
}

// Clear drops the reference.
func (h *TrackedHandle) Clear() {
	h.node = nil
}

// clearIfWithin clears the handle when the tracked node is root or lies in
// root's subtree.
func (h *TrackedHandle) clearIfWithin(root *Node) {
	if h.node != nil && isAncestor(root, h.node) {
		h.node = nil
	}
}
