package arplace

// PlacedContainer is the persistent parent of placed nodes. Its visibility
// is managed by the host (for example, shown only while the placement
// screen is open); the session only parents new nodes under it.
type PlacedContainer struct {
	root  *Node
	scene *Scene
}

// NewPlacedContainer creates the container root under scene's root.
func NewPlacedContainer(scene *Scene, name string) *PlacedContainer {
	root := NewContainer(name)
	scene.Root().AddChild(root)
	return &PlacedContainer{root: root, scene: scene}
}

// Root returns the container node.
func (c *PlacedContainer) Root() *Node {
	return c.root
}

// SetActive shows or hides every placed node at once.
func (c *PlacedContainer) SetActive(active bool) {
	c.root.SetActive(active)
}

// Len returns the number of placed nodes.
func (c *PlacedContainer) Len() int {
	return c.root.NumChildren()
}

// ClearAll destroys every placed node and returns how many were removed.
func (c *PlacedContainer) ClearAll() int {
	n := c.root.NumChildren()
	for i := n - 1; i >= 0; i-- {
		c.scene.Destroy(c.root.ChildAt(i))
	}
	return n
}
