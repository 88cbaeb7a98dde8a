package arplace

import "github.com/go-gl/mathgl/mgl64"

// localMatrix computes the node's local matrix.
//
// Composition order:
//
//	Translate(Position) * Rotate(Rotation) * Scale(Scale)
func localMatrix(n *Node) mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := n.Rotation.Normalize().Mat4()
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix returns the node's local-to-world matrix, composed from the
// root down. Computed on demand; gestures touch at most one node per frame.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := localMatrix(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = localMatrix(p).Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	if n.Parent == nil {
		return n.Position
	}
	return mgl64.TransformCoordinate(n.Position, n.Parent.WorldMatrix())
}

// WorldRotation returns the node's orientation in world space.
func (n *Node) WorldRotation() mgl64.Quat {
	q := n.Rotation
	for p := n.Parent; p != nil; p = p.Parent {
		q = p.Rotation.Mul(q)
	}
	return q.Normalize()
}

// WorldPose returns the node's world position and orientation.
func (n *Node) WorldPose() Pose {
	return Pose{Position: n.WorldPosition(), Rotation: n.WorldRotation()}
}

// SetWorldPosition moves the node so its origin lands on p in world space.
func (n *Node) SetWorldPosition(p mgl64.Vec3) {
	if n.Parent == nil {
		n.Position = p
		return
	}
	inv := n.Parent.WorldMatrix().Inv()
	n.Position = mgl64.TransformCoordinate(p, inv)
}

// SetWorldPose sets the node's world position and orientation, keeping the
// pose unchanged when the node sits under a transformed parent.
func (n *Node) SetWorldPose(pose Pose) {
	n.SetWorldPosition(pose.Position)
	rot := pose.Rotation
	if n.Parent != nil {
		rot = n.Parent.WorldRotation().Inverse().Mul(rot)
	}
	n.Rotation = rot.Normalize()
}

// SetUniformScale sets all three local scale axes to s.
func (n *Node) SetUniformScale(s float64) {
	n.Scale = mgl64.Vec3{s, s, s}
}

// RotateWorldYaw rotates the node by degrees about the world up axis,
// leaving pitch and roll untouched.
func (n *Node) RotateWorldYaw(degrees float64) {
	yaw := mgl64.QuatRotate(mgl64.DegToRad(degrees), WorldUp)
	if n.Parent == nil {
		n.Rotation = yaw.Mul(n.Rotation).Normalize()
		return
	}
	// Express the world-space yaw in the parent's frame.
	pr := n.Parent.WorldRotation()
	local := pr.Inverse().Mul(yaw).Mul(pr)
	n.Rotation = local.Mul(n.Rotation).Normalize()
}

// WorldToLocal converts a world-space point into this node's local space.
func (n *Node) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, n.WorldMatrix().Inv())
}

// LocalToWorld converts a local-space point into world space.
func (n *Node) LocalToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, n.WorldMatrix())
}
