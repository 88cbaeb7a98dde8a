package arplace

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is the device viewpoint: a perspective camera looking down its
// local -Z axis. Screen coordinates are pixels inside Viewport with the
// origin at the bottom-left.
type Camera struct {
	// Position and Rotation place the camera in world space.
	Position mgl64.Vec3
	Rotation mgl64.Quat
	// FovY is the vertical field of view in degrees.
	FovY float64
	// Near and Far are the clip plane distances.
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewProj    mgl64.Mat4
	invViewProj mgl64.Mat4
	dirty       bool
}

// NewCamera creates a camera with a 60 degree vertical field of view at the
// origin, covering viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Rotation: mgl64.QuatIdent(),
		FovY:     60,
		Near:     0.05,
		Far:      100,
		Viewport: viewport,
		dirty:    true,
	}
}

// SetPose moves the camera.
func (c *Camera) SetPose(p Pose) {
	c.Position = p.Position
	c.Rotation = p.Rotation.Normalize()
	c.dirty = true
}

// LookAt places the camera at eye facing target, with up as the approximate
// up direction.
func (c *Camera) LookAt(eye, target, up mgl64.Vec3) {
	view := mgl64.LookAtV(eye, target, up)
	c.Position = eye
	c.Rotation = mgl64.Mat4ToQuat(view).Inverse().Normalize()
	c.dirty = true
}

// MarkDirty forces a recomputation of the projection matrices.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeViewProj recomputes the cached view-projection matrix if dirty.
//
// viewProj = Perspective(fovY, aspect, near, far) * Inverse(Translate(Position) * Rotate(Rotation))
func (c *Camera) computeViewProj() mgl64.Mat4 {
	if !c.dirty {
		return c.viewProj
	}
	c.dirty = false

	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
	world := mgl64.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).
		Mul4(c.Rotation.Normalize().Mat4())
	c.viewProj = proj.Mul4(world.Inv())
	c.invViewProj = c.viewProj.Inv()
	return c.viewProj
}

// WorldToScreen projects a world-space point into screen space. ok is false
// when the point is behind the camera.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (screen Vec2, ok bool) {
	clip := c.computeViewProj().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return Vec2{}, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return Vec2{
		X: c.Viewport.X + (ndcX+1)*0.5*c.Viewport.Width,
		Y: c.Viewport.Y + (ndcY+1)*0.5*c.Viewport.Height,
	}, true
}

// ScreenPointToRay returns the world-space ray from the near plane through
// the given screen point. Dir is normalized.
func (c *Camera) ScreenPointToRay(s Vec2) Ray {
	c.computeViewProj()
	ndcX := 2*(s.X-c.Viewport.X)/c.Viewport.Width - 1
	ndcY := 2*(s.Y-c.Viewport.Y)/c.Viewport.Height - 1

	near := c.unproject(ndcX, ndcY, -1)
	far := c.unproject(ndcX, ndcY, 1)
	return Ray{Origin: near, Dir: far.Sub(near).Normalize()}
}

func (c *Camera) unproject(x, y, z float64) mgl64.Vec3 {
	v := c.invViewProj.Mul4x1(mgl64.Vec4{x, y, z, 1})
	return v.Vec3().Mul(1 / v.W())
}
