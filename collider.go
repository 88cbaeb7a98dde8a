package arplace

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Collider is a collision volume in a node's local coordinates. Scene
// raycasts transform the ray into local space before calling IntersectRay,
// so t is measured in multiples of the world ray direction.
type Collider interface {
	IntersectRay(origin, dir mgl64.Vec3) (t float64, ok bool)
}

// --- Built-in Collider types ---

// BoxCollider is an axis-aligned box in local coordinates.
type BoxCollider struct {
	Center mgl64.Vec3
	Size   mgl64.Vec3
}

// BoxColliderFromBounds returns a box that exactly covers b.
func BoxColliderFromBounds(b Bounds) BoxCollider {
	return BoxCollider{Center: b.Center(), Size: b.Size()}
}

// IntersectRay returns the nearest non-negative hit parameter using the slab test.
func (b BoxCollider) IntersectRay(origin, dir mgl64.Vec3) (float64, bool) {
	half := b.Size.Mul(0.5)
	lo := b.Center.Sub(half)
	hi := b.Center.Add(half)

	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], dir[axis]
		if d == 0 {
			if o < lo[axis] || o > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - o) / d
		t2 := (hi[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		// Origin is inside the box.
		return 0, true
	}
	return tmin, true
}

// SphereCollider is a sphere in local coordinates.
type SphereCollider struct {
	Center mgl64.Vec3
	Radius float64
}

// IntersectRay returns the nearest non-negative hit parameter.
func (s SphereCollider) IntersectRay(origin, dir mgl64.Vec3) (float64, bool) {
	oc := origin.Sub(s.Center)
	a := dir.Dot(dir)
	if a == 0 {
		return 0, false
	}
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		if (-b+sq)/(2*a) < 0 {
			return 0, false
		}
		// Origin is inside the sphere.
		return 0, true
	}
	return t, true
}

// defaultBoxCollider is attached when a placed node has neither a collider
// nor render geometry.
var defaultBoxCollider = BoxCollider{Size: mgl64.Vec3{1, 1, 1}}
