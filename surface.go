package arplace

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// SurfaceHit is one intersection of a screen ray with a detected surface.
type SurfaceHit struct {
	Pose     Pose
	Distance float64
	PlaneID  int
}

// SurfaceHitTester intersects a screen point with detected real-world
// surfaces. Implementations append hits to buf ordered nearest first and
// return the extended slice; an empty result is a miss.
type SurfaceHitTester interface {
	HitTestSurfaces(screen Vec2, buf []SurfaceHit) []SurfaceHit
}

// --- Boundary polygons ---

// HitPolygon is a convex polygon in plane-local coordinates (X, Z mapped to
// X, Y). Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// RectBoundary returns a width x depth rectangle centred on the plane origin.
func RectBoundary(width, depth float64) HitPolygon {
	hw, hd := width/2, depth/2
	return HitPolygon{Points: []Vec2{{-hw, -hd}, {hw, -hd}, {hw, hd}, {-hw, hd}}}
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Detected planes ---

// Plane is a detected planar surface. Its normal is the local +Y axis of
// Pose; Boundary is expressed in the plane's local X/Z coordinates.
type Plane struct {
	ID       int
	Pose     Pose
	Boundary HitPolygon
}

// Normal returns the plane normal in world space.
func (p Plane) Normal() mgl64.Vec3 {
	return p.Pose.Rotation.Normalize().Rotate(WorldUp)
}

// intersect returns the ray parameter where r crosses the plane inside its
// boundary.
func (p Plane) intersect(r Ray) (float64, mgl64.Vec3, bool) {
	normal := p.Normal()
	denom := normal.Dot(r.Dir)
	if math.Abs(denom) < 1e-9 {
		return 0, mgl64.Vec3{}, false
	}
	t := normal.Dot(p.Pose.Position.Sub(r.Origin)) / denom
	if t < 0 {
		return 0, mgl64.Vec3{}, false
	}
	hit := r.At(t)
	local := p.Pose.Rotation.Normalize().Inverse().Rotate(hit.Sub(p.Pose.Position))
	if !p.Boundary.Contains(local.X(), local.Z()) {
		return 0, mgl64.Vec3{}, false
	}
	return t, hit, true
}

// PlaneSet is a SurfaceHitTester over a set of detected planes, queried
// through a camera. Only hits within a plane's boundary polygon count.
type PlaneSet struct {
	Camera *Camera
	planes []Plane
}

// NewPlaneSet creates an empty plane set viewed through cam.
func NewPlaneSet(cam *Camera) *PlaneSet {
	return &PlaneSet{Camera: cam}
}

// AddPlane adds or replaces the plane with p.ID.
func (s *PlaneSet) AddPlane(p Plane) {
	for i := range s.planes {
		if s.planes[i].ID == p.ID {
			s.planes[i] = p
			return
		}
	}
	s.planes = append(s.planes, p)
}

// RemovePlane drops the plane with the given ID. No-op if absent.
func (s *PlaneSet) RemovePlane(id int) {
	for i := range s.planes {
		if s.planes[i].ID == id {
			s.planes = append(s.planes[:i], s.planes[i+1:]...)
			return
		}
	}
}

// Planes returns the plane list. The returned slice MUST NOT be mutated.
func (s *PlaneSet) Planes() []Plane {
	return s.planes
}

// HitTestSurfaces casts a ray through screen and appends every in-boundary
// plane hit, nearest first.
func (s *PlaneSet) HitTestSurfaces(screen Vec2, buf []SurfaceHit) []SurfaceHit {
	if s.Camera == nil {
		return buf
	}
	ray := s.Camera.ScreenPointToRay(screen)
	start := len(buf)
	for _, p := range s.planes {
		t, pos, ok := p.intersect(ray)
		if !ok {
			continue
		}
		buf = append(buf, SurfaceHit{
			Pose:     Pose{Position: pos, Rotation: p.Pose.Rotation},
			Distance: t,
			PlaneID:  p.ID,
		})
	}
	added := buf[start:]
	sort.Slice(added, func(i, j int) bool { return added[i].Distance < added[j].Distance })
	return buf
}
