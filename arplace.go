package arplace

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector used for screen positions, deltas, and directions.
// Screen space has its origin at the bottom-left with Y increasing upward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the distance between two points.
func Distance(a, b Vec2) float64 { return b.Sub(a).Len() }

// Midpoint returns the average of two screen positions.
func Midpoint(a, b Vec2) Vec2 { return Vec2{(a.X + b.X) * 0.5, (a.Y + b.Y) * 0.5} }

// SignedAngle returns the angle in degrees that rotates from onto to.
// Positive values are counter-clockwise. Returns 0 if either vector is zero.
func SignedAngle(from, to Vec2) float64 {
	if from == (Vec2{}) || to == (Vec2{}) {
		return 0
	}
	return mgl64.RadToDeg(math.Atan2(from.Cross(to), from.Dot(to)))
}

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Pose is a world-space position plus orientation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose returns a pose at position with the identity rotation.
func NewPose(position mgl64.Vec3) Pose {
	return Pose{Position: position, Rotation: mgl64.QuatIdent()}
}

// Ray is a half-line in world space. Dir need not be normalized; hit
// distances are expressed in multiples of Dir.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// WorldUp is the world up axis used for yaw rotations.
var WorldUp = mgl64.Vec3{0, 1, 0}

// Yaw returns the rotation of q about the world up axis in degrees,
// in the range (-180, 180].
func Yaw(q mgl64.Quat) float64 {
	fwd := q.Rotate(mgl64.Vec3{0, 0, 1})
	return mgl64.RadToDeg(math.Atan2(fwd.X(), fwd.Z()))
}

// InteractionMode selects which gesture handler the session dispatches to.
// It changes only by external command.
type InteractionMode uint8

const (
	ModeInactive    InteractionMode = iota // no gesture is interpreted
	ModePlacement                          // double-tap places the loaded asset
	ModeTranslation                        // two-finger pan moves the tracked node
	ModeScaling                            // two-finger pinch scales the tracked node
	ModeRotation                           // two-finger twist yaws the tracked node
	ModeDeletion                           // double-tap deletes the picked node
)

var modeNames = [...]string{
	ModeInactive:    "inactive",
	ModePlacement:   "placement",
	ModeTranslation: "translation",
	ModeScaling:     "scaling",
	ModeRotation:    "rotation",
	ModeDeletion:    "deletion",
}

func (m InteractionMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("InteractionMode(%d)", uint8(m))
}

// ParseMode converts a mode name (case-insensitive) into an InteractionMode.
// "none" is accepted as an alias for inactive.
func ParseMode(s string) (InteractionMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "none" {
		return ModeInactive, nil
	}
	for i, n := range modeNames {
		if n == name {
			return InteractionMode(i), nil
		}
	}
	return ModeInactive, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// TouchPhase is the lifecycle phase of a finger within one frame.
type TouchPhase uint8

const (
	PhaseBegan      TouchPhase = iota // finger touched down this frame
	PhaseMoved                        // finger moved since the previous frame
	PhaseStationary                   // finger is down and did not move
	PhaseEnded                        // finger lifted this frame
	PhaseCancelled                    // tracking was cancelled by the host
)

func (p TouchPhase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseStationary:
		return "stationary"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("TouchPhase(%d)", uint8(p))
}

// TagPlaceable marks nodes that were placed by the session. Deletion picks
// and scene queries use it to tell placed content from everything else.
const TagPlaceable = "placed-object"
