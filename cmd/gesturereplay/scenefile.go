package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/arplace"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// sceneFile describes the headless world a script is replayed against.
type sceneFile struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	Camera struct {
		Eye    []float64 `yaml:"eye"`
		Target []float64 `yaml:"target"`
		FovY   float64   `yaml:"fovY"`
	} `yaml:"camera"`
	Planes []struct {
		ID       int       `yaml:"id"`
		Position []float64 `yaml:"position"`
		// Tilt rotates the plane about world X in degrees; 0 is a floor.
		Tilt  float64 `yaml:"tilt"`
		Width float64 `yaml:"width"`
		Depth float64 `yaml:"depth"`
	} `yaml:"planes"`
	Asset struct {
		Name string    `yaml:"name"`
		Min  []float64 `yaml:"min"`
		Max  []float64 `yaml:"max"`
	} `yaml:"asset"`
}

// world is the session collaborators built from a sceneFile.
type world struct {
	scene  *arplace.Scene
	camera *arplace.Camera
	planes *arplace.PlaneSet
	assets *arplace.AssetSlot
	placed *arplace.PlacedContainer
}

func vec3(name string, v []float64, def mgl64.Vec3) (mgl64.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	default:
		return mgl64.Vec3{}, fmt.Errorf("%s: want 3 components, got %d", name, len(v))
	}
}

// loadScene parses a scene description. Omitted fields fall back to a
// 640x480 viewport, a camera 1.5m up looking at the origin, one 4x4m floor
// plane, and a 1m box asset.
func loadScene(data []byte) (*sceneFile, error) {
	var sf sceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if sf.Viewport.Width <= 0 || sf.Viewport.Height <= 0 {
		sf.Viewport.Width, sf.Viewport.Height = 640, 480
	}
	return &sf, nil
}

func (sf *sceneFile) build(logger *zap.Logger) (*world, error) {
	w := &world{scene: arplace.NewScene()}

	w.camera = arplace.NewCamera(arplace.Rect{Width: sf.Viewport.Width, Height: sf.Viewport.Height})
	if sf.Camera.FovY > 0 {
		w.camera.FovY = sf.Camera.FovY
	}
	eye, err := vec3("camera.eye", sf.Camera.Eye, mgl64.Vec3{0, 1.5, 2})
	if err != nil {
		return nil, err
	}
	target, err := vec3("camera.target", sf.Camera.Target, mgl64.Vec3{})
	if err != nil {
		return nil, err
	}
	w.camera.LookAt(eye, target, arplace.WorldUp)

	w.planes = arplace.NewPlaneSet(w.camera)
	if len(sf.Planes) == 0 {
		w.planes.AddPlane(arplace.Plane{ID: 1, Pose: arplace.NewPose(mgl64.Vec3{}), Boundary: arplace.RectBoundary(4, 4)})
	}
	for i, p := range sf.Planes {
		pos, err := vec3(fmt.Sprintf("planes[%d].position", i), p.Position, mgl64.Vec3{})
		if err != nil {
			return nil, err
		}
		pose := arplace.NewPose(pos)
		pose.Rotation = mgl64.QuatRotate(mgl64.DegToRad(p.Tilt), mgl64.Vec3{1, 0, 0})
		width, depth := p.Width, p.Depth
		if width <= 0 {
			width = 4
		}
		if depth <= 0 {
			depth = 4
		}
		w.planes.AddPlane(arplace.Plane{ID: p.ID, Pose: pose, Boundary: arplace.RectBoundary(width, depth)})
	}

	name := sf.Asset.Name
	if name == "" {
		name = "asset"
	}
	lo, err := vec3("asset.min", sf.Asset.Min, mgl64.Vec3{-0.5, 0, -0.5})
	if err != nil {
		return nil, err
	}
	hi, err := vec3("asset.max", sf.Asset.Max, mgl64.Vec3{0.5, 1, 0.5})
	if err != nil {
		return nil, err
	}
	w.assets = arplace.NewAssetSlot(logger)
	w.assets.Set(arplace.NewMeshNode(name, arplace.Bounds{Min: lo, Max: hi}))

	w.placed = arplace.NewPlacedContainer(w.scene, "placed")
	return w, nil
}
