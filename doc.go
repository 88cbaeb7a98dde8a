// Package arplace interprets multi-touch gestures for placing and
// manipulating virtual objects on detected real-world surfaces.
//
// A [Session] consumes one [Frame] of touches per update and routes it to at
// most one gesture handler, selected by the number of fingers down and the
// current [InteractionMode]:
//
//	mode          fingers  gesture      effect
//	placement     1        double tap   clone the loaded asset onto a surface
//	deletion      1        double tap   destroy the placed object under the finger
//	translation   2        pan          move the tracked object along surfaces
//	scaling       2        pinch        uniform scale, clamped
//	rotation      2        twist        yaw about the world up axis
//
// The most recently placed object is the tracked object; two-finger gestures
// act only on it. Modes change only through [Session.SetMode].
//
// # Wiring
//
// A session needs a [Camera], a [SurfaceHitTester] such as [PlaneSet], and an
// [AssetProvider] such as [AssetSlot] holding a loaded template. Until all
// three are present and an asset is loaded, Update does nothing.
//
//	scene := arplace.NewScene()
//	cam := arplace.NewCamera(arplace.Rect{Width: 640, Height: 480})
//	planes := arplace.NewPlaneSet(cam)
//	assets := arplace.NewAssetSlot(logger)
//	assets.Set(arplace.NewMeshNode("chair", bounds))
//
//	s, err := arplace.NewSession(arplace.DefaultConfig(), arplace.SessionOptions{
//		Scene:    scene,
//		Camera:   cam,
//		Surfaces: planes,
//		Assets:   assets,
//		Placed:   arplace.NewPlacedContainer(scene, "placed"),
//		Logger:   logger,
//	})
//	s.SetMode(arplace.ModePlacement)
//
//	// each frame:
//	s.Update(input.Next(now))
//
// # Coordinates
//
// Screen coordinates are pixels with the origin at the bottom-left and Y
// increasing upward, so a positive [SignedAngle] is counter-clockwise. World
// space is right-handed with +Y up. [EbitenTouchSource] flips ebiten's
// top-left touch coordinates on the way in.
//
// # Scripted input
//
// [TouchInput] accepts injected frames ahead of live touches. Helpers such as
// [TouchInput.InjectDoubleTap] and [TouchInput.InjectPinch] build gestures
// eased with [gween], and [LoadScript] reads YAML gesture scripts that
// [Replay] plays back against a session. The gesturereplay command wraps
// this for headless runs.
//
// # Events
//
// Every placement, deletion, and manipulation emits a [SessionEvent] to
// callbacks registered with [Session.OnEvent] and to an optional
// [EventStore]. The arplace/ecs package publishes them into a [Donburi]
// world.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package arplace
