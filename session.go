package arplace

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionOptions wires a Session to its collaborators. Camera, Surfaces,
// and Assets are required for gestures to run; while any of them is
// missing (or no asset is loaded) Update does nothing.
type SessionOptions struct {
	// Scene receives placed nodes. A new scene is created when nil.
	Scene    *Scene
	Camera   *Camera
	Surfaces SurfaceHitTester
	Assets   AssetProvider
	// Placed, when set, becomes the parent of every placed node.
	Placed *PlacedContainer
	// Logger receives placement, deletion, and miss diagnostics. Nil
	// discards them.
	Logger *zap.Logger
	// Store optionally receives every session event.
	Store EventStore
}

// Session is the per-frame gesture interpreter. It routes each frame to at
// most one gesture handler selected by touch count and interaction mode,
// and owns the tracked node handle.
//
// A Session is single-threaded: call Update, SetMode, and Reset from the
// same goroutine.
type Session struct {
	// ID identifies this session in emitted events.
	ID uuid.UUID

	cfg      Config
	scene    *Scene
	camera   *Camera
	surfaces SurfaceHitTester
	assets   AssetProvider
	placed   *PlacedContainer
	logger   *zap.Logger
	store    EventStore

	modes      ModeController
	placeGate  TapGate
	deleteGate TapGate
	tracked    TrackedHandle

	handlers    handlerRegistry
	destroyHook CallbackHandle
	hits        []SurfaceHit
	now         time.Duration
}

// NewSession validates cfg and creates a session in ModeInactive.
func NewSession(cfg Config, opts SessionOptions) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	scene := opts.Scene
	if scene == nil {
		scene = NewScene()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		ID:         uuid.New(),
		cfg:        cfg,
		scene:      scene,
		camera:     opts.Camera,
		surfaces:   opts.Surfaces,
		assets:     opts.Assets,
		placed:     opts.Placed,
		store:      opts.Store,
		placeGate:  NewTapGate(cfg.DoubleTapThreshold),
		deleteGate: NewTapGate(cfg.DoubleTapThreshold),
		hits:       make([]SurfaceHit, 0, 4),
	}
	s.logger = logger.With(zap.Stringer("session", s.ID))
	s.destroyHook = scene.OnDestroy(s.tracked.clearIfWithin)
	return s, nil
}

// Close detaches the session from its scene.
func (s *Session) Close() {
	s.destroyHook.Remove()
}

// Config returns the session's tuning parameters.
func (s *Session) Config() Config { return s.cfg }

// Scene returns the scene placed nodes live in.
func (s *Session) Scene() *Scene { return s.scene }

// Camera returns the session camera, possibly nil.
func (s *Session) Camera() *Camera { return s.camera }

// SetCamera sets or replaces the camera.
func (s *Session) SetCamera(cam *Camera) { s.camera = cam }

// SetSurfaces sets or replaces the surface hit-test service.
func (s *Session) SetSurfaces(h SurfaceHitTester) { s.surfaces = h }

// SetAssets sets or replaces the asset provider.
func (s *Session) SetAssets(a AssetProvider) { s.assets = a }

// SetEventStore sets the optional ECS bridge.
func (s *Session) SetEventStore(store EventStore) { s.store = store }

// OnEvent registers a callback for every session event.
func (s *Session) OnEvent(fn func(SessionEvent)) CallbackHandle {
	return s.handlers.addEvent(fn)
}

// SetMode switches the interaction mode. It takes effect on the next
// Update and discards any in-progress two-finger baseline.
func (s *Session) SetMode(m InteractionMode) {
	prev := s.modes.Mode()
	if !s.modes.SetMode(m) {
		return
	}
	s.logger.Debug("interaction mode changed", zap.Stringer("from", prev), zap.Stringer("to", m))
	s.emit(SessionEvent{Type: EventModeChanged})
}

// Mode returns the current interaction mode.
func (s *Session) Mode() InteractionMode {
	return s.modes.Mode()
}

// Tracked returns the node two-finger gestures act on, if it is still alive.
func (s *Session) Tracked() (*Node, bool) {
	return s.tracked.Get()
}

// Reset clears every placed node and the tracked handle. The mode is kept.
func (s *Session) Reset() {
	cleared := 0
	if s.placed != nil {
		cleared = s.placed.ClearAll()
	}
	s.tracked.Clear()
	s.modes.endTwoFinger()
	s.placeGate.Reset()
	s.deleteGate.Reset()
	s.logger.Info("session reset", zap.Int("cleared", cleared))
	s.emit(SessionEvent{Type: EventReset})
}

// ready reports whether every collaborator needed for gestures is present.
func (s *Session) ready() bool {
	return s.camera != nil && s.surfaces != nil && s.assets != nil && s.assets.LoadedAsset() != nil
}

// Update interprets one frame of touch input. At most one handler runs,
// chosen by the touch count and the current mode; every other combination
// is a silent no-op. A frame that arrives while the session is not ready
// also drops any two-finger baseline.
func (s *Session) Update(frame Frame) {
	s.now = frame.Time
	if !s.ready() {
		s.modes.endTwoFinger()
		return
	}

	switch frame.TouchCount() {
	case 1:
		s.modes.endTwoFinger()
		t := frame.Touches[0]
		switch s.modes.Mode() {
		case ModePlacement:
			s.handlePlacement(t)
		case ModeDeletion:
			s.handleDeletion(t)
		}
	case 2:
		node, ok := s.tracked.Get()
		if !ok {
			s.modes.endTwoFinger()
			return
		}
		t0, t1 := frame.Touches[0], frame.Touches[1]
		switch s.modes.Mode() {
		case ModeTranslation:
			s.handleTranslation(node, t0, t1)
		case ModeScaling:
			s.handleScaling(node, t0, t1)
		case ModeRotation:
			s.handleRotation(node, t0, t1)
		}
	default:
		s.modes.endTwoFinger()
	}
}

// emit stamps ev with session context and delivers it to callbacks and the
// event store.
func (s *Session) emit(ev SessionEvent) {
	ev.SessionID = s.ID
	ev.Time = s.now
	ev.Mode = s.modes.Mode()
	for _, h := range s.handlers.event {
		h.fn(ev)
	}
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}

// nodeEvent fills the node-describing fields of an event.
func nodeEvent(typ EventType, n *Node) SessionEvent {
	return SessionEvent{
		Type:     typ,
		NodeID:   n.ID,
		NodeName: n.Name,
		Position: n.WorldPosition(),
		Scale:    n.Scale.X(),
	}
}
