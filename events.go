package arplace

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// EventType identifies a kind of session event.
type EventType uint8

const (
	EventPlaced      EventType = iota // a node was placed on a surface
	EventDeleted                      // a placed node was destroyed by a double-tap
	EventMoved                        // the tracked node moved to a new surface point
	EventScaled                       // the tracked node's uniform scale changed
	EventRotated                      // the tracked node was yawed
	EventModeChanged                  // the interaction mode changed
	EventSurfaceMiss                  // a placement double-tap hit no surface
	EventReset                        // the session was reset and placed nodes cleared
)

var eventNames = [...]string{
	EventPlaced:      "placed",
	EventDeleted:     "deleted",
	EventMoved:       "moved",
	EventScaled:      "scaled",
	EventRotated:     "rotated",
	EventModeChanged: "mode-changed",
	EventSurfaceMiss: "surface-miss",
	EventReset:       "reset",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// SessionEvent carries what a gesture did to the scene.
type SessionEvent struct {
	Type      EventType
	SessionID uuid.UUID
	Time      time.Duration
	Mode      InteractionMode
	NodeID    uint32
	NodeName  string
	// Position is the node's world position after the change (placed, moved).
	Position mgl64.Vec3
	// Scale is the uniform scale after the change (placed, scaled).
	Scale float64
	// YawDelta is the applied yaw in degrees (rotated).
	YawDelta float64
	// Screen is the touch position that triggered the event, if any.
	Screen Vec2
}

// EventStore is the interface for optional ECS integration.
// When set on a Session, session events are forwarded to it.
type EventStore interface {
	EmitEvent(event SessionEvent)
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(SessionEvent)
}

type destroyHandler struct {
	id uint32
	fn func(*Node)
}

type callbackKind uint8

const (
	callbackEvent callbackKind = iota
	callbackDestroy
)

type handlerRegistry struct {
	event   []eventHandler
	destroy []destroyHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind callbackKind
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case callbackEvent:
		for i := range h.reg.event {
			if h.reg.event[i].id == h.id {
				h.reg.event = append(h.reg.event[:i], h.reg.event[i+1:]...)
				return
			}
		}
	case callbackDestroy:
		for i := range h.reg.destroy {
			if h.reg.destroy[i].id == h.id {
				h.reg.destroy = append(h.reg.destroy[:i], h.reg.destroy[i+1:]...)
				return
			}
		}
	}
}

func (r *handlerRegistry) addEvent(fn func(SessionEvent)) CallbackHandle {
	r.nextID++
	r.event = append(r.event, eventHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: callbackEvent}
}

func (r *handlerRegistry) addDestroy(fn func(*Node)) CallbackHandle {
	r.nextID++
	r.destroy = append(r.destroy, destroyHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: callbackDestroy}
}
