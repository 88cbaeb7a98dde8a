package ecs

import (
	"github.com/phanxgames/arplace"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SessionEventType carries arplace.SessionEvent values through a donburi
// world. Events queue until the world's systems call ProcessEvents.
var SessionEventType = events.NewEventType[arplace.SessionEvent]()

// donburiStore publishes session events into one world. A nil filter
// forwards every event type.
type donburiStore struct {
	world  donburi.World
	filter map[arplace.EventType]bool
}

// NewDonburiStore returns an arplace.EventStore that queues events on
// SessionEventType in world. Pass event types to forward only those;
// with none, every event is forwarded.
func NewDonburiStore(world donburi.World, only ...arplace.EventType) arplace.EventStore {
	s := &donburiStore{world: world}
	if len(only) > 0 {
		s.filter = make(map[arplace.EventType]bool, len(only))
		for _, t := range only {
			s.filter[t] = true
		}
	}
	return s
}

func (s *donburiStore) EmitEvent(event arplace.SessionEvent) {
	if s.filter != nil && !s.filter[event.Type] {
		return
	}
	SessionEventType.Publish(s.world, event)
}
