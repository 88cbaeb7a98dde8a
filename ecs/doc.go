// Package ecs bridges arplace sessions into an entity component system.
//
// [NewDonburiStore] implements arplace.EventStore on top of a [Donburi]
// world: each placement, deletion, move, scale, rotation, mode change and
// reset becomes a [SessionEventType] event that systems drain with
// ProcessEvents. Event types can be narrowed when the store is created:
//
//	store := ecs.NewDonburiStore(world, arplace.EventPlaced, arplace.EventDeleted)
//	session.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
