// Package ecs provides ECS adapters for dropzone's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges dropzone interaction
// events (pick up, move, drop, trash, spawn) into a [Donburi] world as typed
// events. Subscribe to [InteractionEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(ecsWorld)
//	world.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
