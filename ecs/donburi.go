package ecs

import (
	"github.com/phanxgames/dropzone"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for dropzone interaction
// events. Subscribe to this in your ECS systems.
var InteractionEventType = events.NewEventType[dropzone.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dropzone.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dropzone.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Tally counts interaction events by type. Attach it with Subscribe and it
// updates whenever the world's events are processed.
type Tally struct {
	counts [int(dropzone.EventSpawn) + 1]int
}

// Subscribe registers t with world.
func (t *Tally) Subscribe(world donburi.World) {
	InteractionEventType.Subscribe(world, t.observe)
}

func (t *Tally) observe(_ donburi.World, e dropzone.InteractionEvent) {
	if int(e.Type) < len(t.counts) {
		t.counts[e.Type]++
	}
}

// Count returns how many events of type et have been observed.
func (t *Tally) Count(et dropzone.EventType) int {
	if int(et) >= len(t.counts) {
		return 0
	}
	return t.counts[et]
}
