package ecs

import (
	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ViewportEventType is the Donburi event type for panzoom viewport events.
var ViewportEventType = events.NewEventType[panzoom.ViewportEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes to ViewportEventType in
// world. Events are queued until ProcessEvents or events.ProcessAllEvents
// runs, typically once per ECS tick.
func NewDonburiSink(world donburi.World) panzoom.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event panzoom.ViewportEvent) {
	ViewportEventType.Publish(s.world, event)
}
