// Package ecs provides ECS adapters for panzoom viewport events.
//
// The primary adapter is [NewDonburiSink], which forwards viewport events
// (pan, zoom, reset, gesture boundaries) into a [Donburi] world as typed
// events. Subscribe to [ViewportEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctrl.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
