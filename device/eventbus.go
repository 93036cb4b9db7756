package device

import "github.com/amp-labs/mote/actor"

// EventBus fans events out to the device's own OnEvent implementations.
// Unlike the original's synchronous immediate dispatch, publishing here
// goes through the normal Notify path: the bus is a real actor with its own
// inbox, so a driver publishing an event never blocks on the device's
// handler running.
type EventBus[D any] struct {
	target D
}

// NewEventBus builds the bus state; the caller mounts it with
// actor.NewContext before handing out its Address.
func NewEventBus[D any](target D) EventBus[D] {
	return EventBus[D]{target: target}
}

// Address is the typed handle other actors use to publish events onto a
// device's bus.
type Address[D any] struct {
	addr actor.Address[EventBus[D]]
}

// NewAddress wraps a raw actor.Address[EventBus[D]] returned from Mount.
func NewAddress[D any](addr actor.Address[EventBus[D]]) Address[D] {
	return Address[D]{addr: addr}
}

// Publish fans event out to bus's device via its EventHandler[E]
// implementation. A package-level function, not an Address method, because
// Go methods cannot add type parameters beyond the receiver's.
func Publish[D EventHandler[E], E any](bus Address[D], event E) {
	actor.Notify(bus.addr, publish[D, E], event)
}

func publish[D EventHandler[E], E any](self EventBus[D], event E) actor.Completion[EventBus[D]] {
	self.target.OnEvent(event)

	return actor.CompletionImmediate(self)
}
