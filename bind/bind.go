// Package bind implements the dependency-wiring step between actors: after
// every actor is mounted but before the supervisor starts polling, device
// init code connects actors to each other by address. The original Rust
// expresses this as one Bind<S> trait implementation per dependency type;
// Go has no way to give one method name multiple differently-typed
// overloads, so here each actor exposes one exported setter method per
// dependency (the same workaround package actor's Tell/Notify/Request
// split already uses), and To binds a method expression against a
// just-mounted address in one call.
package bind

import "github.com/amp-labs/mote/actor"

// To sets one binding slot on target's actor by calling set(self, dep)
// synchronously against the actor's live state. It is meant to be called
// only between Mount and the supervisor's first RunUntilQuiescence: calling
// it after the actor has started processing messages races with the
// supervisor's own access to the same state.
//
// set is ordinarily a method expression, e.g.:
//
//	bind.To(blinkerAddr, (*blinker.Blinker[simdriver.LED]).SetTimer, timerAddr)
func To[A any, T any](target actor.Address[A], set func(*A, T), dep T) {
	target.Bind(func(self *A) {
		set(self, dep)
	})
}
