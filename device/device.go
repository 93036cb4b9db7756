// Package device provides the top-level wiring contract: a Device mounts
// every actor it owns, in dependency order, then binds them together
// before returning. Modeled on drogue-device's Device/Package/EventBus
// traits, exercised end to end in
// original_source/examples/stm32l4/iot01a/src/device.rs.
package device

import "github.com/amp-labs/mote/actor"

// Registrar is the subset of *supervisor.Supervisor a Device needs to mount
// its actors. Declared here (not imported from package supervisor) for the
// same reason actor.Registrar is declared in package actor: it keeps the
// dependency one-directional.
type Registrar interface {
	Add(actor.Pollable)
	Poke()
}

// Device mounts every actor a board owns and wires their dependencies
// together, once, during program init. Mount must only be called before
// the supervisor starts running.
//
// D is the concrete device type itself — the Rust original parameterizes
// EventBus<D> over "Self" at the impl site (`Address<EventBus<Self>>`); Go
// has no Self type, so the device package is instead generic over D and a
// board's concrete type satisfies Device[itself].
type Device[D any] interface {
	Mount(bus Address[D], reg Registrar)
}

// Package is a composite unit — more than a single actor, e.g. a sensor
// plus the I2C bus actor it talks over — that mounts itself and hands back
// the address its siblings bind against.
type Package[D any, A any] interface {
	Mount(bus Address[D], reg Registrar) actor.Address[A]
}

// EventHandler receives events of type T fanned out from an EventBus. A
// Device typically implements EventHandler for every event type its
// drivers produce (button presses, sensor readings) the way MyDevice does
// in the original example.
type EventHandler[T any] interface {
	OnEvent(T)
}
