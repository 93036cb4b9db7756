// Package simdriver holds the simulated driver actors that plug into
// board peripherals: today, just LED, the Go equivalent of drogue-device's
// SimpleLED<Pin, ActiveState> (see driver/led/mod.rs's `pub use
// simple::SimpleLED` — the simple.rs source itself wasn't part of the
// retrieved slice, so this is grounded on its usage from blinker.rs and the
// board wiring in device.rs instead).
package simdriver

import "github.com/amp-labs/mote/driver/simhal"

// LED is a Switchable actor backed by one simulated GPIO pin. It has no
// inbox state of its own beyond the pin reference, so it needs no OnMount
// or OnStart: blinker.Blinker drives it purely through Tell.
type LED struct {
	pin        *simhal.Pin
	activeHigh bool
}

// NewLED wires an LED actor to a simulated pin. activeHigh mirrors the
// original's ActiveHigh/ActiveLow marker types.
func NewLED(pin *simhal.Pin, activeHigh bool) LED {
	return LED{pin: pin, activeHigh: activeHigh}
}

// TurnOn implements blinker.Switchable.
func (l LED) TurnOn() {
	if l.activeHigh {
		l.pin.SetHigh()
	} else {
		l.pin.SetLow()
	}
}

// TurnOff implements blinker.Switchable.
func (l LED) TurnOff() {
	if l.activeHigh {
		l.pin.SetLow()
	} else {
		l.pin.SetHigh()
	}
}
