// Package simclock simulates the one hardware timer peripheral package
// timer multiplexes, since there is no real MCU register block to drive on
// a host. Clock models it with time.AfterFunc, whose callback runs on its
// own goroutine — the single deliberate exception to "no actor has its own
// goroutine" this runtime makes, standing in for a real timer interrupt.
package simclock

import (
	"sync"
	"time"

	"github.com/amp-labs/mote/timer"
)

// Clock implements timer.HardwareTimer with Go's runtime timer wheel.
// Construction is two-phase because timer.New needs a HardwareTimer to
// build the Driver that Clock, in turn, needs to call back into: create a
// Clock, pass it to timer.New, then Bind the returned Driver before the
// supervisor starts running.
type Clock struct {
	mu     sync.Mutex
	timer  *time.Timer
	driver timer.Driver
}

// New returns an unbound Clock. Call Bind with the Driver from timer.New
// before the timer actor can ever be started.
func New() *Clock {
	return &Clock{}
}

// Bind wires the clock to the driver half of the timer it fires interrupts
// into.
func (c *Clock) Bind(d timer.Driver) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.driver = d
}

// Start implements timer.HardwareTimer. It replaces any previously armed
// deadline, matching real countdown-timer hardware where arming always
// means "start counting down from this value now."
func (c *Clock) Start(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}

	driver := c.driver
	c.timer = time.AfterFunc(d, driver.Interrupt)
}

// ClearUpdateInterruptFlag implements timer.HardwareTimer. Go's runtime
// timer has no interrupt-pending register to acknowledge; this is a no-op
// kept only so Clock satisfies the same interface real firmware would.
func (c *Clock) ClearUpdateInterruptFlag() {}
