package simclock

import (
	"sync"
	"time"

	"github.com/amp-labs/mote/timer"
)

// ManualClock is a HardwareTimer a test drives explicitly instead of
// waiting on wall-clock time: Start just records the armed deadline, and
// the test calls Fire when it wants the timer to go off, synchronously, on
// the calling goroutine.
type ManualClock struct {
	mu      sync.Mutex
	driver  timer.Driver
	armed   time.Duration
	running bool
}

// NewManual returns an unbound ManualClock; Bind it before use.
func NewManual() *ManualClock {
	return &ManualClock{}
}

// Bind wires the clock to the driver half of the timer under test.
func (c *ManualClock) Bind(d timer.Driver) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.driver = d
}

func (c *ManualClock) Start(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.armed = d
	c.running = true
}

func (c *ManualClock) ClearUpdateInterruptFlag() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = false
}

// Armed reports the deadline currently armed, and whether one is armed at
// all (the interrupt handler may have disarmed it if nothing was pending).
func (c *ManualClock) Armed() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.armed, c.running
}

// Fire runs the timer's interrupt handler as if the armed deadline had just
// elapsed.
func (c *ManualClock) Fire() {
	c.mu.Lock()
	driver := c.driver
	c.mu.Unlock()

	driver.Interrupt()
}
