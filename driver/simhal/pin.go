// Package simhal stands in for the board-specific HAL types the original
// example binds against (stm32l4xx_hal::gpio pins, a TIM15 peripheral,
// NVIC IRQ numbers). There is no real silicon on a host, so these are
// in-memory simulations exercised by driver/simdriver and cmd/moted.
package simhal

import "sync"

// Pin is a simulated GPIO output line. Changes are observable through an
// optional channel so tests can assert on blink timing without polling.
type Pin struct {
	mu      sync.Mutex
	high    bool
	changes chan bool
}

// NewPin creates a Pin, initially low.
func NewPin() *Pin {
	return &Pin{}
}

// WithObserver returns p configured to publish every state change
// (non-blocking; a full channel drops the notification, since Pin models
// a physical line that tests merely sample) to ch.
func (p *Pin) WithObserver(ch chan bool) *Pin {
	p.changes = ch

	return p
}

// SetHigh drives the pin high.
func (p *Pin) SetHigh() { p.set(true) }

// SetLow drives the pin low.
func (p *Pin) SetLow() { p.set(false) }

// IsHigh reports the pin's current simulated state.
func (p *Pin) IsHigh() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.high
}

func (p *Pin) set(high bool) {
	p.mu.Lock()
	p.high = high
	ch := p.changes
	p.mu.Unlock()

	if ch == nil {
		return
	}

	select {
	case ch <- high:
	default:
	}
}
