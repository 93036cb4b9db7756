// Package timer implements a single hardware-timer multiplexer: one
// simulated countdown timer backs up to 16 concurrent Delay futures and 16
// concurrent Schedule entries, rearmed to whatever is soonest after every
// request and every firing.
package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/amp-labs/mote/actor"
)

// maxDelaySlots and maxScheduleSlots mirror the original's fixed [Option<_>;
// 16] arrays: a static allocation appropriate to a resource-constrained
// target that never grows a queue on the heap.
const (
	maxDelaySlots    = 16
	maxScheduleSlots = 16
)

// HardwareTimer is the one countdown timer the multiplexer drives. Start
// arms it to fire once after d; ClearUpdateInterruptFlag acknowledges the
// firing from inside the interrupt handler, matching the HAL call the
// original makes before touching any shared state. simhal and simclock
// provide the simulated implementation; real firmware would wrap a
// peripheral register block instead.
type HardwareTimer interface {
	Start(d time.Duration)
	ClearUpdateInterruptFlag()
}

// Shared is the state an interrupt handler and the TimerActor's message
// handlers both touch. It is kept out of TimerActor itself — which is
// copied by value on every handler call, per the actor package's
// consume-and-replace convention — so the simulated ISR goroutine can reach
// it through a stable pointer without racing the actor's own copies.
// This mirrors the original's identical split between TimerActor (owns the
// HAL timer handle) and a separately referenced Shared struct.
type Shared struct {
	mu  sync.Mutex
	log *slog.Logger

	hw HardwareTimer

	hasDeadline     bool
	currentDeadline time.Duration

	delays    [maxDelaySlots]*delaySlot
	schedules [maxScheduleSlots]Schedulable
}

// arm starts hw for d if nothing is currently running or d is sooner than
// whatever deadline is already armed. Caller must hold mu.
func (s *Shared) arm(d time.Duration) {
	if !s.hasDeadline || d < s.currentDeadline {
		s.hasDeadline = true
		s.currentDeadline = d
		s.hw.Start(d)
	}
}

// onInterrupt runs the timer's four-step handler: acknowledge the firing,
// saturating-subtract the elapsed time from every live deadline, wake or
// run whatever reached zero, then rearm for the soonest survivor.
func (s *Shared) onInterrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hw.ClearUpdateInterruptFlag()

	elapsed := s.currentDeadline

	var next time.Duration

	haveNext := false

	for _, slot := range s.delays {
		if slot == nil {
			continue
		}

		slot.expiration = saturatingSub(slot.expiration, elapsed)

		if slot.expiration == 0 {
			if wake := slot.wake; wake != nil {
				slot.wake = nil
				wake()
			}

			continue
		}

		if !haveNext || slot.expiration < next {
			next, haveNext = slot.expiration, true
		}
	}

	for i, sched := range s.schedules {
		if sched == nil {
			continue
		}

		remaining := saturatingSub(sched.expiration(), elapsed)
		sched.setExpiration(remaining)

		if remaining == 0 {
			sched.run()
			s.schedules[i] = nil

			continue
		}

		if !haveNext || remaining < next {
			next, haveNext = remaining, true
		}
	}

	if haveNext {
		s.currentDeadline = next
		s.hw.Start(next)

		return
	}

	s.hasDeadline = false
}

func saturatingSub(a, b time.Duration) time.Duration {
	if a < b {
		return 0
	}

	return a - b
}

// TimerActor is the actor-facing half of the multiplexer: it owns nothing
// but a pointer to Shared, so it is freely copyable the way every actor
// state value must be.
type TimerActor struct {
	shared *Shared
}

// Driver is the interrupt-facing half: the handle a simulated (or real) ISR
// calls into directly, bypassing the cooperative poll loop entirely,
// because the timer interrupt runs outside normal actor scheduling.
type Driver struct {
	shared *Shared
}

// Interrupt runs the timer's interrupt handler. Safe to call from any
// goroutine; it is the one piece of this runtime that must be, since it
// models real hardware preempting the supervisor.
func (d Driver) Interrupt() { d.shared.onInterrupt() }

// New creates a timer multiplexer over hw, returning the actor half to
// mount and the driver half to wire to an interrupt source.
func New(hw HardwareTimer, log *slog.Logger) (TimerActor, Driver) {
	s := &Shared{hw: hw, log: log}

	return TimerActor{shared: s}, Driver{shared: s}
}

// Address is the typed handle other actors hold to reach a mounted
// TimerActor, closing over its concrete handler functions the way every
// actor package here does.
type Address struct {
	addr actor.Address[TimerActor]
}

// NewAddress wraps a raw actor.Address[TimerActor] returned from Mount.
func NewAddress(addr actor.Address[TimerActor]) Address { return Address{addr: addr} }

// Delay blocks the caller until d has elapsed, or ctx is done. It is the
// one asynchronous operation in this runtime that suspends a caller instead
// of firing a callback, matching the original's `async fn delay`.
func (a Address) Delay(ctx context.Context, d time.Duration) error {
	_, err := actor.Request(ctx, a.addr, handleDelay, delayMsg{duration: d})

	return err
}
