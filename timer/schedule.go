package timer

import (
	"time"

	"github.com/amp-labs/mote/actor"
)

// Schedulable is the type-erased form a Schedule entry is stored as once
// its target actor and event type have been bound in, so a single fixed
// [16]Schedulable array can hold entries for any number of different actor
// and event types. Grounded on the original's `Box<dyn Schedulable>`; Go's
// interface values already erase the concrete type without needing heap
// boxing to be spelled out explicitly.
type Schedulable interface {
	run()
	expiration() time.Duration
	setExpiration(time.Duration)
}

// scheduleEntry binds one recurring-notify request to its concrete target
// actor type A and event type E. Unlike a Delay, a Schedule never suspends
// a caller: firing it means dispatching a Notify directly to target.
type scheduleEntry[A any, E any] struct {
	exp     time.Duration
	target  actor.Address[A]
	handler func(A, E) actor.Completion[A]
	event   E
}

func (e *scheduleEntry[A, E]) run() {
	actor.Notify(e.target, e.handler, e.event)
}

func (e *scheduleEntry[A, E]) expiration() time.Duration { return e.exp }

func (e *scheduleEntry[A, E]) setExpiration(d time.Duration) { e.exp = d }

type scheduleMsg[A any, E any] struct {
	delay   time.Duration
	target  actor.Address[A]
	handler func(A, E) actor.Completion[A]
	event   E
}

func handleSchedule[A any, E any](self TimerActor, msg scheduleMsg[A, E]) actor.Completion[TimerActor] {
	entry := &scheduleEntry[A, E]{
		exp:     msg.delay,
		target:  msg.target,
		handler: msg.handler,
		event:   msg.event,
	}

	if !self.shared.startSchedule(msg.delay, entry) {
		self.shared.log.Warn("schedule slots exhausted, dropping", "requested", msg.delay)
		scheduleSlotsExhausted.Inc()
	}

	return actor.CompletionImmediate(self)
}

func (s *Shared) startSchedule(d time.Duration, entry Schedulable) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, slot := range s.schedules {
		if slot != nil {
			continue
		}

		s.schedules[i] = entry
		s.arm(d)

		return true
	}

	return false
}

// Schedule arms target to receive event, dispatched via handler, once d has
// elapsed — fire-and-forget, re-armed automatically after it fires if the
// handler schedules another one (that's how Blinker cycles forever). A
// package-level function rather than an Address method because Go methods
// cannot introduce type parameters beyond their receiver's.
func Schedule[A any, E any](
	t Address,
	d time.Duration,
	target actor.Address[A],
	handler func(A, E) actor.Completion[A],
	event E,
) {
	actor.Notify(t.addr, handleSchedule[A, E], scheduleMsg[A, E]{
		delay:   d,
		target:  target,
		handler: handler,
		event:   event,
	})
}
