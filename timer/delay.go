package timer

import (
	"time"

	"github.com/amp-labs/mote/actor"
)

// delaySlot is one in-flight Delay request: the time left and, once a
// caller has polled and found it not yet ready, the wake callback to invoke
// when it reaches zero.
type delaySlot struct {
	expiration time.Duration
	wake       func()
}

type delayMsg struct {
	duration time.Duration
}

func handleDelay(self TimerActor, msg delayMsg) actor.Response[TimerActor, struct{}] {
	fut, ok := self.shared.startDelay(msg.duration)
	if !ok {
		self.shared.log.Warn("delay slots exhausted, resolving immediately", "requested", msg.duration)
		delaySlotsExhausted.Inc()

		return actor.ResponseImmediate(self, struct{}{})
	}

	return actor.ResponseFuture(self, fut)
}

// startDelay claims a free slot and arms the hardware timer if needed. It
// reports ok=false if all 16 slots are in use, matching the original's
// silent "no free slot, resolve immediately" fallback rather than blocking
// a caller on a future that will never be signaled.
func (s *Shared) startDelay(d time.Duration) (actor.PendingFuture[struct{}], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, slot := range s.delays {
		if slot != nil {
			continue
		}

		s.delays[i] = &delaySlot{expiration: d}
		s.arm(d)

		return &delayFuture{shared: s, index: i}, true
	}

	return nil, false
}

// delayFuture is the PendingFuture a Delay request suspends on. Poll is
// called both right after the request (to catch an already-armed shorter
// timer firing before the caller ever awaits) and again each time the
// interrupt handler invokes the registered wake callback.
type delayFuture struct {
	shared *Shared
	index  int
}

func (f *delayFuture) Poll(wake func()) (struct{}, bool) {
	f.shared.mu.Lock()
	defer f.shared.mu.Unlock()

	slot := f.shared.delays[f.index]
	if slot == nil || slot.expiration == 0 {
		f.shared.delays[f.index] = nil

		return struct{}{}, true
	}

	slot.wake = wake

	return struct{}{}, false
}
