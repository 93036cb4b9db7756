package actor

import "go.uber.org/atomic"

// State is the tri-state readiness flag for a scheduled actor. It is
// backed by go.uber.org/atomic rather than a bare sync/atomic.Uint32, the
// same choice made elsewhere in this codebase for fields mutated from more
// than one goroutine.
type State uint32

const (
	// StateIdle means the context has nothing to do and is not scheduled.
	StateIdle State = iota
	// StateWaiting means the context's last poll returned pending; it will
	// not be polled again until its waker fires.
	StateWaiting
	// StateReady means the context has work and should be polled on the
	// next supervisor sweep.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// readiness wraps the atomic word itself. Every transition here matches one
// edge of the IDLE/WAITING/READY state table; the comment on each method
// names it.
type readiness struct {
	v atomic.Uint32
}

// Load returns the current state (acquire semantics: go.uber.org/atomic's
// Uint32 uses sequentially consistent loads/stores, a strictly stronger
// guarantee than the acquire/release this actually needs).
func (r *readiness) Load() State {
	return State(r.v.Load())
}

// markReady implements the IDLE→READY and WAITING→READY edges: a sender
// enqueued work, or a waker fired. Safe to call from any goroutine.
func (r *readiness) markReady() {
	r.v.Store(uint32(StateReady))
}

// markWaiting implements IDLE→WAITING: a poll returned pending (beginPoll
// already left the context IDLE). Only the supervisor, mid-poll, makes this
// transition. If a waker fired or work was enqueued while the poll ran, the
// context is READY again and stays READY.
func (r *readiness) markWaiting() {
	r.v.CompareAndSwap(uint32(StateIdle), uint32(StateWaiting))
}

// markIdle implements READY→IDLE or WAITING→IDLE: a poll drained
// everything. Only the supervisor makes this transition.
func (r *readiness) markIdle() {
	r.v.Store(uint32(StateIdle))
}

// beginPoll implements the one transition the supervisor performs before
// running a poll: READY→IDLE. It reports whether the context was actually
// READY (and therefore should be polled at all).
func (r *readiness) beginPoll() bool {
	return r.v.CompareAndSwap(uint32(StateReady), uint32(StateIdle))
}
