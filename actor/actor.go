// Package actor implements the address/dispatch and actor-context layer of
// the runtime: actors that own exactly one piece of state, communicate only
// by message passing, and are polled to completion by a supervisor.
//
// Rather than one goroutine per actor blocking on a buffered mailbox,
// every actor here shares a single logical thread. Sending a message never
// blocks the sender; it appends a work item to the target's inbox and
// marks the target ready, and a Supervisor elsewhere decides when to
// actually run it. See package supervisor.
package actor

import (
	"fmt"

	"github.com/google/uuid"
)

// Completion is the return value of a notify handler or OnStart: the
// actor's replacement state, available immediately. Notify handlers always
// consume self and hand back a (possibly different) value of the same type.
type Completion[A any] struct {
	next A
}

// CompletionImmediate builds a Completion from the actor's next state.
func CompletionImmediate[A any](next A) Completion[A] {
	return Completion[A]{next: next}
}

// Response is the return value of a request handler: the actor's
// replacement state plus either an immediately available result or a
// PendingFuture the caller must wait on.
type Response[A any, R any] struct {
	next    A
	value   R
	pending PendingFuture[R]
}

// ResponseImmediate builds a Response that resolves without suspending.
func ResponseImmediate[A any, R any](next A, value R) Response[A, R] {
	return Response[A, R]{next: next, value: value}
}

// ResponseFuture builds a Response that resolves once fut reports ready.
func ResponseFuture[A any, R any](next A, fut PendingFuture[R]) Response[A, R] {
	return Response[A, R]{next: next, pending: fut}
}

// PendingFuture is a future chained onto a request handler's response via
// ResponseFuture. Poll is called with a wake function: if the future isn't
// ready yet, it must arrange for wake to be invoked exactly when it becomes
// ready (the timer package's delayFuture is the only implementation the
// core ships with). wake may be called from any goroutine, including the
// one standing in for an interrupt.
type PendingFuture[R any] interface {
	Poll(wake func()) (R, bool)
}

// Mounter is implemented by actors that need their own address during
// the binding step that runs after Mount returns, using exactly this
// address.
type Mounter[A any] interface {
	OnMount(self Address[A])
}

// Starter is implemented by actors with first-activation behavior. OnStart
// is always the first work item scheduled for a context after Mount.
type Starter[A any] interface {
	OnStart() Completion[A]
}

// ErrUnbound is the sentinel actors should panic with from OnStart when a
// required binding slot (see package bind) was never filled. Missing
// bindings are a programmer error, not a recoverable condition.
type ErrUnbound struct {
	Actor string
	Slot  string
}

func (e ErrUnbound) Error() string {
	return fmt.Sprintf("actor %s: required binding %q was never filled before OnStart", e.Actor, e.Slot)
}

// identity is the diagnostic correlation pair stamped onto every mounted
// context: tagging concurrent work with a UUID makes log lines easy to
// correlate. It has no effect on dispatch semantics.
type identity struct {
	name string
	id   uuid.UUID
}

func newIdentity(name string) identity {
	return identity{name: name, id: uuid.New()}
}

func (i identity) String() string {
	return fmt.Sprintf("%s/%s", i.name, i.id)
}
