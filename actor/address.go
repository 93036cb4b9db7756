package actor

import (
	"context"

	"github.com/amp-labs/mote/try"
)

// Address is a stable, freely copyable handle to a Context[A]. It never
// owns the context and carries no cloning machinery beyond a plain struct
// copy — the original Rust Address::clone's interior-mutability question
// doesn't arise in Go, since there is nothing to guard.
type Address[A any] struct {
	ctx *Context[A]
}

// Valid reports whether the address actually points at a mounted context.
// A zero-value Address (e.g. an unfilled binding slot) is invalid.
func (a Address[A]) Valid() bool { return a.ctx != nil }

// Name returns the target actor's registered name, or "" for an invalid
// address.
func (a Address[A]) Name() string {
	if a.ctx == nil {
		return ""
	}

	return a.ctx.Name()
}

// Bind runs fn synchronously against the target actor's live state. It
// exists for package bind's wiring step: unlike Tell, it is not a work item
// and does not go through the inbox, because binding must complete before
// the supervisor ever polls the actor, not merely be ordered ahead of other
// messages.
func (a Address[A]) Bind(fn func(*A)) {
	fn(&a.ctx.self)
}

// Tell enqueues a fire-and-forget item that mutates the target in place via
// handler. Marks the target READY; never blocks the caller.
func Tell[A any, M any](addr Address[A], handler func(*A, M), msg M) {
	addr.ctx.enqueue(&tellItem[A, M]{handler: handler, msg: msg})
}

// Notify enqueues a fire-and-forget item whose handler consumes and
// replaces the target's entire state. Marks the target READY; never blocks
// the caller.
func Notify[A any, M any](addr Address[A], handler func(A, M) Completion[A], msg M) {
	addr.ctx.enqueue(&notifyItem[A, M]{handler: handler, msg: msg})
}

// Request enqueues a work item bundled with a one-slot response channel and
// blocks the caller (not the target) until the handler's Response resolves
// or ctx is canceled. There is no built-in timeout; compose one externally
// via ctx or package timer.
func Request[A any, M any, R any](
	ctx context.Context,
	addr Address[A],
	handler func(A, M) Response[A, R],
	msg M,
) (R, error) {
	respCh := make(chan try.Try[R], 1)
	addr.ctx.enqueue(&requestItem[A, M, R]{handler: handler, msg: msg, respCh: respCh})

	select {
	case <-ctxDone(ctx):
		var zero R

		return zero, ctx.Err()
	case t := <-respCh:
		return t.Get()
	}
}
