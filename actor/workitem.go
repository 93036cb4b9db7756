package actor

import "github.com/amp-labs/mote/try"

// workItem is a type-erased closure that, when invoked, applies one
// message to the actor and resolves any associated response channel. poll
// is called at most once per supervisor sweep per item; it reports
// whether the item is fully done (and can be dropped from the inbox) or
// still pending.
type workItem[A any] interface {
	poll(c *Context[A]) bool
}

// startItem runs OnStart exactly once. It is always the first item in a
// freshly mounted context's inbox.
type startItem[A any] struct{}

func (startItem[A]) poll(c *Context[A]) bool {
	if s, ok := any(c.self).(Starter[A]); ok {
		c.self = s.OnStart().next
	}

	return true
}

// tellItem mutates the actor in place and never suspends.
type tellItem[A any, M any] struct {
	handler func(*A, M)
	msg     M
}

func (t *tellItem[A, M]) poll(c *Context[A]) bool {
	t.handler(&c.self, t.msg)

	return true
}

// notifyItem consumes and replaces the actor's state and never suspends.
type notifyItem[A any, M any] struct {
	handler func(A, M) Completion[A]
	msg     M
}

func (n *notifyItem[A, M]) poll(c *Context[A]) bool {
	c.self = n.handler(c.self, n.msg).next

	return true
}

// requestItem is the only work item that can legitimately report pending:
// its handler may chain a PendingFuture via ResponseFuture.
// Once invoked, the handler itself is never called again; only the chained
// future is re-polled on subsequent sweeps.
type requestItem[A any, M any, R any] struct {
	handler func(A, M) Response[A, R]
	msg     M
	respCh  chan try.Try[R]

	invoked bool
	pending PendingFuture[R]
}

func (r *requestItem[A, M, R]) poll(c *Context[A]) bool {
	if !r.invoked {
		r.invoked = true

		resp := r.handler(c.self, r.msg)
		c.self = resp.next

		if resp.pending == nil {
			r.deliver(resp.value, nil)

			return true
		}

		r.pending = resp.pending
	}

	value, ready := r.pending.Poll(c.wake)
	if !ready {
		return false
	}

	r.deliver(value, nil)

	return true
}

func (r *requestItem[A, M, R]) deliver(value R, err error) {
	select {
	case r.respCh <- try.Try[R]{Value: value, Error: err}:
	default:
		// Caller already gave up (context canceled); nothing to deliver to.
	}
}
