package actor

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/amp-labs/mote/logger"
)

// ErrActorPanic wraps a recovered handler panic. No panic crosses a
// handler boundary; it is always recovered and turned into this error.
var ErrActorPanic = errors.New("panic in actor handler")

// failable is implemented by work items that have somewhere to report a
// recovered panic (requestItem, via its response channel). tellItem and
// notifyItem have no caller waiting, so a panic there is logged only.
type failable interface {
	fail(err error)
}

func panicErr(err any, stack []byte) error {
	var wrapped error
	if e, ok := err.(error); ok {
		wrapped = fmt.Errorf("%w: %w", ErrActorPanic, e)
	} else {
		wrapped = fmt.Errorf("%w: %v", ErrActorPanic, err)
	}

	return logger.AnnotateError(wrapped, "stack", string(stack))
}

// safePoll invokes item.poll with panic recovery, generalized from
// "per message" to "per work item" so a blown-up handler never takes down
// the supervisor loop.
func (c *Context[A]) safePoll(item workItem[A]) (done bool) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			handlerPanics.WithLabelValues(c.identity.name).Inc()
			c.log.Error("actor recovered from panic", "error", r, "stack", string(stack))

			if f, ok := item.(failable); ok {
				f.fail(panicErr(r, stack))
			}

			done = true
		}
	}()

	return item.poll(c)
}

func (r *requestItem[A, M, R]) fail(err error) {
	r.deliver(r.zeroValue(), err)
}

func (r *requestItem[A, M, R]) zeroValue() R {
	var zero R

	return zero
}
