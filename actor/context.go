package actor

import (
	"context"
	"log/slog"
	"sync"
)

// inboxCapacity bounds every context's inbox. An overflow is a programmer
// error and is reported by dropping the message with a diagnostic: a
// static workload on a resource-constrained MCU never needs an unbounded,
// heap-growing queue.
const inboxCapacity = 32

// Registrar is what a Context needs from whatever is going to schedule it.
// *supervisor.Supervisor satisfies this structurally; Context never imports
// package supervisor, which is what keeps supervisor -> actor a one-way
// dependency.
type Registrar interface {
	Add(Pollable)
	Poke()
}

// Pollable is the supervisor-facing view of a Context: enough to run the
// scheduling algorithm without the supervisor needing to know the actor's
// concrete type.
type Pollable interface {
	Name() string
	Ready() bool
	// BeginPoll performs the READY→IDLE transition (the one edge the
	// supervisor, and only the supervisor, is allowed to make) and reports
	// whether the context was actually ready to poll.
	BeginPoll() bool
	Poll()
}

// Context is the stable, program-lifetime home for one actor's state, its
// inbox, and its readiness flag. It is never destroyed; Mount is called
// exactly once, at init.
type Context[A any] struct {
	identity

	mu    sync.Mutex
	inbox []workItem[A]

	self A
	addr Address[A]
	reg  Registrar

	state readiness

	log *slog.Logger
}

// NewContext allocates a context for the given initial actor state. name is
// used for logging, metrics, and diagnostics only.
func NewContext[A any](name string, initial A) *Context[A] {
	c := &Context[A]{
		identity: newIdentity(name),
		self:     initial,
		log:      slog.Default().With("actor", name),
	}
	c.addr = Address[A]{ctx: c}

	return c
}

// Name returns the actor's registered name.
func (c *Context[A]) Name() string { return c.identity.name }

// Ready reports whether the context currently wants a poll.
func (c *Context[A]) Ready() bool { return c.state.Load() == StateReady }

// BeginPoll implements Pollable.BeginPoll.
func (c *Context[A]) BeginPoll() bool { return c.state.beginPoll() }

// wake implements the waker protocol: invoked from any goroutine
// (including the one standing in for an interrupt), it marks the owning
// context READY and pokes the registrar so a sleeping RunForever loop
// wakes up.
func (c *Context[A]) wake() {
	c.state.markReady()

	if c.reg != nil {
		c.reg.Poke()
	}
}

// Mount registers the context with reg, invokes OnMount if the actor wants
// its own address, and schedules OnStart as the first work item. It
// returns the address other actors use to reach this one. Mount must be
// called exactly once, during program init, before the supervisor starts
// polling.
func (c *Context[A]) Mount(reg Registrar) Address[A] {
	c.reg = reg

	if m, ok := any(&c.self).(Mounter[A]); ok {
		m.OnMount(c.addr)
	}

	reg.Add(c)
	c.enqueue(startItem[A]{})

	return c.addr
}

// enqueue appends a work item and marks the context ready, or drops the
// item and logs a diagnostic if the inbox is full.
func (c *Context[A]) enqueue(item workItem[A]) {
	c.mu.Lock()

	if len(c.inbox) >= inboxCapacity {
		c.mu.Unlock()

		messagesDropped.WithLabelValues(c.identity.name).Inc()
		c.log.Error("inbox overflow, dropping message", "capacity", inboxCapacity)

		return
	}

	c.inbox = append(c.inbox, item)
	depth := len(c.inbox)
	c.mu.Unlock()

	inboxDepth.WithLabelValues(c.identity.name).Set(float64(depth))
	c.wake()
}

// Poll implements Pollable.Poll: it walks the inbox in order, invoking
// every item's poll exactly once, removing those that complete, and
// leaving the rest in place in order. The supervisor must have already
// performed BeginPoll before calling this.
func (c *Context[A]) Poll() {
	c.mu.Lock()
	items := c.inbox
	c.inbox = nil
	c.mu.Unlock()

	remaining := make([]workItem[A], 0, len(items))
	anyPending := false

	for _, item := range items {
		if c.safePoll(item) {
			continue
		}

		remaining = append(remaining, item)
		anyPending = true
	}

	c.mu.Lock()
	c.inbox = append(remaining, c.inbox...)
	stillHasWork := len(c.inbox) > 0
	depth := len(c.inbox)
	c.mu.Unlock()

	inboxDepth.WithLabelValues(c.identity.name).Set(float64(depth))

	switch {
	case anyPending:
		c.state.markWaiting()
	case !stillHasWork:
		c.state.markIdle()
	}
	// stillHasWork && !anyPending: new tells/notifies arrived while this
	// poll ran. Their own enqueue already marked the context READY; the
	// next sweep picks them up.
}

// Logger returns the context's subsystem-scoped logger, for use inside
// handlers that need to report degraded conditions (e.g. timer slot
// exhaustion).
func (c *Context[A]) Logger() *slog.Logger { return c.log }

// ctxDone is a tiny seam so Request's blocking receive can also honor a
// caller context.Context without importing context into workitem.go.
func ctxDone(ctx context.Context) <-chan struct{} {
	if ctx == nil {
		return nil
	}

	return ctx.Done()
}
