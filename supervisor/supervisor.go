// Package supervisor implements the cooperative scheduler: a static
// registry of up to 16 actor contexts, polled to quiescence, then parked
// until an interrupt (or any other wake source) has more work for it.
package supervisor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amp-labs/mote/actor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// maxActors is the static registry size, matching the `heapless::Vec<_,
// U16>` the original Rust supervisor used.
const maxActors = 16

// ErrRegistryFull is the panic value Add raises once maxActors contexts are
// mounted. Actors are only ever created during init; running out of
// registry slots is a build-time sizing mistake, not a runtime condition to
// recover from.
var ErrRegistryFull = errors.New("supervisor: registry full (max 16 actors)")

// Supervisor is the root scheduler. The zero value is not usable; use New.
type Supervisor struct {
	actors []actor.Pollable
	wake   chan struct{}
	log    *slog.Logger
}

// New returns an empty Supervisor ready for Add calls during program init.
func New() *Supervisor {
	return &Supervisor{
		wake: make(chan struct{}, 1),
		log:  slog.Default().With("component", "supervisor"),
	}
}

// Add registers p with the supervisor. This must only happen during init;
// Add panics past the 16-actor limit rather than returning an error, since
// by the time actors are mounting there is no sensible recovery path on a
// statically-sized embedded target.
func (s *Supervisor) Add(p actor.Pollable) {
	if len(s.actors) >= maxActors {
		panic(ErrRegistryFull)
	}

	s.actors = append(s.actors, p)
	actorsRegistered.Set(float64(len(s.actors)))
}

// Poke wakes a blocked RunForever loop. It is the Registrar half of the
// waker protocol: any context's wake() calls this after marking itself
// READY, including from the goroutine standing in for an interrupt.
func (s *Supervisor) Poke() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// RunUntilQuiescence sweeps the registry in registration order, polling
// every READY context, until a full pass finds nothing to do. The original
// Rust source's `run_again` flag was initialized false and guarded its own
// loop, so the loop body never ran at all; here a sweep runs at least once
// and repeats for as long as it makes progress.
func (s *Supervisor) RunUntilQuiescence() {
	for {
		progressed := false

		for _, p := range s.actors {
			if !p.Ready() {
				continue
			}

			if !p.BeginPoll() {
				// Lost a race with a concurrent wake between Ready() and
				// BeginPoll(); the next sweep will catch it.
				continue
			}

			sweepsTotal.WithLabelValues(p.Name()).Inc()
			p.Poll()
			progressed = true
		}

		if !progressed {
			return
		}
	}
}

// RunForever runs quiescence sweeps indefinitely, parking between sweeps
// until something pokes the supervisor: halt, wait for interrupt, then
// repeat. It returns when ctx is done.
func (s *Supervisor) RunForever(ctx context.Context) {
	for {
		s.RunUntilQuiescence()

		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		}
	}
}

var ( //nolint:gochecknoglobals
	actorsRegistered = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mote_supervisor_actors_registered",
		Help: "Number of actors currently registered with the supervisor.",
	})

	sweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mote_supervisor_actor_polls_total",
		Help: "Number of times an actor was polled by the supervisor.",
	}, []string{"actor"})
)
