package actor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics here are promauto vectors labeled by actor name, scaled down to
// what a single-threaded runtime can usefully report: there is no
// per-actor goroutine to count as alive/busy, but inbox depth and
// dropped/panicking messages are exactly the signals an embedded
// supervisor loop needs on a host dashboard.
var ( //nolint:gochecknoglobals
	inboxDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mote_actor_inbox_depth",
		Help: "Number of work items currently queued for an actor.",
	}, []string{"actor"})

	messagesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mote_actor_messages_dropped_total",
		Help: "Messages dropped because an actor's inbox was full.",
	}, []string{"actor"})

	handlerPanics = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mote_actor_handler_panics_total",
		Help: "Handler panics recovered while polling an actor.",
	}, []string{"actor"})
)
