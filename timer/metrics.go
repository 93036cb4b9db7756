package timer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Slot exhaustion on a statically-sized 16-entry table is the one failure
// mode this multiplexer can hit in normal operation (too many concurrent
// delays/schedules for the workload it was sized for), so it gets its own
// counters rather than reusing the generic actor-level ones.
var ( //nolint:gochecknoglobals
	delaySlotsExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mote_timer_delay_slots_exhausted_total",
		Help: "Delay requests that found all 16 delay slots occupied.",
	})

	scheduleSlotsExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mote_timer_schedule_slots_exhausted_total",
		Help: "Schedule requests that found all 16 schedule slots occupied.",
	})
)
