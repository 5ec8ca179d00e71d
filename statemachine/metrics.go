package statemachine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric definitions. Label values are variant names, never payloads, so
// cardinality is bounded by the size of each workflow's vocabulary.
var (
	// dispatchTotal counts dispatched events by workflow, event and outcome.
	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arflow_statemachine_dispatch_total",
		Help: "Total number of dispatched events by workflow, state, event and outcome",
	}, []string{"workflow", "state", "event", "outcome"})

	// transitionTotal counts committed state changes.
	transitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arflow_statemachine_transitions_total",
		Help: "Total number of published state changes by workflow, from_state and to_state",
	}, []string{"workflow", "from_state", "to_state"})

	// commandsTotal counts commands handed to the façade.
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arflow_statemachine_commands_total",
		Help: "Total number of emitted commands by workflow and command",
	}, []string{"workflow", "command"})

	// dispatchDuration tracks the time spent evaluating and committing an event.
	dispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arflow_statemachine_dispatch_duration_seconds",
		Help:    "Duration of a single dispatch (transition, commit, trace) by workflow",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
	}, []string{"workflow"})
)

func recordDispatch(trace Trace, elapsed time.Duration) {
	workflow := sanitizeWorkflow(trace.Workflow)

	dispatchTotal.WithLabelValues(workflow, trace.From, trace.Event, trace.Kind.String()).Inc()

	if trace.Changed {
		transitionTotal.WithLabelValues(workflow, trace.From, trace.To).Inc()
	}

	for _, cmd := range trace.Commands {
		commandsTotal.WithLabelValues(workflow, cmd).Inc()
	}

	dispatchDuration.WithLabelValues(workflow).Observe(elapsed.Seconds())
}

func sanitizeWorkflow(workflow string) string {
	if workflow == "" {
		return "unknown"
	}

	return workflow
}
