package testing

import (
	"slices"
	"sync"

	"github.com/amp-labs/arflow/statemachine"
)

// Recorder collects the states published by an Observable.
type Recorder[S statemachine.StateVariant] struct {
	mu     sync.Mutex
	states []S
	stop   func()
}

// Record subscribes a new Recorder to obs.
func Record[S statemachine.StateVariant](obs statemachine.Observable[S]) *Recorder[S] {
	rec := &Recorder[S]{}
	rec.stop = obs.Subscribe(func(state S) {
		rec.mu.Lock()
		defer rec.mu.Unlock()

		rec.states = append(rec.states, state)
	})

	return rec
}

// States returns the published states in order.
func (r *Recorder[S]) States() []S {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.states)
}

// Len returns the number of published states.
func (r *Recorder[S]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.states)
}

// Stop unsubscribes the recorder.
func (r *Recorder[S]) Stop() {
	r.stop()
}
