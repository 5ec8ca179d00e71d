// Package mainloop provides the single logical execution context workflows
// are driven from. Closures posted to a Loop run one at a time on the
// goroutine that called Run; slow work runs on a background pond pool and
// reports back by posting to the loop.
package mainloop

import (
	"context"
	"errors"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/arflow/envutil"
	"github.com/amp-labs/arflow/logger"
	"go.uber.org/atomic"
)

const (
	defaultWorkerCount = 4
	defaultQueueSize   = 64

	// EnvWorkerCount overrides the background pool size.
	EnvWorkerCount = "ARFLOW_BACKGROUND_WORKERS"
)

var (
	// ErrStopped is returned when work is posted to a stopped loop.
	ErrStopped = errors.New("main loop stopped")
	// ErrAlreadyRunning is returned when Run is called twice.
	ErrAlreadyRunning = errors.New("main loop already running")
)

// Loop serializes closures onto one goroutine.
type Loop struct {
	tasks   chan func()
	quit    chan struct{}
	pool    pond.Pool
	running *atomic.Bool
	stopped *atomic.Bool
}

type settings struct {
	workers   int
	queueSize int
}

// Option configures a Loop.
type Option func(*settings)

// WithWorkers sets the background pool size.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithQueueSize sets how many posted closures may wait before Post blocks.
func WithQueueSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// New creates a loop. It does nothing until Run is called.
func New(ctx context.Context, opts ...Option) *Loop {
	s := settings{
		workers: envutil.Int(ctx, EnvWorkerCount,
			envutil.Default(defaultWorkerCount),
			envutil.Validate(envutil.Positive[int])).ValueOrElse(defaultWorkerCount),
		queueSize: defaultQueueSize,
	}

	for _, opt := range opts {
		opt(&s)
	}

	logger.Get(ctx).Debug("Initializing background worker pool", "count", s.workers)

	return &Loop{
		tasks:   make(chan func(), s.queueSize),
		quit:    make(chan struct{}),
		pool:    pond.NewPool(s.workers),
		running: atomic.NewBool(false),
		stopped: atomic.NewBool(false),
	}
}

// Run executes posted closures until ctx is done or Stop is called. It
// returns ctx.Err() on cancellation and nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.quit:
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Post queues fn to run on the loop.
func (l *Loop) Post(fn func()) error {
	if l.stopped.Load() {
		return ErrStopped
	}

	select {
	case l.tasks <- fn:
		return nil
	case <-l.quit:
		return ErrStopped
	}
}

// Do posts fn and waits for it to finish. It must not be called from the
// loop itself.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})

	err := l.Post(func() {
		defer close(done)

		fn()
	})
	if err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.quit:
		return ErrStopped
	}
}

// Go runs work on the background pool and posts then, if not nil, back to
// the loop once work returns.
func (l *Loop) Go(ctx context.Context, work func(ctx context.Context), then func()) error {
	if l.stopped.Load() {
		return ErrStopped
	}

	err := l.pool.Go(func() {
		work(ctx)

		if then == nil || ctx.Err() != nil {
			return
		}

		if err := l.Post(then); err != nil {
			logger.Get(ctx).Debug("Dropping background result", "error", err)
		}
	})
	if err != nil {
		return errors.Join(ErrStopped, err)
	}

	return nil
}

// Done is closed once Stop has been called. Closures still queued at that
// point never run.
func (l *Loop) Done() <-chan struct{} {
	return l.quit
}

// Stop ends Run and waits for background work to finish. Closures still in
// the queue are dropped.
func (l *Loop) Stop() {
	if !l.stopped.CompareAndSwap(false, true) {
		return
	}

	close(l.quit)

	l.pool.StopAndWait()
}
