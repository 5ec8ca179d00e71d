// Package analytics records a screen view every time a workflow shows a new
// screen. A screen is a state variant: payload-only changes, such as a corner
// count going up, do not count as a new view.
package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/amp-labs/arflow/logger"
	"github.com/amp-labs/arflow/statemachine"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var screenViewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "arflow_analytics_screen_views_total",
	Help: "Total number of recorded screen views by workflow and screen",
}, []string{"workflow", "screen"})

// ScreenView is one recorded screen.
type ScreenView struct {
	ID          uuid.UUID
	Session     string
	SessionHash uint64
	Workflow    string
	Screen      string
	Title       string
	At          time.Time
}

// Sink receives screen views. It is called on the dispatching goroutine and
// must not block.
type Sink interface {
	Record(ctx context.Context, view ScreenView)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, view ScreenView)

func (f SinkFunc) Record(ctx context.Context, view ScreenView) {
	f(ctx, view)
}

// LogSink writes every view to the context logger.
type LogSink struct{}

func (LogSink) Record(ctx context.Context, view ScreenView) {
	logger.Get(ctx).InfoContext(ctx, "Screen view",
		"view_id", view.ID.String(),
		"screen", view.Screen,
		"title", view.Title,
		"session_hash", view.SessionHash,
	)
}

type settings struct {
	session string
	sink    Sink
	metrics bool
	now     func() time.Time
}

// Option configures a Tracker.
type Option func(*settings)

// WithSession sets the session id. A random one is generated otherwise.
func WithSession(id string) Option {
	return func(s *settings) {
		s.session = id
	}
}

// WithSink sets where views are delivered. Defaults to LogSink.
func WithSink(sink Sink) Option {
	return func(s *settings) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithMetrics enables or disables the screen view counter. Enabled by default.
func WithMetrics(enabled bool) Option {
	return func(s *settings) {
		s.metrics = enabled
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// Tracker records screen views for one workflow session. Its accessors are
// safe to call from any goroutine.
type Tracker struct {
	ctx         context.Context //nolint:containedctx // views are recorded from observer callbacks
	workflow    string
	session     string
	sessionHash uint64
	sink        Sink
	metrics     bool
	now         func() time.Time

	last  *atomic.String
	views *atomic.Int64

	unsubscribe func()
}

// Track subscribes to the observable and records the current screen right
// away, then one view per screen change.
func Track[S statemachine.StateVariant](
	ctx context.Context,
	workflow string,
	source statemachine.Observable[S],
	opts ...Option,
) *Tracker {
	s := settings{
		sink:    LogSink{},
		metrics: true,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(&s)
	}

	if s.session == "" {
		s.session = uuid.NewString()
	}

	if ctx == nil {
		ctx = context.Background()
	}

	tracker := &Tracker{
		ctx:         logger.WithSessionID(logger.WithWorkflow(ctx, workflow), s.session),
		workflow:    workflow,
		session:     s.session,
		sessionHash: xxh3.HashString(s.session),
		sink:        s.sink,
		metrics:     s.metrics,
		now:         s.now,
		last:        atomic.NewString(""),
		views:       atomic.NewInt64(0),
	}

	tracker.observe(source.State().Name())
	tracker.unsubscribe = source.Subscribe(func(state S) {
		tracker.observe(state.Name())
	})

	return tracker
}

func (t *Tracker) observe(screen string) {
	if t.last.Swap(screen) == screen {
		return
	}

	t.views.Inc()

	if t.metrics {
		screenViewsTotal.WithLabelValues(t.workflow, screen).Inc()
	}

	t.sink.Record(t.ctx, ScreenView{
		ID:          uuid.New(),
		Session:     t.session,
		SessionHash: t.sessionHash,
		Workflow:    t.workflow,
		Screen:      screen,
		Title:       Title(screen),
		At:          t.now(),
	})
}

// Session returns the session id views are recorded under.
func (t *Tracker) Session() string {
	return t.session
}

// Last returns the most recently recorded screen.
func (t *Tracker) Last() string {
	return t.last.Load()
}

// Views returns the number of recorded views.
func (t *Tracker) Views() int64 {
	return t.views.Load()
}

// Stop unsubscribes the tracker. It is safe to call more than once.
func (t *Tracker) Stop() {
	t.unsubscribe()
}

var acronyms = map[string]string{
	"ui":    "UI",
	"ar":    "AR",
	"lidar": "LiDAR",
}

// Title renders a snake_case screen name for display, e.g.
// "lidar_occlusion_wizard" becomes "LiDAR Occlusion Wizard".
func Title(screen string) string {
	caser := cases.Title(language.English)
	words := strings.Split(screen, "_")

	for i, word := range words {
		if acronym, ok := acronyms[word]; ok {
			words[i] = acronym

			continue
		}

		words[i] = caser.String(word)
	}

	return strings.Join(words, " ")
}
