package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/arflow/envutil"
)

// Default subsystem name, set by ConfigureLogging. Stored atomically so
// readers never race with reconfiguration.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex serializes calls that replace the global slog default.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer

	// Extra handlers receive every record as well, e.g. the OpenTelemetry
	// log bridge installed by the telemetry package.
	Extra []slog.Handler
}

// ConfigureLoggingWithOptions configures logging for the application and
// returns the new default logger.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	if len(opts.Extra) > 0 {
		handler = Tee(append([]slog.Handler{handler}, opts.Extra...)...)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	// Packages still using the log package end up in slog too.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for ConfigureLogging.
type Option func(*Options)

// WithExtraHandler adds a handler that receives every record.
func WithExtraHandler(h slog.Handler) Option {
	return func(o *Options) {
		if h != nil {
			o.Extra = append(o.Extra, h)
		}
	}
}

// WithOutput overrides the output writer.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// ConfigureLogging configures logging from the environment:
//
//	LOG_JSON          bool, default false
//	LOG_LEVEL         debug|info|warn|error, default info
//	LEGACY_LOG_LEVEL  level used for the log package, default info
//	LOG_OUTPUT        stdout|stderr, default stdout
func ConfigureLogging(ctx context.Context, app string, opts ...Option) (*slog.Logger, error) {
	logJSON, err := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	minLevel, err := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	legacyLevel, err := envutil.SlogLevel(ctx, "LEGACY_LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	output, err := envutil.Map(envutil.String(ctx, "LOG_OUTPUT", envutil.Default("stdout")),
		func(outName string) (io.Writer, error) {
			switch outName {
			case "stdout":
				return os.Stdout, nil
			case "stderr":
				return os.Stderr, nil
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
			}
		}).Value()
	if err != nil {
		return nil, err
	}

	options := Options{
		Subsystem:   app,
		JSON:        logJSON,
		MinLevel:    minLevel,
		LegacyLevel: legacyLevel,
		Output:      output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}

// WithMuted marks the context so that loggers obtained from it discard
// everything. Useful for high-frequency sensor events.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithSubsystem overrides the subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context, falling back to the
// one passed to ConfigureLogging.
func GetSubsystem(ctx context.Context) string {
	if ctx != nil {
		if sub, ok := ctx.Value(contextKey("subsystem")).(string); ok {
			return sub
		}
	}

	if defaultSub, ok := subsystem.Load().(string); ok {
		return defaultSub
	}

	return ""
}

// WithSessionID attaches the AR session id to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("session_id"), sessionID)
}

// GetSessionID returns the AR session id, if any.
func GetSessionID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(contextKey("session_id")).(string)

	return val, ok
}

// WithWorkflow attaches the workflow name to the context.
func WithWorkflow(ctx context.Context, workflow string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("workflow"), workflow)
}

// GetWorkflow returns the workflow name, if any.
func GetWorkflow(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(contextKey("workflow")).(string)

	return val, ok
}

// nullHandler discards everything; it backs muted contexts.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool { return false }

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error { return nil }

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler { return n }

func (n *nullHandler) WithGroup(_ string) slog.Handler { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger carrying the subsystem plus the session id, workflow
// and any values added with With. Only the first non-nil context is used.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c //nolint:fatcontext

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With("subsystem", GetSubsystem(realCtx))

	if sessionID, ok := GetSessionID(realCtx); ok {
		logger = logger.With("session_id", sessionID)
	}

	if workflow, ok := GetWorkflow(realCtx); ok {
		logger = logger.With("workflow", workflow)
	}

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}

// With returns a new context whose loggers include the given key-value pairs.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	existing := getValues(ctx)
	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(contextKey("loggerValues")).([]any)

	return vals
}
