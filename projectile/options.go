package projectile

import (
	"runtime"

	"golang.org/x/time/rate"

	"github.com/hupe1980/rtc"
)

// DefaultMaxTicks bounds a simulation unless WithMaxTicks says otherwise.
const DefaultMaxTicks = 100_000

type options struct {
	maxTicks    int
	record      bool
	observers   []func(Sample)
	logger      *rtc.Logger
	metrics     rtc.MetricsCollector
	limiter     *rate.Limiter
	concurrency int
}

func defaultOptions() options {
	return options{
		maxTicks:    DefaultMaxTicks,
		record:      true,
		logger:      rtc.NoopLogger(),
		metrics:     rtc.NoopMetricsCollector{},
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// Option configures Simulate and Sweep.
type Option func(*options)

// WithMaxTicks stops a simulation with ErrMaxTicks after n ticks.
// n <= 0 removes the bound; a projectile that never falls then runs until
// the context is cancelled.
func WithMaxTicks(n int) Option {
	return func(o *options) {
		o.maxTicks = n
	}
}

// WithRecord controls whether Result.Trajectory is populated.
// Recording is on by default.
func WithRecord(record bool) Option {
	return func(o *options) {
		o.record = record
	}
}

// WithObserver registers fn to be called after every tick.
// Observers run synchronously on the simulating goroutine; in a Sweep
// they may be called concurrently from different runs.
func WithObserver(fn func(Sample)) Option {
	return func(o *options) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// WithLogger configures structured logging. Ticks are logged at debug
// level, landings at info.
//
// If nil is passed, logging is disabled.
func WithLogger(l *rtc.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = rtc.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetrics(m rtc.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = rtc.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithLimiter paces ticks, e.g. for live display. Each tick waits for one
// token from l.
//
// Example:
//
//	// 30 ticks per second
//	projectile.WithLimiter(rate.NewLimiter(30, 1))
func WithLimiter(l *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}

// WithConcurrency limits the number of simulations Sweep runs at once.
// n <= 0 means runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}
