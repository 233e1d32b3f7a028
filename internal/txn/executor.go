package txn

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultMaxAttempts bounds the attempts of a unit when Options.MaxAttempts is unset.
const DefaultMaxAttempts = 3

const instrumentationName = "github.com/xenking/shop-ledger/internal/txn"

// Options configures an Executor.
type Options struct {
	// MaxAttempts is the default number of attempts per unit, including the
	// first one. Defaults to DefaultMaxAttempts.
	MaxAttempts int
	// AttemptTimeout bounds a single attempt (begin, work and commit).
	// Zero means the attempt only inherits the caller's deadline.
	AttemptTimeout time.Duration
	// IsTransient classifies failures. Defaults to IsConflict.
	IsTransient TransientFunc

	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

func (o *Options) setDefaults() {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.IsTransient == nil {
		o.IsTransient = IsConflict
	}
	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}
}

// Executor runs units of work atomically, retrying transient failures a
// bounded number of times. It knows nothing about the records touched by the
// work it runs.
type Executor struct {
	db             Beginner
	isTransient    TransientFunc
	maxAttempts    int
	attemptTimeout time.Duration

	tracer    trace.Tracer
	attempts  metric.Int64Counter
	retries   metric.Int64Counter
	exhausted metric.Int64Counter
}

// NewExecutor creates an Executor over db.
func NewExecutor(db Beginner, opts Options) (*Executor, error) {
	opts.setDefaults()

	meter := opts.MeterProvider.Meter(instrumentationName)
	attempts, err := meter.Int64Counter("shop.txn.attempts",
		metric.WithDescription("Transaction attempts started"))
	if err != nil {
		return nil, errors.Wrap(err, "create attempts counter")
	}
	retries, err := meter.Int64Counter("shop.txn.retries",
		metric.WithDescription("Transaction attempts retried after a transient failure"))
	if err != nil {
		return nil, errors.Wrap(err, "create retries counter")
	}
	exhausted, err := meter.Int64Counter("shop.txn.exhausted",
		metric.WithDescription("Units that failed transiently on every attempt"))
	if err != nil {
		return nil, errors.Wrap(err, "create exhausted counter")
	}

	return &Executor{
		db:             db,
		isTransient:    opts.IsTransient,
		maxAttempts:    opts.MaxAttempts,
		attemptTimeout: opts.AttemptTimeout,
		tracer:         opts.TracerProvider.Tracer(instrumentationName),
		attempts:       attempts,
		retries:        retries,
		exhausted:      exhausted,
	}, nil
}

// MaxAttempts returns the default attempt bound.
func (e *Executor) MaxAttempts() int { return e.maxAttempts }

// CallOption tunes a single Run call.
type CallOption func(*callConfig)

type callConfig struct {
	maxAttempts int
}

// Attempts overrides the attempt bound for one call. Values below 1 are ignored.
func Attempts(n int) CallOption {
	return func(c *callConfig) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// Work is a unit of work. It may be invoked more than once, so it must not
// have side effects outside the Session it is given.
type Work[T any] func(ctx context.Context, s Session) (T, error)

// Run executes work inside a fresh transaction per attempt. On success the
// transaction is committed and the result returned. Permanent failures are
// returned as is after rollback. Transient failures, including a transient
// commit failure, start a new attempt until the bound is reached, after which
// an *ExhaustedError is returned.
//
// The context passed to work is marked as belonging to the unit; calling Run
// with it again fails with ErrNestedUnit.
func Run[T any](ctx context.Context, e *Executor, work Work[T], opts ...CallOption) (T, error) {
	var zero T
	if InUnit(ctx) {
		return zero, ErrNestedUnit
	}

	cfg := callConfig{maxAttempts: e.maxAttempts}
	for _, o := range opts {
		o(&cfg)
	}

	ctx, span := e.tracer.Start(ctx, "txn.Run")
	defer span.End()

	lg := zctx.From(ctx)
	for attempt := 1; ; attempt++ {
		e.attempts.Add(ctx, 1)

		var result T
		err := e.attempt(ctx, func(ctx context.Context, s Session) error {
			var err error
			result, err = work(ctx, s)
			return err
		})
		if err == nil {
			span.SetAttributes(attribute.Int("txn.attempts", attempt))
			return result, nil
		}

		if !e.isTransient(err) {
			span.SetAttributes(attribute.Int("txn.attempts", attempt))
			return zero, err
		}

		if attempt >= cfg.maxAttempts {
			e.exhausted.Add(ctx, 1)
			lg.Error("Transaction exhausted retries",
				zap.Int("attempts", attempt),
				zap.Error(err),
			)
			span.SetAttributes(attribute.Int("txn.attempts", attempt))
			span.RecordError(err)
			span.SetStatus(codes.Error, "exhausted retries")
			return zero, &ExhaustedError{Attempts: attempt, Last: err}
		}

		e.retries.Add(ctx, 1)
		lg.Warn("Transient transaction failure, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cfg.maxAttempts),
			zap.Error(err),
		)

		if err := ctx.Err(); err != nil {
			return zero, errors.Wrap(err, "retry")
		}
	}
}

// Do is Run for work that produces no result.
func (e *Executor) Do(ctx context.Context, work func(ctx context.Context, s Session) error, opts ...CallOption) error {
	_, err := Run(ctx, e, func(ctx context.Context, s Session) (struct{}, error) {
		return struct{}{}, work(ctx, s)
	}, opts...)
	return err
}

// attempt opens a session, runs work and commits. Any path that does not
// commit rolls back, including a panic inside work.
func (e *Executor) attempt(ctx context.Context, work func(context.Context, Session) error) error {
	if e.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.attemptTimeout)
		defer cancel()
	}

	s, err := e.db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin")
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		// The attempt context may already be cancelled; the session still
		// has to be released.
		if err := s.Rollback(context.WithoutCancel(ctx)); err != nil {
			zctx.From(ctx).Warn("Rollback failed", zap.Error(err))
		}
	}()

	if err := work(withUnit(ctx), s); err != nil {
		return err
	}
	if err := s.Commit(ctx); err != nil {
		// A failed commit has already ended the transaction on the store
		// side; rollback below is a no-op for well-behaved sessions.
		return errors.Wrap(err, "commit")
	}
	committed = true
	return nil
}
