// Package failure classifies surfaced errors and reports them as structured
// events. It observes outcomes only; retry decisions belong to the executor.
package failure

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/shop-ledger/internal/domain/inventory"
	"github.com/xenking/shop-ledger/internal/domain/order"
	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/txn"
)

// Kind is the class of a surfaced error.
type Kind string

// Error kinds. Transient store failures never surface on their own: they are
// retried and only appear as KindExhausted.
const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindBusinessRule Kind = "business_rule"
	KindExhausted    Kind = "exhausted"
	KindInternal     Kind = "internal"
)

// ClientError reports whether the caller can correct the request.
func (k Kind) ClientError() bool {
	switch k {
	case KindValidation, KindNotFound, KindBusinessRule:
		return true
	}
	return false
}

var validationErrors = []error{
	wallet.ErrInvalidAmount,
	wallet.ErrInvalidUser,
	wallet.ErrSameWallet,
	product.ErrInvalidName,
	product.ErrInvalidPrice,
	product.ErrInvalidStock,
	product.ErrInvalidRestock,
	inventory.ErrInvalidQuantity,
	order.ErrEmptyItems,
	order.ErrInvalidBuyer,
	order.ErrInvalidStatus,
}

var notFoundErrors = []error{
	wallet.ErrNotFound,
	product.ErrNotFound,
	order.ErrNotFound,
}

var businessRuleErrors = []error{
	wallet.ErrInsufficientFunds,
	inventory.ErrInsufficientStock,
	order.ErrInsufficientBalance,
	product.ErrDuplicateName,
}

// Classify maps err to its Kind.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}
	// Exhaustion is checked first: its message may mention any cause.
	if errors.Is(err, txn.ErrExhausted) {
		return KindExhausted
	}

	var (
		invalidQty *order.InvalidQuantityError
		notFound   *order.ProductNotFoundError
	)
	switch {
	case errors.As(err, &invalidQty):
		return KindValidation
	case errors.As(err, &notFound):
		return KindNotFound
	case isAny(err, validationErrors):
		return KindValidation
	case isAny(err, notFoundErrors):
		return KindNotFound
	case isAny(err, businessRuleErrors):
		return KindBusinessRule
	}
	return KindInternal
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Event describes one error surfaced to a caller.
type Event struct {
	Kind      Kind
	Operation string
	Message   string
	RequestID string
	UserID    string
	Err       error
}

// Reporter receives failure events.
type Reporter interface {
	Report(ctx context.Context, e Event)
}

// LogReporter logs events with the context logger and counts them by kind.
type LogReporter struct {
	failures metric.Int64Counter
}

// NewLogReporter creates a LogReporter recording on meter.
func NewLogReporter(meter metric.Meter) (*LogReporter, error) {
	failures, err := meter.Int64Counter("shop.failures",
		metric.WithDescription("Errors surfaced to callers, by kind"))
	if err != nil {
		return nil, errors.Wrap(err, "create failures counter")
	}
	return &LogReporter{failures: failures}, nil
}

// Report implements Reporter.
func (r *LogReporter) Report(ctx context.Context, e Event) {
	r.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(e.Kind)),
		attribute.String("operation", e.Operation),
	))

	fields := []zap.Field{
		zap.String("kind", string(e.Kind)),
		zap.String("operation", e.Operation),
		zap.String("message", e.Message),
	}
	if e.RequestID != "" {
		fields = append(fields, zap.String("request_id", e.RequestID))
	}
	if e.UserID != "" {
		fields = append(fields, zap.String("user_id", e.UserID))
	}

	lg := zctx.From(ctx)
	if e.Kind.ClientError() {
		lg.Info("Request rejected", fields...)
		return
	}
	if e.Err != nil {
		fields = append(fields, zap.Error(e.Err))
	}
	lg.Error("Request failed", fields...)
}
