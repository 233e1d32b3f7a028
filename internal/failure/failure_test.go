package failure

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xenking/shop-ledger/internal/domain/inventory"
	"github.com/xenking/shop-ledger/internal/domain/order"
	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/txn"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid amount", err: wallet.ErrInvalidAmount, want: KindValidation},
		{name: "same wallet", err: wallet.ErrSameWallet, want: KindValidation},
		{name: "invalid quantity", err: &order.InvalidQuantityError{ProductID: "p1"}, want: KindValidation},
		{name: "empty items", err: order.ErrEmptyItems, want: KindValidation},
		{name: "wallet not found", err: errors.Wrap(wallet.ErrNotFound, "get wallet"), want: KindNotFound},
		{name: "product not found", err: &order.ProductNotFoundError{ProductID: "p1"}, want: KindNotFound},
		{name: "order not found", err: order.ErrNotFound, want: KindNotFound},
		{
			name: "insufficient funds",
			err:  errors.Wrap(&wallet.InsufficientFundsError{UserID: "u1"}, "debit buyer"),
			want: KindBusinessRule,
		},
		{name: "insufficient stock", err: &inventory.InsufficientStockError{ProductID: "p1"}, want: KindBusinessRule},
		{name: "insufficient balance", err: &order.InsufficientBalanceError{BuyerID: "u1"}, want: KindBusinessRule},
		{name: "duplicate name", err: product.ErrDuplicateName, want: KindBusinessRule},
		{
			name: "exhausted",
			err:  &txn.ExhaustedError{Attempts: 3, Last: wallet.ErrNotFound},
			want: KindExhausted,
		},
		{name: "conflict", err: txn.ErrConflict, want: KindInternal},
		{name: "unknown", err: errors.New("boom"), want: KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKind_ClientError(t *testing.T) {
	assert.True(t, KindValidation.ClientError())
	assert.True(t, KindNotFound.ClientError())
	assert.True(t, KindBusinessRule.ClientError())
	assert.False(t, KindExhausted.ClientError())
	assert.False(t, KindInternal.ClientError())
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := zctx.Base(context.Background(), zap.New(core))

	r, err := NewLogReporter(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	r.Report(ctx, Event{
		Kind:      KindBusinessRule,
		Operation: "order.create",
		Message:   "insufficient stock",
		RequestID: "req-1",
		UserID:    "u1",
	})
	r.Report(ctx, Event{
		Kind:      KindExhausted,
		Operation: "wallet.withdraw",
		Message:   "transaction exhausted retries",
		Err:       &txn.ExhaustedError{Attempts: 3, Last: txn.ErrConflict},
	})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "business_rule", fields["kind"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "u1", fields["user_id"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "exhausted", entries[1].ContextMap()["kind"])
	assert.Contains(t, entries[1].ContextMap(), "error")
}
