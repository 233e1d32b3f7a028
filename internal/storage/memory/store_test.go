package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shop-ledger/internal/domain/order"
	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/txn"
)

func begin(t *testing.T, st *Store) *Session {
	t.Helper()
	s, err := st.Begin(context.Background())
	require.NoError(t, err)
	return s.(*Session)
}

func seedWallet(t *testing.T, st *Store, userID, balance string) {
	t.Helper()
	ctx := context.Background()
	s := begin(t, st)
	require.NoError(t, Wallets(s).Create(ctx, &wallet.Wallet{
		UserID:  userID,
		Balance: decimal.RequireFromString(balance),
	}))
	require.NoError(t, s.Commit(ctx))
}

func TestSession_WritesInvisibleUntilCommit(t *testing.T) {
	ctx := context.Background()
	st := New()

	writer := begin(t, st)
	require.NoError(t, Wallets(writer).Create(ctx, &wallet.Wallet{UserID: "u1", Balance: decimal.NewFromInt(10)}))

	// The writer sees its own write.
	w, err := Wallets(writer).Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(w.Balance))

	reader := begin(t, st)
	_, err = Wallets(reader).Get(ctx, "u1")
	require.ErrorIs(t, err, wallet.ErrNotFound)

	require.NoError(t, writer.Commit(ctx))

	after := begin(t, st)
	w, err = Wallets(after).Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(w.Balance))
}

func TestSession_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	st := New()

	s := begin(t, st)
	require.NoError(t, Wallets(s).Create(ctx, &wallet.Wallet{UserID: "u1", Balance: decimal.NewFromInt(10)}))
	require.NoError(t, s.Rollback(ctx))

	_, err := Wallets(begin(t, st)).Get(ctx, "u1")
	require.ErrorIs(t, err, wallet.ErrNotFound)
}

func TestSession_ConcurrentUpdateConflicts(t *testing.T) {
	ctx := context.Background()
	st := New()
	seedWallet(t, st, "u1", "100")

	s1 := begin(t, st)
	s2 := begin(t, st)

	w1, err := Wallets(s1).Get(ctx, "u1")
	require.NoError(t, err)
	w2, err := Wallets(s2).Get(ctx, "u1")
	require.NoError(t, err)

	w1.Balance = w1.Balance.Sub(decimal.NewFromInt(60))
	w2.Balance = w2.Balance.Sub(decimal.NewFromInt(60))
	require.NoError(t, Wallets(s1).Update(ctx, w1))
	require.NoError(t, Wallets(s2).Update(ctx, w2))

	require.NoError(t, s1.Commit(ctx))
	err = s2.Commit(ctx)
	require.ErrorIs(t, err, txn.ErrConflict)
	assert.True(t, IsTransient(err))

	w, err := Wallets(begin(t, st)).Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(w.Balance))
}

func TestSession_ReadAfterForeignCommitConflicts(t *testing.T) {
	ctx := context.Background()
	st := New()
	seedWallet(t, st, "u1", "100")
	seedWallet(t, st, "u2", "0")

	stale := begin(t, st)
	_, err := Wallets(stale).Get(ctx, "u1")
	require.NoError(t, err)

	other := begin(t, st)
	w, err := Wallets(other).Get(ctx, "u2")
	require.NoError(t, err)
	w.Balance = decimal.NewFromInt(5)
	require.NoError(t, Wallets(other).Update(ctx, w))
	require.NoError(t, other.Commit(ctx))

	// u2 changed after the stale session started, so reading it would mix
	// two snapshots.
	_, err = Wallets(stale).Get(ctx, "u2")
	require.ErrorIs(t, err, txn.ErrConflict)
}

func TestSession_ConcurrentCreateConflicts(t *testing.T) {
	ctx := context.Background()
	st := New()

	s1 := begin(t, st)
	s2 := begin(t, st)
	for _, s := range []*Session{s1, s2} {
		_, err := Wallets(s).Get(ctx, "u1")
		require.ErrorIs(t, err, wallet.ErrNotFound)
		require.NoError(t, Wallets(s).Create(ctx, &wallet.Wallet{UserID: "u1", Balance: decimal.NewFromInt(1)}))
	}

	require.NoError(t, s1.Commit(ctx))
	require.ErrorIs(t, s2.Commit(ctx), txn.ErrConflict)
}

func TestSession_ReadOnlyCommitNeverConflicts(t *testing.T) {
	ctx := context.Background()
	st := New()
	seedWallet(t, st, "u1", "100")

	reader := begin(t, st)
	_, err := Wallets(reader).Get(ctx, "u1")
	require.NoError(t, err)

	seedWallet(t, st, "u2", "1")
	writer := begin(t, st)
	w, err := Wallets(writer).Get(ctx, "u1")
	require.NoError(t, err)
	w.Balance = decimal.Zero
	require.NoError(t, Wallets(writer).Update(ctx, w))
	require.NoError(t, writer.Commit(ctx))

	require.NoError(t, reader.Commit(ctx))
}

func TestSession_ClosedSession(t *testing.T) {
	ctx := context.Background()
	st := New()

	s := begin(t, st)
	require.NoError(t, s.Commit(ctx))

	_, err := Wallets(s).Get(ctx, "u1")
	require.ErrorIs(t, err, ErrSessionClosed)
	require.ErrorIs(t, s.Commit(ctx), ErrSessionClosed)
	require.NoError(t, s.Rollback(ctx))
}

func TestProducts_NameIndex(t *testing.T) {
	ctx := context.Background()
	st := New()

	s := begin(t, st)
	repo := Products(s)
	require.NoError(t, repo.Create(ctx, &product.Product{ID: "p1", Name: "Widget", Price: decimal.NewFromInt(1)}))
	require.NoError(t, repo.Create(ctx, &product.Product{ID: "p2", Name: "Gadget", Price: decimal.NewFromInt(2)}))
	require.ErrorIs(t, repo.Create(ctx, &product.Product{ID: "p3", Name: "Widget"}), product.ErrDuplicateName)
	require.NoError(t, s.Commit(ctx))

	s = begin(t, st)
	repo = Products(s)
	p, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)

	// Renaming frees the old name.
	p.Name = "Sprocket"
	require.NoError(t, repo.Update(ctx, p))
	require.NoError(t, repo.Create(ctx, &product.Product{ID: "p3", Name: "Widget", Price: decimal.NewFromInt(3)}))

	p2, err := repo.GetByID(ctx, "p2")
	require.NoError(t, err)
	p2.Name = "Sprocket"
	require.ErrorIs(t, repo.Update(ctx, p2), product.ErrDuplicateName)
	require.NoError(t, s.Commit(ctx))

	s = begin(t, st)
	list, err := Products(s).List(ctx)
	require.NoError(t, err)
	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Gadget", "Sprocket", "Widget"}, names)

	require.NoError(t, Products(s).Delete(ctx, "p3"))
	require.ErrorIs(t, Products(s).Delete(ctx, "p3"), product.ErrNotFound)
	require.NoError(t, Products(s).Create(ctx, &product.Product{ID: "p4", Name: "Widget", Price: decimal.NewFromInt(4)}))
	require.NoError(t, s.Commit(ctx))
}

func TestOrders_ClonesItems(t *testing.T) {
	ctx := context.Background()
	st := New()
	addr := "1 Main St"
	now := time.Now()

	o := &order.Order{
		ID:              "o1",
		BuyerID:         "u1",
		Items:           []order.LineItem{{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(5)}},
		TotalPrice:      decimal.NewFromInt(5),
		Status:          order.StatusPending,
		ShippingAddress: &addr,
		CreatedAt:       now,
	}
	s := begin(t, st)
	require.NoError(t, Orders(s).Create(ctx, o))
	require.NoError(t, Orders(s).Create(ctx, &order.Order{ID: "o2", BuyerID: "u1", CreatedAt: now.Add(time.Second)}))
	require.NoError(t, Orders(s).Create(ctx, &order.Order{ID: "o3", BuyerID: "u2", CreatedAt: now}))
	require.NoError(t, s.Commit(ctx))

	o.Items[0].Quantity = 99
	addr = "elsewhere"

	s = begin(t, st)
	got, err := Orders(s).GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.Equal(t, "1 Main St", *got.ShippingAddress)

	list, err := Orders(s).ListByBuyer(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o2", list[0].ID)
	assert.Equal(t, "o1", list[1].ID)

	require.NoError(t, Orders(s).Delete(ctx, "o1"))
	_, err = Orders(s).GetByID(ctx, "o1")
	require.ErrorIs(t, err, order.ErrNotFound)
}
