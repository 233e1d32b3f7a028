package order_test

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shop-ledger/internal/domain/inventory"
	"github.com/xenking/shop-ledger/internal/domain/order"
	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/storage/memory"
	"github.com/xenking/shop-ledger/internal/txn"
)

// --- Fixture ---

type shop struct {
	catalog *product.Catalog
	ledger  *wallet.Ledger
	orders  *order.Service
}

func newShop(t *testing.T, maxAttempts int, orders order.RepositoryFactory) *shop {
	t.Helper()
	exec, err := txn.NewExecutor(memory.New(), txn.Options{
		MaxAttempts: maxAttempts,
		IsTransient: memory.IsTransient,
	})
	require.NoError(t, err)
	if orders == nil {
		orders = memory.Orders
	}
	ledger := wallet.NewLedger(exec, memory.Wallets)
	return &shop{
		catalog: product.NewCatalog(exec, memory.Products),
		ledger:  ledger,
		orders:  order.NewService(exec, inventory.NewAccessor(memory.Products), ledger, orders),
	}
}

func (s *shop) product(t *testing.T, name, price string, stock int) *product.Product {
	t.Helper()
	p, err := s.catalog.Create(context.Background(), product.CreateRequest{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	})
	require.NoError(t, err)
	return p
}

func (s *shop) fund(t *testing.T, userID, amount string) {
	t.Helper()
	_, err := s.ledger.Deposit(context.Background(), userID, decimal.RequireFromString(amount))
	require.NoError(t, err)
}

func (s *shop) requireStock(t *testing.T, id string, want int) {
	t.Helper()
	p, err := s.catalog.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, p.Stock, "stock of %s", p.Name)
}

func (s *shop) requireBalance(t *testing.T, userID, want string) {
	t.Helper()
	got, err := s.ledger.Balance(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString(want).Equal(got), "balance of %s: got %s, want %s", userID, got, want)
}

func (s *shop) requireOrders(t *testing.T, buyerID string, want int) []order.Order {
	t.Helper()
	list, err := s.orders.ListByBuyer(context.Background(), buyerID)
	require.NoError(t, err)
	require.Len(t, list, want)
	return list
}

// orderRepoFunc overrides Create of a memory order repository.
type orderRepoFunc struct {
	order.Repository
	create func(ctx context.Context, o *order.Order) error
}

func (r orderRepoFunc) Create(ctx context.Context, o *order.Order) error {
	return r.create(ctx, o)
}

// --- Create ---

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "10", 5)
	s.fund(t, "buyer", "50")
	addr := "221B Baker Street"

	o, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID:         "buyer",
		Items:           []order.Item{{ProductID: p.ID, Quantity: 3}},
		ShippingAddress: &addr,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(o.TotalPrice))
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, "buyer", o.BuyerID)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 3, o.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(10).Equal(o.Items[0].UnitPrice))
	require.NotNil(t, o.ShippingAddress)
	assert.Equal(t, addr, *o.ShippingAddress)

	s.requireStock(t, p.ID, 2)
	s.requireBalance(t, "buyer", "20")

	got, err := s.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, o.TotalPrice.Equal(got.TotalPrice))
}

func TestCreate_MultipleItems(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)
	a := s.product(t, "A", "2.50", 10)
	b := s.product(t, "B", "0.99", 3)
	s.fund(t, "buyer", "100")

	o, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items: []order.Item{
			{ProductID: a.ID, Quantity: 4},
			{ProductID: b.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.97").Equal(o.TotalPrice))
	s.requireStock(t, a.ID, 6)
	s.requireStock(t, b.ID, 0)
	s.requireBalance(t, "buyer", "87.03")
}

func TestCreate_InsufficientStockIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)
	a := s.product(t, "A", "1", 5)
	b := s.product(t, "B", "1", 0)
	s.fund(t, "buyer", "100")

	_, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items: []order.Item{
			{ProductID: a.ID, Quantity: 2},
			{ProductID: b.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)

	var ise *inventory.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, b.ID, ise.ProductID)
	assert.Equal(t, "B", ise.Name)

	s.requireStock(t, a.ID, 5)
	s.requireStock(t, b.ID, 0)
	s.requireBalance(t, "buyer", "100")
	s.requireOrders(t, "buyer", 0)
}

func TestCreate_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "10", 5)
	s.fund(t, "buyer", "29.99")

	_, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items:   []order.Item{{ProductID: p.ID, Quantity: 3}},
	})
	require.ErrorIs(t, err, order.ErrInsufficientBalance)

	var ibe *order.InsufficientBalanceError
	require.ErrorAs(t, err, &ibe)
	assert.True(t, decimal.NewFromInt(30).Equal(ibe.Required))
	assert.True(t, decimal.RequireFromString("29.99").Equal(ibe.Available))

	s.requireStock(t, p.ID, 5)
	s.requireBalance(t, "buyer", "29.99")
	s.requireOrders(t, "buyer", 0)
}

func TestCreate_BuyerWithoutWallet(t *testing.T) {
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "10", 5)

	_, err := s.orders.Create(context.Background(), order.CreateRequest{
		BuyerID: "newcomer",
		Items:   []order.Item{{ProductID: p.ID, Quantity: 1}},
	})
	var ibe *order.InsufficientBalanceError
	require.ErrorAs(t, err, &ibe)
	assert.True(t, ibe.Available.IsZero())
	s.requireStock(t, p.ID, 5)

	_, err = s.ledger.Balance(context.Background(), "newcomer")
	require.ErrorIs(t, err, wallet.ErrNotFound)
}

func TestCreate_Validation(t *testing.T) {
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "10", 5)
	s.fund(t, "buyer", "100")

	_, err := s.orders.Create(context.Background(), order.CreateRequest{BuyerID: "buyer"})
	require.ErrorIs(t, err, order.ErrEmptyItems)

	_, err = s.orders.Create(context.Background(), order.CreateRequest{
		Items: []order.Item{{ProductID: p.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, order.ErrInvalidBuyer)

	_, err = s.orders.Create(context.Background(), order.CreateRequest{
		BuyerID: "buyer",
		Items: []order.Item{
			{ProductID: p.ID, Quantity: 1},
			{ProductID: p.ID, Quantity: 0},
		},
	})
	var iqe *order.InvalidQuantityError
	require.ErrorAs(t, err, &iqe)
	assert.Equal(t, p.ID, iqe.ProductID)

	s.requireStock(t, p.ID, 5)
	s.requireBalance(t, "buyer", "100")
}

func TestCreate_ProductNotFound(t *testing.T) {
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "10", 5)
	s.fund(t, "buyer", "100")

	for _, missing := range []string{"not-an-id", uuid.NewString()} {
		_, err := s.orders.Create(context.Background(), order.CreateRequest{
			BuyerID: "buyer",
			Items: []order.Item{
				{ProductID: p.ID, Quantity: 1},
				{ProductID: missing, Quantity: 1},
			},
		})
		var pnf *order.ProductNotFoundError
		require.ErrorAs(t, err, &pnf)
		assert.Equal(t, missing, pnf.ProductID)
	}
	s.requireStock(t, p.ID, 5)
	s.requireBalance(t, "buyer", "100")
}

func TestCreate_MergesRepeatedProducts(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "1", 5)
	s.fund(t, "buyer", "100")

	// Each line fits on its own, together they do not.
	_, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items: []order.Item{
			{ProductID: p.ID, Quantity: 3},
			{ProductID: p.ID, Quantity: 3},
		},
	})
	var ise *inventory.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 6, ise.Requested)
	s.requireStock(t, p.ID, 5)

	o, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items: []order.Item{
			{ProductID: p.ID, Quantity: 2},
			{ProductID: p.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 5, o.Items[0].Quantity)
	s.requireStock(t, p.ID, 0)
}

func TestCreate_MergesProductIDSpellings(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "1", 5)
	s.fund(t, "buyer", "100")

	o, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items: []order.Item{
			{ProductID: "urn:uuid:" + p.ID, Quantity: 1},
			{ProductID: "{" + strings.ToUpper(p.ID) + "}", Quantity: 1},
			{ProductID: strings.ReplaceAll(p.ID, "-", ""), Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, p.ID, o.Items[0].ProductID)
	assert.Equal(t, 3, o.Items[0].Quantity)
	s.requireStock(t, p.ID, 2)
	s.requireBalance(t, "buyer", "97")
}

func TestCreate_SnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "10", 5)
	s.fund(t, "buyer", "100")

	o, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items:   []order.Item{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	price := decimal.NewFromInt(99)
	_, err = s.catalog.Update(ctx, p.ID, product.Patch{Price: &price})
	require.NoError(t, err)

	got, err := s.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(got.TotalPrice))
	assert.True(t, decimal.NewFromInt(10).Equal(got.Items[0].UnitPrice))
}

func TestCreate_OrderCreateErrorRollsBack(t *testing.T) {
	s := newShop(t, 3, func(sess txn.Session) order.Repository {
		return orderRepoFunc{
			Repository: memory.Orders(sess),
			create: func(context.Context, *order.Order) error {
				return errors.New("db write failed")
			},
		}
	})
	p := s.product(t, "Widget", "10", 5)
	s.fund(t, "buyer", "100")

	_, err := s.orders.Create(context.Background(), order.CreateRequest{
		BuyerID: "buyer",
		Items:   []order.Item{{ProductID: p.ID, Quantity: 2}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order")

	s.requireStock(t, p.ID, 5)
	s.requireBalance(t, "buyer", "100")
}

func TestCreate_ExhaustsAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	s := newShop(t, 4, func(sess txn.Session) order.Repository {
		return orderRepoFunc{
			Repository: memory.Orders(sess),
			create: func(context.Context, *order.Order) error {
				calls.Add(1)
				return errors.Wrap(txn.ErrConflict, "simulated")
			},
		}
	})
	p := s.product(t, "Widget", "10", 5)
	s.fund(t, "buyer", "100")

	_, err := s.orders.Create(context.Background(), order.CreateRequest{
		BuyerID: "buyer",
		Items:   []order.Item{{ProductID: p.ID, Quantity: 2}},
	})
	require.ErrorIs(t, err, txn.ErrExhausted)
	require.NotErrorIs(t, err, txn.ErrConflict)

	var ee *txn.ExhaustedError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 4, ee.Attempts)
	assert.EqualValues(t, 4, calls.Load())

	s.requireStock(t, p.ID, 5)
	s.requireBalance(t, "buyer", "100")
}

func TestCreate_ConcurrentBuyersNeverOversell(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 50, nil)
	p := s.product(t, "Limited", "5", 5)

	const buyers = 12
	for i := range buyers {
		s.fund(t, buyerID(i), "100")
	}

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		errs      = make([]error, buyers)
	)
	start := make(chan struct{})
	for i := range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := s.orders.Create(ctx, order.CreateRequest{
				BuyerID: buyerID(i),
				Items:   []order.Item{{ProductID: p.ID, Quantity: 1}},
			})
			if err == nil {
				succeeded.Add(1)
			}
			errs[i] = err
		}()
	}
	close(start)
	wg.Wait()

	for i, err := range errs {
		if err == nil {
			s.requireBalance(t, buyerID(i), "95")
			s.requireOrders(t, buyerID(i), 1)
			continue
		}
		if !errors.Is(err, inventory.ErrInsufficientStock) && !errors.Is(err, txn.ErrExhausted) {
			t.Fatalf("buyer %d: unexpected error: %v", i, err)
		}
		s.requireBalance(t, buyerID(i), "100")
		s.requireOrders(t, buyerID(i), 0)
	}

	sold := int(succeeded.Load())
	assert.LessOrEqual(t, sold, 5)
	assert.Positive(t, sold)
	s.requireStock(t, p.ID, 5-sold)
}

func buyerID(i int) string {
	return "buyer-" + string(rune('a'+i))
}

// --- CRUD ---

func TestOrderCRUD(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "10", 5)
	s.fund(t, "buyer", "100")

	o, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items:   []order.Item{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	shipped := order.StatusShipped
	addr := "1 Infinite Loop"
	updated, err := s.orders.Update(ctx, o.ID, order.UpdateRequest{
		Status:          &shipped,
		ShippingAddress: &addr,
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, updated.Status)
	assert.Equal(t, addr, *updated.ShippingAddress)
	assert.True(t, o.TotalPrice.Equal(updated.TotalPrice))
	assert.Equal(t, o.Items, updated.Items)

	bogus := order.Status("lost")
	_, err = s.orders.Update(ctx, o.ID, order.UpdateRequest{Status: &bogus})
	require.ErrorIs(t, err, order.ErrInvalidStatus)

	list := s.requireOrders(t, "buyer", 1)
	assert.Equal(t, order.StatusShipped, list[0].Status)

	require.NoError(t, s.orders.Delete(ctx, o.ID))
	_, err = s.orders.Get(ctx, o.ID)
	require.ErrorIs(t, err, order.ErrNotFound)
	require.ErrorIs(t, s.orders.Delete(ctx, o.ID), order.ErrNotFound)

	// Deleting the record does not refund.
	s.requireBalance(t, "buyer", "90")
}

func TestOrderCRUD_MalformedID(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)

	_, err := s.orders.Get(ctx, "42")
	require.ErrorIs(t, err, order.ErrNotFound)
	_, err = s.orders.Update(ctx, "42", order.UpdateRequest{})
	require.ErrorIs(t, err, order.ErrNotFound)
	require.ErrorIs(t, s.orders.Delete(ctx, "42"), order.ErrNotFound)
	_, err = s.orders.Get(ctx, uuid.NewString())
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestOrderCRUD_AlternateIDSpellings(t *testing.T) {
	ctx := context.Background()
	s := newShop(t, 3, nil)
	p := s.product(t, "Widget", "10", 5)
	s.fund(t, "buyer", "100")

	o, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items:   []order.Item{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, id := range []string{
		"urn:uuid:" + o.ID,
		"{" + o.ID + "}",
		strings.ReplaceAll(o.ID, "-", ""),
		strings.ToUpper(o.ID),
	} {
		got, err := s.orders.Get(ctx, id)
		require.NoError(t, err, id)
		assert.Equal(t, o.ID, got.ID)

		addr := id
		updated, err := s.orders.Update(ctx, id, order.UpdateRequest{ShippingAddress: &addr})
		require.NoError(t, err, id)
		assert.Equal(t, o.ID, updated.ID)
	}

	require.NoError(t, s.orders.Delete(ctx, "urn:uuid:"+strings.ToUpper(o.ID)))
	_, err = s.orders.Get(ctx, o.ID)
	require.ErrorIs(t, err, order.ErrNotFound)
}
