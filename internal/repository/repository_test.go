//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/xenking/shop-ledger/internal/domain/inventory"
	"github.com/xenking/shop-ledger/internal/domain/order"
	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/repository"
	"github.com/xenking/shop-ledger/internal/txn"
)

var databaseURL string

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "shop",
				"POSTGRES_PASSWORD": "shop",
				"POSTGRES_DB":       "shop",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		return 1
	}
	defer func() { _ = pg.Terminate(context.Background()) }()

	host, err := pg.Host(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "host: %v\n", err)
		return 1
	}
	port, err := pg.MappedPort(ctx, "5432/tcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "port: %v\n", err)
		return 1
	}
	databaseURL = fmt.Sprintf("postgres://shop:shop@%s:%s/shop?sslmode=disable", host, port.Port())

	if err := repository.RunMigrations(databaseURL); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		return 1
	}
	return m.Run()
}

type services struct {
	pool    *pgxpool.Pool
	ledger  *wallet.Ledger
	catalog *product.Catalog
	orders  *order.Service
}

func newServices(t *testing.T, maxAttempts int) *services {
	t.Helper()
	ctx := context.Background()

	pool, err := repository.NewPool(ctx, databaseURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE wallets, products, orders`)
	require.NoError(t, err)

	exec, err := txn.NewExecutor(repository.NewStore(pool, pgx.RepeatableRead), txn.Options{
		MaxAttempts: maxAttempts,
		IsTransient: repository.IsTransient,
	})
	require.NoError(t, err)

	ledger := wallet.NewLedger(exec, repository.Wallets)
	return &services{
		pool:    pool,
		ledger:  ledger,
		catalog: product.NewCatalog(exec, repository.Products),
		orders:  order.NewService(exec, inventory.NewAccessor(repository.Products), ledger, repository.Orders),
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	require.NoError(t, repository.RunMigrations(databaseURL))
}

func TestParseIsolation(t *testing.T) {
	lvl, err := repository.ParseIsolation("")
	require.NoError(t, err)
	assert.Equal(t, pgx.RepeatableRead, lvl)

	lvl, err = repository.ParseIsolation("SERIALIZABLE")
	require.NoError(t, err)
	assert.Equal(t, pgx.Serializable, lvl)

	_, err = repository.ParseIsolation("read_uncommitted")
	require.Error(t, err)
}

func TestWallets(t *testing.T) {
	ctx := context.Background()
	s := newServices(t, 3)

	_, err := s.ledger.Balance(ctx, "u1")
	require.ErrorIs(t, err, wallet.ErrNotFound)

	w, err := s.ledger.Deposit(ctx, "u1", decimal.RequireFromString("100.25"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("100.25").Equal(w.Balance))

	_, err = s.ledger.Withdraw(ctx, "u1", decimal.NewFromInt(150))
	require.ErrorIs(t, err, wallet.ErrInsufficientFunds)

	_, err = s.ledger.Deposit(ctx, "u2", decimal.NewFromInt(1))
	require.NoError(t, err)
	_, err = s.ledger.Transfer(ctx, "u1", "u2", decimal.RequireFromString("0.25"))
	require.NoError(t, err)

	b1, err := s.ledger.Balance(ctx, "u1")
	require.NoError(t, err)
	b2, err := s.ledger.Balance(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(b1))
	assert.True(t, decimal.RequireFromString("1.25").Equal(b2))
}

func TestConcurrentTransfers(t *testing.T) {
	ctx := context.Background()
	s := newServices(t, 5)

	for _, id := range []string{"payer", "r1", "r2"} {
		_, err := s.ledger.Deposit(ctx, id, decimal.NewFromInt(1))
		require.NoError(t, err)
	}
	_, err := s.ledger.Deposit(ctx, "payer", decimal.NewFromInt(99))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, to := range []string{"r1", "r2"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.ledger.Transfer(ctx, "payer", to, decimal.NewFromInt(60))
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, wallet.ErrInsufficientFunds)
	}
	assert.Equal(t, 1, ok)

	b, err := s.ledger.Balance(ctx, "payer")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(b))
}

func TestProducts(t *testing.T) {
	ctx := context.Background()
	s := newServices(t, 3)

	p, err := s.catalog.Create(ctx, product.CreateRequest{
		Name:     "Widget",
		Category: "Tools",
		Price:    decimal.RequireFromString("4.99"),
		Stock:    3,
	})
	require.NoError(t, err)

	_, err = s.catalog.Create(ctx, product.CreateRequest{Name: "Widget", Price: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, product.ErrDuplicateName)

	got, err := s.catalog.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tools", got.Category)
	assert.True(t, decimal.RequireFromString("4.99").Equal(got.Price))

	restocked, err := s.catalog.Restock(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, restocked.Stock)

	require.NoError(t, s.catalog.Delete(ctx, p.ID))
	_, err = s.catalog.Get(ctx, p.ID)
	require.ErrorIs(t, err, product.ErrNotFound)
}

func TestOrders(t *testing.T) {
	ctx := context.Background()
	s := newServices(t, 3)

	a, err := s.catalog.Create(ctx, product.CreateRequest{Name: "A", Price: decimal.NewFromInt(10), Stock: 5})
	require.NoError(t, err)
	b, err := s.catalog.Create(ctx, product.CreateRequest{Name: "B", Price: decimal.NewFromInt(1), Stock: 0})
	require.NoError(t, err)
	_, err = s.ledger.Deposit(ctx, "buyer", decimal.NewFromInt(50))
	require.NoError(t, err)

	_, err = s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items:   []order.Item{{ProductID: a.ID, Quantity: 2}, {ProductID: b.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)

	o, err := s.orders.Create(ctx, order.CreateRequest{
		BuyerID: "buyer",
		Items:   []order.Item{{ProductID: a.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(o.TotalPrice))

	got, err := s.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(10).Equal(got.Items[0].UnitPrice))
	assert.Equal(t, order.StatusPending, got.Status)

	pa, err := s.catalog.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, pa.Stock)
	bal, err := s.ledger.Balance(ctx, "buyer")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(bal))

	paid := order.StatusPaid
	_, err = s.orders.Update(ctx, o.ID, order.UpdateRequest{Status: &paid})
	require.NoError(t, err)

	list, err := s.orders.ListByBuyer(ctx, "buyer")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, order.StatusPaid, list[0].Status)

	require.NoError(t, s.orders.Delete(ctx, o.ID))
	_, err = s.orders.Get(ctx, o.ID)
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestIsTransient(t *testing.T) {
	ctx := context.Background()
	s := newServices(t, 1)
	_, err := s.ledger.Deposit(ctx, "u1", decimal.NewFromInt(10))
	require.NoError(t, err)

	// Two REPEATABLE READ transactions updating the same row: the second
	// writer fails with a serialization error once the first commits.
	t1, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	require.NoError(t, err)
	defer func() { _ = t1.Rollback(ctx) }()
	t2, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	require.NoError(t, err)
	defer func() { _ = t2.Rollback(ctx) }()

	_, err = t2.Exec(ctx, `SELECT balance FROM wallets WHERE user_id = 'u1'`)
	require.NoError(t, err)
	_, err = t1.Exec(ctx, `UPDATE wallets SET balance = 1 WHERE user_id = 'u1'`)
	require.NoError(t, err)
	require.NoError(t, t1.Commit(ctx))

	_, err = t2.Exec(ctx, `UPDATE wallets SET balance = 2 WHERE user_id = 'u1'`)
	require.Error(t, err)
	assert.True(t, repository.IsTransient(err))

	assert.True(t, repository.IsTransient(errors.Wrap(txn.ErrConflict, "x")))
	assert.False(t, repository.IsTransient(wallet.ErrNotFound))
	assert.False(t, repository.IsTransient(nil))
}
