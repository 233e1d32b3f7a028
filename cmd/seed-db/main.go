// Command seed-db fills the shop database with a product catalog and funded
// wallets. Wallets are funded through the ledger, so seeding obeys the same
// balance rules as the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/repository"
	"github.com/xenking/shop-ledger/internal/txn"
)

type options struct {
	databaseURL string
	catalogFile string
	products    int
	wallets     int
	balance     string
	workers     int
	seed        uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&opts.catalogFile, "catalog", "", "JSON or gzipped JSON product catalog; fake products are generated when empty")
	flag.IntVar(&opts.products, "products", 50, "number of fake products to generate")
	flag.IntVar(&opts.wallets, "wallets", 10, "number of wallets to fund (user-001, user-002, ...)")
	flag.StringVar(&opts.balance, "balance", "1000", "amount deposited into every wallet")
	flag.IntVar(&opts.workers, "workers", 8, "concurrent wallet deposits")
	flag.Uint64Var(&opts.seed, "seed", 0, "fake data seed, 0 for random")
	flag.Parse()

	if opts.databaseURL == "" {
		opts.databaseURL = os.Getenv("DATABASE_URL")
	}
	if opts.databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("seed completed successfully")
}

func run(ctx context.Context, opts options) error {
	balance, err := decimal.NewFromString(opts.balance)
	if err != nil {
		return errors.Wrap(err, "parse balance")
	}

	slog.Info("running migrations")
	if err := repository.RunMigrations(opts.databaseURL); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	slog.Info("connecting to database")
	pool, err := repository.NewPool(ctx, opts.databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	exec, err := txn.NewExecutor(repository.NewStore(pool, ""), txn.Options{
		MaxAttempts: 10,
		IsTransient: repository.IsTransient,
	})
	if err != nil {
		return errors.Wrap(err, "create executor")
	}
	catalog := product.NewCatalog(exec, repository.Products)
	ledger := wallet.NewLedger(exec, repository.Wallets)

	if err := seedProducts(ctx, catalog, opts); err != nil {
		return errors.Wrap(err, "seed products")
	}
	if err := seedWallets(ctx, ledger, opts.wallets, opts.workers, balance); err != nil {
		return errors.Wrap(err, "seed wallets")
	}
	return nil
}

func seedProducts(ctx context.Context, catalog *product.Catalog, opts options) error {
	existing, err := catalog.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list products")
	}
	names := make([]string, len(existing))
	for i, p := range existing {
		names[i] = p.Name
	}

	var products []product.CreateRequest
	if opts.catalogFile != "" {
		slog.Info("reading catalog file", slog.String("path", opts.catalogFile))
		if products, err = readCatalogFile(opts.catalogFile); err != nil {
			return err
		}
	} else {
		products = generateProducts(opts.seed, opts.products, names)
	}

	slog.Info("creating products", slog.Int("count", len(products)), slog.Int("existing", len(existing)))
	var created, skipped int
	for _, req := range products {
		p, err := catalog.Create(ctx, req)
		switch {
		case errors.Is(err, product.ErrDuplicateName):
			skipped++
			continue
		case err != nil:
			return errors.Wrapf(err, "create product %q", req.Name)
		}
		created++
		slog.Debug("created product", slog.String("id", p.ID), slog.String("name", p.Name))
	}
	slog.Info("products seeded", slog.Int("created", created), slog.Int("skipped", skipped))
	return nil
}

func seedWallets(ctx context.Context, ledger *wallet.Ledger, n, workers int, amount decimal.Decimal) error {
	slog.Info("funding wallets", slog.Int("count", n), slog.String("amount", amount.String()))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := 1; i <= n; i++ {
		userID := fmt.Sprintf("user-%03d", i)
		g.Go(func() error {
			w, err := ledger.Deposit(ctx, userID, amount)
			if err != nil {
				return errors.Wrapf(err, "fund %s", userID)
			}
			slog.Debug("funded wallet", slog.String("user_id", userID), slog.String("balance", w.Balance.String()))
			return nil
		})
	}
	return g.Wait()
}
