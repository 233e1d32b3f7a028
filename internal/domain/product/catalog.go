package product

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/shop-ledger/internal/txn"
)

// ErrInvalidRestock is returned for a restock quantity below 1.
var ErrInvalidRestock = errors.New("restock quantity must be greater than 0")

// CreateRequest holds the input for adding a product to the catalog.
type CreateRequest struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
}

// Patch lists the editable fields of a product. Nil fields are left as is.
// Stock is not editable here; use Restock.
type Patch struct {
	Name        *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
}

// Catalog manages products outside of order fulfillment.
type Catalog struct {
	exec     *txn.Executor
	products RepositoryFactory
	now      func() time.Time
}

// NewCatalog creates a Catalog running its units on exec.
func NewCatalog(exec *txn.Executor, products RepositoryFactory) *Catalog {
	return &Catalog{
		exec:     exec,
		products: products,
		now:      time.Now,
	}
}

// Create adds a product with a unique name.
func (c *Catalog) Create(ctx context.Context, req CreateRequest) (*Product, error) {
	p := Product{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	if err := Validate(p); err != nil {
		return nil, err
	}

	return txn.Run(ctx, c.exec, func(ctx context.Context, s txn.Session) (*Product, error) {
		created := p
		created.CreatedAt = c.now()
		created.UpdatedAt = created.CreatedAt
		if err := c.products(s).Create(ctx, &created); err != nil {
			return nil, errors.Wrap(err, "create product")
		}
		return &created, nil
	})
}

// Get returns a product by id. Malformed ids are reported as ErrNotFound.
func (c *Catalog) Get(ctx context.Context, id string) (*Product, error) {
	id, ok := CanonicalID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return txn.Run(ctx, c.exec, func(ctx context.Context, s txn.Session) (*Product, error) {
		return c.products(s).GetByID(ctx, id)
	})
}

// List returns the whole catalog ordered by name.
func (c *Catalog) List(ctx context.Context) ([]Product, error) {
	return txn.Run(ctx, c.exec, func(ctx context.Context, s txn.Session) ([]Product, error) {
		return c.products(s).List(ctx)
	})
}

// Update applies patch to the product.
func (c *Catalog) Update(ctx context.Context, id string, patch Patch) (*Product, error) {
	id, ok := CanonicalID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return txn.Run(ctx, c.exec, func(ctx context.Context, s txn.Session) (*Product, error) {
		repo := c.products(s)
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if err := Validate(*p); err != nil {
			return nil, err
		}

		p.UpdatedAt = c.now()
		if err := repo.Update(ctx, p); err != nil {
			return nil, errors.Wrap(err, "update product")
		}
		return p, nil
	})
}

// Delete removes a product. Committed orders keep their snapshot of it.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	id, ok := CanonicalID(id)
	if !ok {
		return ErrNotFound
	}
	return c.exec.Do(ctx, func(ctx context.Context, s txn.Session) error {
		return c.products(s).Delete(ctx, id)
	})
}

// Restock adds quantity units to the product's stock.
func (c *Catalog) Restock(ctx context.Context, id string, quantity int) (*Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidRestock
	}
	id, ok := CanonicalID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return txn.Run(ctx, c.exec, func(ctx context.Context, s txn.Session) (*Product, error) {
		repo := c.products(s)
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		p.Stock += quantity
		p.UpdatedAt = c.now()
		if err := repo.Update(ctx, p); err != nil {
			return nil, errors.Wrap(err, "update product")
		}
		return p, nil
	})
}
