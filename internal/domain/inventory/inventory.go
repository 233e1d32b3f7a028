// Package inventory owns stock arithmetic. Its methods never open a unit of
// work; they always run inside the session supplied by the caller.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/txn"
)

var (
	// ErrInvalidQuantity is returned for quantities below 1.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	// ErrInsufficientStock is matched by every *InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError names the product that cannot cover a request.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (%s): requested %d, available %d",
		e.ProductID, e.Name, e.Requested, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientStock) hold.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Shortfall is the number of units missing.
func (e *InsufficientStockError) Shortfall() int {
	return e.Requested - e.Available
}

// Accessor reads and decrements product stock.
type Accessor struct {
	products product.RepositoryFactory
	now      func() time.Time
}

// NewAccessor creates an Accessor over the product repository.
func NewAccessor(products product.RepositoryFactory) *Accessor {
	return &Accessor{
		products: products,
		now:      time.Now,
	}
}

// CheckAndReserve verifies that quantity units of the product are in stock and
// returns the product as read in s, price included. It does not write.
func (a *Accessor) CheckAndReserve(ctx context.Context, s txn.Session, productID string, quantity int) (*product.Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	productID, ok := product.CanonicalID(productID)
	if !ok {
		return nil, product.ErrNotFound
	}

	p, err := a.products(s).GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if _, err := Decrement(*p, quantity); err != nil {
		return nil, err
	}
	return p, nil
}

// CommitDecrement writes stock -= quantity. Callers check every line of an
// order with CheckAndReserve before decrementing any of them.
func (a *Accessor) CommitDecrement(ctx context.Context, s txn.Session, productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	productID, ok := product.CanonicalID(productID)
	if !ok {
		return product.ErrNotFound
	}

	repo := a.products(s)
	p, err := repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	next, err := Decrement(*p, quantity)
	if err != nil {
		return err
	}
	next.UpdatedAt = a.now()
	if err := repo.Update(ctx, &next); err != nil {
		return errors.Wrapf(err, "update stock of %s", productID)
	}
	return nil
}

// Decrement returns p with quantity units removed from stock, or an
// *InsufficientStockError if stock would go negative.
func Decrement(p product.Product, quantity int) (product.Product, error) {
	if quantity <= 0 {
		return p, ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return p, &InsufficientStockError{
			ProductID: p.ID,
			Name:      p.Name,
			Requested: quantity,
			Available: p.Stock,
		}
	}
	p.Stock -= quantity
	return p, nil
}
