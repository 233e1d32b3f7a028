package product

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/shop-ledger/internal/txn"
)

// Sentinel errors for the product catalog.
var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateName = errors.New("product name already exists")
	ErrInvalidName   = errors.New("product name required")
	ErrInvalidPrice  = errors.New("price must be greater than 0")
	ErrInvalidStock  = errors.New("stock must not be negative")
)

// Product represents a catalog item available for purchase.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository reads and writes products through a single transactional session.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	// GetByID returns ErrNotFound when no product has the id.
	GetByID(ctx context.Context, id string) (*Product, error)
	// Create returns ErrDuplicateName when the name is taken.
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}

// RepositoryFactory binds a Repository to a session.
type RepositoryFactory func(s txn.Session) Repository

// CanonicalID returns id in the lowercase hyphenated form products are stored
// under. uuid.Parse also accepts the braced, urn:uuid: and unhyphenated forms;
// postgres matches those to the row while the memory store compares strings,
// so every lookup goes through the canonical form.
func CanonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// Validate checks the record-level invariants.
func Validate(p Product) error {
	if p.Name == "" {
		return ErrInvalidName
	}
	if !p.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
