package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/shop-ledger/internal/txn"
)

// Status is the lifecycle state of an order.
type Status string

// Order statuses. Every order is created as StatusPending; later transitions
// belong to the shipping workflow.
const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Sentinel errors for order validation and lookup.
var (
	ErrEmptyItems          = errors.New("items required")
	ErrInvalidBuyer        = errors.New("buyer id required")
	ErrNotFound            = errors.New("order not found")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ProductNotFoundError indicates a requested product does not exist.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InvalidQuantityError indicates a line item has a non-positive quantity.
type InvalidQuantityError struct {
	ProductID string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for product %s", e.ProductID)
}

// InsufficientBalanceError reports an order total the buyer cannot pay.
type InsufficientBalanceError struct {
	BuyerID   string
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for buyer %s: required %s, available %s",
		e.BuyerID, e.Required.String(), e.Available.String())
}

// Is makes errors.Is(err, ErrInsufficientBalance) hold.
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// Order is a committed purchase. Items and TotalPrice are fixed at creation.
type Order struct {
	ID              string
	BuyerID         string
	Items           []LineItem
	TotalPrice      decimal.Decimal
	Status          Status
	ShippingAddress *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LineItem is one product of an order with the price paid per unit.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	// GetByID returns ErrNotFound when no order has the id.
	GetByID(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id string) error
	ListByBuyer(ctx context.Context, buyerID string) ([]Order, error)
}

// RepositoryFactory binds a Repository to a session.
type RepositoryFactory func(s txn.Session) Repository
