package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/shop-ledger/internal/domain/inventory"
	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/txn"
)

// Item is a requested line: a product and how many units of it.
type Item struct {
	ProductID string
	Quantity  int
}

// CreateRequest holds the input for placing an order.
type CreateRequest struct {
	BuyerID         string
	Items           []Item
	ShippingAddress *string
}

// UpdateRequest lists the mutable fields of an order. Nil fields are left
// as is.
type UpdateRequest struct {
	Status          *Status
	ShippingAddress *string
}

// Service places orders and manages existing ones.
type Service struct {
	exec      *txn.Executor
	inventory *inventory.Accessor
	ledger    *wallet.Ledger
	orders    RepositoryFactory
	now       func() time.Time
}

// NewService creates an order Service with the required domain dependencies.
func NewService(
	exec *txn.Executor,
	inv *inventory.Accessor,
	ledger *wallet.Ledger,
	orders RepositoryFactory,
) *Service {
	return &Service{
		exec:      exec,
		inventory: inv,
		ledger:    ledger,
		orders:    orders,
		now:       time.Now,
	}
}

// Create places an order as one atomic unit: every line is checked against
// stock, the total is priced from the products as read, the buyer's balance
// is checked, stock is decremented, the buyer is debited and the order is
// stored. Any failure leaves stock, balance and orders untouched.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Order, error) {
	if req.BuyerID == "" {
		return nil, ErrInvalidBuyer
	}
	items, err := mergeItems(req.Items)
	if err != nil {
		return nil, err
	}

	return txn.Run(ctx, s.exec, func(ctx context.Context, sess txn.Session) (*Order, error) {
		// Check every line before any write.
		lines := make([]LineItem, len(items))
		total := decimal.Zero
		for i, item := range items {
			p, err := s.inventory.CheckAndReserve(ctx, sess, item.ProductID, item.Quantity)
			if errors.Is(err, product.ErrNotFound) {
				return nil, &ProductNotFoundError{ProductID: item.ProductID}
			}
			if err != nil {
				return nil, err
			}
			lines[i] = LineItem{
				ProductID: p.ID,
				Quantity:  item.Quantity,
				UnitPrice: p.Price,
			}
			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		balance, err := s.ledger.BalanceTx(ctx, sess, req.BuyerID)
		switch {
		case errors.Is(err, wallet.ErrNotFound):
			// A buyer without a wallet has nothing to pay with.
			return nil, &InsufficientBalanceError{
				BuyerID:   req.BuyerID,
				Required:  total,
				Available: decimal.Zero,
			}
		case err != nil:
			return nil, errors.Wrap(err, "get balance")
		}
		if balance.LessThan(total) {
			return nil, &InsufficientBalanceError{
				BuyerID:   req.BuyerID,
				Required:  total,
				Available: balance,
			}
		}

		for _, line := range lines {
			if err := s.inventory.CommitDecrement(ctx, sess, line.ProductID, line.Quantity); err != nil {
				return nil, errors.Wrap(err, "decrement stock")
			}
		}
		if _, err := s.ledger.WithdrawTx(ctx, sess, req.BuyerID, total); err != nil {
			return nil, errors.Wrap(err, "debit buyer")
		}

		now := s.now()
		o := &Order{
			ID:              uuid.New().String(),
			BuyerID:         req.BuyerID,
			Items:           lines,
			TotalPrice:      total,
			Status:          StatusPending,
			ShippingAddress: req.ShippingAddress,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.orders(sess).Create(ctx, o); err != nil {
			return nil, errors.Wrap(err, "create order")
		}
		return o, nil
	})
}

// Get returns an order by id. Malformed ids are reported as ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return txn.Run(ctx, s.exec, func(ctx context.Context, sess txn.Session) (*Order, error) {
		return s.orders(sess).GetByID(ctx, id)
	})
}

// ListByBuyer returns the buyer's orders, newest first.
func (s *Service) ListByBuyer(ctx context.Context, buyerID string) ([]Order, error) {
	if buyerID == "" {
		return nil, ErrInvalidBuyer
	}
	return txn.Run(ctx, s.exec, func(ctx context.Context, sess txn.Session) ([]Order, error) {
		return s.orders(sess).ListByBuyer(ctx, buyerID)
	})
}

// Update changes the status or shipping address of an order. Line items and
// the total are never changed.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Order, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, ErrNotFound
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return txn.Run(ctx, s.exec, func(ctx context.Context, sess txn.Session) (*Order, error) {
		repo := s.orders(sess)
		o, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if req.Status != nil {
			o.Status = *req.Status
		}
		if req.ShippingAddress != nil {
			o.ShippingAddress = req.ShippingAddress
		}
		o.UpdatedAt = s.now()
		if err := repo.Update(ctx, o); err != nil {
			return nil, errors.Wrap(err, "update order")
		}
		return o, nil
	})
}

// Delete removes an order record. Stock and balances are not restored.
func (s *Service) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return ErrNotFound
	}
	return s.exec.Do(ctx, func(ctx context.Context, sess txn.Session) error {
		return s.orders(sess).Delete(ctx, id)
	})
}

// mergeItems validates the requested lines and folds repeated products into
// one line, keeping the order in which products first appear. Spellings of
// the same product id count as one product.
func mergeItems(items []Item) ([]Item, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	merged := make([]Item, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, &InvalidQuantityError{ProductID: item.ProductID}
		}
		if id, ok := product.CanonicalID(item.ProductID); ok {
			item.ProductID = id
		}
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged, nil
}

// canonicalID returns id in the form orders are stored under.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}
