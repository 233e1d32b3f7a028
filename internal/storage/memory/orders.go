package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/xenking/shop-ledger/internal/domain/order"
	"github.com/xenking/shop-ledger/internal/txn"
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository on a memory Session.
type OrderRepository struct {
	s *Session
}

// Orders binds an OrderRepository to s. It is an order.RepositoryFactory.
func Orders(s txn.Session) order.Repository {
	return &OrderRepository{s: session(s)}
}

// Create stores a new order.
func (r *OrderRepository) Create(_ context.Context, o *order.Order) error {
	return r.s.put(key{tableOrders, o.ID}, cloneOrder(*o))
}

// GetByID returns the order or order.ErrNotFound.
func (r *OrderRepository) GetByID(_ context.Context, id string) (*order.Order, error) {
	v, err := r.s.get(key{tableOrders, id})
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, order.ErrNotFound
	}
	o := cloneOrder(v.(order.Order))
	return &o, nil
}

// Update replaces the stored order.
func (r *OrderRepository) Update(_ context.Context, o *order.Order) error {
	k := key{tableOrders, o.ID}
	v, err := r.s.get(k)
	if err != nil {
		return err
	}
	if v == nil {
		return order.ErrNotFound
	}
	return r.s.put(k, cloneOrder(*o))
}

// Delete removes the order.
func (r *OrderRepository) Delete(_ context.Context, id string) error {
	k := key{tableOrders, id}
	v, err := r.s.get(k)
	if err != nil {
		return err
	}
	if v == nil {
		return order.ErrNotFound
	}
	return r.s.put(k, nil)
}

// ListByBuyer returns the buyer's orders, newest first.
func (r *OrderRepository) ListByBuyer(_ context.Context, buyerID string) ([]order.Order, error) {
	values, err := r.s.scan(tableOrders)
	if err != nil {
		return nil, err
	}
	var orders []order.Order
	for _, v := range values {
		if o := v.(order.Order); o.BuyerID == buyerID {
			orders = append(orders, cloneOrder(o))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func cloneOrder(o order.Order) order.Order {
	o.Items = slices.Clone(o.Items)
	if o.ShippingAddress != nil {
		addr := *o.ShippingAddress
		o.ShippingAddress = &addr
	}
	return o
}
