package handler

import (
	"context"

	"github.com/xenking/shop-ledger/gen/oas"
	"github.com/xenking/shop-ledger/internal/domain/order"
)

func orderToOAS(o order.Order) oas.Order {
	items := make([]oas.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = oas.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		}
	}
	resp := oas.Order{
		ID:         o.ID,
		BuyerID:    o.BuyerID,
		Items:      items,
		TotalPrice: o.TotalPrice.String(),
		Status:     oas.OrderStatus(o.Status),
		CreatedAt:  o.CreatedAt.UTC(),
		UpdatedAt:  o.UpdatedAt.UTC(),
	}
	if o.ShippingAddress != nil {
		resp.ShippingAddress.SetTo(*o.ShippingAddress)
	} else {
		resp.ShippingAddress.SetToNull()
	}
	return resp
}

// CreateOrder places an order for the caller.
func (h *Handler) CreateOrder(ctx context.Context, req *oas.CreateOrderReq) (*oas.Order, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]order.Item, len(req.Items))
	for i, item := range req.Items {
		items[i] = order.Item{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	o, err := h.orders.Create(ctx, order.CreateRequest{
		BuyerID:         id.UserID,
		Items:           items,
		ShippingAddress: optString(req.ShippingAddress),
	})
	if err != nil {
		return nil, failed("create order", err)
	}
	resp := orderToOAS(*o)
	return &resp, nil
}

// ListOrders returns the caller's orders, newest first.
func (h *Handler) ListOrders(ctx context.Context) ([]oas.Order, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := h.orders.ListByBuyer(ctx, id.UserID)
	if err != nil {
		return nil, failed("list orders", err)
	}
	out := make([]oas.Order, len(orders))
	for i, o := range orders {
		out[i] = orderToOAS(o)
	}
	return out, nil
}

// ownOrder loads the order if the caller may see it. Other buyers' orders are
// reported as not found.
func (h *Handler) ownOrder(ctx context.Context, orderID string) (*order.Order, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.BuyerID != id.UserID && !id.Admin {
		return nil, order.ErrNotFound
	}
	return o, nil
}

// GetOrder returns one of the caller's orders.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.Order, error) {
	o, err := h.ownOrder(ctx, params.ID)
	if err != nil {
		return nil, failed("get order", err)
	}
	resp := orderToOAS(*o)
	return &resp, nil
}

// UpdateOrder changes the shipping address; status changes are reserved to
// admins.
func (h *Handler) UpdateOrder(ctx context.Context, req *oas.UpdateOrderReq, params oas.UpdateOrderParams) (*oas.Order, error) {
	const op = "update order"
	update := order.UpdateRequest{ShippingAddress: optString(req.ShippingAddress)}
	if s, ok := req.Status.Get(); ok {
		if _, err := admin(ctx); err != nil {
			return nil, err
		}
		status := order.Status(s)
		update.Status = &status
	}

	o, err := h.ownOrder(ctx, params.ID)
	if err != nil {
		return nil, failed(op, err)
	}
	o, err = h.orders.Update(ctx, o.ID, update)
	if err != nil {
		return nil, failed(op, err)
	}
	resp := orderToOAS(*o)
	return &resp, nil
}

// DeleteOrder removes one of the caller's orders.
func (h *Handler) DeleteOrder(ctx context.Context, params oas.DeleteOrderParams) error {
	const op = "delete order"
	o, err := h.ownOrder(ctx, params.ID)
	if err != nil {
		return failed(op, err)
	}
	if err := h.orders.Delete(ctx, o.ID); err != nil {
		return failed(op, err)
	}
	return nil
}
