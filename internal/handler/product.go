package handler

import (
	"context"

	"github.com/xenking/shop-ledger/gen/oas"
	"github.com/xenking/shop-ledger/internal/domain/product"
)

func productToOAS(p product.Product) oas.Product {
	return oas.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price.String(),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func optString(o oas.OptString) *string {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

// ListProducts returns the catalog ordered by name.
func (h *Handler) ListProducts(ctx context.Context) ([]oas.Product, error) {
	products, err := h.catalog.List(ctx)
	if err != nil {
		return nil, failed("list products", err)
	}
	out := make([]oas.Product, len(products))
	for i, p := range products {
		out[i] = productToOAS(p)
	}
	return out, nil
}

// GetProduct returns a single product.
func (h *Handler) GetProduct(ctx context.Context, params oas.GetProductParams) (*oas.Product, error) {
	p, err := h.catalog.Get(ctx, params.ID)
	if err != nil {
		return nil, failed("get product", err)
	}
	resp := productToOAS(*p)
	return &resp, nil
}

// CreateProduct adds a product to the catalog. Admin only.
func (h *Handler) CreateProduct(ctx context.Context, req *oas.CreateProductReq) (*oas.Product, error) {
	const op = "create product"
	if _, err := admin(ctx); err != nil {
		return nil, err
	}
	price, err := money(req.Price)
	if err != nil {
		return nil, failed(op, err)
	}
	p, err := h.catalog.Create(ctx, product.CreateRequest{
		Name:        req.Name,
		Description: req.Description.Or(""),
		Category:    req.Category.Or(""),
		Price:       price,
		Stock:       req.Stock.Or(0),
	})
	if err != nil {
		return nil, failed(op, err)
	}
	resp := productToOAS(*p)
	return &resp, nil
}

// UpdateProduct applies the fields present in req. Admin only.
func (h *Handler) UpdateProduct(ctx context.Context, req *oas.UpdateProductReq, params oas.UpdateProductParams) (*oas.Product, error) {
	const op = "update product"
	if _, err := admin(ctx); err != nil {
		return nil, err
	}
	patch := product.Patch{
		Name:        optString(req.Name),
		Description: optString(req.Description),
		Category:    optString(req.Category),
	}
	if m, ok := req.Price.Get(); ok {
		price, err := money(m)
		if err != nil {
			return nil, failed(op, err)
		}
		patch.Price = &price
	}
	p, err := h.catalog.Update(ctx, params.ID, patch)
	if err != nil {
		return nil, failed(op, err)
	}
	resp := productToOAS(*p)
	return &resp, nil
}

// DeleteProduct removes a product. Admin only.
func (h *Handler) DeleteProduct(ctx context.Context, params oas.DeleteProductParams) error {
	if _, err := admin(ctx); err != nil {
		return err
	}
	if err := h.catalog.Delete(ctx, params.ID); err != nil {
		return failed("delete product", err)
	}
	return nil
}

// RestockProduct adds stock to a product. Admin only.
func (h *Handler) RestockProduct(ctx context.Context, req *oas.RestockReq, params oas.RestockProductParams) (*oas.Product, error) {
	if _, err := admin(ctx); err != nil {
		return nil, err
	}
	p, err := h.catalog.Restock(ctx, params.ID, req.Quantity)
	if err != nil {
		return nil, failed("restock product", err)
	}
	resp := productToOAS(*p)
	return &resp, nil
}
