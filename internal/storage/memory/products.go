package memory

import (
	"context"
	"sort"

	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/txn"
)

var _ product.Repository = (*ProductRepository)(nil)

// ProductRepository implements product.Repository on a memory Session.
// Name uniqueness is kept by an index table keyed by name.
type ProductRepository struct {
	s *Session
}

// Products binds a ProductRepository to s. It is a product.RepositoryFactory.
func Products(s txn.Session) product.Repository {
	return &ProductRepository{s: session(s)}
}

// List returns every product ordered by name.
func (r *ProductRepository) List(context.Context) ([]product.Product, error) {
	values, err := r.s.scan(tableProducts)
	if err != nil {
		return nil, err
	}
	products := make([]product.Product, 0, len(values))
	for _, v := range values {
		products = append(products, v.(product.Product))
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products, nil
}

// GetByID returns the product or product.ErrNotFound.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*product.Product, error) {
	v, err := r.s.get(key{tableProducts, id})
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, product.ErrNotFound
	}
	p := v.(product.Product)
	return &p, nil
}

// Create stores a new product, failing with product.ErrDuplicateName when the
// name is taken.
func (r *ProductRepository) Create(_ context.Context, p *product.Product) error {
	if err := r.claimName(p.Name, p.ID); err != nil {
		return err
	}
	return r.s.put(key{tableProducts, p.ID}, *p)
}

// Update replaces the stored product, moving its name index entry on rename.
func (r *ProductRepository) Update(_ context.Context, p *product.Product) error {
	k := key{tableProducts, p.ID}
	v, err := r.s.get(k)
	if err != nil {
		return err
	}
	if v == nil {
		return product.ErrNotFound
	}
	if old := v.(product.Product); old.Name != p.Name {
		if err := r.claimName(p.Name, p.ID); err != nil {
			return err
		}
		if err := r.s.put(key{tableProductsByName, old.Name}, nil); err != nil {
			return err
		}
	}
	return r.s.put(k, *p)
}

// Delete removes the product and frees its name.
func (r *ProductRepository) Delete(_ context.Context, id string) error {
	k := key{tableProducts, id}
	v, err := r.s.get(k)
	if err != nil {
		return err
	}
	if v == nil {
		return product.ErrNotFound
	}
	if err := r.s.put(key{tableProductsByName, v.(product.Product).Name}, nil); err != nil {
		return err
	}
	return r.s.put(k, nil)
}

func (r *ProductRepository) claimName(name, id string) error {
	k := key{tableProductsByName, name}
	v, err := r.s.get(k)
	if err != nil {
		return err
	}
	if v != nil {
		return product.ErrDuplicateName
	}
	return r.s.put(k, id)
}
