package memory

import (
	"context"
	"sync"

	"dashboard/domain/product"
)

// ProductRepository In-memory product catalog.
type ProductRepository struct {
	mu       sync.RWMutex
	products []product.Product
	stats    map[string][]product.Stat
}

// NewProductRepository creates a catalog preloaded with the given data.
func NewProductRepository(products []product.Product, stats []product.Stat) *ProductRepository {
	byProduct := make(map[string][]product.Stat)
	for _, s := range stats {
		byProduct[s.ProductID] = append(byProduct[s.ProductID], s)
	}
	return &ProductRepository{
		products: append([]product.Product(nil), products...),
		stats:    byProduct,
	}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]product.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepository) StatsByProductID(ctx context.Context, productID string) ([]product.Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]product.Stat(nil), r.stats[productID]...), nil
}

var _ product.Repository = (*ProductRepository)(nil)
