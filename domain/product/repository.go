package product

import "context"

// Repository Product catalog persistence.
type Repository interface {
	// FindAll returns every product.
	FindAll(ctx context.Context) ([]Product, error)

	// StatsByProductID returns the stats recorded for one product.
	StatsByProductID(ctx context.Context, productID string) ([]Stat, error)
}
