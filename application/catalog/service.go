// Package catalog serves the product read surface.
package catalog

import (
	"context"

	"dashboard/domain/product"
	apperrors "dashboard/pkg/errors"
)

// Service Product catalog application service.
type Service struct {
	repo product.Repository
}

// NewService creates the catalog service on top of a repository.
func NewService(repo product.Repository) *Service {
	return &Service{repo: repo}
}

// ProductWithStat One product joined with its recorded stats.
type ProductWithStat struct {
	product.Product
	Stat []product.Stat `json:"stat"`
}

// Products returns every product with its stats attached.
func (s *Service) Products(ctx context.Context) ([]ProductWithStat, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}

	out := make([]ProductWithStat, len(products))
	for i, p := range products {
		productStats, err := s.repo.StatsByProductID(ctx, p.ID)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
		}
		if productStats == nil {
			productStats = []product.Stat{}
		}
		out[i] = ProductWithStat{Product: p, Stat: productStats}
	}
	return out, nil
}
