// Package geography reduces the customer set to per-country counts.
package geography

import (
	"context"

	"dashboard/domain/customer"
	apperrors "dashboard/pkg/errors"
	"dashboard/pkg/geo"
)

// Service Geography aggregation application service.
type Service struct {
	repo    customer.Repository
	resolve geo.Resolver
}

// NewService creates the geography service. The resolver maps a stored
// country value to an alpha-3 code and is injected so tests can swap it.
func NewService(repo customer.Repository, resolve geo.Resolver) *Service {
	return &Service{repo: repo, resolve: resolve}
}

// Location One aggregated country: the alpha-3 code and how many
// customers resolve to it.
type Location struct {
	ID    string `json:"id"`
	Value int64  `json:"value"`
}

// Aggregate recomputes the per-country counts from the live customer set.
// Customers whose country value does not resolve are dropped, not
// reported. The output carries no ordering guarantee.
func (s *Service) Aggregate(ctx context.Context) ([]Location, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}

	counts := make(map[string]int64)
	for _, c := range records {
		alpha3, ok := s.resolve(c.Country())
		if !ok {
			continue
		}
		counts[alpha3]++
	}

	locations := make([]Location, 0, len(counts))
	for code, count := range counts {
		locations = append(locations, Location{ID: code, Value: count})
	}
	return locations, nil
}
