// Package transaction implements the paginated, filtered, sorted
// transaction listing.
package transaction

import (
	"context"

	"dashboard/domain/transaction"
	apperrors "dashboard/pkg/errors"
)

// Service Transaction query application service.
type Service struct {
	repo transaction.Repository
}

// NewService creates the transaction service on top of a repository.
func NewService(repo transaction.Repository) *Service {
	return &Service{repo: repo}
}

// QueryRequest One listing request as it arrives on the wire. Sort is the
// raw JSON-encoded {"field","sort"} string, empty for natural order.
type QueryRequest struct {
	Page     int
	PageSize int
	Sort     string
	Search   string
}

// QueryResponse The page of transactions plus the filtered total.
type QueryResponse struct {
	Transactions []transaction.Transaction `json:"transactions"`
	Total        int64                     `json:"total"`
}

// Query returns the window [page*pageSize, page*pageSize+pageSize) of the
// filtered and sorted collection, and the count of all records matching
// the search filter.
func (s *Service) Query(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	if req.Page < 0 || req.PageSize < 0 {
		return nil, apperrors.BadRequest("page and pageSize must be non-negative")
	}

	sortSpec, err := transaction.ParseSort(req.Sort)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeBadRequest, "Invalid sort parameter")
	}

	q := transaction.Query{
		Page:     req.Page,
		PageSize: req.PageSize,
		Sort:     sortSpec,
		Search:   req.Search,
	}

	items, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}

	total, err := s.repo.Count(ctx, req.Search)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "Server error")
	}

	if items == nil {
		items = []transaction.Transaction{}
	}
	return &QueryResponse{Transactions: items, Total: total}, nil
}
