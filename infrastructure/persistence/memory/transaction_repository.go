package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"dashboard/domain/transaction"
)

// TransactionRepository In-memory transaction store. Records keep their
// insertion order, which stands in for the natural store order.
type TransactionRepository struct {
	mu      sync.RWMutex
	records []transaction.Transaction
}

// NewTransactionRepository creates an empty in-memory transaction store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Insert(ctx context.Context, t *transaction.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *t)
	return nil
}

func matches(t transaction.Transaction, search string) bool {
	if search == "" {
		return true
	}
	term := strings.ToLower(search)
	return strings.Contains(strings.ToLower(t.Cost), term) ||
		strings.Contains(strings.ToLower(t.UserID), term)
}

func lessByField(a, b transaction.Transaction, field string) bool {
	switch field {
	case "id":
		return a.ID < b.ID
	case "userId":
		return a.UserID < b.UserID
	case "cost":
		return a.Cost < b.Cost
	case "createdAt":
		return a.CreatedAt.Before(b.CreatedAt)
	default:
		return false
	}
}

func (r *TransactionRepository) filtered(search string) []transaction.Transaction {
	var out []transaction.Transaction
	for _, t := range r.records {
		if matches(t, search) {
			out = append(out, t)
		}
	}
	return out
}

func (r *TransactionRepository) Find(ctx context.Context, q transaction.Query) ([]transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.filtered(q.Search)

	if q.Sort != nil && transaction.IsSortable(q.Sort.Field) {
		field, desc := q.Sort.Field, q.Sort.Descending()
		sort.SliceStable(rows, func(i, j int) bool {
			if desc {
				return lessByField(rows[j], rows[i], field)
			}
			return lessByField(rows[i], rows[j], field)
		})
	}

	offset := q.Offset()
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + q.PageSize
	if end > len(rows) {
		end = len(rows)
	}

	page := make([]transaction.Transaction, end-offset)
	copy(page, rows[offset:end])
	return page, nil
}

func (r *TransactionRepository) Count(ctx context.Context, search string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.filtered(search))), nil
}

func (r *TransactionRepository) Latest(ctx context.Context, n int) ([]transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]transaction.Transaction, len(r.records))
	copy(rows, r.records)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows, nil
}

var _ transaction.Repository = (*TransactionRepository)(nil)
