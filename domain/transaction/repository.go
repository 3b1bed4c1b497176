package transaction

import "context"

// Repository Transaction persistence. Transactions are append-only at
// this layer; there is no update or delete.
type Repository interface {
	// Insert persists a new record.
	Insert(ctx context.Context, t *Transaction) error

	// Find returns the page of records selected by q. The search term is
	// matched as a case-insensitive substring against the cost and the
	// customer id.
	Find(ctx context.Context, q Query) ([]Transaction, error)

	// Count returns how many records match the search term, ignoring
	// pagination and sort.
	Count(ctx context.Context, search string) (int64, error)

	// Latest returns the most recent n records.
	Latest(ctx context.Context, n int) ([]Transaction, error)
}
