package stats

import (
	"context"
	"errors"
)

// ErrNoStats No overall statistics record exists.
var ErrNoStats = errors.New("no overall statistics recorded")

// Repository Overall-statistics persistence.
type Repository interface {
	// First returns the first overall-statistics record, or ErrNoStats.
	First(ctx context.Context) (*Overall, error)
}
