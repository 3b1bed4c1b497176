package memory

import (
	"context"
	"sync"

	"dashboard/domain/stats"
)

// StatsRepository In-memory overall-statistics store.
type StatsRepository struct {
	mu      sync.RWMutex
	overall *stats.Overall
}

// NewStatsRepository creates a store holding the given record, which may
// be nil.
func NewStatsRepository(overall *stats.Overall) *StatsRepository {
	return &StatsRepository{overall: overall}
}

func (r *StatsRepository) First(ctx context.Context) (*stats.Overall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.overall == nil {
		return nil, stats.ErrNoStats
	}
	out := *r.overall
	return &out, nil
}

var _ stats.Repository = (*StatsRepository)(nil)
