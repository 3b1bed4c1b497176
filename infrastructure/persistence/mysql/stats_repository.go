package mysql

import (
	"context"
	"errors"

	"dashboard/domain/stats"
	"dashboard/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) First(ctx context.Context) (*stats.Overall, error) {
	var statPO po.OverallStatPO
	result := r.db.WithContext(ctx).First(&statPO)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, stats.ErrNoStats
		}
		return nil, result.Error
	}
	return statPO.ToDomain(), nil
}

var _ stats.Repository = (*StatsRepository)(nil)
