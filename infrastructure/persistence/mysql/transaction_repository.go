package mysql

import (
	"context"
	"strings"

	"dashboard/domain/transaction"
	"dashboard/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// sortColumns Wire sort fields to their columns.
var sortColumns = map[string]string{
	"id":        "id",
	"userId":    "user_id",
	"cost":      "cost",
	"createdAt": "created_at",
}

func applySearch(db *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return db
	}
	term := "%" + strings.ToLower(search) + "%"
	return db.Where("LOWER(cost) LIKE ? OR LOWER(user_id) LIKE ?", term, term)
}

func (r *TransactionRepository) Insert(ctx context.Context, t *transaction.Transaction) error {
	return r.db.WithContext(ctx).Create(po.FromTransactionDomain(t)).Error
}

func (r *TransactionRepository) Find(ctx context.Context, q transaction.Query) ([]transaction.Transaction, error) {
	db := applySearch(r.db.WithContext(ctx).Model(&po.TransactionPO{}), q.Search)

	if q.Sort != nil {
		if column, ok := sortColumns[q.Sort.Field]; ok {
			direction := " ASC"
			if q.Sort.Descending() {
				direction = " DESC"
			}
			db = db.Order(column + direction)
		}
	}

	var transactionPOs []po.TransactionPO
	if err := db.Offset(q.Offset()).Limit(q.PageSize).Find(&transactionPOs).Error; err != nil {
		return nil, err
	}

	transactions := make([]transaction.Transaction, len(transactionPOs))
	for i := range transactionPOs {
		transactions[i] = transactionPOs[i].ToDomain()
	}
	return transactions, nil
}

func (r *TransactionRepository) Count(ctx context.Context, search string) (int64, error) {
	var count int64
	db := applySearch(r.db.WithContext(ctx).Model(&po.TransactionPO{}), search)
	if err := db.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TransactionRepository) Latest(ctx context.Context, n int) ([]transaction.Transaction, error) {
	var transactionPOs []po.TransactionPO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(n).
		Find(&transactionPOs).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]transaction.Transaction, len(transactionPOs))
	for i := range transactionPOs {
		transactions[i] = transactionPOs[i].ToDomain()
	}
	return transactions, nil
}

var _ transaction.Repository = (*TransactionRepository)(nil)
