package po

import (
	"time"

	"dashboard/domain/transaction"
)

// TransactionPO Row shape for the transactions table. Cost is text so the
// substring search can run against it.
type TransactionPO struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    string    `gorm:"size:64;index;not null"`
	Cost      string    `gorm:"size:32;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (TransactionPO) TableName() string {
	return "transactions"
}

func FromTransactionDomain(t *transaction.Transaction) *TransactionPO {
	return &TransactionPO{
		ID:        t.ID,
		UserID:    t.UserID,
		Cost:      t.Cost,
		CreatedAt: t.CreatedAt,
	}
}

func (po *TransactionPO) ToDomain() transaction.Transaction {
	return transaction.Transaction{
		ID:        po.ID,
		UserID:    po.UserID,
		Cost:      po.Cost,
		CreatedAt: po.CreatedAt,
	}
}
