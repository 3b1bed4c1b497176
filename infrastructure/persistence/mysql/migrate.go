package mysql

import (
	"dashboard/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&po.CustomerPO{},
		&po.TransactionPO{},
		&po.ProductPO{},
		&po.ProductStatPO{},
		&po.OverallStatPO{},
	)
}
