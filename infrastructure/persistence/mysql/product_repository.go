package mysql

import (
	"context"

	"dashboard/domain/product"
	"dashboard/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]product.Product, error) {
	var productPOs []po.ProductPO
	if err := r.db.WithContext(ctx).Find(&productPOs).Error; err != nil {
		return nil, err
	}

	products := make([]product.Product, len(productPOs))
	for i := range productPOs {
		products[i] = productPOs[i].ToDomain()
	}
	return products, nil
}

func (r *ProductRepository) StatsByProductID(ctx context.Context, productID string) ([]product.Stat, error) {
	var statPOs []po.ProductStatPO
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&statPOs).Error; err != nil {
		return nil, err
	}

	productStats := make([]product.Stat, len(statPOs))
	for i := range statPOs {
		productStats[i] = statPOs[i].ToDomain()
	}
	return productStats, nil
}

var _ product.Repository = (*ProductRepository)(nil)
