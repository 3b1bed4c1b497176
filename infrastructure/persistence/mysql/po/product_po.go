package po

import "dashboard/domain/product"

// ProductPO Row shape for the products table.
type ProductPO struct {
	ID          string  `gorm:"primaryKey;size:64"`
	Name        string  `gorm:"size:100;not null"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"type:text"`
	Category    string  `gorm:"size:100;index"`
	Rating      float64
	Supply      int64
}

func (ProductPO) TableName() string {
	return "products"
}

func (po *ProductPO) ToDomain() product.Product {
	return product.Product{
		ID:          po.ID,
		Name:        po.Name,
		Price:       po.Price,
		Description: po.Description,
		Category:    po.Category,
		Rating:      po.Rating,
		Supply:      po.Supply,
	}
}

// ProductStatPO Row shape for the product_stats table.
type ProductStatPO struct {
	ID                   string `gorm:"primaryKey;size:64"`
	ProductID            string `gorm:"size:64;index;not null"`
	YearlySalesTotal     float64
	YearlyTotalSoldUnits int64
	Year                 int
}

func (ProductStatPO) TableName() string {
	return "product_stats"
}

func (po *ProductStatPO) ToDomain() product.Stat {
	return product.Stat{
		ID:                   po.ID,
		ProductID:            po.ProductID,
		YearlySalesTotal:     po.YearlySalesTotal,
		YearlyTotalSoldUnits: po.YearlyTotalSoldUnits,
		Year:                 po.Year,
	}
}
