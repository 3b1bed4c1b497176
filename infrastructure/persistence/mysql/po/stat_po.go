package po

import "dashboard/domain/stats"

// OverallStatPO Row shape for the overall_stats table. The time series
// and category breakdown are stored as JSON columns.
type OverallStatPO struct {
	ID                   string `gorm:"primaryKey;size:64"`
	TotalCustomers       int64
	YearlySalesTotal     float64
	YearlyTotalSoldUnits int64
	Year                 int
	MonthlyData          []stats.MonthlyData `gorm:"serializer:json;type:json"`
	DailyData            []stats.DailyData   `gorm:"serializer:json;type:json"`
	SalesByCategory      map[string]float64  `gorm:"serializer:json;type:json"`
}

func (OverallStatPO) TableName() string {
	return "overall_stats"
}

func (po *OverallStatPO) ToDomain() *stats.Overall {
	return &stats.Overall{
		ID:                   po.ID,
		TotalCustomers:       po.TotalCustomers,
		YearlySalesTotal:     po.YearlySalesTotal,
		YearlyTotalSoldUnits: po.YearlyTotalSoldUnits,
		Year:                 po.Year,
		MonthlyData:          po.MonthlyData,
		DailyData:            po.DailyData,
		SalesByCategory:      po.SalesByCategory,
	}
}
