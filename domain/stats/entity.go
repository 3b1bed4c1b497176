package stats

// MonthlyData One month of aggregate sales.
type MonthlyData struct {
	Month      string  `json:"month"`
	TotalSales float64 `json:"totalSales"`
	TotalUnits int64   `json:"totalUnits"`
}

// DailyData One day of aggregate sales.
type DailyData struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"totalSales"`
	TotalUnits int64   `json:"totalUnits"`
}

// Overall The precomputed store-wide statistics record the sales and
// dashboard views read from.
type Overall struct {
	ID                   string             `json:"_id"`
	TotalCustomers       int64              `json:"totalCustomers"`
	YearlySalesTotal     float64            `json:"yearlySalesTotal"`
	YearlyTotalSoldUnits int64              `json:"yearlyTotalSoldUnits"`
	Year                 int                `json:"year"`
	MonthlyData          []MonthlyData      `json:"monthlyData"`
	DailyData            []DailyData        `json:"dailyData"`
	SalesByCategory      map[string]float64 `json:"salesByCategory"`
}
