package product

// Product A catalog entry.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Supply      int64   `json:"supply"`
}

// Stat Per-product yearly sales figures.
type Stat struct {
	ID                   string  `json:"_id"`
	ProductID            string  `json:"productId"`
	YearlySalesTotal     float64 `json:"yearlySalesTotal"`
	YearlyTotalSoldUnits int64   `json:"yearlyTotalSoldUnits"`
	Year                 int     `json:"year"`
}
