package models

// SalesSummary aggregates the headline numbers for a period.
type SalesSummary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	SaleCount    int64   `json:"saleCount"`
	UnitsSold    int64   `json:"unitsSold"`
	AverageSale  float64 `json:"averageSale"`
}

// CategoryRevenue is one slice of the revenue-by-category breakdown.
type CategoryRevenue struct {
	CategoryName string  `json:"categoryName"`
	Revenue      float64 `json:"revenue"`
	SaleCount    int64   `json:"saleCount"`
}

// MonthlyRevenue is one point of the revenue-over-time series.
type MonthlyRevenue struct {
	Month     string  `json:"month"` // YYYY-MM
	Revenue   float64 `json:"revenue"`
	SaleCount int64   `json:"saleCount"`
}

// ProductSales is one row of the top-products table.
type ProductSales struct {
	ProductName string  `json:"productName"`
	UnitsSold   int64   `json:"unitsSold"`
	Revenue     float64 `json:"revenue"`
}

// PaymentMethodBreakdown is one slice of the payment-method chart.
type PaymentMethodBreakdown struct {
	PaymentMethod string  `json:"paymentMethod"`
	SaleCount     int64   `json:"saleCount"`
	Revenue       float64 `json:"revenue"`
}

// Dashboard is the combined analytics payload rendered by the frontend.
type Dashboard struct {
	Summary        SalesSummary             `json:"summary"`
	ByCategory     []CategoryRevenue        `json:"byCategory"`
	Monthly        []MonthlyRevenue         `json:"monthly"`
	TopProducts    []ProductSales           `json:"topProducts"`
	PaymentMethods []PaymentMethodBreakdown `json:"paymentMethods"`
}
