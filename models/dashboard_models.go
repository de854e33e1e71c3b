package models

// RankingMetrics mirrors the summary cards of the ranking view.
type RankingMetrics struct {
	ProductCount  int     `json:"product_count"`
	TotalQuantity float64 `json:"total_quantity"`
	Leader        string  `json:"leader"`
}

// RankingView is the chart-ready payload for the product ranking tab.
type RankingView struct {
	TopN    int                  `json:"top_n"`
	Records []ProductSalesRecord `json:"records"`
	Metrics RankingMetrics       `json:"metrics"`
}

// SeasonalityView is the payload for the monthly seasonality tab, one line
// series per product. Approximate is true when the months were synthesized
// from sale ids instead of real dates.
type SeasonalityView struct {
	TopN        int                `json:"top_n"`
	Approximate bool               `json:"approximate"`
	Products    []string           `json:"products"`
	Points      []SeasonalityPoint `json:"points"`
}

// StockMetrics mirrors the summary cards of the stock tab.
type StockMetrics struct {
	InStock        int     `json:"in_stock"`
	OutOfStock     int     `json:"out_of_stock"`
	RuptureRatePct float64 `json:"rupture_rate_pct"`
	AvgPerDayTotal float64 `json:"avg_per_day_total"`
}

// LowStockAlert flags an in-stock product with fewer than seven days of
// stock remaining at the current sale rate.
type LowStockAlert struct {
	Product       string  `json:"produto"`
	StockQuantity float64 `json:"quantidade_estoque"`
	DaysOfStock   float64 `json:"dias_estoque"`
}

// StockView is the payload for the stock status tab.
type StockView struct {
	TopN            int                 `json:"top_n"`
	Records         []StockStatusRecord `json:"records"`
	Metrics         StockMetrics        `json:"metrics"`
	ZeroStockAlerts []string            `json:"zero_stock_alerts"`
	LowStockAlerts  []LowStockAlert     `json:"low_stock_alerts"`
}

// DashboardSummary drives the top-N range control of the UI.
type DashboardSummary struct {
	TotalProducts int `json:"total_products"`
	MinTopN       int `json:"min_top_n"`
	MaxTopN       int `json:"max_top_n"`
	SliderMax     int `json:"slider_max"`
	DefaultTopN   int `json:"default_top_n"`
}
