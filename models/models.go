package models

// StockStatus classifies a top-selling product by whether a matching row
// exists in the produtos_mm catalog. The values are the labels stored in
// the warehouse views.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "Em Estoque"
	StockStatusOutOfStock StockStatus = "Sem Estoque"
)

// ProductSalesRecord is one row of the product ranking. Records are unique
// per trimmed product name and ordered by total quantity sold, descending.
type ProductSalesRecord struct {
	Product             string   `json:"produto"`
	TotalQuantitySold   float64  `json:"quantidade_total"`
	SaleCount           int64    `json:"num_vendas"`
	TotalValue          *float64 `json:"valor_total"`
	Unit                *string  `json:"unidade"`
	TotalValueFormatted string   `json:"valor_total_formatado"`
}

// SeasonalityPoint is the quantity sold of one product in one calendar
// month (YYYY-MM). Months with no sales are absent, not zero-filled.
type SeasonalityPoint struct {
	Product  string  `json:"produto"`
	Month    string  `json:"mes"`
	Quantity float64 `json:"quantidade"`
}

// StockStatusRecord joins a top-selling product against the catalog. The
// catalog-derived fields are nil when no catalog row matches.
type StockStatusRecord struct {
	Product            string      `json:"produto"`
	TotalSold          float64     `json:"total_vendido"`
	AvgPerSale         float64     `json:"media_venda"`
	AvgPerDay          float64     `json:"media_venda_dia"`
	SaleCount          int64       `json:"num_vendas"`
	Status             StockStatus `json:"status_estoque"`
	CatalogDescription *string     `json:"descricao_cadastro"`
	StockQuantity      *float64    `json:"quantidade_estoque"`
	Group              *string     `json:"grupo"`
	ManufacturerCode   *string     `json:"codigo_fab"`
	DaysOfStock        *float64    `json:"dias_estoque"`
}
