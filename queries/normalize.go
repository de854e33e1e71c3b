package queries

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"salesdash/models"
	"salesdash/utils"
)

// fallbackSaleWindowDays spreads total sales over a fixed window when no
// distinct sale day is known for a product.
const fallbackSaleWindowDays = 30.0

// referenceYear labels synthesized months. The sale-id bucketing has no
// calendar meaning; the result is an explicitly approximate series.
const referenceYear = 2024

func newProductSalesRecord(produto sql.NullString, quantidade sql.NullFloat64,
	numVendas sql.NullInt64, valorTotal sql.NullFloat64, unidade sql.NullString) (models.ProductSalesRecord, bool) {

	name := strings.TrimSpace(produto.String)
	if !produto.Valid || name == "" || !quantidade.Valid || quantidade.Float64 <= 0 {
		return models.ProductSalesRecord{}, false
	}

	rec := models.ProductSalesRecord{
		Product:           name,
		TotalQuantitySold: quantidade.Float64,
		SaleCount:         numVendas.Int64,
		TotalValue:        utils.NullFloat64ToPtr(valorTotal),
		Unit:              utils.NullStringToStringPtr(unidade),
	}
	rec.TotalValueFormatted = utils.FormatCurrency(rec.TotalValue)
	return rec, true
}

// rankProducts re-enforces the ranking invariants after the query:
// descending order by quantity, unique case-folded product names, at most
// limit records. The sort is stable so ties keep the warehouse order.
func rankProducts(records []models.ProductSalesRecord, limit int) []models.ProductSalesRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TotalQuantitySold > records[j].TotalQuantitySold
	})

	seen := make(map[string]bool, len(records))
	ranked := make([]models.ProductSalesRecord, 0, len(records))
	for _, rec := range records {
		key := strings.ToLower(rec.Product)
		if seen[key] {
			continue
		}
		seen[key] = true
		ranked = append(ranked, rec)
		if len(ranked) == limit {
			break
		}
	}
	return ranked
}

func newSeasonalityPoint(produto, mes sql.NullString, quantidade sql.NullFloat64) (models.SeasonalityPoint, bool) {
	name := strings.TrimSpace(produto.String)
	if !produto.Valid || name == "" || !mes.Valid || mes.String == "" || !quantidade.Valid {
		return models.SeasonalityPoint{}, false
	}
	return models.SeasonalityPoint{
		Product:  name,
		Month:    mes.String,
		Quantity: quantidade.Float64,
	}, true
}

type saleLine struct {
	product  string
	saleID   int64
	quantity float64
}

// synthesizeMonths maps each sale id linearly onto a 12-bucket range
// (bucket = int(id/maxId*12) % 12 + 1) labeled with the reference year, and
// aggregates quantity per (product, bucket). Deterministic for a fixed
// input set.
func synthesizeMonths(lines []saleLine) []models.SeasonalityPoint {
	var maxID int64
	for _, l := range lines {
		if l.saleID > maxID {
			maxID = l.saleID
		}
	}
	if maxID <= 0 {
		return nil
	}

	type series struct {
		product string
		month   string
	}
	totals := make(map[series]float64)
	for _, l := range lines {
		product := strings.TrimSpace(l.product)
		if product == "" {
			continue
		}
		bucket := int(float64(l.saleID)/float64(maxID)*12)%12 + 1
		month := fmt.Sprintf("%d-%02d", referenceYear, bucket)
		totals[series{product: product, month: month}] += l.quantity
	}

	points := make([]models.SeasonalityPoint, 0, len(totals))
	for key, quantity := range totals {
		points = append(points, models.SeasonalityPoint{
			Product:  key.product,
			Month:    key.month,
			Quantity: quantity,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Month != points[j].Month {
			return points[i].Month < points[j].Month
		}
		return points[i].Product < points[j].Product
	})
	return points
}

// avgPerDay is total sales over the observed sale days, falling back to a
// fixed 30-day window when no distinct sale day is known.
func avgPerDay(totalSold float64, saleDays int64) float64 {
	if saleDays > 0 {
		return totalSold / float64(saleDays)
	}
	return totalSold / fallbackSaleWindowDays
}

// daysOfStock projects the remaining stock runway, rounded to one decimal.
// Nil when there is no stock figure or the product never sells.
func daysOfStock(stock *float64, perDay float64) *float64 {
	if stock == nil || perDay <= 0 {
		return nil
	}
	d := utils.Round1(*stock / perDay)
	return &d
}

func newStockStatusRecord(produto sql.NullString, total, mediaVenda sql.NullFloat64,
	diasVenda, numVendas, catalogoID sql.NullInt64, descricao sql.NullString,
	estoque sql.NullFloat64, grupo, codigoFab sql.NullString) (models.StockStatusRecord, bool) {

	name := strings.TrimSpace(produto.String)
	if !produto.Valid || name == "" || !total.Valid {
		return models.StockStatusRecord{}, false
	}

	perDay := avgPerDay(total.Float64, diasVenda.Int64)

	rec := models.StockStatusRecord{
		Product:    name,
		TotalSold:  total.Float64,
		AvgPerSale: mediaVenda.Float64,
		AvgPerDay:  utils.Round2(perDay),
		SaleCount:  numVendas.Int64,
		Status:     models.StockStatusOutOfStock,
	}

	// A catalog match flips the status and carries the catalog fields;
	// unmatched rows keep them nil.
	if catalogoID.Valid {
		rec.Status = models.StockStatusInStock
		rec.CatalogDescription = utils.NullStringToStringPtr(descricao)
		rec.StockQuantity = utils.NullFloat64ToPtr(estoque)
		rec.Group = utils.NullStringToStringPtr(grupo)
		rec.ManufacturerCode = utils.NullStringToStringPtr(codigoFab)
		rec.DaysOfStock = daysOfStock(rec.StockQuantity, perDay)
	}

	return rec, true
}
