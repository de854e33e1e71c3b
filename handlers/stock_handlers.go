package handlers

import (
	"github.com/gofiber/fiber/v2"

	"salesdash/cache"
	"salesdash/database"
	"salesdash/models"
	"salesdash/queries"
	"salesdash/utils"
)

const (
	// lowStockDaysThreshold flags products with under a week of runway.
	lowStockDaysThreshold = 7.0
	// maxZeroStockAlerts caps the zero-stock alert panel.
	maxZeroStockAlerts = 5
)

// HandleGetStock returns the stock status view for the requested top-N,
// with the summary metrics and the two alert panels.
func HandleGetStock(c *fiber.Ctx) error {
	topN := topNParam(c)

	key := cache.Key("stock", topN)
	if cached, found := cache.Results.Get(key); found {
		return c.JSON(cached.(models.StockView))
	}

	records := queries.StockAnalysis(database.GetDB(), topN)
	if records == nil {
		records = []models.StockStatusRecord{}
	}

	view := models.StockView{
		TopN:            topN,
		Records:         records,
		Metrics:         stockMetrics(records),
		ZeroStockAlerts: zeroStockAlerts(records),
		LowStockAlerts:  lowStockAlerts(records),
	}

	cache.Results.Set(key, view, 0)
	return c.JSON(view)
}

func stockMetrics(records []models.StockStatusRecord) models.StockMetrics {
	var m models.StockMetrics
	for _, rec := range records {
		if rec.Status == models.StockStatusInStock {
			m.InStock++
		} else {
			m.OutOfStock++
		}
		m.AvgPerDayTotal += rec.AvgPerDay
	}
	if len(records) > 0 {
		m.RuptureRatePct = utils.Round1(float64(m.OutOfStock) / float64(len(records)) * 100)
	}
	m.AvgPerDayTotal = utils.Round1(m.AvgPerDayTotal)
	return m
}

// zeroStockAlerts lists top sellers without a catalog match, capped for
// display.
func zeroStockAlerts(records []models.StockStatusRecord) []string {
	alerts := []string{}
	for _, rec := range records {
		if rec.Status != models.StockStatusOutOfStock {
			continue
		}
		alerts = append(alerts, rec.Product)
		if len(alerts) == maxZeroStockAlerts {
			break
		}
	}
	return alerts
}

// lowStockAlerts lists in-stock products with fewer than seven days of
// stock remaining.
func lowStockAlerts(records []models.StockStatusRecord) []models.LowStockAlert {
	alerts := []models.LowStockAlert{}
	for _, rec := range records {
		if rec.Status != models.StockStatusInStock || rec.DaysOfStock == nil || *rec.DaysOfStock >= lowStockDaysThreshold {
			continue
		}
		var stock float64
		if rec.StockQuantity != nil {
			stock = *rec.StockQuantity
		}
		alerts = append(alerts, models.LowStockAlert{
			Product:       rec.Product,
			StockQuantity: stock,
			DaysOfStock:   *rec.DaysOfStock,
		})
	}
	return alerts
}
