package handlers

import (
	"github.com/gofiber/fiber/v2"

	"salesdash/cache"
	"salesdash/database"
	"salesdash/models"
	"salesdash/queries"
)

// HandleGetRanking returns the product ranking view for the requested
// top-N. An unreachable warehouse renders as an empty record list, never an
// error status.
func HandleGetRanking(c *fiber.Ctx) error {
	topN := topNParam(c)

	key := cache.Key("ranking", topN)
	if cached, found := cache.Results.Get(key); found {
		return c.JSON(cached.(models.RankingView))
	}

	records := queries.TopProducts(database.GetDB(), topN)
	if records == nil {
		records = []models.ProductSalesRecord{}
	}

	view := models.RankingView{
		TopN:    topN,
		Records: records,
		Metrics: rankingMetrics(records),
	}

	cache.Results.Set(key, view, 0)
	return c.JSON(view)
}

func rankingMetrics(records []models.ProductSalesRecord) models.RankingMetrics {
	m := models.RankingMetrics{ProductCount: len(records)}
	for _, rec := range records {
		m.TotalQuantity += rec.TotalQuantitySold
	}
	if len(records) > 0 {
		m.Leader = records[0].Product
	}
	return m
}
