package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salesdash/cache"
	"salesdash/database"
	"salesdash/models"
	"salesdash/queries"
)

const (
	defaultTopN = 10
	minTopN     = 2
	maxTopN     = 100
	sliderTopN  = 50
)

// topNParam reads and clamps the top_n query parameter. The query catalog
// trusts its callers to keep the limit >= 2, so the clamp lives here.
func topNParam(c *fiber.Ctx) int {
	topN := c.QueryInt("top_n", defaultTopN)
	if topN < minTopN {
		topN = minTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}
	return topN
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleGetDashboardSummary returns the bounds for the top-N range control.
// With the warehouse unreachable the count falls back to a constant, so the
// control stays usable.
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	key := cache.Key("summary")
	if cached, found := cache.Results.Get(key); found {
		return c.JSON(cached.(models.DashboardSummary))
	}

	total := queries.CountDistinctProducts(database.GetDB())

	summary := models.DashboardSummary{
		TotalProducts: total,
		MinTopN:       minTopN,
		MaxTopN:       min(total, maxTopN),
		SliderMax:     min(total, sliderTopN),
		DefaultTopN:   min(defaultTopN, total),
	}

	cache.Results.Set(key, summary, 0)
	return c.JSON(summary)
}

// HandleRefresh clears every cached query result so the next render
// recomputes from the warehouse.
func HandleRefresh(c *fiber.Ctx) error {
	cache.Results.Clear()
	log.Println("Query cache cleared")
	return c.JSON(fiber.Map{"status": "success", "message": "Cache cleared"})
}
