package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"salesdash/cache"
	"salesdash/database"
	"salesdash/models"
	"salesdash/queries"
)

// HandleGetSeasonality returns the monthly seasonality view for the
// requested top-N, one line series per product. The approximate flag marks
// months synthesized from sale ids instead of real dates.
func HandleGetSeasonality(c *fiber.Ctx) error {
	topN := topNParam(c)

	key := cache.Key("seasonality", topN)
	if cached, found := cache.Results.Get(key); found {
		return c.JSON(cached.(models.SeasonalityView))
	}

	points, approximate := queries.Seasonality(database.GetDB(), topN)
	if points == nil {
		points = []models.SeasonalityPoint{}
	}

	view := models.SeasonalityView{
		TopN:        topN,
		Approximate: approximate,
		Products:    seriesProducts(points),
		Points:      points,
	}

	cache.Results.Set(key, view, 0)
	return c.JSON(view)
}

// seriesProducts lists the distinct products of the series, sorted for a
// stable chart legend.
func seriesProducts(points []models.SeasonalityPoint) []string {
	seen := make(map[string]bool)
	products := []string{}
	for _, p := range points {
		if !seen[p.Product] {
			seen[p.Product] = true
			products = append(products, p.Product)
		}
	}
	sort.Strings(products)
	return products
}
