package queries

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdash/models"
)

func TestCountDistinctProductsNilConnection(t *testing.T) {
	assert.Equal(t, FallbackProductCount, CountDistinctProducts(nil))
}

func TestCountDistinctProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`COUNT\(DISTINCT TRIM\(descricaoProduto\)\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total_produtos"}).AddRow(37))

	assert.Equal(t, 37, CountDistinctProducts(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountDistinctProductsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`COUNT\(DISTINCT`).WillReturnError(errors.New("warehouse down"))

	assert.Equal(t, FallbackProductCount, CountDistinctProducts(db))
}

func TestTopProductsNilConnection(t *testing.T) {
	assert.Empty(t, TopProducts(nil, 5))
}

// Seeded ranking: three products with quantities 50, 30 and 20; asking for
// the top two must return exactly the two highest, in descending order.
func TestTopProductsLimitAndOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"produto", "quantidade_total", "num_vendas", "valor_total", "unidade"}).
		AddRow("Arroz 5kg", 30.0, 12, 450.0, "UN").
		AddRow("Feijao 1kg", 50.0, 20, 600.0, "UN").
		AddRow("Acucar 2kg", 20.0, 8, 200.0, "UN")

	mock.ExpectQuery(`FROM main.default.itens_venda_mm`).WithArgs(2).WillReturnRows(rows)

	records := TopProducts(db, 2)
	require.Len(t, records, 2)
	assert.Equal(t, "Feijao 1kg", records[0].Product)
	assert.Equal(t, 50.0, records[0].TotalQuantitySold)
	assert.Equal(t, int64(20), records[0].SaleCount)
	assert.Equal(t, "R$ 600,00", records[0].TotalValueFormatted)
	assert.Equal(t, "Arroz 5kg", records[1].Product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopProductsDropsInvalidRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"produto", "quantidade_total", "num_vendas", "valor_total", "unidade"}).
		AddRow(nil, 10.0, 1, nil, nil).             // missing product
		AddRow("  Cafe 500g ", 25.0, 4, nil, nil).  // kept, trimmed
		AddRow("Sal", nil, 2, 5.0, "UN").           // missing quantity
		AddRow("cafe 500g", 5.0, 1, nil, nil).      // duplicate after case fold
		AddRow("Oleo", 0.0, 1, 2.0, "UN")           // non-positive quantity

	mock.ExpectQuery(`FROM main.default.itens_venda_mm`).WithArgs(10).WillReturnRows(rows)

	records := TopProducts(db, 10)
	require.Len(t, records, 1)
	assert.Equal(t, "Cafe 500g", records[0].Product)
	assert.Greater(t, records[0].TotalQuantitySold, 0.0)
	assert.Nil(t, records[0].TotalValue)
	assert.Equal(t, "-", records[0].TotalValueFormatted)
}

func TestTopProductsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM main.default.itens_venda_mm`).WithArgs(5).
		WillReturnError(errors.New("transient warehouse error"))

	assert.Empty(t, TopProducts(db, 5))
}

func TestSeasonality(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"produto", "mes", "quantidade"}).
		AddRow("Feijao 1kg", "2024-01", 12.0).
		AddRow("Feijao 1kg", "2024-03", 7.0). // no 2024-02 row: gaps stay absent
		AddRow("Arroz 5kg", "2024-03", 4.0)

	mock.ExpectQuery(`DATE_FORMAT\(data, 'yyyy-MM'\)`).WithArgs(5).WillReturnRows(rows)

	points, approximate := Seasonality(db, 5)
	assert.False(t, approximate)
	require.Len(t, points, 3)
	assert.Equal(t, "2024-01", points[0].Month)
	assert.Equal(t, "2024-03", points[1].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// When the primary query yields nothing, months are synthesized from sale
// ids: bucket = int(id/maxId*12) % 12 + 1 labeled with the reference year.
func TestSeasonalityFallbackBuckets(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`DATE_FORMAT\(data, 'yyyy-MM'\)`).WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"produto", "mes", "quantidade"}))

	fallback := sqlmock.NewRows([]string{"produto", "vendaId", "quantidade"}).
		AddRow("Feijao 1kg", 100, 5.0).
		AddRow("Feijao 1kg", 100, 3.0).
		AddRow("Arroz 5kg", 50, 2.0)
	mock.ExpectQuery(`INNER JOIN top_produtos`).WithArgs(3).WillReturnRows(fallback)

	points, approximate := Seasonality(db, 3)
	assert.True(t, approximate)
	require.Len(t, points, 2)

	// maxId=100: id 100 -> bucket 1, id 50 -> bucket 7.
	assert.Equal(t, models.SeasonalityPoint{Product: "Feijao 1kg", Month: "2024-01", Quantity: 8.0}, points[0])
	assert.Equal(t, models.SeasonalityPoint{Product: "Arroz 5kg", Month: "2024-07", Quantity: 2.0}, points[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeasonalityNilConnection(t *testing.T) {
	points, approximate := Seasonality(nil, 5)
	assert.Empty(t, points)
	assert.False(t, approximate)
}

func TestStockAnalysis(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"produto", "total_vendido", "media_venda", "dias_com_venda", "num_vendas",
		"catalogo_id", "descricao_cadastro", "quantidade_estoque", "grupo", "codigo_fab",
	}).
		AddRow("Feijao 1kg", 90.0, 4.5, 30, 20, 7, "FEIJAO 1KG", 45.0, "Alimentos", "F-01").
		AddRow("Arroz 5kg", 90.0, 3.0, 0, 30, nil, nil, nil, nil, nil)

	mock.ExpectQuery(`LEFT JOIN main.default.produtos_mm`).WithArgs(2).WillReturnRows(rows)

	records := StockAnalysis(db, 2)
	require.Len(t, records, 2)

	matched := records[0]
	assert.Equal(t, models.StockStatusInStock, matched.Status)
	assert.Equal(t, 3.0, matched.AvgPerDay) // 90 over 30 sale days
	require.NotNil(t, matched.DaysOfStock)
	assert.Equal(t, 15.0, *matched.DaysOfStock) // 45 / 3
	require.NotNil(t, matched.CatalogDescription)
	assert.Equal(t, "FEIJAO 1KG", *matched.CatalogDescription)

	unmatched := records[1]
	assert.Equal(t, models.StockStatusOutOfStock, unmatched.Status)
	assert.Equal(t, 3.0, unmatched.AvgPerDay) // 90 over the 30-day fallback window
	assert.Nil(t, unmatched.DaysOfStock)
	assert.Nil(t, unmatched.StockQuantity)
	assert.Nil(t, unmatched.Group)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockAnalysisMatchedWithoutStockQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"produto", "total_vendido", "media_venda", "dias_com_venda", "num_vendas",
		"catalogo_id", "descricao_cadastro", "quantidade_estoque", "grupo", "codigo_fab",
	}).
		AddRow("Cafe 500g", 60.0, 2.0, 15, 10, 3, "CAFE 500G", nil, nil, nil)

	mock.ExpectQuery(`LEFT JOIN main.default.produtos_mm`).WithArgs(1).WillReturnRows(rows)

	records := StockAnalysis(db, 1)
	require.Len(t, records, 1)
	assert.Equal(t, models.StockStatusInStock, records[0].Status)
	assert.Nil(t, records[0].DaysOfStock)
}

func TestStockAnalysisQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`LEFT JOIN main.default.produtos_mm`).WithArgs(5).
		WillReturnError(errors.New("warehouse down"))

	assert.Empty(t, StockAnalysis(db, 5))
	assert.Empty(t, StockAnalysis(nil, 5))
}
