// Package queries is the read-only catalog of warehouse queries behind the
// dashboard, plus the normalization that turns raw rows into chart-ready
// records. Every query is independently fault-tolerant: a failure is logged
// and surfaces as an empty (or documented fallback) result, never an error.
package queries

import (
	"database/sql"
	"log"

	"salesdash/models"
)

// FallbackProductCount bounds the UI range control when the warehouse is
// unreachable. Callers must treat it as a soft failure signal, not an error.
const FallbackProductCount = 10

const countDistinctProductsQuery = `
SELECT COUNT(DISTINCT TRIM(descricaoProduto)) as total_produtos
FROM main.default.itens_venda_mm
WHERE descricaoProduto IS NOT NULL
AND LENGTH(TRIM(descricaoProduto)) > 0
AND qtde > 0
`

// CountDistinctProducts counts the distinct, non-empty, trimmed product
// names with at least one positive-quantity sale line.
func CountDistinctProducts(db *sql.DB) int {
	if db == nil {
		return FallbackProductCount
	}

	var total int
	if err := db.QueryRow(countDistinctProductsQuery).Scan(&total); err != nil {
		log.Printf("Error counting distinct products: %v", err)
		return FallbackProductCount
	}
	return total
}

const topProductsQuery = `
SELECT
    TRIM(descricaoProduto) as produto,
    CAST(SUM(qtde) as DOUBLE) as quantidade_total,
    CAST(COUNT(DISTINCT vendaId) as BIGINT) as num_vendas,
    CAST(SUM(valor) as DOUBLE) as valor_total,
    FIRST(un) as unidade
FROM main.default.itens_venda_mm
WHERE descricaoProduto IS NOT NULL
AND LENGTH(TRIM(descricaoProduto)) > 0
AND qtde > 0
GROUP BY TRIM(descricaoProduto)
ORDER BY quantidade_total DESC
LIMIT ?
`

// TopProducts returns the ranking of the most sold products, at most limit
// records ordered by total quantity descending. Callers are responsible for
// keeping limit >= 2; an unreachable or failing warehouse yields an empty
// slice.
func TopProducts(db *sql.DB, limit int) []models.ProductSalesRecord {
	if db == nil {
		return nil
	}

	rows, err := db.Query(topProductsQuery, limit)
	if err != nil {
		log.Printf("Error querying top products: %v", err)
		return nil
	}
	defer rows.Close()

	var records []models.ProductSalesRecord
	for rows.Next() {
		var (
			produto    sql.NullString
			quantidade sql.NullFloat64
			numVendas  sql.NullInt64
			valorTotal sql.NullFloat64
			unidade    sql.NullString
		)
		if err := rows.Scan(&produto, &quantidade, &numVendas, &valorTotal, &unidade); err != nil {
			log.Printf("Error scanning top product row: %v", err)
			continue
		}
		rec, ok := newProductSalesRecord(produto, quantidade, numVendas, valorTotal, unidade)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error reading top product rows: %v", err)
		return nil
	}

	return rankProducts(records, limit)
}

const seasonalityQuery = `
WITH top_produtos AS (
    SELECT descricaoProduto
    FROM main.default.itens_venda_mm
    WHERE descricaoProduto IS NOT NULL
    GROUP BY descricaoProduto
    ORDER BY SUM(qtde) DESC
    LIMIT ?
)
SELECT
    descricaoProduto as produto,
    DATE_FORMAT(data, 'yyyy-MM') as mes,
    SUM(qtde) as quantidade
FROM main.default.itens_venda_mm
WHERE descricaoProduto IN (SELECT descricaoProduto FROM top_produtos)
AND data IS NOT NULL
GROUP BY descricaoProduto, DATE_FORMAT(data, 'yyyy-MM')
ORDER BY mes, produto
`

const seasonalityFallbackQuery = `
WITH top_produtos AS (
    SELECT descricaoProduto, COUNT(*) as cnt
    FROM main.default.itens_venda_mm
    WHERE descricaoProduto IS NOT NULL
    GROUP BY descricaoProduto
    ORDER BY cnt DESC
    LIMIT ?
)
SELECT
    iv.descricaoProduto as produto,
    iv.vendaId,
    iv.qtde as quantidade
FROM main.default.itens_venda_mm iv
INNER JOIN top_produtos tp ON iv.descricaoProduto = tp.descricaoProduto
`

// Seasonality returns the quantity sold per (product, month) pair for the
// top-N products by total quantity. When no date-bearing rows exist the
// months are synthesized from sale ids; approximate reports that mode so
// callers can label the chart accordingly. Months without sales are absent.
func Seasonality(db *sql.DB, topN int) (points []models.SeasonalityPoint, approximate bool) {
	if db == nil {
		return nil, false
	}

	rows, err := db.Query(seasonalityQuery, topN)
	if err != nil {
		log.Printf("Error querying seasonality: %v", err)
		return nil, false
	}
	defer rows.Close()

	for rows.Next() {
		var (
			produto    sql.NullString
			mes        sql.NullString
			quantidade sql.NullFloat64
		)
		if err := rows.Scan(&produto, &mes, &quantidade); err != nil {
			log.Printf("Error scanning seasonality row: %v", err)
			continue
		}
		p, ok := newSeasonalityPoint(produto, mes, quantidade)
		if !ok {
			continue
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error reading seasonality rows: %v", err)
		return nil, false
	}

	if len(points) > 0 {
		return points, false
	}
	return seasonalityFromSaleIDs(db, topN)
}

// seasonalityFromSaleIDs rebuilds a pseudo-monthly series when the data
// column is unpopulated, mapping each sale id linearly onto twelve buckets.
func seasonalityFromSaleIDs(db *sql.DB, topN int) ([]models.SeasonalityPoint, bool) {
	rows, err := db.Query(seasonalityFallbackQuery, topN)
	if err != nil {
		log.Printf("Error querying seasonality fallback: %v", err)
		return nil, false
	}
	defer rows.Close()

	var lines []saleLine
	for rows.Next() {
		var (
			produto    sql.NullString
			vendaID    sql.NullInt64
			quantidade sql.NullFloat64
		)
		if err := rows.Scan(&produto, &vendaID, &quantidade); err != nil {
			log.Printf("Error scanning seasonality fallback row: %v", err)
			continue
		}
		if !produto.Valid || !vendaID.Valid || !quantidade.Valid {
			continue
		}
		lines = append(lines, saleLine{
			product:  produto.String,
			saleID:   vendaID.Int64,
			quantity: quantidade.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error reading seasonality fallback rows: %v", err)
		return nil, false
	}

	points := synthesizeMonths(lines)
	return points, len(points) > 0
}

const stockAnalysisQuery = `
WITH vendas_resumo AS (
    SELECT
        descricaoProduto,
        SUM(qtde) as total_vendido,
        AVG(qtde) as media_venda,
        COUNT(DISTINCT DATE(data)) as dias_com_venda,
        COUNT(DISTINCT vendaId) as num_vendas
    FROM main.default.itens_venda_mm
    WHERE descricaoProduto IS NOT NULL
    AND data IS NOT NULL
    GROUP BY descricaoProduto
    ORDER BY total_vendido DESC
    LIMIT ?
)
SELECT
    v.descricaoProduto as produto,
    v.total_vendido,
    v.media_venda,
    v.dias_com_venda,
    v.num_vendas,
    p.id as catalogo_id,
    p.descricao as descricao_cadastro,
    p.estoque as quantidade_estoque,
    p.grupo,
    p.codigo_fab
FROM vendas_resumo v
LEFT JOIN main.default.produtos_mm p
    ON LOWER(TRIM(v.descricaoProduto)) = LOWER(TRIM(p.descricao))
ORDER BY v.total_vendido DESC
`

// StockAnalysis joins the top-N sold products against the product catalog.
// The join is a deliberately fuzzy one: trimmed, case-folded equality
// between the sale description and the catalog description, so minor name
// variants do not match and show up as Sem Estoque.
func StockAnalysis(db *sql.DB, topN int) []models.StockStatusRecord {
	if db == nil {
		return nil
	}

	rows, err := db.Query(stockAnalysisQuery, topN)
	if err != nil {
		log.Printf("Error querying stock analysis: %v", err)
		return nil
	}
	defer rows.Close()

	var records []models.StockStatusRecord
	for rows.Next() {
		var (
			produto    sql.NullString
			total      sql.NullFloat64
			mediaVenda sql.NullFloat64
			diasVenda  sql.NullInt64
			numVendas  sql.NullInt64
			catalogoID sql.NullInt64
			descricao  sql.NullString
			estoque    sql.NullFloat64
			grupo      sql.NullString
			codigoFab  sql.NullString
		)
		if err := rows.Scan(&produto, &total, &mediaVenda, &diasVenda, &numVendas,
			&catalogoID, &descricao, &estoque, &grupo, &codigoFab); err != nil {
			log.Printf("Error scanning stock analysis row: %v", err)
			continue
		}
		rec, ok := newStockStatusRecord(produto, total, mediaVenda, diasVenda, numVendas,
			catalogoID, descricao, estoque, grupo, codigoFab)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error reading stock analysis rows: %v", err)
		return nil
	}

	return records
}
