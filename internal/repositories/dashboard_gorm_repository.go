package repositories

import (
	"fmt"
	"time"

	"painel/internal/models"

	"gorm.io/gorm"
)

// GORMDashboardRepository computes the dashboard KPIs with raw aggregate
// SQL. Every query is read-only; date cutoffs are computed here instead of
// with database-specific interval arithmetic so the same SQL runs on
// PostgreSQL and SQLite.
type GORMDashboardRepository struct {
	db *gorm.DB
}

// NewGORMDashboardRepository creates a new instance of GORMDashboardRepository.
func NewGORMDashboardRepository(db *gorm.DB) *GORMDashboardRepository {
	return &GORMDashboardRepository{
		db: db,
	}
}

// Overview returns the full KPI payload: money totals, entity counters,
// stock position, top products and sellers, and the last seven days of
// sales.
func (r *GORMDashboardRepository) Overview(now time.Time) (*models.DashboardOverview, error) {
	out := models.DashboardOverview{
		TopProdutos:   []models.ProdutoRanking{},
		TopVendedores: []models.VendedorRanking{},
	}

	err := r.db.Raw(`
		SELECT COALESCE(SUM(preco_total), 0) AS total_vendas,
		       COALESCE(AVG(preco_total), 0) AS ticket_medio
		FROM pedidos`).Row().Scan(&out.Resumo.TotalVendas, &out.Resumo.TicketMedio)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate vendas: %w", err)
	}

	err = r.db.Raw(`
		SELECT COALESCE(SUM(pr.custo * p.quantidade), 0)
		FROM pedidos p
		INNER JOIN produtos pr ON p.produto_id = pr.id`).Row().Scan(&out.Resumo.TotalGastos)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate gastos: %w", err)
	}

	out.Resumo.TotalLucro = out.Resumo.TotalVendas - out.Resumo.TotalGastos
	if out.Resumo.TotalVendas > 0 {
		out.Resumo.MargemLucro = out.Resumo.TotalLucro / out.Resumo.TotalVendas * 100
	}

	err = r.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM pedidos)                       AS total_pedidos,
			(SELECT COUNT(*) FROM vendedores)                    AS total_vendedores,
			(SELECT COUNT(*) FROM produtos)                      AS total_produtos,
			(SELECT COUNT(*) FROM produtos WHERE estoque < 10)   AS produtos_estoque_baixo`).
		Row().Scan(&out.Contadores.TotalPedidos, &out.Contadores.TotalVendedores,
			&out.Contadores.TotalProdutos, &out.Contadores.ProdutosEstoqueBaixo)
	if err != nil {
		return nil, fmt.Errorf("failed to count entities: %w", err)
	}

	err = r.db.Raw(`
		SELECT COALESCE(SUM(preco * estoque), 0) FROM produtos`).
		Row().Scan(&out.Estoque.ValorTotal)
	if err != nil {
		return nil, fmt.Errorf("failed to value estoque: %w", err)
	}
	out.Estoque.ProdutosEstoqueBaixo = out.Contadores.ProdutosEstoqueBaixo

	err = r.db.Raw(`
		SELECT pr.id, pr.nome, pr.preco, pr.categoria_id,
		       SUM(p.quantidade)  AS quantidade_vendida,
		       SUM(p.preco_total) AS valor_total,
		       COUNT(p.id)        AS total_pedidos
		FROM produtos pr
		INNER JOIN pedidos p ON pr.id = p.produto_id
		GROUP BY pr.id, pr.nome, pr.preco, pr.categoria_id
		ORDER BY quantidade_vendida DESC
		LIMIT 5`).Scan(&out.TopProdutos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank produtos: %w", err)
	}

	err = r.db.Raw(`
		SELECT v.id, v.nome, v.email,
		       COUNT(p.id)                     AS total_vendas,
		       COALESCE(SUM(p.preco_total), 0) AS valor_total
		FROM vendedores v
		LEFT JOIN pedidos p ON v.id = p.vendedor_id
		GROUP BY v.id, v.nome, v.email
		ORDER BY valor_total DESC
		LIMIT 5`).Scan(&out.TopVendedores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank vendedores: %w", err)
	}

	vendas, err := r.vendasPorDia(now.AddDate(0, 0, -7), "data DESC")
	if err != nil {
		return nil, err
	}
	out.VendasUltimos7Dias = vendas

	return &out, nil
}

// Stats returns sales bucketed by day over the requested period, growth
// against the previous period of equal length, and the most profitable
// products in the window.
func (r *GORMDashboardRepository) Stats(now time.Time, periodoDias int) (*models.DashboardStats, error) {
	out := models.DashboardStats{
		Periodo:            models.PeriodoInfo{Dias: periodoDias},
		ProdutosLucrativos: []models.ProdutoLucro{},
	}
	inicioAtual := now.AddDate(0, 0, -periodoDias)
	inicioAnterior := now.AddDate(0, 0, -2*periodoDias)

	vendas, err := r.vendasPorDia(inicioAtual, "data ASC")
	if err != nil {
		return nil, err
	}
	out.VendasPorDia = vendas
	if len(vendas) > 0 {
		out.Periodo.Inicio = &vendas[0].Data
		out.Periodo.Fim = &vendas[len(vendas)-1].Data
	}

	err = r.db.Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN created_at >= ? THEN preco_total ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN created_at >= ? AND created_at < ? THEN preco_total ELSE 0 END), 0)
		FROM pedidos`, inicioAtual, inicioAnterior, inicioAtual).
		Row().Scan(&out.Comparacao.VendasPeriodoAtual, &out.Comparacao.VendasPeriodoAnterior)
	if err != nil {
		return nil, fmt.Errorf("failed to compare periods: %w", err)
	}
	if out.Comparacao.VendasPeriodoAnterior > 0 {
		out.Comparacao.Crescimento = (out.Comparacao.VendasPeriodoAtual - out.Comparacao.VendasPeriodoAnterior) /
			out.Comparacao.VendasPeriodoAnterior * 100
	}

	err = r.db.Raw(`
		SELECT pr.id, pr.nome, pr.preco, pr.custo,
		       SUM(p.quantidade)                                     AS quantidade_vendida,
		       SUM(p.preco_total)                                    AS receita_total,
		       SUM(pr.custo * p.quantidade)                          AS custo_total,
		       SUM(p.preco_total) - SUM(pr.custo * p.quantidade)     AS lucro_total
		FROM produtos pr
		INNER JOIN pedidos p ON pr.id = p.produto_id
		WHERE p.created_at >= ?
		GROUP BY pr.id, pr.nome, pr.preco, pr.custo
		ORDER BY lucro_total DESC
		LIMIT 10`, inicioAtual).Scan(&out.ProdutosLucrativos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank lucros: %w", err)
	}
	for i := range out.ProdutosLucrativos {
		if p := &out.ProdutosLucrativos[i]; p.ReceitaTotal > 0 {
			p.MargemLucro = p.LucroTotal / p.ReceitaTotal * 100
		}
	}

	return &out, nil
}

func (r *GORMDashboardRepository) vendasPorDia(desde time.Time, order string) ([]models.VendaDiaria, error) {
	vendas := []models.VendaDiaria{}
	err := r.db.Raw(fmt.Sprintf(`
		SELECT date(created_at)  AS data,
		       COUNT(*)          AS total_pedidos,
		       SUM(quantidade)   AS total_quantidade,
		       SUM(preco_total)  AS valor_total
		FROM pedidos
		WHERE created_at >= ?
		GROUP BY date(created_at)
		ORDER BY %s`, order), desde).Scan(&vendas).Error
	if err != nil {
		return nil, fmt.Errorf("failed to bucket vendas by day: %w", err)
	}
	return vendas, nil
}
