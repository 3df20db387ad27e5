package models

// DashboardResumo aggregates the headline money figures.
type DashboardResumo struct {
	TotalVendas float64 `json:"total_vendas"`
	TotalGastos float64 `json:"total_gastos"`
	TotalLucro  float64 `json:"total_lucro"`
	MargemLucro float64 `json:"margem_lucro"`
	TicketMedio float64 `json:"ticket_medio"`
}

// DashboardContadores carries the entity counters.
type DashboardContadores struct {
	TotalPedidos         int `json:"total_pedidos"`
	TotalVendedores      int `json:"total_vendedores"`
	TotalProdutos        int `json:"total_produtos"`
	ProdutosEstoqueBaixo int `json:"produtos_estoque_baixo"`
}

// DashboardEstoque summarizes the stock position.
type DashboardEstoque struct {
	ValorTotal           float64 `json:"valor_total"`
	ProdutosEstoqueBaixo int     `json:"produtos_estoque_baixo"`
}

// ProdutoRanking is one row of the top-products listing.
type ProdutoRanking struct {
	ID                uint    `json:"id"`
	Nome              string  `json:"nome"`
	Preco             float64 `json:"preco"`
	CategoriaID       *uint   `json:"categoria_id"`
	QuantidadeVendida int     `json:"quantidade_vendida"`
	ValorTotal        float64 `json:"valor_total"`
	TotalPedidos      int     `json:"total_pedidos"`
}

// VendedorRanking is one row of the top-sellers listing.
type VendedorRanking struct {
	ID          uint    `json:"id"`
	Nome        string  `json:"nome"`
	Email       string  `json:"email"`
	TotalVendas int     `json:"total_vendas"`
	ValorTotal  float64 `json:"valor_total"`
}

// VendaDiaria is one day's bucket of sales.
type VendaDiaria struct {
	Data            string  `json:"data"`
	TotalPedidos    int     `json:"total_pedidos"`
	TotalQuantidade int     `json:"total_quantidade"`
	ValorTotal      float64 `json:"valor_total"`
}

// DashboardOverview is the full KPI payload for GET /dashboard.
type DashboardOverview struct {
	Resumo             DashboardResumo     `json:"resumo"`
	Contadores         DashboardContadores `json:"contadores"`
	Estoque            DashboardEstoque    `json:"estoque"`
	TopProdutos        []ProdutoRanking    `json:"top_produtos"`
	TopVendedores      []VendedorRanking   `json:"top_vendedores"`
	VendasUltimos7Dias []VendaDiaria       `json:"vendas_ultimos_7_dias"`
}

// ProdutoLucro is one row of the most-profitable-products listing.
type ProdutoLucro struct {
	ID                uint    `json:"id"`
	Nome              string  `json:"nome"`
	Preco             float64 `json:"preco"`
	Custo             float64 `json:"custo"`
	QuantidadeVendida int     `json:"quantidade_vendida"`
	ReceitaTotal      float64 `json:"receita_total"`
	CustoTotal        float64 `json:"custo_total"`
	LucroTotal        float64 `json:"lucro_total"`
	MargemLucro       float64 `json:"margem_lucro"`
}

// PeriodoInfo describes the time window of a stats response.
type PeriodoInfo struct {
	Dias   int     `json:"dias"`
	Inicio *string `json:"inicio"`
	Fim    *string `json:"fim"`
}

// ComparacaoPeriodo compares the current window against the previous one of
// equal length.
type ComparacaoPeriodo struct {
	VendasPeriodoAtual    float64 `json:"vendas_periodo_atual"`
	VendasPeriodoAnterior float64 `json:"vendas_periodo_anterior"`
	Crescimento           float64 `json:"crescimento"`
}

// DashboardStats is the payload for GET /dashboard/stats.
type DashboardStats struct {
	Periodo            PeriodoInfo       `json:"periodo"`
	Comparacao         ComparacaoPeriodo `json:"comparacao"`
	VendasPorDia       []VendaDiaria     `json:"vendas_por_dia"`
	ProdutosLucrativos []ProdutoLucro    `json:"produtos_lucrativos"`
}
