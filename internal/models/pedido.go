package models

import "time"

// Pedido is a single line-item sale of one product attributed to one seller.
// PrecoUnitario is frozen at creation time; PrecoTotal is always
// PrecoUnitario × Quantidade, even after quantity updates, so the total
// never silently follows later product price changes.
type Pedido struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ProdutoID     uint      `json:"produto_id" gorm:"not null;index"`
	VendedorID    uint      `json:"vendedor_id" gorm:"not null;index"`
	Quantidade    int       `json:"quantidade" gorm:"not null" validate:"gt=0"`
	PrecoUnitario float64   `json:"preco_unitario" gorm:"not null"`
	PrecoTotal    float64   `json:"preco_total" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoResumo is a Pedido row joined with product and seller names, as
// returned by the list endpoint.
type PedidoResumo struct {
	ID            uint      `json:"id"`
	ProdutoID     uint      `json:"produto_id"`
	VendedorID    uint      `json:"vendedor_id"`
	Quantidade    int       `json:"quantidade"`
	PrecoTotal    float64   `json:"preco_total"`
	CreatedAt     time.Time `json:"created_at"`
	ProdutoNome   string    `json:"produto_nome"`
	ProdutoPreco  float64   `json:"produto_preco"`
	VendedorNome  string    `json:"vendedor_nome"`
	VendedorEmail string    `json:"vendedor_email"`
}

// PedidoDetalhe carries the full joined view of a single order.
type PedidoDetalhe struct {
	PedidoResumo
	ProdutoCusto     float64 `json:"produto_custo"`
	ProdutoEstoque   int     `json:"produto_estoque"`
	VendedorTelefone *string `json:"vendedor_telefone"`
}

// PedidoCriado is the result of a successful order creation, including the
// stock level before and after the committed transaction.
type PedidoCriado struct {
	ID              uint    `json:"id"`
	ProdutoID       uint    `json:"produto_id"`
	ProdutoNome     string  `json:"produto_nome"`
	VendedorID      uint    `json:"vendedor_id"`
	VendedorNome    string  `json:"vendedor_nome"`
	Quantidade      int     `json:"quantidade"`
	PrecoUnitario   float64 `json:"preco_unitario"`
	PrecoTotal      float64 `json:"preco_total"`
	EstoqueAnterior int     `json:"estoque_anterior"`
	EstoqueAtual    int     `json:"estoque_atual"`
}

// PedidoAtualizado is the result of a successful quantity update.
type PedidoAtualizado struct {
	ID                 uint    `json:"id"`
	ProdutoID          uint    `json:"produto_id"`
	QuantidadeAnterior int     `json:"quantidade_anterior"`
	QuantidadeNova     int     `json:"quantidade_nova"`
	PrecoTotal         float64 `json:"preco_total"`
	EstoqueAtualizado  int     `json:"estoque_atualizado"`
}

// PedidoRemovido is the result of a successful deletion; EstoqueRestaurado
// is the quantity returned to the product's stock.
type PedidoRemovido struct {
	ID                uint `json:"id"`
	ProdutoID         uint `json:"produto_id"`
	EstoqueRestaurado int  `json:"estoque_restaurado"`
}
