package repositories

import (
	"painel/internal/models"
)

// PedidoFilter narrows an order listing.
type PedidoFilter struct {
	ProdutoID  *uint
	VendedorID *uint
	Limit      int
	Offset     int
}

// PedidoRepository defines the interface for order data access. The
// *WithStock methods are the stock-consistency routine: each one runs a
// single transaction that mutates the pedidos row and the linked produtos
// row together, so stock and cumulative order quantities can never drift
// apart. On any error the transaction is rolled back and nothing is written.
type PedidoRepository interface {
	List(filter PedidoFilter) ([]models.PedidoResumo, int64, error)
	GetByID(id uint) (*models.PedidoDetalhe, error)
	CreateWithStock(produtoID, vendedorID uint, quantidade int) (*models.PedidoCriado, error)
	UpdateWithStock(id uint, quantidade int) (*models.PedidoAtualizado, error)
	DeleteWithStock(id uint) (*models.PedidoRemovido, error)
	ExistsForProduto(produtoID uint) (bool, error)
	ExistsForVendedor(vendedorID uint) (bool, error)
}
