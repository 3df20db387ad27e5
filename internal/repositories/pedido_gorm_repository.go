package repositories

import (
	"errors"
	"fmt"

	"painel/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMPedidoRepository is a GORM implementation of PedidoRepository. The
// mutating methods run inside db.Transaction, so a failure at any step rolls
// back both the pedidos and produtos writes.
type GORMPedidoRepository struct {
	db *gorm.DB
}

// NewGORMPedidoRepository creates a new instance of GORMPedidoRepository.
func NewGORMPedidoRepository(db *gorm.DB) *GORMPedidoRepository {
	return &GORMPedidoRepository{
		db: db,
	}
}

// lockForUpdate takes a row lock so two concurrent order mutations against
// the same product serialize on the produtos row instead of both reading
// stale stock. SQLite has no FOR UPDATE syntax; its single writer lock
// already serializes the read-check-write sequence there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

const pedidoResumoSelect = `
	p.id, p.produto_id, p.vendedor_id, p.quantidade, p.preco_total, p.created_at,
	pr.nome AS produto_nome, pr.preco AS produto_preco,
	v.nome AS vendedor_nome, v.email AS vendedor_email`

// List retrieves orders matching the filter, newest first, joined with
// product and seller names, together with the total count of matching rows.
func (r *GORMPedidoRepository) List(filter PedidoFilter) ([]models.PedidoResumo, int64, error) {
	filtered := func(q *gorm.DB) *gorm.DB {
		if filter.ProdutoID != nil {
			q = q.Where("produto_id = ?", *filter.ProdutoID)
		}
		if filter.VendedorID != nil {
			q = q.Where("vendedor_id = ?", *filter.VendedorID)
		}
		return q
	}

	var total int64
	if err := filtered(r.db.Model(&models.Pedido{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pedidos: %w", err)
	}

	pedidos := []models.PedidoResumo{}
	err := filtered(r.db.Table("pedidos p")).
		Select(pedidoResumoSelect).
		Joins("INNER JOIN produtos pr ON p.produto_id = pr.id").
		Joins("INNER JOIN vendedores v ON p.vendedor_id = v.id").
		Order("p.created_at DESC").Limit(filter.Limit).Offset(filter.Offset).
		Scan(&pedidos).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pedidos: %w", err)
	}
	return pedidos, total, nil
}

// GetByID retrieves a single order with its full joined detail.
func (r *GORMPedidoRepository) GetByID(id uint) (*models.PedidoDetalhe, error) {
	var detalhe models.PedidoDetalhe
	res := r.db.Table("pedidos p").
		Select(pedidoResumoSelect+`,
			pr.custo AS produto_custo, pr.estoque AS produto_estoque,
			v.telefone AS vendedor_telefone`).
		Joins("INNER JOIN produtos pr ON p.produto_id = pr.id").
		Joins("INNER JOIN vendedores v ON p.vendedor_id = v.id").
		Where("p.id = ?", id).
		Scan(&detalhe)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to get pedido %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrPedidoNotFound
	}
	return &detalhe, nil
}

// CreateWithStock inserts a new order and decrements the product's stock in
// one transaction. The unit price is frozen from the product's price at this
// moment. Fails without writing anything when the product or seller is
// missing, or when fewer than quantidade units are in stock.
func (r *GORMPedidoRepository) CreateWithStock(produtoID, vendedorID uint, quantidade int) (*models.PedidoCriado, error) {
	var criado *models.PedidoCriado
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var produto models.Produto
		if err := lockForUpdate(tx).First(&produto, produtoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProdutoNotFound
			}
			return fmt.Errorf("failed to load produto %d: %w", produtoID, err)
		}

		var vendedor models.Vendedor
		if err := tx.First(&vendedor, vendedorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrVendedorNotFound
			}
			return fmt.Errorf("failed to load vendedor %d: %w", vendedorID, err)
		}

		if produto.Estoque < quantidade {
			return &models.InsufficientStockError{ProdutoID: produto.ID, Disponivel: produto.Estoque}
		}

		pedido := models.Pedido{
			ProdutoID:     produto.ID,
			VendedorID:    vendedor.ID,
			Quantidade:    quantidade,
			PrecoUnitario: produto.Preco,
			PrecoTotal:    produto.Preco * float64(quantidade),
		}
		if err := tx.Create(&pedido).Error; err != nil {
			return fmt.Errorf("failed to create pedido: %w", err)
		}

		novoEstoque := produto.Estoque - quantidade
		if err := tx.Model(&models.Produto{}).Where("id = ?", produto.ID).
			Update("estoque", novoEstoque).Error; err != nil {
			return fmt.Errorf("failed to decrement estoque for produto %d: %w", produto.ID, err)
		}

		criado = &models.PedidoCriado{
			ID:              pedido.ID,
			ProdutoID:       produto.ID,
			ProdutoNome:     produto.Nome,
			VendedorID:      vendedor.ID,
			VendedorNome:    vendedor.Nome,
			Quantidade:      quantidade,
			PrecoUnitario:   pedido.PrecoUnitario,
			PrecoTotal:      pedido.PrecoTotal,
			EstoqueAnterior: produto.Estoque,
			EstoqueAtual:    novoEstoque,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return criado, nil
}

// UpdateWithStock changes an order's quantity and adjusts the product's
// stock by the difference. Only the incremental amount has to be in stock
// when the quantity grows. The total is recomputed from the frozen unit
// price, not the product's current price.
func (r *GORMPedidoRepository) UpdateWithStock(id uint, quantidade int) (*models.PedidoAtualizado, error) {
	var atualizado *models.PedidoAtualizado
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var pedido models.Pedido
		if err := tx.First(&pedido, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPedidoNotFound
			}
			return fmt.Errorf("failed to load pedido %d: %w", id, err)
		}

		var produto models.Produto
		if err := lockForUpdate(tx).First(&produto, pedido.ProdutoID).Error; err != nil {
			return fmt.Errorf("failed to load produto %d: %w", pedido.ProdutoID, err)
		}

		diferenca := quantidade - pedido.Quantidade
		if diferenca > 0 && produto.Estoque < diferenca {
			return &models.InsufficientStockError{ProdutoID: produto.ID, Disponivel: produto.Estoque}
		}

		novoTotal := pedido.PrecoUnitario * float64(quantidade)
		if err := tx.Model(&pedido).Updates(map[string]interface{}{
			"quantidade":  quantidade,
			"preco_total": novoTotal,
		}).Error; err != nil {
			return fmt.Errorf("failed to update pedido %d: %w", id, err)
		}

		novoEstoque := produto.Estoque - diferenca
		if err := tx.Model(&models.Produto{}).Where("id = ?", produto.ID).
			Update("estoque", novoEstoque).Error; err != nil {
			return fmt.Errorf("failed to adjust estoque for produto %d: %w", produto.ID, err)
		}

		atualizado = &models.PedidoAtualizado{
			ID:                 pedido.ID,
			ProdutoID:          produto.ID,
			QuantidadeAnterior: pedido.Quantidade,
			QuantidadeNova:     quantidade,
			PrecoTotal:         novoTotal,
			EstoqueAtualizado:  novoEstoque,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return atualizado, nil
}

// DeleteWithStock removes an order and returns its quantity to the
// product's stock in one transaction.
func (r *GORMPedidoRepository) DeleteWithStock(id uint) (*models.PedidoRemovido, error) {
	var removido *models.PedidoRemovido
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var pedido models.Pedido
		if err := tx.First(&pedido, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPedidoNotFound
			}
			return fmt.Errorf("failed to load pedido %d: %w", id, err)
		}

		var produto models.Produto
		if err := lockForUpdate(tx).First(&produto, pedido.ProdutoID).Error; err != nil {
			return fmt.Errorf("failed to load produto %d: %w", pedido.ProdutoID, err)
		}

		if err := tx.Model(&models.Produto{}).Where("id = ?", produto.ID).
			Update("estoque", produto.Estoque+pedido.Quantidade).Error; err != nil {
			return fmt.Errorf("failed to restore estoque for produto %d: %w", produto.ID, err)
		}

		if err := tx.Delete(&models.Pedido{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete pedido %d: %w", id, err)
		}

		removido = &models.PedidoRemovido{
			ID:                pedido.ID,
			ProdutoID:         produto.ID,
			EstoqueRestaurado: pedido.Quantidade,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removido, nil
}

// ExistsForProduto reports whether any order references the product.
func (r *GORMPedidoRepository) ExistsForProduto(produtoID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Pedido{}).Where("produto_id = ?", produtoID).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pedidos for produto %d: %w", produtoID, err)
	}
	return count > 0, nil
}

// ExistsForVendedor reports whether any order references the seller.
func (r *GORMPedidoRepository) ExistsForVendedor(vendedorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Pedido{}).Where("vendedor_id = ?", vendedorID).Limit(1).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pedidos for vendedor %d: %w", vendedorID, err)
	}
	return count > 0, nil
}
