package repositories_test

import (
	"fmt"
	"testing"

	"painel/internal/models"
	"painel/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory SQLite database, namespaced per test so
// parallel-running tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Produto{}, &models.Vendedor{}, &models.Pedido{}))
	return db
}

func seedProdutoVendedor(t *testing.T, db *gorm.DB, preco float64, estoque int) (models.Produto, models.Vendedor) {
	t.Helper()
	produto := models.Produto{Nome: "Notebook", Preco: preco, Custo: preco / 2, Estoque: estoque}
	require.NoError(t, db.Create(&produto).Error)
	vendedor := models.Vendedor{Nome: "Maria", Email: fmt.Sprintf("maria+%s@loja.com", t.Name())}
	require.NoError(t, db.Create(&vendedor).Error)
	return produto, vendedor
}

func produtoEstoque(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var produto models.Produto
	require.NoError(t, db.First(&produto, id).Error)
	return produto.Estoque
}

func TestCreateWithStock(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMPedidoRepository(db)
	produto, vendedor := seedProdutoVendedor(t, db, 100, 5)

	criado, err := repo.CreateWithStock(produto.ID, vendedor.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, criado.Quantidade)
	assert.Equal(t, 100.0, criado.PrecoUnitario)
	assert.Equal(t, 300.0, criado.PrecoTotal)
	assert.Equal(t, 5, criado.EstoqueAnterior)
	assert.Equal(t, 2, criado.EstoqueAtual)
	assert.Equal(t, "Notebook", criado.ProdutoNome)
	assert.Equal(t, "Maria", criado.VendedorNome)

	assert.Equal(t, 2, produtoEstoque(t, db, produto.ID))

	var pedido models.Pedido
	require.NoError(t, db.First(&pedido, criado.ID).Error)
	assert.Equal(t, 3, pedido.Quantidade)
	assert.Equal(t, 300.0, pedido.PrecoTotal)
}

func TestCreateWithStockInsufficient(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMPedidoRepository(db)
	produto, vendedor := seedProdutoVendedor(t, db, 100, 5)

	_, err := repo.CreateWithStock(produto.ID, vendedor.ID, 3)
	require.NoError(t, err)

	// Second order for 3 must be rejected: only 2 units remain.
	_, err = repo.CreateWithStock(produto.ID, vendedor.ID, 3)
	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Disponivel)

	// Nothing changed: stock untouched, still a single order.
	assert.Equal(t, 2, produtoEstoque(t, db, produto.ID))
	var count int64
	require.NoError(t, db.Model(&models.Pedido{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateWithStockMissingReferences(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMPedidoRepository(db)
	produto, vendedor := seedProdutoVendedor(t, db, 50, 10)

	_, err := repo.CreateWithStock(999, vendedor.ID, 1)
	assert.ErrorIs(t, err, models.ErrProdutoNotFound)

	_, err = repo.CreateWithStock(produto.ID, 999, 1)
	assert.ErrorIs(t, err, models.ErrVendedorNotFound)

	// Failed creates leave no trace.
	assert.Equal(t, 10, produtoEstoque(t, db, produto.ID))
	var count int64
	require.NoError(t, db.Model(&models.Pedido{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateWithStockAdjustsByDifference(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMPedidoRepository(db)
	produto, vendedor := seedProdutoVendedor(t, db, 100, 5)

	criado, err := repo.CreateWithStock(produto.ID, vendedor.ID, 3)
	require.NoError(t, err)

	// Growing from 3 to 4 needs only 1 more unit of the 2 remaining.
	atualizado, err := repo.UpdateWithStock(criado.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, atualizado.QuantidadeAnterior)
	assert.Equal(t, 4, atualizado.QuantidadeNova)
	assert.Equal(t, 400.0, atualizado.PrecoTotal)
	assert.Equal(t, 1, atualizado.EstoqueAtualizado)
	assert.Equal(t, 1, produtoEstoque(t, db, produto.ID))

	// Shrinking returns the difference to stock.
	atualizado, err = repo.UpdateWithStock(criado.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 200.0, atualizado.PrecoTotal)
	assert.Equal(t, 3, atualizado.EstoqueAtualizado)
	assert.Equal(t, 3, produtoEstoque(t, db, produto.ID))
}

func TestUpdateWithStockInsufficientIncrement(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMPedidoRepository(db)
	produto, vendedor := seedProdutoVendedor(t, db, 100, 5)

	criado, err := repo.CreateWithStock(produto.ID, vendedor.ID, 3)
	require.NoError(t, err)

	// From 3 to 6 needs 3 more units but only 2 remain.
	_, err = repo.UpdateWithStock(criado.ID, 6)
	var stockErr *models.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Disponivel)

	// No partial update applied.
	assert.Equal(t, 2, produtoEstoque(t, db, produto.ID))
	var pedido models.Pedido
	require.NoError(t, db.First(&pedido, criado.ID).Error)
	assert.Equal(t, 3, pedido.Quantidade)
	assert.Equal(t, 300.0, pedido.PrecoTotal)
}

func TestUpdateWithStockUsesFrozenUnitPrice(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMPedidoRepository(db)
	produto, vendedor := seedProdutoVendedor(t, db, 100, 10)

	criado, err := repo.CreateWithStock(produto.ID, vendedor.ID, 2)
	require.NoError(t, err)

	// A later price change must not leak into the order's total.
	require.NoError(t, db.Model(&models.Produto{}).Where("id = ?", produto.ID).
		Update("preco", 250.0).Error)

	atualizado, err := repo.UpdateWithStock(criado.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 400.0, atualizado.PrecoTotal)
}

func TestDeleteWithStockRestores(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMPedidoRepository(db)
	produto, vendedor := seedProdutoVendedor(t, db, 100, 5)

	criado, err := repo.CreateWithStock(produto.ID, vendedor.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, produtoEstoque(t, db, produto.ID))

	removido, err := repo.DeleteWithStock(criado.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, removido.EstoqueRestaurado)

	// Round-trip: stock is back at its pre-create value and the order is gone.
	assert.Equal(t, 5, produtoEstoque(t, db, produto.ID))
	_, err = repo.GetByID(criado.ID)
	assert.ErrorIs(t, err, models.ErrPedidoNotFound)

	_, err = repo.DeleteWithStock(criado.ID)
	assert.ErrorIs(t, err, models.ErrPedidoNotFound)
}

func TestListAndGetJoins(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMPedidoRepository(db)
	produto, vendedor := seedProdutoVendedor(t, db, 100, 20)

	outro := models.Produto{Nome: "Mouse", Preco: 25, Estoque: 20}
	require.NoError(t, db.Create(&outro).Error)

	primeiro, err := repo.CreateWithStock(produto.ID, vendedor.ID, 2)
	require.NoError(t, err)
	_, err = repo.CreateWithStock(outro.ID, vendedor.ID, 1)
	require.NoError(t, err)

	pedidos, total, err := repo.List(repositories.PedidoFilter{Limit: 100})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, pedidos, 2)

	pedidos, total, err = repo.List(repositories.PedidoFilter{ProdutoID: &produto.ID, Limit: 100})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, pedidos, 1)
	assert.Equal(t, "Notebook", pedidos[0].ProdutoNome)
	assert.Equal(t, "Maria", pedidos[0].VendedorNome)

	detalhe, err := repo.GetByID(primeiro.ID)
	require.NoError(t, err)
	assert.Equal(t, "Notebook", detalhe.ProdutoNome)
	assert.Equal(t, 50.0, detalhe.ProdutoCusto)
	assert.Equal(t, 18, detalhe.ProdutoEstoque)
}

func TestExistsForReferences(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMPedidoRepository(db)
	produto, vendedor := seedProdutoVendedor(t, db, 10, 5)

	exists, err := repo.ExistsForProduto(produto.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.CreateWithStock(produto.ID, vendedor.ID, 1)
	require.NoError(t, err)

	exists, err = repo.ExistsForProduto(produto.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForVendedor(vendedor.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
