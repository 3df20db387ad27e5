package repositories

import (
	"painel/internal/models"
)

// ProdutoFilter narrows a product listing. Zero values mean "no filter";
// Limit and Offset are applied as given.
type ProdutoFilter struct {
	CategoriaID *uint
	Search      string
	Limit       int
	Offset      int
}

// ProdutoRepository defines the interface for product data access.
type ProdutoRepository interface {
	List(filter ProdutoFilter) ([]models.Produto, int64, error)
	GetByID(id uint) (*models.Produto, error)
	Create(produto *models.Produto) error
	Patch(id uint, patch models.ProdutoPatch) error
	Delete(id uint) error
}
