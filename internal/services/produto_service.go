package services

import (
	"painel/internal/models"
	"painel/internal/repositories"
)

// ProdutoService handles business logic related to products.
type ProdutoService struct {
	repo       repositories.ProdutoRepository
	pedidoRepo repositories.PedidoRepository
}

// NewProdutoService creates a new ProdutoService.
func NewProdutoService(repo repositories.ProdutoRepository, pedidoRepo repositories.PedidoRepository) *ProdutoService {
	return &ProdutoService{
		repo:       repo,
		pedidoRepo: pedidoRepo,
	}
}

// ListProdutos retrieves products matching the filter.
func (s *ProdutoService) ListProdutos(filter repositories.ProdutoFilter) ([]models.Produto, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(filter)
}

// GetProduto retrieves a single product by its ID.
func (s *ProdutoService) GetProduto(id uint) (*models.Produto, error) {
	return s.repo.GetByID(id)
}

// CreateProduto creates a new product.
func (s *ProdutoService) CreateProduto(produto *models.Produto) error {
	if produto.Nome == "" || produto.Preco == 0 {
		return models.NewValidationError("nome e preço são obrigatórios")
	}
	if produto.Preco < 0 || produto.Custo < 0 || produto.Estoque < 0 {
		return models.NewValidationError("valores negativos não são permitidos")
	}
	return s.repo.Create(produto)
}

// PatchProduto applies a partial update; only the patch's non-nil fields
// change.
func (s *ProdutoService) PatchProduto(id uint, patch models.ProdutoPatch) error {
	if patch.IsEmpty() {
		return models.NewValidationError("nenhum campo para atualizar")
	}
	if patch.Preco != nil && *patch.Preco < 0 {
		return models.NewValidationError("preço não pode ser negativo")
	}
	if patch.Estoque != nil && *patch.Estoque < 0 {
		return models.NewValidationError("estoque não pode ser negativo")
	}
	if patch.Custo != nil && *patch.Custo < 0 {
		return models.NewValidationError("custo não pode ser negativo")
	}
	return s.repo.Patch(id, patch)
}

// DeleteProduto removes a product. Products referenced by orders cannot be
// removed; restoring the referential guard would otherwise fall to the
// database.
func (s *ProdutoService) DeleteProduto(id uint) error {
	referenced, err := s.pedidoRepo.ExistsForProduto(id)
	if err != nil {
		return err
	}
	if referenced {
		return models.ErrProdutoReferenced
	}
	return s.repo.Delete(id)
}
