package repositories

import (
	"errors"
	"fmt"

	"painel/internal/models"

	"gorm.io/gorm"
)

// GORMProdutoRepository is a GORM implementation of ProdutoRepository.
type GORMProdutoRepository struct {
	db *gorm.DB
}

// NewGORMProdutoRepository creates a new instance of GORMProdutoRepository.
func NewGORMProdutoRepository(db *gorm.DB) *GORMProdutoRepository {
	return &GORMProdutoRepository{
		db: db,
	}
}

// List retrieves products matching the filter, newest first, together with
// the total count of matching rows.
func (r *GORMProdutoRepository) List(filter ProdutoFilter) ([]models.Produto, int64, error) {
	q := r.db.Model(&models.Produto{})
	if filter.CategoriaID != nil {
		q = q.Where("categoria_id = ?", *filter.CategoriaID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("nome LIKE ? OR descricao LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count produtos: %w", err)
	}

	produtos := []models.Produto{}
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&produtos).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list produtos: %w", err)
	}
	return produtos, total, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProdutoRepository) GetByID(id uint) (*models.Produto, error) {
	var produto models.Produto
	if err := r.db.First(&produto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProdutoNotFound
		}
		return nil, fmt.Errorf("failed to get produto %d: %w", id, err)
	}
	return &produto, nil
}

// Create inserts a new product.
func (r *GORMProdutoRepository) Create(produto *models.Produto) error {
	if err := r.db.Create(produto).Error; err != nil {
		return fmt.Errorf("failed to create produto: %w", err)
	}
	return nil
}

// Patch applies a partial update; only the patch's non-nil fields are
// written.
func (r *GORMProdutoRepository) Patch(id uint, patch models.ProdutoPatch) error {
	res := r.db.Model(&models.Produto{}).Where("id = ?", id).Updates(patch.Columns())
	if res.Error != nil {
		return fmt.Errorf("failed to update produto %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrProdutoNotFound
	}
	return nil
}

// Delete removes a product by its ID.
func (r *GORMProdutoRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Produto{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete produto %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrProdutoNotFound
	}
	return nil
}
