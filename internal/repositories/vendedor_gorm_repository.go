package repositories

import (
	"errors"
	"fmt"

	"painel/internal/models"

	"gorm.io/gorm"
)

// GORMVendedorRepository is a GORM implementation of VendedorRepository.
type GORMVendedorRepository struct {
	db *gorm.DB
}

// NewGORMVendedorRepository creates a new instance of GORMVendedorRepository.
func NewGORMVendedorRepository(db *gorm.DB) *GORMVendedorRepository {
	return &GORMVendedorRepository{
		db: db,
	}
}

// List retrieves sellers matching the filter, ordered by name, together
// with the total count of matching rows.
func (r *GORMVendedorRepository) List(filter VendedorFilter) ([]models.Vendedor, int64, error) {
	q := r.db.Model(&models.Vendedor{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("nome LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vendedores: %w", err)
	}

	vendedores := []models.Vendedor{}
	err := q.Order("nome ASC").Limit(filter.Limit).Offset(filter.Offset).Find(&vendedores).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vendedores: %w", err)
	}
	return vendedores, total, nil
}

// GetByID retrieves a seller by ID together with its sales count and total
// sold value.
func (r *GORMVendedorRepository) GetByID(id uint) (*models.VendedorDetalhe, error) {
	var vendedor models.Vendedor
	if err := r.db.First(&vendedor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrVendedorNotFound
		}
		return nil, fmt.Errorf("failed to get vendedor %d: %w", id, err)
	}

	detalhe := models.VendedorDetalhe{Vendedor: vendedor}
	row := r.db.Model(&models.Pedido{}).
		Select("COUNT(id) AS total_vendas, COALESCE(SUM(preco_total), 0) AS valor_total_vendas").
		Where("vendedor_id = ?", id).
		Row()
	if err := row.Scan(&detalhe.TotalVendas, &detalhe.ValorTotalVendas); err != nil {
		return nil, fmt.Errorf("failed to aggregate vendas for vendedor %d: %w", id, err)
	}
	return &detalhe, nil
}

// EmailExists reports whether a seller other than exceptID already owns the
// email. Pass exceptID 0 on creation.
func (r *GORMVendedorRepository) EmailExists(email string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vendedor{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check vendedor email: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new seller.
func (r *GORMVendedorRepository) Create(vendedor *models.Vendedor) error {
	if err := r.db.Create(vendedor).Error; err != nil {
		return fmt.Errorf("failed to create vendedor: %w", err)
	}
	return nil
}

// Patch applies a partial update; only the patch's non-nil fields are
// written.
func (r *GORMVendedorRepository) Patch(id uint, patch models.VendedorPatch) error {
	res := r.db.Model(&models.Vendedor{}).Where("id = ?", id).Updates(patch.Columns())
	if res.Error != nil {
		return fmt.Errorf("failed to update vendedor %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrVendedorNotFound
	}
	return nil
}

// Delete removes a seller by its ID.
func (r *GORMVendedorRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Vendedor{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete vendedor %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrVendedorNotFound
	}
	return nil
}
