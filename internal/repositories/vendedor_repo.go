package repositories

import (
	"painel/internal/models"
)

// VendedorFilter narrows a seller listing.
type VendedorFilter struct {
	Search string
	Limit  int
	Offset int
}

// VendedorRepository defines the interface for seller data access.
type VendedorRepository interface {
	List(filter VendedorFilter) ([]models.Vendedor, int64, error)
	GetByID(id uint) (*models.VendedorDetalhe, error)
	EmailExists(email string, exceptID uint) (bool, error)
	Create(vendedor *models.Vendedor) error
	Patch(id uint, patch models.VendedorPatch) error
	Delete(id uint) error
}
