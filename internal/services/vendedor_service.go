package services

import (
	"painel/internal/models"
	"painel/internal/repositories"
)

// VendedorService handles business logic related to sellers.
type VendedorService struct {
	repo       repositories.VendedorRepository
	pedidoRepo repositories.PedidoRepository
}

// NewVendedorService creates a new VendedorService.
func NewVendedorService(repo repositories.VendedorRepository, pedidoRepo repositories.PedidoRepository) *VendedorService {
	return &VendedorService{
		repo:       repo,
		pedidoRepo: pedidoRepo,
	}
}

// ListVendedores retrieves sellers matching the filter.
func (s *VendedorService) ListVendedores(filter repositories.VendedorFilter) ([]models.Vendedor, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(filter)
}

// GetVendedor retrieves a seller with its sales figures.
func (s *VendedorService) GetVendedor(id uint) (*models.VendedorDetalhe, error) {
	return s.repo.GetByID(id)
}

// CreateVendedor creates a new seller; the email must not be in use.
func (s *VendedorService) CreateVendedor(vendedor *models.Vendedor) error {
	if vendedor.Nome == "" || vendedor.Email == "" {
		return models.NewValidationError("nome e email são obrigatórios")
	}
	taken, err := s.repo.EmailExists(vendedor.Email, 0)
	if err != nil {
		return err
	}
	if taken {
		return models.ErrEmailTaken
	}
	return s.repo.Create(vendedor)
}

// PatchVendedor applies a partial update; a changed email must not belong to
// another seller.
func (s *VendedorService) PatchVendedor(id uint, patch models.VendedorPatch) error {
	if patch.IsEmpty() {
		return models.NewValidationError("nenhum campo para atualizar")
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if patch.Email != nil {
		taken, err := s.repo.EmailExists(*patch.Email, id)
		if err != nil {
			return err
		}
		if taken {
			return models.ErrEmailTaken
		}
	}
	return s.repo.Patch(id, patch)
}

// DeleteVendedor removes a seller. Sellers referenced by orders cannot be
// removed.
func (s *VendedorService) DeleteVendedor(id uint) error {
	referenced, err := s.pedidoRepo.ExistsForVendedor(id)
	if err != nil {
		return err
	}
	if referenced {
		return models.ErrVendedorReferenced
	}
	return s.repo.Delete(id)
}
