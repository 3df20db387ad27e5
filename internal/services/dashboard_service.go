package services

import (
	"time"

	"painel/internal/models"
	"painel/internal/repositories"
)

// DashboardService exposes the read-only KPI aggregates.
type DashboardService struct {
	repo repositories.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo repositories.DashboardRepository) *DashboardService {
	return &DashboardService{
		repo: repo,
	}
}

// Overview returns the full dashboard payload.
func (s *DashboardService) Overview() (*models.DashboardOverview, error) {
	return s.repo.Overview(time.Now())
}

// Stats returns period statistics; periodoDias defaults to 30.
func (s *DashboardService) Stats(periodoDias int) (*models.DashboardStats, error) {
	if periodoDias == 0 {
		periodoDias = 30
	}
	if periodoDias < 0 || periodoDias > 365 {
		return nil, models.NewValidationError("período inválido")
	}
	return s.repo.Stats(time.Now(), periodoDias)
}
