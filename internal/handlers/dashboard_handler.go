package handlers

import (
	"painel/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the read-only KPI endpoints.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	dashboard := router.Group("/dashboard")
	dashboard.Get("/", h.HandleOverview)
	dashboard.Get("/stats", h.HandleStats)
}

// HandleOverview returns the full KPI payload.
func (h *DashboardHandler) HandleOverview(c *fiber.Ctx) error {
	overview, err := h.service.Overview()
	if err != nil {
		return respondDomainError(c, err, "Erro ao obter dados do dashboard")
	}
	return respondData(c, fiber.StatusOK, overview)
}

// HandleStats returns period statistics; ?periodo= selects the window in
// days (default 30).
func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.QueryInt("periodo", 30))
	if err != nil {
		return respondDomainError(c, err, "Erro ao obter estatísticas")
	}
	return respondData(c, fiber.StatusOK, stats)
}
