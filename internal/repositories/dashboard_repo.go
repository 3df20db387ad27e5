package repositories

import (
	"time"

	"painel/internal/models"
)

// DashboardRepository defines the read-only aggregation queries behind the
// KPI endpoints. The reference instant is passed in so time-bucketed results
// are reproducible.
type DashboardRepository interface {
	Overview(now time.Time) (*models.DashboardOverview, error)
	Stats(now time.Time, periodoDias int) (*models.DashboardStats, error)
}
