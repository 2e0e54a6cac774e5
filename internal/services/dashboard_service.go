package services

import (
	"context"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/store"
)

// DashboardService serves the derived portfolio summary.
type DashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// Stats returns the current dashboard statistics
func (s *DashboardService) Stats(ctx context.Context) models.DashboardStats {
	return s.store.Stats()
}

// PropertyRevenue is the per-property slice of the dashboard.
type PropertyRevenue struct {
	PropertyID     string  `json:"propertyId"`
	Name           string  `json:"name"`
	TotalUnits     int     `json:"totalUnits"`
	OccupiedUnits  int     `json:"occupiedUnits"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

// RevenueByProperty breaks monthly revenue down per property
func (s *DashboardService) RevenueByProperty(ctx context.Context) []PropertyRevenue {
	properties := s.store.Properties()
	out := make([]PropertyRevenue, 0, len(properties))
	for _, p := range properties {
		out = append(out, PropertyRevenue{
			PropertyID:     p.ID,
			Name:           p.Name,
			TotalUnits:     p.TotalUnits,
			OccupiedUnits:  p.OccupiedUnits,
			MonthlyRevenue: p.MonthlyRevenue,
		})
	}
	return out
}
