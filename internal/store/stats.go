package store

import "github.com/jomidar/jomidar-api/internal/models"

// RecalculateStats derives the dashboard summary from the current entity
// set. Pure and deterministic: applying it twice without intervening
// mutations yields identical output. Occupancy and revenue are recomputed
// from live unit state rather than the cached property aggregates, which
// guards against staleness.
func RecalculateStats(properties []models.Property, payments []models.Payment) models.DashboardStats {
	stats := models.DashboardStats{TotalProperties: len(properties)}

	occupied := 0
	for i := range properties {
		p := &properties[i]
		stats.TotalUnits += len(p.Units)
		for j := range p.Units {
			u := &p.Units[j]
			if u.IsOccupied() {
				occupied++
				stats.MonthlyRevenue += u.Rent
			}
		}
	}
	if stats.TotalUnits > 0 {
		stats.OccupancyRate = float64(occupied) / float64(stats.TotalUnits) * 100
	}

	for i := range payments {
		switch payments[i].Status {
		case models.PaymentStatusPending:
			stats.PendingPayments++
		case models.PaymentStatusOverdue:
			stats.OverduePayments++
		case models.PaymentStatusUnderpaid:
			stats.UnderpaidPayments++
		}
	}

	return stats
}

// syncPropertyAggregates recomputes a property's cached unit counts and
// revenue from its unit list. Called after every mutation that touches
// units or occupancy so the cached fields never drift.
func syncPropertyAggregates(p *models.Property) {
	p.TotalUnits = len(p.Units)
	p.OccupiedUnits = 0
	p.MonthlyRevenue = 0
	for i := range p.Units {
		if p.Units[i].IsOccupied() {
			p.OccupiedUnits++
			p.MonthlyRevenue += p.Units[i].Rent
		}
	}
}
