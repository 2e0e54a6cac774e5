package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jomidar/jomidar-api/internal/models"
)

func statsFixture() ([]models.Property, []models.Payment) {
	properties := []models.Property{
		{
			ID: "p1",
			Units: []models.Unit{
				{ID: "u1", Rent: 10000, Status: models.UnitStatusOccupied, TenantID: "t1"},
				{ID: "u2", Rent: 8000, Status: models.UnitStatusVacant},
			},
		},
		{
			ID: "p2",
			Units: []models.Unit{
				{ID: "u3", Rent: 20000, Status: models.UnitStatusOccupied, TenantID: "t2"},
				{ID: "u4", Rent: 15000, Status: models.UnitStatusOccupied, TenantID: "t3"},
			},
		},
	}
	payments := []models.Payment{
		{ID: "pay1", Status: models.PaymentStatusPaid},
		{ID: "pay2", Status: models.PaymentStatusPending},
		{ID: "pay3", Status: models.PaymentStatusPending},
		{ID: "pay4", Status: models.PaymentStatusOverdue},
		{ID: "pay5", Status: models.PaymentStatusUnderpaid},
	}
	return properties, payments
}

func TestRecalculateStats(t *testing.T) {
	properties, payments := statsFixture()
	stats := RecalculateStats(properties, payments)

	assert.Equal(t, 2, stats.TotalProperties)
	assert.Equal(t, 4, stats.TotalUnits)
	assert.InDelta(t, 75.0, stats.OccupancyRate, 0.0001)
	assert.Equal(t, 45000.0, stats.MonthlyRevenue)
	assert.Equal(t, 2, stats.PendingPayments)
	assert.Equal(t, 1, stats.OverduePayments)
	assert.Equal(t, 1, stats.UnderpaidPayments)
}

func TestRecalculateStatsEmpty(t *testing.T) {
	stats := RecalculateStats(nil, nil)
	assert.Zero(t, stats.TotalProperties)
	assert.Zero(t, stats.TotalUnits)
	assert.Zero(t, stats.OccupancyRate)
	assert.Zero(t, stats.MonthlyRevenue)
}

func TestRecalculateStatsIsDeterministic(t *testing.T) {
	properties, payments := statsFixture()
	first := RecalculateStats(properties, payments)
	second := RecalculateStats(properties, payments)
	assert.Equal(t, first, second)
}

func TestRecalculateStatsIgnoresCachedAggregates(t *testing.T) {
	properties, payments := statsFixture()
	properties[0].TotalUnits = 99
	properties[0].OccupiedUnits = 99
	properties[0].MonthlyRevenue = 999999

	stats := RecalculateStats(properties, payments)
	assert.Equal(t, 4, stats.TotalUnits)
	assert.Equal(t, 45000.0, stats.MonthlyRevenue)
}

func TestSyncPropertyAggregates(t *testing.T) {
	p := models.Property{
		TotalUnits: 99, OccupiedUnits: 99, MonthlyRevenue: 1,
		Units: []models.Unit{
			{Rent: 12000, Status: models.UnitStatusOccupied, TenantID: "t1"},
			{Rent: 9000, Status: models.UnitStatusVacant},
			{Rent: 11000, Status: models.UnitStatusOccupied, TenantID: "t2"},
		},
	}
	syncPropertyAggregates(&p)

	assert.Equal(t, 3, p.TotalUnits)
	assert.Equal(t, 2, p.OccupiedUnits)
	assert.Equal(t, 23000.0, p.MonthlyRevenue)
}
