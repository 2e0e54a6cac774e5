package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/store"
)

func paymentFixtureStore() *store.Store {
	remaining := 3000.0
	return store.New(models.Snapshot{
		Tenants: []models.Tenant{{ID: "t1", Name: "Rahim Ahmed", MonthlyRent: 15000}},
		Payments: []models.Payment{
			{ID: "pay1", TenantID: "t1", Amount: 15000, Type: models.PaymentTypeRent, Status: models.PaymentStatusPaid, Month: "2026-06"},
			{ID: "pay2", TenantID: "t1", Amount: 12000, Type: models.PaymentTypeRent, Status: models.PaymentStatusUnderpaid, Month: "2026-07", RemainingAmount: &remaining},
			{ID: "pay3", TenantID: "t1", Amount: 15000, Type: models.PaymentTypeRent, Status: models.PaymentStatusPending, Month: "2026-08"},
			{ID: "pay4", TenantID: "t1", Amount: 15000, Type: models.PaymentTypeRent, Status: models.PaymentStatusOverdue, Month: "2026-05"},
		},
	})
}

func TestPaymentStats(t *testing.T) {
	service := &PaymentService{store: paymentFixtureStore()}

	stats := service.Stats(context.Background())

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Paid)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 1, stats.Underpaid)
	assert.Equal(t, 27000.0, stats.AmountCollected)
	assert.Equal(t, 33000.0, stats.AmountOutstanding)
}

func TestPaymentListFilters(t *testing.T) {
	service := &PaymentService{store: paymentFixtureStore()}
	ctx := context.Background()

	all := service.List(ctx, "", "")
	assert.Len(t, all, 4)

	byStatus := service.List(ctx, "", models.PaymentStatusPending)
	assert.Len(t, byStatus, 1)
	assert.Equal(t, "pay3", byStatus[0].ID)

	byTenant := service.List(ctx, "t1", models.PaymentStatusOverdue)
	assert.Len(t, byTenant, 1)

	none := service.List(ctx, "missing", "")
	assert.Empty(t, none)
}
