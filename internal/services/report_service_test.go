package services

import (
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/store"
)

func reportFixtureStore() *store.Store {
	remaining := 3000.0
	expected := 15000.0
	return store.New(models.Snapshot{
		Properties: []models.Property{{
			ID: "p1", Name: "Lakeview Court",
			Units: []models.Unit{{ID: "u1", PropertyID: "p1", UnitNumber: "2A", Rent: 15000, Status: models.UnitStatusOccupied, TenantID: "t1"}},
		}},
		Tenants: []models.Tenant{{ID: "t1", Name: "Rahim Ahmed", PropertyID: "p1", UnitID: "u1", MonthlyRent: 15000}},
		Payments: []models.Payment{
			{
				ID: "pay-11111111", TenantID: "t1", UnitID: "u1", PropertyID: "p1",
				Amount: 15000, Date: "2026-07-05", Type: models.PaymentTypeRent,
				Status: models.PaymentStatusPaid, Month: "2026-07", ExpectedAmount: &expected,
			},
			{
				ID: "pay-22222222", TenantID: "t1", UnitID: "u1", PropertyID: "p1",
				Amount: 12000, Date: "2026-08-05", Type: models.PaymentTypeRent,
				Status: models.PaymentStatusUnderpaid, Month: "2026-08",
				ExpectedAmount: &expected, RemainingAmount: &remaining,
			},
		},
	})
}

func TestGeneratePaymentsCSV(t *testing.T) {
	service := NewReportService(reportFixtureStore())

	buf, err := service.GeneratePaymentsCSV(context.Background(), "")
	require.NoError(t, err)

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Receipt No", "Tenant", "Property", "Month", "Date", "Type", "Amount", "Expected", "Remaining", "Status"}, records[0])

	paid := records[1]
	assert.Equal(t, "REC-pay-1111", paid[0])
	assert.Equal(t, "Rahim Ahmed", paid[1])
	assert.Equal(t, "Lakeview Court", paid[2])
	assert.Equal(t, "15000.00", paid[6])
	assert.Equal(t, "15000.00", paid[7])
	assert.Equal(t, "", paid[8])
	assert.Equal(t, models.PaymentStatusPaid, paid[9])

	underpaid := records[2]
	assert.Equal(t, "12000.00", underpaid[6])
	assert.Equal(t, "3000.00", underpaid[8])
	assert.Equal(t, models.PaymentStatusUnderpaid, underpaid[9])
}

func TestGeneratePaymentsCSVStatusFilter(t *testing.T) {
	service := NewReportService(reportFixtureStore())

	buf, err := service.GeneratePaymentsCSV(context.Background(), models.PaymentStatusUnderpaid)
	require.NoError(t, err)

	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.PaymentStatusUnderpaid, records[1][9])
}

func TestGenerateReceiptPDFUnknownPayment(t *testing.T) {
	service := NewReportService(reportFixtureStore())

	_, err := service.GenerateReceiptPDF(context.Background(), "missing")
	var nf *store.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "payment", nf.Entity)
}
