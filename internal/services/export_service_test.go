package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/store"
)

func exportFixture() (*ExportService, models.DashboardStats) {
	st := store.New(models.Snapshot{
		Properties: []models.Property{
			{
				ID: "p1", Name: "Lakeview Court",
				Units: []models.Unit{
					{ID: "u1", PropertyID: "p1", UnitNumber: "2A", Rent: 15000, Status: models.UnitStatusOccupied, TenantID: "t1"},
					{ID: "u2", PropertyID: "p1", UnitNumber: "2B", Rent: 12000, Status: models.UnitStatusVacant},
				},
			},
			{
				ID: "p2", Name: "Gulshan Heights",
				Units: []models.Unit{
					{ID: "u3", PropertyID: "p2", UnitNumber: "5A", Rent: 30000, Status: models.UnitStatusOccupied, TenantID: "t2"},
				},
			},
		},
		Payments: []models.Payment{
			{ID: "pay1", Status: models.PaymentStatusPending},
		},
	})
	dashboard := NewDashboardService(st)
	return NewExportService(dashboard), st.Stats()
}

func TestExportCSV(t *testing.T) {
	service, stats := exportFixture()

	data, filename, err := service.ExportCSV(context.Background(), stats)
	require.NoError(t, err)
	assert.Regexp(t, `^portfolio_report_\d{4}-\d{2}-\d{2}\.csv$`, filename)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	flat := map[string]string{}
	for _, rec := range records {
		if len(rec) == 2 {
			flat[rec[0]] = rec[1]
		}
	}
	assert.Equal(t, "2", flat["Total Properties"])
	assert.Equal(t, "3", flat["Total Units"])
	assert.Equal(t, "45000.00", flat["Monthly Revenue"])
	assert.Equal(t, "1", flat["Pending Payments"])

	// Per-property section lists both properties.
	var names []string
	for _, rec := range records {
		if len(rec) == 4 && rec[0] != "Property" {
			names = append(names, rec[0])
		}
	}
	assert.ElementsMatch(t, []string{"Lakeview Court", "Gulshan Heights"}, names)
}

func TestExportXLSX(t *testing.T) {
	service, stats := exportFixture()

	data, filename, err := service.ExportXLSX(context.Background(), stats)
	require.NoError(t, err)
	assert.Regexp(t, `^portfolio_report_\d{4}-\d{2}-\d{2}\.xlsx$`, filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Portfolio", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Report", title)

	totalUnits, err := f.GetCellValue("Portfolio", "B6")
	require.NoError(t, err)
	assert.Equal(t, "3", totalUnits)

	firstProperty, err := f.GetCellValue("Portfolio", "A15")
	require.NoError(t, err)
	assert.Equal(t, "Lakeview Court", firstProperty)
}

func TestExportPDF(t *testing.T) {
	service, stats := exportFixture()

	data, filename, err := service.ExportPDF(context.Background(), stats)
	require.NoError(t, err)
	assert.Regexp(t, `^portfolio_report_\d{4}-\d{2}-\d{2}\.pdf$`, filename)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRevenueByProperty(t *testing.T) {
	service, _ := exportFixture()

	breakdown := service.dashboardSvc.RevenueByProperty(context.Background())
	require.Len(t, breakdown, 2)

	byID := map[string]PropertyRevenue{}
	for _, p := range breakdown {
		byID[p.PropertyID] = p
	}
	assert.Equal(t, 15000.0, byID["p1"].MonthlyRevenue)
	assert.Equal(t, 1, byID["p1"].OccupiedUnits)
	assert.Equal(t, 2, byID["p1"].TotalUnits)
	assert.Equal(t, 30000.0, byID["p2"].MonthlyRevenue)
}
