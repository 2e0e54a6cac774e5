package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/jomidar/jomidar-api/internal/models"
)

// ExportService renders the dashboard summary in downloadable formats.
type ExportService struct {
	dashboardSvc *DashboardService
}

func NewExportService(dashboardSvc *DashboardService) *ExportService {
	return &ExportService{dashboardSvc: dashboardSvc}
}

func (s *ExportService) ExportCSV(ctx context.Context, stats models.DashboardStats) ([]byte, string, error) {
	breakdown := s.dashboardSvc.RevenueByProperty(ctx)

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	// Header
	_ = writer.Write([]string{"Portfolio Report", time.Now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{""})

	// Summary Section
	_ = writer.Write([]string{"Summary"})
	_ = writer.Write([]string{"Metric", "Value"})
	_ = writer.Write([]string{"Total Properties", fmt.Sprintf("%d", stats.TotalProperties)})
	_ = writer.Write([]string{"Total Units", fmt.Sprintf("%d", stats.TotalUnits)})
	_ = writer.Write([]string{"Occupancy Rate", fmt.Sprintf("%.2f%%", stats.OccupancyRate)})
	_ = writer.Write([]string{"Monthly Revenue", fmt.Sprintf("%.2f", stats.MonthlyRevenue)})
	_ = writer.Write([]string{"Pending Payments", fmt.Sprintf("%d", stats.PendingPayments)})
	_ = writer.Write([]string{"Overdue Payments", fmt.Sprintf("%d", stats.OverduePayments)})
	_ = writer.Write([]string{"Underpaid Payments", fmt.Sprintf("%d", stats.UnderpaidPayments)})
	_ = writer.Write([]string{""})

	// Per-property Section
	_ = writer.Write([]string{"Revenue by Property"})
	_ = writer.Write([]string{"Property", "Units", "Occupied", "Monthly Revenue"})
	for _, p := range breakdown {
		_ = writer.Write([]string{
			p.Name,
			fmt.Sprintf("%d", p.TotalUnits),
			fmt.Sprintf("%d", p.OccupiedUnits),
			fmt.Sprintf("%.2f", p.MonthlyRevenue),
		})
	}

	writer.Flush()

	filename := fmt.Sprintf("portfolio_report_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportXLSX(ctx context.Context, stats models.DashboardStats) ([]byte, string, error) {
	breakdown := s.dashboardSvc.RevenueByProperty(ctx)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Portfolio"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", "Portfolio Report")
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	_ = f.SetCellValue(sheet, "A3", "Summary")
	_ = f.SetCellValue(sheet, "A4", "Metric")
	_ = f.SetCellValue(sheet, "B4", "Value")

	_ = f.SetCellValue(sheet, "A5", "Total Properties")
	_ = f.SetCellValue(sheet, "B5", stats.TotalProperties)
	_ = f.SetCellValue(sheet, "A6", "Total Units")
	_ = f.SetCellValue(sheet, "B6", stats.TotalUnits)
	_ = f.SetCellValue(sheet, "A7", "Occupancy Rate")
	_ = f.SetCellValue(sheet, "B7", fmt.Sprintf("%.2f%%", stats.OccupancyRate))
	_ = f.SetCellValue(sheet, "A8", "Monthly Revenue")
	_ = f.SetCellValue(sheet, "B8", stats.MonthlyRevenue)
	_ = f.SetCellValue(sheet, "A9", "Pending Payments")
	_ = f.SetCellValue(sheet, "B9", stats.PendingPayments)
	_ = f.SetCellValue(sheet, "A10", "Overdue Payments")
	_ = f.SetCellValue(sheet, "B10", stats.OverduePayments)
	_ = f.SetCellValue(sheet, "A11", "Underpaid Payments")
	_ = f.SetCellValue(sheet, "B11", stats.UnderpaidPayments)

	_ = f.SetCellValue(sheet, "A13", "Revenue by Property")
	_ = f.SetCellValue(sheet, "A14", "Property")
	_ = f.SetCellValue(sheet, "B14", "Units")
	_ = f.SetCellValue(sheet, "C14", "Occupied")
	_ = f.SetCellValue(sheet, "D14", "Monthly Revenue")

	row := 15
	for _, p := range breakdown {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Name)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.TotalUnits)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.OccupiedUnits)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.MonthlyRevenue)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("portfolio_report_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportPDF(ctx context.Context, stats models.DashboardStats) ([]byte, string, error) {
	breakdown := s.dashboardSvc.RevenueByProperty(ctx)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Portfolio Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Summary")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 10, "Total Properties:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", stats.TotalProperties))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Total Units:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", stats.TotalUnits))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Occupancy Rate:")
	pdf.Cell(40, 10, fmt.Sprintf("%.2f%%", stats.OccupancyRate))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Monthly Revenue:")
	pdf.Cell(40, 10, fmt.Sprintf("%.2f", stats.MonthlyRevenue))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Pending Payments:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", stats.PendingPayments))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Overdue Payments:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", stats.OverduePayments))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Underpaid Payments:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", stats.UnderpaidPayments))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Revenue by Property")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, p := range breakdown {
		pdf.Cell(60, 10, p.Name+":")
		pdf.Cell(40, 10, fmt.Sprintf("%.2f (%d/%d occupied)", p.MonthlyRevenue, p.OccupiedUnits, p.TotalUnits))
		pdf.Ln(6)
	}

	buf := new(bytes.Buffer)
	err := pdf.Output(buf)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("portfolio_report_%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
