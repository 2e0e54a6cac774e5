package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/jomidar/jomidar-api/internal/store"
)

// ReportService renders payment listings as CSV and receipts as PDF.
type ReportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

// GeneratePaymentsCSV generates a CSV report of payments, optionally
// filtered by status
func (s *ReportService) GeneratePaymentsCSV(ctx context.Context, status string) (*bytes.Buffer, error) {
	payments := s.store.Payments()
	tenants := s.tenantNames()
	properties := s.propertyNames()

	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	header := []string{"Receipt No", "Tenant", "Property", "Month", "Date", "Type", "Amount", "Expected", "Remaining", "Status"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range payments {
		p := &payments[i]
		if status != "" && p.Status != status {
			continue
		}

		expected := ""
		if p.ExpectedAmount != nil {
			expected = fmt.Sprintf("%.2f", *p.ExpectedAmount)
		}
		remaining := ""
		if p.RemainingAmount != nil {
			remaining = fmt.Sprintf("%.2f", *p.RemainingAmount)
		}

		record := []string{
			p.ReceiptNumber(),
			tenants[p.TenantID],
			properties[p.PropertyID],
			p.Month,
			p.Date,
			p.Type,
			fmt.Sprintf("%.2f", p.Amount),
			expected,
			remaining,
			p.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b, nil
}

// GenerateReceiptPDF renders a payment receipt as PDF
func (s *ReportService) GenerateReceiptPDF(ctx context.Context, paymentID string) (*bytes.Buffer, error) {
	payment, ok := s.store.Payment(paymentID)
	if !ok {
		return nil, &store.NotFoundError{Entity: "payment", ID: paymentID}
	}

	tenantName := "N/A"
	if tenant, ok := s.store.Tenant(payment.TenantID); ok {
		tenantName = tenant.Name
	}

	propertyName := "N/A"
	unitNumber := "N/A"
	if property, ok := s.store.Property(payment.PropertyID); ok {
		propertyName = property.Name
		if unit := property.UnitByID(payment.UnitID); unit != nil {
			unitNumber = unit.UnitNumber
		}
	}

	expected := ""
	if payment.ExpectedAmount != nil {
		expected = fmt.Sprintf("%.2f", *payment.ExpectedAmount)
	}
	remaining := ""
	if payment.RemainingAmount != nil {
		remaining = fmt.Sprintf("%.2f", *payment.RemainingAmount)
	}

	data := map[string]interface{}{
		"ReceiptNumber": payment.ReceiptNumber(),
		"TenantName":    tenantName,
		"PropertyName":  propertyName,
		"UnitNumber":    unitNumber,
		"PaymentType":   payment.Type,
		"Month":         payment.Month,
		"Date":          payment.Date,
		"Amount":        fmt.Sprintf("%.2f", payment.Amount),
		"Expected":      expected,
		"Remaining":     remaining,
		"Status":        payment.Status,
		"Notes":         payment.Notes,
		"GeneratedDate": time.Now().Format("2006-01-02"),
	}

	return s.generatePDF("payment_receipt.html", data)
}

// generatePDF renders an HTML template and converts it with wkhtmltopdf
func (s *ReportService) generatePDF(templateName string, data interface{}) (*bytes.Buffer, error) {
	// Try path relative to project root (Prod)
	tmplPath := fmt.Sprintf("internal/services/templates/reports/%s", templateName)
	if _, err := os.Stat(tmplPath); os.IsNotExist(err) {
		// Try path relative to package (Test)
		tmplPath = fmt.Sprintf("templates/reports/%s", templateName)
	}

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s (path: %s): %w", templateName, tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(buf.Bytes()))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}

	return pdfg.Buffer(), nil
}

func (s *ReportService) tenantNames() map[string]string {
	names := map[string]string{}
	for _, t := range s.store.Tenants() {
		names[t.ID] = t.Name
	}
	return names
}

func (s *ReportService) propertyNames() map[string]string {
	names := map[string]string{}
	for _, p := range s.store.Properties() {
		names[p.ID] = p.Name
	}
	return names
}
