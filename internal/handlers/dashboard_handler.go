package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jomidar/jomidar-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	exportService    *services.ExportService
	reportService    *services.ReportService
}

func NewDashboardHandler(dashboardService *services.DashboardService, exportService *services.ExportService, reportService *services.ReportService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		exportService:    exportService,
		reportService:    reportService,
	}
}

// @Summary Dashboard Stats
// @Description Get the derived portfolio summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats := h.dashboardService.Stats(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// @Summary Revenue by Property
// @Description Break monthly revenue down per property
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c *gin.Context) {
	revenue := h.dashboardService.RevenueByProperty(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"revenue": revenue})
}

// @Summary Export Dashboard
// @Description Download the portfolio report in the requested format
// @Tags Dashboard
// @Produce octet-stream
// @Param format query string false "Export format: csv, xlsx or pdf" default(csv)
// @Success 200 {file} file
// @Security BearerAuth
// @Router /dashboard/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	stats := h.dashboardService.Stats(ctx)

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		data, filename, err = h.exportService.ExportXLSX(ctx, stats)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		data, filename, err = h.exportService.ExportPDF(ctx, stats)
		contentType = "application/pdf"
	case "csv":
		data, filename, err = h.exportService.ExportCSV(ctx, stats)
		contentType = "text/csv"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv, xlsx or pdf"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

// @Summary Payments Report
// @Description Download payments as CSV, optionally filtered by status
// @Tags Reports
// @Produce text/csv
// @Param status query string false "Filter by payment status"
// @Success 200 {file} file "payments.csv"
// @Security BearerAuth
// @Router /reports/payments_csv [get]
func (h *DashboardHandler) PaymentsCSV(c *gin.Context) {
	buf, err := h.reportService.GeneratePaymentsCSV(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=payments.csv")
	c.String(http.StatusOK, buf.String())
}

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Audit Logs
// @Description Get a paginated list of system audit logs
// @Tags Audit
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /audits [get]
func (h *AuditHandler) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	offset := (page - 1) * perPage

	logs, total, err := h.auditService.List(c.Request.Context(), perPage, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"audits": logs, "pagination": gin.H{"total": total, "page": page, "per_page": perPage}})
}

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// @Summary Worker Status
// @Description Get background worker statistics
// @Tags Jobs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /jobs/status [get]
func (h *JobHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobService.GetStatus())
}
