package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/services"
	"github.com/jomidar/jomidar-api/internal/store"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	reportService  *services.ReportService
}

func NewPaymentHandler(paymentService *services.PaymentService, reportService *services.ReportService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, reportService: reportService}
}

// @Summary List Payments
// @Description Get all payments, optionally filtered by tenant and status
// @Tags Payments
// @Produce json
// @Param tenant_id query string false "Filter by tenant"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) Index(c *gin.Context) {
	payments := h.paymentService.List(c.Request.Context(), c.Query("tenant_id"), c.Query("status"))
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// @Summary Get Payment
// @Description Get a payment by ID
// @Tags Payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /payments/{payment_id} [get]
func (h *PaymentHandler) Show(c *gin.Context) {
	payment, err := h.paymentService.Get(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// @Summary Record Payment
// @Description Record a payment; reconciliation fixes the resulting status
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body store.PaymentInput true "Payment Data"
// @Success 201 {object} models.Payment
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var in store.PaymentInput
	if err := BindNestedOrFlat(c, "payment", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.Create(requestCtx(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// @Summary Update Payment
// @Description Update a payment, re-running reconciliation
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Param request body models.Payment true "Payment Data"
// @Success 200 {object} models.Payment
// @Security BearerAuth
// @Router /payments/{payment_id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	var payment models.Payment
	if err := BindNestedOrFlat(c, "payment", &payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment.ID = c.Param("payment_id")

	updated, err := h.paymentService.Update(requestCtx(c), payment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": updated})
}

// @Summary Delete Payment
// @Description Delete a payment
// @Tags Payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /payments/{payment_id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	h.paymentService.Delete(requestCtx(c), c.Param("payment_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}

// @Summary Payment Stats
// @Description Summarize payments by status and collected vs outstanding amounts
// @Tags Payments
// @Produce json
// @Success 200 {object} services.PaymentStats
// @Security BearerAuth
// @Router /payments/stats [get]
func (h *PaymentHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": h.paymentService.Stats(c.Request.Context())})
}

// @Summary Settle Payment
// @Description Transition a payment to paid
// @Tags Payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /payments/{payment_id}/settle [post]
func (h *PaymentHandler) Settle(c *gin.Context) {
	payment, err := h.paymentService.Settle(requestCtx(c), c.Param("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// @Summary Mark Payment Overdue
// @Description Transition a pending payment to overdue
// @Tags Payments
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /payments/{payment_id}/mark_overdue [post]
func (h *PaymentHandler) MarkOverdue(c *gin.Context) {
	payment, err := h.paymentService.MarkOverdue(requestCtx(c), c.Param("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// @Summary Payment Receipt PDF
// @Description Download the receipt for a payment as PDF
// @Tags Payments
// @Produce application/pdf
// @Param payment_id path string true "Payment ID"
// @Success 200 {file} file "receipt.pdf"
// @Security BearerAuth
// @Router /payments/{payment_id}/receipt [get]
func (h *PaymentHandler) Receipt(c *gin.Context) {
	paymentID := c.Param("payment_id")
	buf, err := h.reportService.GenerateReceiptPDF(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", paymentID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
