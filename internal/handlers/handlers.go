package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jomidar/jomidar-api/internal/middleware"
	"github.com/jomidar/jomidar-api/internal/services"
	"github.com/jomidar/jomidar-api/internal/store"
)

// Handlers holds all handler instances
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Property  *PropertyHandler
	Tenant    *TenantHandler
	Payment   *PaymentHandler
	Document  *DocumentHandler
	Dashboard *DashboardHandler
	Audit     *AuditHandler
	Job       *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(),
		Auth:      NewAuthHandler(svcs.Auth),
		Property:  NewPropertyHandler(svcs.Property),
		Tenant:    NewTenantHandler(svcs.Tenant),
		Payment:   NewPaymentHandler(svcs.Payment, svcs.Report),
		Document:  NewDocumentHandler(svcs.Document),
		Dashboard: NewDashboardHandler(svcs.Dashboard, svcs.Export, svcs.Report),
		Audit:     NewAuditHandler(svcs.Audit),
		Job:       NewJobHandler(svcs.Job),
	}
}

// requestCtx returns the request context tagged with the acting user so
// service-level audit entries can attribute the change.
func requestCtx(c *gin.Context) context.Context {
	return services.WithActor(c.Request.Context(), middleware.GetUserID(c))
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	var (
		notFound      *store.NotFoundError
		duplicate     *store.DuplicateUnitError
		notVacant     *store.UnitNotVacantError
		badAmount     *store.InvalidAmountError
		badStatus     *store.InvalidStatusError
		badTransition *store.InvalidTransitionError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &duplicate), errors.As(err, &notVacant):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &badAmount), errors.As(err, &badStatus), errors.As(err, &badTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
