package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/services"
	"github.com/jomidar/jomidar-api/internal/store"
)

type TenantHandler struct {
	tenantService *services.TenantService
}

func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// @Summary List Tenants
// @Description Get all tenants
// @Tags Tenants
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) Index(c *gin.Context) {
	tenants := h.tenantService.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"tenants": tenants})
}

// @Summary Get Tenant
// @Description Get a tenant by ID
// @Tags Tenants
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} models.Tenant
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /tenants/{tenant_id} [get]
func (h *TenantHandler) Show(c *gin.Context) {
	tenant, err := h.tenantService.Get(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenant": tenant})
}

// @Summary Create Tenant
// @Description Move a tenant into a vacant unit
// @Tags Tenants
// @Accept json
// @Produce json
// @Param request body store.TenantInput true "Tenant Data"
// @Success 201 {object} models.Tenant
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var in store.TenantInput
	if err := BindNestedOrFlat(c, "tenant", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.tenantService.Create(requestCtx(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tenant": tenant})
}

// @Summary Update Tenant
// @Description Update a tenant's contact and lease fields
// @Tags Tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param request body models.Tenant true "Tenant Data"
// @Success 200 {object} models.Tenant
// @Security BearerAuth
// @Router /tenants/{tenant_id} [put]
func (h *TenantHandler) Update(c *gin.Context) {
	var tenant models.Tenant
	if err := BindNestedOrFlat(c, "tenant", &tenant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tenant.ID = c.Param("tenant_id")

	updated, err := h.tenantService.Update(requestCtx(c), tenant)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenant": updated})
}

// @Summary Delete Tenant
// @Description Delete a tenant, vacating their unit
// @Tags Tenants
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /tenants/{tenant_id} [delete]
func (h *TenantHandler) Delete(c *gin.Context) {
	h.tenantService.Delete(requestCtx(c), c.Param("tenant_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Tenant deleted"})
}

// @Summary Upload Tenant Photo
// @Description Attach a photo to a tenant
// @Tags Tenants
// @Accept multipart/form-data
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} models.Tenant
// @Security BearerAuth
// @Router /tenants/{tenant_id}/photo [post]
func (h *TenantHandler) UploadPhoto(c *gin.Context) {
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer file.Close()

	tenant, err := h.tenantService.AttachPhoto(requestCtx(c), c.Param("tenant_id"), file, header)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenant": tenant})
}
