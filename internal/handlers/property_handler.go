package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/services"
	"github.com/jomidar/jomidar-api/internal/store"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// @Summary List Properties
// @Description Get all properties with their units
// @Tags Properties
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) Index(c *gin.Context) {
	properties := h.propertyService.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// @Summary Get Property
// @Description Get a property by ID
// @Tags Properties
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /properties/{property_id} [get]
func (h *PropertyHandler) Show(c *gin.Context) {
	property, err := h.propertyService.Get(c.Request.Context(), c.Param("property_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

// @Summary Create Property
// @Description Create a new property
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body store.PropertyInput true "Property Data"
// @Success 201 {object} models.Property
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var in store.PropertyInput
	if err := BindNestedOrFlat(c, "property", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property := h.propertyService.Create(requestCtx(c), in)
	c.JSON(http.StatusCreated, gin.H{"property": property})
}

// @Summary Update Property
// @Description Update a property's descriptive fields
// @Tags Properties
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param request body models.Property true "Property Data"
// @Success 200 {object} models.Property
// @Security BearerAuth
// @Router /properties/{property_id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	var property models.Property
	if err := BindNestedOrFlat(c, "property", &property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	property.ID = c.Param("property_id")

	updated, err := h.propertyService.Update(requestCtx(c), property)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": updated})
}

// @Summary Delete Property
// @Description Delete a property and everything tied to it
// @Tags Properties
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /properties/{property_id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	h.propertyService.Delete(requestCtx(c), c.Param("property_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// @Summary Create Unit
// @Description Add a unit to a property
// @Tags Units
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param request body store.UnitInput true "Unit Data"
// @Success 201 {object} models.Unit
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /properties/{property_id}/units [post]
func (h *PropertyHandler) CreateUnit(c *gin.Context) {
	var in store.UnitInput
	if err := BindNestedOrFlat(c, "unit", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := h.propertyService.AddUnit(requestCtx(c), c.Param("property_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"unit": unit})
}

// @Summary Update Unit
// @Description Update a unit's descriptive fields and rent
// @Tags Units
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param unit_id path string true "Unit ID"
// @Param request body models.Unit true "Unit Data"
// @Success 200 {object} models.Unit
// @Security BearerAuth
// @Router /properties/{property_id}/units/{unit_id} [put]
func (h *PropertyHandler) UpdateUnit(c *gin.Context) {
	var unit models.Unit
	if err := BindNestedOrFlat(c, "unit", &unit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unit.ID = c.Param("unit_id")

	updated, err := h.propertyService.UpdateUnit(requestCtx(c), c.Param("property_id"), unit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unit": updated})
}

// @Summary Delete Unit
// @Description Delete a unit and everything tied to it
// @Tags Units
// @Produce json
// @Param property_id path string true "Property ID"
// @Param unit_id path string true "Unit ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /properties/{property_id}/units/{unit_id} [delete]
func (h *PropertyHandler) DeleteUnit(c *gin.Context) {
	h.propertyService.DeleteUnit(requestCtx(c), c.Param("property_id"), c.Param("unit_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Unit deleted"})
}
