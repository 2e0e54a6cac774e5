package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/services"
	"github.com/jomidar/jomidar-api/internal/store"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// @Summary List Documents
// @Description Get all documents, optionally filtered by related entity
// @Tags Documents
// @Produce json
// @Param related_to query string false "Filter by related entity kind (property, tenant, unit)"
// @Param related_id query string false "Filter by related entity id"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) Index(c *gin.Context) {
	documents := h.documentService.List(c.Request.Context(), c.Query("related_to"), c.Query("related_id"))
	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

// @Summary Get Document
// @Description Get a document by ID
// @Tags Documents
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /documents/{document_id} [get]
func (h *DocumentHandler) Show(c *gin.Context) {
	document, err := h.documentService.Get(c.Request.Context(), c.Param("document_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": document})
}

// @Summary Create Document
// @Description Attach a document described by its source descriptor (e.g. an external URL)
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body store.DocumentInput true "Document Data"
// @Success 201 {object} models.Document
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var in store.DocumentInput
	if err := BindNestedOrFlat(c, "document", &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	document, err := h.documentService.Create(requestCtx(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": document})
}

// @Summary Upload Document
// @Description Upload a file and attach it as a document
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param name formData string false "Display name"
// @Param type formData string false "Document type"
// @Param related_to formData string true "Related entity kind"
// @Param related_id formData string true "Related entity id"
// @Success 201 {object} models.Document
// @Security BearerAuth
// @Router /documents/upload [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	name := c.PostForm("name")
	if name == "" {
		name = header.Filename
	}
	docType := c.PostForm("type")
	if docType == "" {
		docType = models.DocumentTypeOther
	}

	in := store.DocumentInput{
		Name:      name,
		Type:      docType,
		RelatedTo: c.PostForm("related_to"),
		RelatedID: c.PostForm("related_id"),
	}

	document, err := h.documentService.Upload(requestCtx(c), in, file, header)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": document})
}

// @Summary Update Document
// @Description Update a document
// @Tags Documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param request body models.Document true "Document Data"
// @Success 200 {object} models.Document
// @Security BearerAuth
// @Router /documents/{document_id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	var document models.Document
	if err := BindNestedOrFlat(c, "document", &document); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	document.ID = c.Param("document_id")

	updated, err := h.documentService.Update(requestCtx(c), document)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": updated})
}

// @Summary Delete Document
// @Description Delete a document
// @Tags Documents
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /documents/{document_id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	h.documentService.Delete(requestCtx(c), c.Param("document_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// @Summary Download Document
// @Description Download a stored document file, or redirect for URL documents
// @Tags Documents
// @Produce octet-stream
// @Param document_id path string true "Document ID"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /documents/{document_id}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	document, path, err := h.documentService.Open(c.Request.Context(), c.Param("document_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if document.Source.Kind == models.SourceKindURL {
		c.Redirect(http.StatusFound, document.Source.URI)
		return
	}

	if document.Source.MimeType != "" {
		c.Header("Content-Type", document.Source.MimeType)
	}
	c.FileAttachment(path, document.Source.Name)
}
