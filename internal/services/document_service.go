package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/storage"
	"github.com/jomidar/jomidar-api/internal/store"
	"github.com/jomidar/jomidar-api/pkg/logger"
)

// DocumentService exposes document attachment operations. Documents either
// reference an external URL or a file stored on local storage.
type DocumentService struct {
	store   *store.Store
	storage *storage.LocalStorage
	audit   *AuditService
	flusher *SnapshotFlusher
}

func NewDocumentService(st *store.Store, fileStorage *storage.LocalStorage, audit *AuditService, flusher *SnapshotFlusher) *DocumentService {
	return &DocumentService{store: st, storage: fileStorage, audit: audit, flusher: flusher}
}

// List returns all documents, optionally filtered by related entity
func (s *DocumentService) List(ctx context.Context, relatedTo, relatedID string) []models.Document {
	docs := s.store.Documents()
	if relatedTo == "" && relatedID == "" {
		return docs
	}
	filtered := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if relatedTo != "" && d.RelatedTo != relatedTo {
			continue
		}
		if relatedID != "" && d.RelatedID != relatedID {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// Get returns a document by id
func (s *DocumentService) Get(ctx context.Context, id string) (models.Document, error) {
	d, ok := s.store.Document(id)
	if !ok {
		return models.Document{}, &store.NotFoundError{Entity: "document", ID: id}
	}
	return d, nil
}

// Create attaches a document described by its source descriptor
func (s *DocumentService) Create(ctx context.Context, in store.DocumentInput) (models.Document, error) {
	d, err := s.store.AddDocument(in)
	if err != nil {
		return models.Document{}, err
	}
	s.logAudit(ctx, "create", "document", d.ID, fmt.Sprintf("attached document %q to %s %s", d.Name, d.RelatedTo, d.RelatedID))
	s.flusher.FlushAsync()
	return d, nil
}

// Upload stores a file and attaches it as a document. The source kind is
// derived from the content type.
func (s *DocumentService) Upload(ctx context.Context, in store.DocumentInput, file multipart.File, header *multipart.FileHeader) (models.Document, error) {
	contentType := header.Header.Get("Content-Type")
	if !storage.IsValidContentType(contentType) || header.Size > storage.MaxFileSize() {
		return models.Document{}, ErrInvalidFile
	}

	path, err := s.storage.Upload(file, header, "documents")
	if err != nil {
		return models.Document{}, err
	}

	kind := models.SourceKindDocument
	if strings.HasPrefix(contentType, "image/") {
		kind = models.SourceKindImage
	}
	in.Source = models.DocumentSource{
		Kind:     kind,
		URI:      path,
		Name:     header.Filename,
		MimeType: contentType,
		Size:     header.Size,
	}

	d, err := s.store.AddDocument(in)
	if err != nil {
		// The document target was invalid, drop the orphaned file.
		if removeErr := s.storage.Delete(path); removeErr != nil {
			logger.Warn("failed to remove orphaned upload", "path", path, "error", removeErr)
		}
		return models.Document{}, err
	}
	s.logAudit(ctx, "create", "document", d.ID, fmt.Sprintf("uploaded %q (%s) for %s %s", header.Filename, contentType, d.RelatedTo, d.RelatedID))
	s.flusher.FlushAsync()
	return d, nil
}

// Update replaces a document
func (s *DocumentService) Update(ctx context.Context, d models.Document) (models.Document, error) {
	if err := s.store.UpdateDocument(d); err != nil {
		return models.Document{}, err
	}
	updated, _ := s.store.Document(d.ID)
	s.logAudit(ctx, "update", "document", d.ID, fmt.Sprintf("updated document %q", d.Name))
	s.flusher.FlushAsync()
	return updated, nil
}

// Delete removes a document record. Stored files are kept; cleaning them up
// is a manual operation.
func (s *DocumentService) Delete(ctx context.Context, id string) {
	s.store.DeleteDocument(id)
	s.logAudit(ctx, "delete", "document", id, "deleted document")
	s.flusher.FlushAsync()
}

// Open returns the stored file behind a document for download
func (s *DocumentService) Open(ctx context.Context, id string) (models.Document, string, error) {
	d, ok := s.store.Document(id)
	if !ok {
		return models.Document{}, "", &store.NotFoundError{Entity: "document", ID: id}
	}
	if d.Source.Kind == models.SourceKindURL {
		return d, "", nil
	}
	if !s.storage.Exists(d.Source.URI) {
		return models.Document{}, "", ErrNotFound
	}
	return d, s.storage.GetFullPath(d.Source.URI), nil
}

func (s *DocumentService) logAudit(ctx context.Context, action, entity, entityID, details string) {
	if err := s.audit.Log(ctx, actorFrom(ctx), action, entity, entityID, details); err != nil {
		logger.Error("failed to write audit entry", "error", err)
	}
}
