package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/storage"
	"github.com/jomidar/jomidar-api/internal/store"
	"github.com/jomidar/jomidar-api/pkg/logger"
)

// TenantService exposes tenant operations, including photo uploads.
type TenantService struct {
	store   *store.Store
	storage *storage.LocalStorage
	audit   *AuditService
	flusher *SnapshotFlusher
}

func NewTenantService(st *store.Store, fileStorage *storage.LocalStorage, audit *AuditService, flusher *SnapshotFlusher) *TenantService {
	return &TenantService{store: st, storage: fileStorage, audit: audit, flusher: flusher}
}

// List returns all tenants
func (s *TenantService) List(ctx context.Context) []models.Tenant {
	return s.store.Tenants()
}

// Get returns a tenant by id
func (s *TenantService) Get(ctx context.Context, id string) (models.Tenant, error) {
	t, ok := s.store.Tenant(id)
	if !ok {
		return models.Tenant{}, &store.NotFoundError{Entity: "tenant", ID: id}
	}
	return t, nil
}

// Create adds a tenant into a vacant unit
func (s *TenantService) Create(ctx context.Context, in store.TenantInput) (models.Tenant, error) {
	t, err := s.store.AddTenant(in)
	if err != nil {
		return models.Tenant{}, err
	}
	s.logAudit(ctx, "create", "tenant", t.ID, fmt.Sprintf("added tenant %q to unit %s", t.Name, t.UnitID))
	s.flusher.FlushAsync()
	return t, nil
}

// Update replaces a tenant's contact and lease fields
func (s *TenantService) Update(ctx context.Context, t models.Tenant) (models.Tenant, error) {
	if err := s.store.UpdateTenant(t); err != nil {
		return models.Tenant{}, err
	}
	updated, _ := s.store.Tenant(t.ID)
	s.logAudit(ctx, "update", "tenant", t.ID, fmt.Sprintf("updated tenant %q", t.Name))
	s.flusher.FlushAsync()
	return updated, nil
}

// Delete removes a tenant, vacating their unit
func (s *TenantService) Delete(ctx context.Context, id string) {
	s.store.DeleteTenant(id)
	s.logAudit(ctx, "delete", "tenant", id, "deleted tenant with their payments and documents")
	s.flusher.FlushAsync()
}

// AttachPhoto stores an uploaded photo and records its path on the tenant
func (s *TenantService) AttachPhoto(ctx context.Context, tenantID string, file multipart.File, header *multipart.FileHeader) (models.Tenant, error) {
	tenant, ok := s.store.Tenant(tenantID)
	if !ok {
		return models.Tenant{}, &store.NotFoundError{Entity: "tenant", ID: tenantID}
	}

	contentType := header.Header.Get("Content-Type")
	if !storage.IsValidContentType(contentType) || header.Size > storage.MaxFileSize() {
		return models.Tenant{}, ErrInvalidFile
	}

	path, err := s.storage.Upload(file, header, "photos")
	if err != nil {
		return models.Tenant{}, err
	}

	tenant.Photo = path
	if err := s.store.UpdateTenant(tenant); err != nil {
		return models.Tenant{}, err
	}
	updated, _ := s.store.Tenant(tenantID)
	s.logAudit(ctx, "update", "tenant", tenantID, "attached tenant photo")
	s.flusher.FlushAsync()
	return updated, nil
}

func (s *TenantService) logAudit(ctx context.Context, action, entity, entityID, details string) {
	if err := s.audit.Log(ctx, actorFrom(ctx), action, entity, entityID, details); err != nil {
		logger.Error("failed to write audit entry", "error", err)
	}
}
