package services

import (
	"context"
	"fmt"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/store"
	"github.com/jomidar/jomidar-api/pkg/logger"
)

// PropertyService exposes property and unit operations. Every applied
// mutation is audited and queues a snapshot flush.
type PropertyService struct {
	store   *store.Store
	audit   *AuditService
	flusher *SnapshotFlusher
}

func NewPropertyService(st *store.Store, audit *AuditService, flusher *SnapshotFlusher) *PropertyService {
	return &PropertyService{store: st, audit: audit, flusher: flusher}
}

// List returns all properties
func (s *PropertyService) List(ctx context.Context) []models.Property {
	return s.store.Properties()
}

// Get returns a property by id
func (s *PropertyService) Get(ctx context.Context, id string) (models.Property, error) {
	p, ok := s.store.Property(id)
	if !ok {
		return models.Property{}, &store.NotFoundError{Entity: "property", ID: id}
	}
	return p, nil
}

// Create adds a property
func (s *PropertyService) Create(ctx context.Context, in store.PropertyInput) models.Property {
	p := s.store.AddProperty(in)
	s.logAudit(ctx, "create", "property", p.ID, fmt.Sprintf("created property %q", p.Name))
	s.flusher.FlushAsync()
	return p
}

// Update replaces a property's descriptive fields
func (s *PropertyService) Update(ctx context.Context, p models.Property) (models.Property, error) {
	if err := s.store.UpdateProperty(p); err != nil {
		return models.Property{}, err
	}
	updated, _ := s.store.Property(p.ID)
	s.logAudit(ctx, "update", "property", p.ID, fmt.Sprintf("updated property %q", p.Name))
	s.flusher.FlushAsync()
	return updated, nil
}

// Delete removes a property and everything tied to it
func (s *PropertyService) Delete(ctx context.Context, id string) {
	s.store.DeleteProperty(id)
	s.logAudit(ctx, "delete", "property", id, "deleted property with its tenants, payments and documents")
	s.flusher.FlushAsync()
}

// AddUnit creates a unit in a property
func (s *PropertyService) AddUnit(ctx context.Context, propertyID string, in store.UnitInput) (models.Unit, error) {
	u, err := s.store.AddUnit(propertyID, in)
	if err != nil {
		return models.Unit{}, err
	}
	s.logAudit(ctx, "create", "unit", u.ID, fmt.Sprintf("added unit %q to property %s", u.UnitNumber, propertyID))
	s.flusher.FlushAsync()
	return u, nil
}

// UpdateUnit replaces a unit's descriptive fields and rent
func (s *PropertyService) UpdateUnit(ctx context.Context, propertyID string, u models.Unit) (models.Unit, error) {
	if err := s.store.UpdateUnit(propertyID, u); err != nil {
		return models.Unit{}, err
	}
	property, _ := s.store.Property(propertyID)
	updated := property.UnitByID(u.ID)
	s.logAudit(ctx, "update", "unit", u.ID, fmt.Sprintf("updated unit %q", u.UnitNumber))
	s.flusher.FlushAsync()
	return *updated, nil
}

// DeleteUnit removes a unit and everything tied to it
func (s *PropertyService) DeleteUnit(ctx context.Context, propertyID, unitID string) {
	s.store.DeleteUnit(propertyID, unitID)
	s.logAudit(ctx, "delete", "unit", unitID, "deleted unit with its tenant and payments")
	s.flusher.FlushAsync()
}

func (s *PropertyService) logAudit(ctx context.Context, action, entity, entityID, details string) {
	if err := s.audit.Log(ctx, actorFrom(ctx), action, entity, entityID, details); err != nil {
		logger.Error("failed to write audit entry", "error", err)
	}
}
