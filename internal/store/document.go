package store

import (
	"time"

	"github.com/jomidar/jomidar-api/internal/models"
)

// DocumentInput is the caller-supplied part of a new document.
type DocumentInput struct {
	Name       string                `json:"name"`
	Type       string                `json:"type"`
	Source     models.DocumentSource `json:"source"`
	UploadDate string                `json:"uploadDate"`
	RelatedTo  string                `json:"relatedTo"`
	RelatedID  string                `json:"relatedId"`
}

// AddDocument attaches a document to an existing property, tenant or unit.
// Document mutations never touch the dashboard statistics.
func (s *Store) AddDocument(in DocumentInput) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRelated(in.RelatedTo, in.RelatedID); err != nil {
		return models.Document{}, err
	}

	uploadDate := in.UploadDate
	if uploadDate == "" {
		uploadDate = time.Now().Format("2006-01-02")
	}

	doc := models.Document{
		ID:         newID(),
		Name:       in.Name,
		Type:       in.Type,
		Source:     in.Source,
		UploadDate: uploadDate,
		RelatedTo:  in.RelatedTo,
		RelatedID:  in.RelatedID,
	}
	s.documents = append(s.documents, doc)
	return doc, nil
}

// UpdateDocument replaces a document by id.
func (s *Store) UpdateDocument(d models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRelated(d.RelatedTo, d.RelatedID); err != nil {
		return err
	}
	for i := range s.documents {
		if s.documents[i].ID == d.ID {
			s.documents[i] = d
			return nil
		}
	}
	return &NotFoundError{Entity: "document", ID: d.ID}
}

// DeleteDocument removes a document by id. Deleting an unknown id is a
// no-op.
func (s *Store) DeleteDocument(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = filterDocuments(s.documents, func(d *models.Document) bool { return d.ID != id })
}

// checkRelated verifies that the entity a document points at exists.
// Callers must hold the lock.
func (s *Store) checkRelated(relatedTo, relatedID string) error {
	switch relatedTo {
	case models.RelatedToProperty:
		if s.propertyByID(relatedID) == nil {
			return &NotFoundError{Entity: "property", ID: relatedID}
		}
	case models.RelatedToTenant:
		if s.tenantByID(relatedID) == nil {
			return &NotFoundError{Entity: "tenant", ID: relatedID}
		}
	case models.RelatedToUnit:
		if s.unitByID(relatedID) == nil {
			return &NotFoundError{Entity: "unit", ID: relatedID}
		}
	default:
		return &NotFoundError{Entity: relatedTo, ID: relatedID}
	}
	return nil
}
