package store

import (
	"strings"

	"github.com/jomidar/jomidar-api/internal/models"
)

// PropertyInput is the caller-supplied part of a new property. Unit list
// and derived aggregates are system-managed.
type PropertyInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Image   string `json:"image"`
}

// UnitInput is the caller-supplied part of a new unit. Units are always
// created vacant; occupancy changes only through tenant operations.
type UnitInput struct {
	UnitNumber string  `json:"unitNumber"`
	Floor      string  `json:"floor"`
	Size       string  `json:"size"`
	Bedrooms   int     `json:"bedrooms"`
	Bathrooms  int     `json:"bathrooms"`
	Rent       float64 `json:"rent"`
}

// AddProperty creates a property with no units.
func (s *Store) AddProperty(in PropertyInput) models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Property{
		ID:      newID(),
		Name:    in.Name,
		Address: in.Address,
		Image:   in.Image,
		Units:   []models.Unit{},
	}
	s.properties = append(s.properties, p)
	s.refreshStats()
	return cloneProperty(p)
}

// UpdateProperty replaces a property's descriptive fields. The unit list
// and its derived aggregates are managed exclusively through unit and
// tenant operations and are preserved from the existing record.
func (s *Store) UpdateProperty(p models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.propertyByID(p.ID)
	if existing == nil {
		return &NotFoundError{Entity: "property", ID: p.ID}
	}

	existing.Name = p.Name
	existing.Address = p.Address
	existing.Image = p.Image
	s.refreshStats()
	return nil
}

// DeleteProperty removes a property and cascades removal of its tenants,
// payments and property-level documents. Deleting an unknown id is a no-op.
func (s *Store) DeleteProperty(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.propertyByID(id) == nil {
		return
	}

	s.properties = filterProperties(s.properties, func(p *models.Property) bool { return p.ID != id })
	s.tenants = filterTenants(s.tenants, func(t *models.Tenant) bool { return t.PropertyID != id })
	s.payments = filterPayments(s.payments, func(p *models.Payment) bool { return p.PropertyID != id })
	s.documents = filterDocuments(s.documents, func(d *models.Document) bool {
		return !(d.RelatedTo == models.RelatedToProperty && d.RelatedID == id)
	})
	s.refreshStats()
}

// AddUnit creates a unit in the given property. Unit numbers must be unique
// within a property, compared case-insensitively.
func (s *Store) AddUnit(propertyID string, in UnitInput) (models.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	property := s.propertyByID(propertyID)
	if property == nil {
		return models.Unit{}, &NotFoundError{Entity: "property", ID: propertyID}
	}
	for i := range property.Units {
		if strings.EqualFold(property.Units[i].UnitNumber, in.UnitNumber) {
			return models.Unit{}, &DuplicateUnitError{PropertyID: propertyID, UnitNumber: in.UnitNumber}
		}
	}

	unit := models.Unit{
		ID:         newID(),
		PropertyID: propertyID,
		UnitNumber: in.UnitNumber,
		Floor:      in.Floor,
		Size:       in.Size,
		Bedrooms:   in.Bedrooms,
		Bathrooms:  in.Bathrooms,
		Rent:       in.Rent,
		Status:     models.UnitStatusVacant,
	}
	property.Units = append(property.Units, unit)
	syncPropertyAggregates(property)
	s.refreshStats()
	return unit, nil
}

// UpdateUnit replaces a unit's descriptive fields and rent. Occupancy
// status and the tenant link are preserved from the existing record.
func (s *Store) UpdateUnit(propertyID string, u models.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	property := s.propertyByID(propertyID)
	if property == nil {
		return &NotFoundError{Entity: "property", ID: propertyID}
	}
	existing := property.UnitByID(u.ID)
	if existing == nil {
		return &NotFoundError{Entity: "unit", ID: u.ID}
	}
	for i := range property.Units {
		if property.Units[i].ID != u.ID && strings.EqualFold(property.Units[i].UnitNumber, u.UnitNumber) {
			return &DuplicateUnitError{PropertyID: propertyID, UnitNumber: u.UnitNumber}
		}
	}

	existing.UnitNumber = u.UnitNumber
	existing.Floor = u.Floor
	existing.Size = u.Size
	existing.Bedrooms = u.Bedrooms
	existing.Bathrooms = u.Bathrooms
	existing.Rent = u.Rent
	syncPropertyAggregates(property)
	s.refreshStats()
	return nil
}

// DeleteUnit removes a unit and cascades removal of any tenant and payments
// tied to it. Deleting an unknown property or unit id is a no-op.
func (s *Store) DeleteUnit(propertyID, unitID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	property := s.propertyByID(propertyID)
	if property == nil || property.UnitByID(unitID) == nil {
		return
	}

	property.Units = filterUnits(property.Units, func(u *models.Unit) bool { return u.ID != unitID })
	s.tenants = filterTenants(s.tenants, func(t *models.Tenant) bool { return t.UnitID != unitID })
	s.payments = filterPayments(s.payments, func(p *models.Payment) bool { return p.UnitID != unitID })
	syncPropertyAggregates(property)
	s.refreshStats()
}

func filterProperties(in []models.Property, keep func(*models.Property) bool) []models.Property {
	out := in[:0]
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

func filterUnits(in []models.Unit, keep func(*models.Unit) bool) []models.Unit {
	out := in[:0]
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

func filterTenants(in []models.Tenant, keep func(*models.Tenant) bool) []models.Tenant {
	out := in[:0]
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

func filterPayments(in []models.Payment, keep func(*models.Payment) bool) []models.Payment {
	out := in[:0]
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

func filterDocuments(in []models.Document, keep func(*models.Document) bool) []models.Document {
	out := in[:0]
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}
