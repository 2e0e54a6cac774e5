package store

import "github.com/jomidar/jomidar-api/internal/models"

// TenantInput is the caller-supplied part of a new tenant. Documents and
// payment history start empty.
type TenantInput struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	NIDNumber       string  `json:"nidNumber"`
	Photo           string  `json:"photo"`
	UnitID          string  `json:"unitId"`
	PropertyID      string  `json:"propertyId"`
	LeaseStart      string  `json:"leaseStart"`
	LeaseEnd        string  `json:"leaseEnd"`
	MonthlyRent     float64 `json:"monthlyRent"`
	SecurityDeposit float64 `json:"securityDeposit"`
}

// AddTenant creates a tenant and moves the target unit to occupied. The
// unit must exist in the named property and be vacant; nothing is mutated
// when validation fails.
func (s *Store) AddTenant(in TenantInput) (models.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	property := s.propertyByID(in.PropertyID)
	if property == nil {
		return models.Tenant{}, &NotFoundError{Entity: "property", ID: in.PropertyID}
	}
	unit := property.UnitByID(in.UnitID)
	if unit == nil {
		return models.Tenant{}, &NotFoundError{Entity: "unit", ID: in.UnitID}
	}
	if unit.IsOccupied() {
		return models.Tenant{}, &UnitNotVacantError{UnitID: unit.ID, OccupantID: unit.TenantID}
	}

	tenant := models.Tenant{
		ID:              newID(),
		Name:            in.Name,
		Phone:           in.Phone,
		Email:           in.Email,
		NIDNumber:       in.NIDNumber,
		Photo:           in.Photo,
		UnitID:          in.UnitID,
		PropertyID:      in.PropertyID,
		LeaseStart:      in.LeaseStart,
		LeaseEnd:        in.LeaseEnd,
		MonthlyRent:     in.MonthlyRent,
		SecurityDeposit: in.SecurityDeposit,
		Documents:       []models.Document{},
		PaymentHistory:  []models.Payment{},
	}

	unit.Status = models.UnitStatusOccupied
	unit.TenantID = tenant.ID
	s.tenants = append(s.tenants, tenant)
	syncPropertyAggregates(property)
	s.refreshStats()
	return cloneTenant(tenant), nil
}

// UpdateTenant replaces a tenant's contact and lease fields. The unit and
// property links are preserved from the existing record; moving a tenant
// is a delete followed by an add.
func (s *Store) UpdateTenant(t models.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.tenantByID(t.ID)
	if existing == nil {
		return &NotFoundError{Entity: "tenant", ID: t.ID}
	}

	existing.Name = t.Name
	existing.Phone = t.Phone
	existing.Email = t.Email
	existing.NIDNumber = t.NIDNumber
	existing.Photo = t.Photo
	existing.LeaseStart = t.LeaseStart
	existing.LeaseEnd = t.LeaseEnd
	existing.MonthlyRent = t.MonthlyRent
	existing.SecurityDeposit = t.SecurityDeposit
	return nil
}

// DeleteTenant removes a tenant, vacates their unit and cascades removal of
// their payments and tenant-level documents. Deleting an unknown id is a
// no-op, so a double delete yields the same state as a single one.
func (s *Store) DeleteTenant(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenant := s.tenantByID(id)
	if tenant == nil {
		return
	}

	if property := s.propertyByID(tenant.PropertyID); property != nil {
		if unit := property.UnitByID(tenant.UnitID); unit != nil {
			unit.Status = models.UnitStatusVacant
			unit.TenantID = ""
		}
		syncPropertyAggregates(property)
	}

	s.tenants = filterTenants(s.tenants, func(t *models.Tenant) bool { return t.ID != id })
	s.payments = filterPayments(s.payments, func(p *models.Payment) bool { return p.TenantID != id })
	s.documents = filterDocuments(s.documents, func(d *models.Document) bool {
		return !(d.RelatedTo == models.RelatedToTenant && d.RelatedID == id)
	})
	s.refreshStats()
}
