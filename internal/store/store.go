package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jomidar/jomidar-api/internal/models"
)

// Store holds the full entity set in memory and applies mutations while
// preserving cross-entity invariants (unit occupancy flags, cached property
// aggregates, dashboard statistics). Mutations validate completely before
// touching any collection, so a rejected operation never leaves partial
// state behind. There is one logical writer, but HTTP handlers may call
// concurrently; the mutex serializes them.
type Store struct {
	mu         sync.RWMutex
	properties []models.Property
	tenants    []models.Tenant
	payments   []models.Payment
	documents  []models.Document
	users      []models.User
	stats      models.DashboardStats
}

// New creates a store initialized from a snapshot. Cached property
// aggregates and dashboard statistics are recomputed from the unit and
// payment lists rather than trusted from the snapshot.
func New(snap models.Snapshot) *Store {
	s := &Store{
		properties: cloneProperties(snap.Properties),
		tenants:    cloneTenants(snap.Tenants),
		payments:   clonePayments(snap.Payments),
		documents:  cloneDocuments(snap.Documents),
		users:      cloneUsers(snap.Users),
	}
	for i := range s.properties {
		syncPropertyAggregates(&s.properties[i])
	}
	s.refreshStats()
	return s
}

// Snapshot returns a deep copy of the current state for persistence.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Snapshot{
		Version:    models.SnapshotVersion,
		Properties: cloneProperties(s.properties),
		Tenants:    cloneTenants(s.tenants),
		Payments:   clonePayments(s.payments),
		Documents:  cloneDocuments(s.documents),
		Users:      cloneUsers(s.users),
	}
}

// Properties returns a deep copy of all properties.
func (s *Store) Properties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProperties(s.properties)
}

// Property returns the property with the given id.
func (s *Store) Property(id string) (models.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.propertyByID(id); p != nil {
		return cloneProperty(*p), true
	}
	return models.Property{}, false
}

// Tenants returns a deep copy of all tenants.
func (s *Store) Tenants() []models.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTenants(s.tenants)
}

// Tenant returns the tenant with the given id.
func (s *Store) Tenant(id string) (models.Tenant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t := s.tenantByID(id); t != nil {
		return cloneTenant(*t), true
	}
	return models.Tenant{}, false
}

// Payments returns a deep copy of all payments.
func (s *Store) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePayments(s.payments)
}

// Payment returns the payment with the given id.
func (s *Store) Payment(id string) (models.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.paymentByID(id); p != nil {
		return clonePayment(*p), true
	}
	return models.Payment{}, false
}

// Documents returns a copy of all documents.
func (s *Store) Documents() []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDocuments(s.documents)
}

// Document returns the document with the given id.
func (s *Store) Document(id string) (models.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.documents {
		if s.documents[i].ID == id {
			return s.documents[i], true
		}
	}
	return models.Document{}, false
}

// Stats returns the current dashboard statistics.
func (s *Store) Stats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// UserByEmail returns the user with the given email.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

// CreateUser appends a new user account.
func (s *Store) CreateUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

// newID assigns a fresh unique entity id.
func newID() string {
	return uuid.New().String()
}

// refreshStats recomputes the dashboard statistics. Callers must hold the
// write lock.
func (s *Store) refreshStats() {
	s.stats = RecalculateStats(s.properties, s.payments)
}

func (s *Store) propertyByID(id string) *models.Property {
	for i := range s.properties {
		if s.properties[i].ID == id {
			return &s.properties[i]
		}
	}
	return nil
}

func (s *Store) tenantByID(id string) *models.Tenant {
	for i := range s.tenants {
		if s.tenants[i].ID == id {
			return &s.tenants[i]
		}
	}
	return nil
}

func (s *Store) paymentByID(id string) *models.Payment {
	for i := range s.payments {
		if s.payments[i].ID == id {
			return &s.payments[i]
		}
	}
	return nil
}

func (s *Store) unitByID(unitID string) *models.Unit {
	for i := range s.properties {
		if u := s.properties[i].UnitByID(unitID); u != nil {
			return u
		}
	}
	return nil
}
