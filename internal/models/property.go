package models

// Unit status constants
const (
	UnitStatusVacant   = "vacant"
	UnitStatusOccupied = "occupied"
)

// Property represents a building with rentable units.
// TotalUnits, OccupiedUnits and MonthlyRevenue are derived caches kept in
// sync with the unit list after every mutation; the statistics engine never
// trusts them as source of truth and always recomputes from live unit state.
type Property struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	TotalUnits     int     `json:"totalUnits"`
	OccupiedUnits  int     `json:"occupiedUnits"`
	Image          string  `json:"image,omitempty"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	Units          []Unit  `json:"units"`
}

// Unit is a single rentable space within a property.
// TenantID is set if and only if Status is occupied.
type Unit struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"propertyId"`
	UnitNumber string  `json:"unitNumber"`
	Floor      string  `json:"floor"`
	Size       string  `json:"size"`
	Bedrooms   int     `json:"bedrooms"`
	Bathrooms  int     `json:"bathrooms"`
	Rent       float64 `json:"rent"`
	Status     string  `json:"status"`
	TenantID   string  `json:"tenantId,omitempty"`
}

// IsOccupied returns true if the unit currently has a tenant
func (u *Unit) IsOccupied() bool {
	return u.Status == UnitStatusOccupied
}

// UnitByID returns the unit with the given id, or nil
func (p *Property) UnitByID(unitID string) *Unit {
	for i := range p.Units {
		if p.Units[i].ID == unitID {
			return &p.Units[i]
		}
	}
	return nil
}
