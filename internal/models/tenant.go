package models

// Tenant represents a renter occupying a unit for a lease period.
// Lease dates use the ISO "2006-01-02" format.
type Tenant struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	NIDNumber       string     `json:"nidNumber"`
	Photo           string     `json:"photo,omitempty"`
	UnitID          string     `json:"unitId"`
	PropertyID      string     `json:"propertyId"`
	LeaseStart      string     `json:"leaseStart"`
	LeaseEnd        string     `json:"leaseEnd"`
	MonthlyRent     float64    `json:"monthlyRent"`
	SecurityDeposit float64    `json:"securityDeposit"`
	Documents       []Document `json:"documents"`
	PaymentHistory  []Payment  `json:"paymentHistory"`
}
