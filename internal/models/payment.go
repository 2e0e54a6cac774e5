package models

import (
	"fmt"
	"time"
)

// Payment status constants
const (
	PaymentStatusPaid      = "paid"
	PaymentStatusPending   = "pending"
	PaymentStatusOverdue   = "overdue"
	PaymentStatusUnderpaid = "underpaid"
)

// Payment type constants
const (
	PaymentTypeRent        = "rent"
	PaymentTypeUtility     = "utility"
	PaymentTypeMaintenance = "maintenance"
	PaymentTypeDeposit     = "deposit"
)

// Payment represents money received from a tenant.
// Status and RemainingAmount are fixed at creation time by reconciliation
// against the expected amount; updating the amount re-runs reconciliation.
// Date uses "2006-01-02", Month uses "2006-01".
type Payment struct {
	ID              string   `json:"id"`
	TenantID        string   `json:"tenantId"`
	UnitID          string   `json:"unitId"`
	PropertyID      string   `json:"propertyId"`
	Amount          float64  `json:"amount"`
	Date            string   `json:"date"`
	Type            string   `json:"type"`
	Status          string   `json:"status"`
	Month           string   `json:"month"`
	Notes           string   `json:"notes,omitempty"`
	ReceiptURL      string   `json:"receiptUrl,omitempty"`
	ExpectedAmount  *float64 `json:"expectedAmount,omitempty"`
	RemainingAmount *float64 `json:"remainingAmount,omitempty"`
}

// ValidPaymentStatus reports whether s is one of the known payment statuses
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusOverdue, PaymentStatusUnderpaid:
		return true
	}
	return false
}

// ValidPaymentType reports whether t is one of the known payment types
func ValidPaymentType(t string) bool {
	switch t {
	case PaymentTypeRent, PaymentTypeUtility, PaymentTypeMaintenance, PaymentTypeDeposit:
		return true
	}
	return false
}

// MaySettle returns true if the payment can transition to paid
func (p *Payment) MaySettle() bool {
	switch p.Status {
	case PaymentStatusPending, PaymentStatusOverdue, PaymentStatusUnderpaid:
		return true
	}
	return false
}

// MayMarkOverdue returns true if the payment can transition to overdue
func (p *Payment) MayMarkOverdue() bool {
	return p.Status == PaymentStatusPending
}

// ReceiptNumber returns the human-facing receipt identifier
func (p *Payment) ReceiptNumber() string {
	id := p.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("REC-%s", id)
}

// MonthBefore reports whether the payment's billing month falls strictly
// before the month containing ref. Payments with an unparseable month are
// never considered past due.
func (p *Payment) MonthBefore(ref time.Time) bool {
	m, err := time.Parse("2006-01", p.Month)
	if err != nil {
		return false
	}
	return m.Year() < ref.Year() || (m.Year() == ref.Year() && m.Month() < ref.Month())
}
