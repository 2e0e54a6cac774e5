package store

import "fmt"

// NotFoundError reports a reference to an entity id that does not exist.
// Raised from add/attach operations; deletes of unknown ids are no-ops.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// DuplicateUnitError reports a unit number collision within a property.
// Unit numbers are compared case-insensitively.
type DuplicateUnitError struct {
	PropertyID string
	UnitNumber string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("unit number %q already exists in property %q", e.UnitNumber, e.PropertyID)
}

// UnitNotVacantError reports an attempt to assign a tenant to a unit that
// already has one.
type UnitNotVacantError struct {
	UnitID     string
	OccupantID string
}

func (e *UnitNotVacantError) Error() string {
	return fmt.Sprintf("unit %q is not vacant (occupied by tenant %q)", e.UnitID, e.OccupantID)
}

// InvalidAmountError reports a non-positive payment amount.
type InvalidAmountError struct {
	Amount float64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("payment amount must be positive, got %.2f", e.Amount)
}

// InvalidStatusError reports a payment status that contradicts the
// reconciliation result, such as underpaid with no known expected amount.
type InvalidStatusError struct {
	Status string
	Reason string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid payment status %q: %s", e.Status, e.Reason)
}

// InvalidTransitionError reports a payment status transition the state
// machine does not allow.
type InvalidTransitionError struct {
	From  string
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a payment in status %q", e.Event, e.From)
}
