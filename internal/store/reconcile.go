package store

import "github.com/jomidar/jomidar-api/internal/models"

// Reconciliation is the outcome of comparing a payment amount against the
// tenant's expected amount for that payment type.
type Reconciliation struct {
	Status          string
	ExpectedAmount  *float64
	RemainingAmount *float64
}

// Reconcile classifies a candidate payment. Rent payments are expected to
// match the tenant's monthly rent and deposits the security deposit;
// utility and maintenance payments carry no fixed expectation. When the
// amount falls short of a known expectation the payment becomes underpaid
// with the shortfall recorded as the remaining balance; otherwise the
// caller-selected status stands.
//
// Runs once at payment creation time; the result is stored on the record.
// Updating a payment's amount must re-run reconciliation, not just
// overwrite the amount.
func Reconcile(amount float64, paymentType, requestedStatus string, tenant *models.Tenant) (Reconciliation, error) {
	if amount <= 0 {
		return Reconciliation{}, &InvalidAmountError{Amount: amount}
	}

	var expected *float64
	switch paymentType {
	case models.PaymentTypeRent:
		v := tenant.MonthlyRent
		expected = &v
	case models.PaymentTypeDeposit:
		v := tenant.SecurityDeposit
		expected = &v
	}

	if expected != nil && amount < *expected {
		remaining := *expected - amount
		return Reconciliation{
			Status:          models.PaymentStatusUnderpaid,
			ExpectedAmount:  expected,
			RemainingAmount: &remaining,
		}, nil
	}

	// Underpaid is only meaningful against a known, unmet expectation.
	if requestedStatus == models.PaymentStatusUnderpaid {
		if expected == nil {
			return Reconciliation{}, &InvalidStatusError{
				Status: requestedStatus,
				Reason: "no expected amount for this payment type",
			}
		}
		return Reconciliation{}, &InvalidStatusError{
			Status: requestedStatus,
			Reason: "amount meets or exceeds the expected amount",
		}
	}

	if !models.ValidPaymentStatus(requestedStatus) {
		return Reconciliation{}, &InvalidStatusError{
			Status: requestedStatus,
			Reason: "unknown status",
		}
	}

	return Reconciliation{Status: requestedStatus, ExpectedAmount: expected}, nil
}
