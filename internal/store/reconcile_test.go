package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomidar/jomidar-api/internal/models"
)

func TestReconcile(t *testing.T) {
	tenant := &models.Tenant{MonthlyRent: 15000, SecurityDeposit: 30000}

	tests := []struct {
		name          string
		amount        float64
		paymentType   string
		status        string
		wantStatus    string
		wantExpected  *float64
		wantRemaining *float64
		wantErr       bool
	}{
		{
			name:   "full rent keeps requested status",
			amount: 15000, paymentType: models.PaymentTypeRent, status: models.PaymentStatusPaid,
			wantStatus: models.PaymentStatusPaid, wantExpected: f(15000),
		},
		{
			name:   "overpaid rent keeps requested status",
			amount: 16000, paymentType: models.PaymentTypeRent, status: models.PaymentStatusPaid,
			wantStatus: models.PaymentStatusPaid, wantExpected: f(15000),
		},
		{
			name:   "short rent becomes underpaid regardless of request",
			amount: 12000, paymentType: models.PaymentTypeRent, status: models.PaymentStatusPaid,
			wantStatus: models.PaymentStatusUnderpaid, wantExpected: f(15000), wantRemaining: f(3000),
		},
		{
			name:   "short deposit becomes underpaid",
			amount: 20000, paymentType: models.PaymentTypeDeposit, status: models.PaymentStatusPending,
			wantStatus: models.PaymentStatusUnderpaid, wantExpected: f(30000), wantRemaining: f(10000),
		},
		{
			name:   "utility has no expectation",
			amount: 1, paymentType: models.PaymentTypeUtility, status: models.PaymentStatusPending,
			wantStatus: models.PaymentStatusPending,
		},
		{
			name:   "maintenance has no expectation",
			amount: 500, paymentType: models.PaymentTypeMaintenance, status: models.PaymentStatusPaid,
			wantStatus: models.PaymentStatusPaid,
		},
		{
			name:   "zero amount rejected",
			amount: 0, paymentType: models.PaymentTypeRent, status: models.PaymentStatusPaid,
			wantErr: true,
		},
		{
			name:   "negative amount rejected",
			amount: -50, paymentType: models.PaymentTypeUtility, status: models.PaymentStatusPaid,
			wantErr: true,
		},
		{
			name:   "underpaid request without expectation rejected",
			amount: 100, paymentType: models.PaymentTypeUtility, status: models.PaymentStatusUnderpaid,
			wantErr: true,
		},
		{
			name:   "underpaid request with met expectation rejected",
			amount: 15000, paymentType: models.PaymentTypeRent, status: models.PaymentStatusUnderpaid,
			wantErr: true,
		},
		{
			name:   "unknown status rejected",
			amount: 100, paymentType: models.PaymentTypeUtility, status: "bogus",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Reconcile(tt.amount, tt.paymentType, tt.status, tenant)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Status)
			assert.Equal(t, tt.wantExpected, rec.ExpectedAmount)
			assert.Equal(t, tt.wantRemaining, rec.RemainingAmount)
		})
	}
}

func TestReconcileErrorTypes(t *testing.T) {
	tenant := &models.Tenant{MonthlyRent: 15000}

	_, err := Reconcile(-1, models.PaymentTypeRent, models.PaymentStatusPaid, tenant)
	var amt *InvalidAmountError
	require.ErrorAs(t, err, &amt)
	assert.Equal(t, -1.0, amt.Amount)

	_, err = Reconcile(100, models.PaymentTypeUtility, models.PaymentStatusUnderpaid, tenant)
	var st *InvalidStatusError
	require.ErrorAs(t, err, &st)
	assert.Equal(t, models.PaymentStatusUnderpaid, st.Status)
}

func f(v float64) *float64 { return &v }
