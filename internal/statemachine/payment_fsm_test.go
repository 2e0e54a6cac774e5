package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomidar/jomidar-api/internal/models"
)

func TestSettleFromEachStatus(t *testing.T) {
	tests := []struct {
		from    string
		wantErr bool
	}{
		{models.PaymentStatusPending, false},
		{models.PaymentStatusOverdue, false},
		{models.PaymentStatusUnderpaid, false},
		{models.PaymentStatusPaid, true},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			payment := &models.Payment{ID: "p1", Status: tt.from}
			fsm := NewPaymentFSM(payment)

			err := fsm.Settle(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.from, payment.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.PaymentStatusPaid, payment.Status)
			assert.Equal(t, models.PaymentStatusPaid, fsm.Current())
		})
	}
}

func TestMarkOverdueFromEachStatus(t *testing.T) {
	tests := []struct {
		from    string
		wantErr bool
	}{
		{models.PaymentStatusPending, false},
		{models.PaymentStatusOverdue, true},
		{models.PaymentStatusUnderpaid, true},
		{models.PaymentStatusPaid, true},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			payment := &models.Payment{ID: "p1", Status: tt.from}
			fsm := NewPaymentFSM(payment)

			err := fsm.MarkOverdue(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.from, payment.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.PaymentStatusOverdue, payment.Status)
		})
	}
}

func TestCan(t *testing.T) {
	pending := NewPaymentFSM(&models.Payment{Status: models.PaymentStatusPending})
	assert.True(t, pending.Can("settle"))
	assert.True(t, pending.Can("mark_overdue"))

	paid := NewPaymentFSM(&models.Payment{Status: models.PaymentStatusPaid})
	assert.False(t, paid.Can("settle"))
	assert.False(t, paid.Can("mark_overdue"))
}

func TestOverdueThenSettle(t *testing.T) {
	payment := &models.Payment{Status: models.PaymentStatusPending}

	require.NoError(t, NewPaymentFSM(payment).MarkOverdue(context.Background()))
	require.Equal(t, models.PaymentStatusOverdue, payment.Status)

	require.NoError(t, NewPaymentFSM(payment).Settle(context.Background()))
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
}
