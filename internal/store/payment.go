package store

import (
	"context"
	"time"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/statemachine"
)

// PaymentInput is the caller-supplied part of a new payment. Status is the
// caller's selection; reconciliation may override it to underpaid or reject
// the combination outright.
type PaymentInput struct {
	TenantID   string  `json:"tenantId"`
	UnitID     string  `json:"unitId"`
	PropertyID string  `json:"propertyId"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Month      string  `json:"month"`
	Notes      string  `json:"notes"`
	ReceiptURL string  `json:"receiptUrl"`
}

// AddPayment records a payment after reconciling the amount against the
// tenant's expectation for the payment type. The computed status and
// remaining balance are fixed on the record.
func (s *Store) AddPayment(in PaymentInput) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenant := s.tenantByID(in.TenantID)
	if tenant == nil {
		return models.Payment{}, &NotFoundError{Entity: "tenant", ID: in.TenantID}
	}

	rec, err := Reconcile(in.Amount, in.Type, in.Status, tenant)
	if err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		ID:              newID(),
		TenantID:        in.TenantID,
		UnitID:          in.UnitID,
		PropertyID:      in.PropertyID,
		Amount:          in.Amount,
		Date:            in.Date,
		Type:            in.Type,
		Status:          rec.Status,
		Month:           in.Month,
		Notes:           in.Notes,
		ReceiptURL:      in.ReceiptURL,
		ExpectedAmount:  rec.ExpectedAmount,
		RemainingAmount: rec.RemainingAmount,
	}
	s.payments = append(s.payments, payment)
	s.refreshStats()
	return clonePayment(payment), nil
}

// UpdatePayment replaces a payment by id, re-running reconciliation against
// the current tenant expectation rather than trusting the stored status.
func (s *Store) UpdatePayment(p models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.paymentByID(p.ID)
	if existing == nil {
		return &NotFoundError{Entity: "payment", ID: p.ID}
	}
	tenant := s.tenantByID(p.TenantID)
	if tenant == nil {
		return &NotFoundError{Entity: "tenant", ID: p.TenantID}
	}

	rec, err := Reconcile(p.Amount, p.Type, p.Status, tenant)
	if err != nil {
		return err
	}

	p.Status = rec.Status
	p.ExpectedAmount = rec.ExpectedAmount
	p.RemainingAmount = rec.RemainingAmount
	*existing = clonePayment(p)
	s.refreshStats()
	return nil
}

// DeletePayment removes a payment by id. Deleting an unknown id is a no-op.
func (s *Store) DeletePayment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paymentByID(id) == nil {
		return
	}
	s.payments = filterPayments(s.payments, func(p *models.Payment) bool { return p.ID != id })
	s.refreshStats()
}

// SettlePayment transitions a pending, overdue or underpaid payment to paid
// and clears its remaining balance. The transition is guarded by the
// payment state machine.
func (s *Store) SettlePayment(ctx context.Context, id string) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment := s.paymentByID(id)
	if payment == nil {
		return models.Payment{}, &NotFoundError{Entity: "payment", ID: id}
	}
	if !payment.MaySettle() {
		return models.Payment{}, &InvalidTransitionError{From: payment.Status, Event: "settle"}
	}

	fsm := statemachine.NewPaymentFSM(payment)
	if err := fsm.Settle(ctx); err != nil {
		return models.Payment{}, err
	}
	payment.RemainingAmount = nil
	s.refreshStats()
	return clonePayment(*payment), nil
}

// MarkPaymentOverdue transitions a pending payment to overdue.
func (s *Store) MarkPaymentOverdue(ctx context.Context, id string) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment := s.paymentByID(id)
	if payment == nil {
		return models.Payment{}, &NotFoundError{Entity: "payment", ID: id}
	}
	if !payment.MayMarkOverdue() {
		return models.Payment{}, &InvalidTransitionError{From: payment.Status, Event: "mark overdue"}
	}

	fsm := statemachine.NewPaymentFSM(payment)
	if err := fsm.MarkOverdue(ctx); err != nil {
		return models.Payment{}, err
	}
	s.refreshStats()
	return clonePayment(*payment), nil
}

// SweepOverdue marks every pending payment whose billing month has passed
// as overdue and returns how many were transitioned.
func (s *Store) SweepOverdue(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for i := range s.payments {
		p := &s.payments[i]
		if !p.MayMarkOverdue() || !p.MonthBefore(now) {
			continue
		}
		fsm := statemachine.NewPaymentFSM(p)
		if err := fsm.MarkOverdue(ctx); err != nil {
			return swept, err
		}
		swept++
	}
	if swept > 0 {
		s.refreshStats()
	}
	return swept, nil
}
