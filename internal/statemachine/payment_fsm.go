package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/jomidar/jomidar-api/internal/models"
)

// PaymentFSM wraps a payment with its status state machine. Reconciliation
// decides the initial status at creation time; the FSM governs manual
// transitions afterwards.
type PaymentFSM struct {
	payment *models.Payment
	fsm     *fsm.FSM
}

// NewPaymentFSM creates a new payment state machine
func NewPaymentFSM(payment *models.Payment) *PaymentFSM {
	pfsm := &PaymentFSM{
		payment: payment,
	}

	pfsm.fsm = fsm.NewFSM(
		payment.Status,
		fsm.Events{
			// pending/overdue/underpaid → paid
			{Name: "settle", Src: []string{
				models.PaymentStatusPending,
				models.PaymentStatusOverdue,
				models.PaymentStatusUnderpaid,
			}, Dst: models.PaymentStatusPaid},

			// pending → overdue
			{Name: "mark_overdue", Src: []string{models.PaymentStatusPending}, Dst: models.PaymentStatusOverdue},
		},
		fsm.Callbacks{},
	)

	return pfsm
}

// Settle transitions the payment to paid
func (p *PaymentFSM) Settle(ctx context.Context) error {
	if !p.payment.MaySettle() {
		return fmt.Errorf("payment cannot be settled in current status: %s", p.payment.Status)
	}

	if err := p.fsm.Event(ctx, "settle"); err != nil {
		return fmt.Errorf("failed to settle payment: %w", err)
	}

	p.payment.Status = p.fsm.Current()
	return nil
}

// MarkOverdue transitions the payment to overdue
func (p *PaymentFSM) MarkOverdue(ctx context.Context) error {
	if !p.payment.MayMarkOverdue() {
		return fmt.Errorf("payment cannot be marked overdue in current status: %s", p.payment.Status)
	}

	if err := p.fsm.Event(ctx, "mark_overdue"); err != nil {
		return fmt.Errorf("failed to mark payment overdue: %w", err)
	}

	p.payment.Status = p.fsm.Current()
	return nil
}

// Current returns the current status
func (p *PaymentFSM) Current() string {
	return p.fsm.Current()
}

// Can checks if a transition is possible
func (p *PaymentFSM) Can(event string) bool {
	return p.fsm.Can(event)
}
