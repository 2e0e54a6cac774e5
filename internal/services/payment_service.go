package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/store"
	"github.com/jomidar/jomidar-api/pkg/logger"
)

// PaymentService exposes payment recording, reconciliation and status
// transitions.
type PaymentService struct {
	store   *store.Store
	audit   *AuditService
	flusher *SnapshotFlusher
}

func NewPaymentService(st *store.Store, audit *AuditService, flusher *SnapshotFlusher) *PaymentService {
	return &PaymentService{store: st, audit: audit, flusher: flusher}
}

// List returns all payments, optionally filtered by tenant and status
func (s *PaymentService) List(ctx context.Context, tenantID, status string) []models.Payment {
	payments := s.store.Payments()
	if tenantID == "" && status == "" {
		return payments
	}
	filtered := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if tenantID != "" && p.TenantID != tenantID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Get returns a payment by id
func (s *PaymentService) Get(ctx context.Context, id string) (models.Payment, error) {
	p, ok := s.store.Payment(id)
	if !ok {
		return models.Payment{}, &store.NotFoundError{Entity: "payment", ID: id}
	}
	return p, nil
}

// Create records a payment; reconciliation fixes its status
func (s *PaymentService) Create(ctx context.Context, in store.PaymentInput) (models.Payment, error) {
	p, err := s.store.AddPayment(in)
	if err != nil {
		return models.Payment{}, err
	}
	s.logAudit(ctx, "create", "payment", p.ID, fmt.Sprintf("recorded %s payment of %.2f as %s", p.Type, p.Amount, p.Status))
	s.flusher.FlushAsync()
	return p, nil
}

// Update replaces a payment, re-running reconciliation
func (s *PaymentService) Update(ctx context.Context, p models.Payment) (models.Payment, error) {
	if err := s.store.UpdatePayment(p); err != nil {
		return models.Payment{}, err
	}
	updated, _ := s.store.Payment(p.ID)
	s.logAudit(ctx, "update", "payment", p.ID, fmt.Sprintf("updated payment to %.2f (%s)", updated.Amount, updated.Status))
	s.flusher.FlushAsync()
	return updated, nil
}

// Delete removes a payment
func (s *PaymentService) Delete(ctx context.Context, id string) {
	s.store.DeletePayment(id)
	s.logAudit(ctx, "delete", "payment", id, "deleted payment")
	s.flusher.FlushAsync()
}

// Settle transitions a payment to paid
func (s *PaymentService) Settle(ctx context.Context, id string) (models.Payment, error) {
	p, err := s.store.SettlePayment(ctx, id)
	if err != nil {
		return models.Payment{}, err
	}
	s.logAudit(ctx, "settle", "payment", id, fmt.Sprintf("settled payment of %.2f", p.Amount))
	s.flusher.FlushAsync()
	return p, nil
}

// MarkOverdue transitions a pending payment to overdue
func (s *PaymentService) MarkOverdue(ctx context.Context, id string) (models.Payment, error) {
	p, err := s.store.MarkPaymentOverdue(ctx, id)
	if err != nil {
		return models.Payment{}, err
	}
	s.logAudit(ctx, "mark_overdue", "payment", id, "marked payment overdue")
	s.flusher.FlushAsync()
	return p, nil
}

// PaymentStats summarizes payments by status and money collected versus
// still outstanding.
type PaymentStats struct {
	Total             int     `json:"total"`
	Paid              int     `json:"paid"`
	Pending           int     `json:"pending"`
	Overdue           int     `json:"overdue"`
	Underpaid         int     `json:"underpaid"`
	AmountCollected   float64 `json:"amountCollected"`
	AmountOutstanding float64 `json:"amountOutstanding"`
}

// Stats aggregates the current payment set
func (s *PaymentService) Stats(ctx context.Context) PaymentStats {
	stats := PaymentStats{}
	for _, p := range s.store.Payments() {
		stats.Total++
		switch p.Status {
		case models.PaymentStatusPaid:
			stats.Paid++
			stats.AmountCollected += p.Amount
		case models.PaymentStatusPending:
			stats.Pending++
			stats.AmountOutstanding += p.Amount
		case models.PaymentStatusOverdue:
			stats.Overdue++
			stats.AmountOutstanding += p.Amount
		case models.PaymentStatusUnderpaid:
			stats.Underpaid++
			stats.AmountCollected += p.Amount
			if p.RemainingAmount != nil {
				stats.AmountOutstanding += *p.RemainingAmount
			}
		}
	}
	return stats
}

// SweepOverdue marks every pending payment with a past billing month as
// overdue. Runs on a schedule.
func (s *PaymentService) SweepOverdue(ctx context.Context) (int, error) {
	swept, err := s.store.SweepOverdue(ctx, time.Now())
	if err != nil {
		return swept, err
	}
	if swept > 0 {
		logger.Info("overdue sweep transitioned payments", "count", swept)
		s.logAudit(ctx, "sweep_overdue", "payment", "", fmt.Sprintf("marked %d payments overdue", swept))
		s.flusher.FlushAsync()
	}
	return swept, nil
}

func (s *PaymentService) logAudit(ctx context.Context, action, entity, entityID, details string) {
	if err := s.audit.Log(ctx, actorFrom(ctx), action, entity, entityID, details); err != nil {
		logger.Error("failed to write audit entry", "error", err)
	}
}
