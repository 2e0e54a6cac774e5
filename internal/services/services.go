package services

import (
	"gorm.io/gorm"

	"github.com/jomidar/jomidar-api/internal/config"
	"github.com/jomidar/jomidar-api/internal/jobs"
	"github.com/jomidar/jomidar-api/internal/persistence"
	"github.com/jomidar/jomidar-api/internal/storage"
	"github.com/jomidar/jomidar-api/internal/store"
)

// Services holds all service instances
type Services struct {
	Auth      *AuthService
	Property  *PropertyService
	Tenant    *TenantService
	Payment   *PaymentService
	Document  *DocumentService
	Dashboard *DashboardService
	Report    *ReportService
	Export    *ExportService
	Audit     *AuditService
	Job       *JobService
	Flusher   *SnapshotFlusher
}

// NewServices creates all service instances
func NewServices(st *store.Store, snapshots *persistence.SnapshotStore, worker *jobs.Worker, fileStorage *storage.LocalStorage, cfg *config.Config, db *gorm.DB) *Services {
	flusher := NewSnapshotFlusher(st, snapshots, worker)
	auditSvc := NewAuditService(db)
	dashboardSvc := NewDashboardService(st)

	return &Services{
		Auth:      NewAuthService(st, flusher, cfg),
		Property:  NewPropertyService(st, auditSvc, flusher),
		Tenant:    NewTenantService(st, fileStorage, auditSvc, flusher),
		Payment:   NewPaymentService(st, auditSvc, flusher),
		Document:  NewDocumentService(st, fileStorage, auditSvc, flusher),
		Dashboard: dashboardSvc,
		Report:    NewReportService(st),
		Export:    NewExportService(dashboardSvc),
		Audit:     auditSvc,
		Job:       NewJobService(worker),
		Flusher:   flusher,
	}
}
