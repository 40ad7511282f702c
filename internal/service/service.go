// Package service contains the business logic of the dashboard gateway.
// Services validate input, apply the duplicate-name guard, derive
// idempotency keys and orchestrate calls to the upstream backend and the
// local submission ledger. No HTTP or SQL lives here: services depend on
// the interfaces below and on repo interfaces, not on implementations.
package service

import (
	"context"
	"log/slog"

	"github.com/comdominio/dashboard/internal/backend"
	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/repo"
)

// CondominiumBackend is the slice of the upstream client CondominiumService uses.
type CondominiumBackend interface {
	ListCondominiums(ctx context.Context, sess domain.Session) ([]domain.Condominium, error)
	GetCondominium(ctx context.Context, sess domain.Session, id int64) (domain.Condominium, error)
	CreateCondominium(ctx context.Context, sess domain.Session, in domain.NewCondominium, key string) (domain.Condominium, backend.Receipt, error)
	DeleteCondominium(ctx context.Context, sess domain.Session, id int64) error
}

// MaintenanceBackend is the slice of the upstream client MaintenanceService uses.
type MaintenanceBackend interface {
	ListMaintenances(ctx context.Context, sess domain.Session, condominiumID int64, status domain.Status) ([]domain.Maintenance, error)
	CreateMaintenance(ctx context.Context, sess domain.Session, condominiumID int64, in domain.MaintenanceInput, key string) (domain.Maintenance, backend.Receipt, error)
	UpdateMaintenance(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, in domain.MaintenanceInput) (domain.Maintenance, error)
	SetMaintenanceStatus(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, status domain.Status) (domain.Maintenance, error)
	DeleteMaintenance(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) error
}

// DashboardBackend is the slice of the upstream client DashboardService uses.
type DashboardBackend interface {
	CountCondominiums(ctx context.Context, sess domain.Session) (int, error)
	CountMaintenances(ctx context.Context, sess domain.Session, status domain.Status) (int, error)
	ListActivities(ctx context.Context, sess domain.Session) ([]domain.Activity, error)
}

// ReportBackend is the slice of the upstream client ReportService uses.
type ReportBackend interface {
	GetCondominium(ctx context.Context, sess domain.Session, id int64) (domain.Condominium, error)
	ListMaintenances(ctx context.Context, sess domain.Session, condominiumID int64, status domain.Status) ([]domain.Maintenance, error)
	LogActivity(ctx context.Context, sess domain.Session, a domain.NewActivity) error
}

// AuthBackend is the slice of the upstream client AuthService uses.
type AuthBackend interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
}

// compile-time check: the upstream client satisfies every interface above.
var (
	_ CondominiumBackend = (*backend.Client)(nil)
	_ MaintenanceBackend = (*backend.Client)(nil)
	_ DashboardBackend   = (*backend.Client)(nil)
	_ ReportBackend      = (*backend.Client)(nil)
	_ AuthBackend        = (*backend.Client)(nil)
)

// Created pairs a newly created record with the idempotency key the create
// request carried, so the caller can echo it back.
type Created[T any] struct {
	Record         T
	IdempotencyKey string
}

// recordSubmission writes a ledger row for a forwarded create. The ledger is
// an audit trail: a failure here is logged and never fails the request.
func recordSubmission(ctx context.Context, log *slog.Logger, subs repo.SubmissionRepo, resource string, r backend.Receipt) {
	_, err := subs.Record(ctx, domain.Submission{
		IdempotencyKey: r.IdempotencyKey,
		Resource:       resource,
		Method:         r.Method,
		Path:           r.Path,
		StatusCode:     r.StatusCode,
	})
	if err != nil {
		log.WarnContext(ctx, "failed to record submission",
			"resource", resource,
			"idempotency_key", r.IdempotencyKey,
			"error", err,
		)
	}
}
