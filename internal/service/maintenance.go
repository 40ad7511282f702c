package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/guard"
	"github.com/comdominio/dashboard/internal/idempotency"
	"github.com/comdominio/dashboard/internal/repo"
)

// MaintenanceService implements business logic for Maintenance operations.
// Maintenance names are unique per condominium, case-insensitively.
type MaintenanceService struct {
	api  MaintenanceBackend
	subs repo.SubmissionRepo
	log  *slog.Logger
}

// NewMaintenanceService constructs a MaintenanceService.
func NewMaintenanceService(api MaintenanceBackend, subs repo.SubmissionRepo, log *slog.Logger) *MaintenanceService {
	return &MaintenanceService{api: api, subs: subs, log: log}
}

// List returns the maintenances of a condominium, optionally filtered by status.
func (s *MaintenanceService) List(ctx context.Context, sess domain.Session, condominiumID int64, status domain.Status) ([]domain.Maintenance, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("service.MaintenanceService.List: %w: unknown status %q", domain.ErrValidation, status)
	}
	result, err := s.api.ListMaintenances(ctx, sess, condominiumID, status)
	if err != nil {
		return nil, fmt.Errorf("service.MaintenanceService.List: %w", err)
	}
	if result == nil {
		result = []domain.Maintenance{}
	}
	return result, nil
}

// Create validates in, rejects a name already used in the condominium and
// forwards the create. The derived idempotency key is built from the name
// and the deadline (empty when there is none).
func (s *MaintenanceService) Create(ctx context.Context, sess domain.Session, condominiumID int64, in domain.MaintenanceInput) (Created[domain.Maintenance], error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return Created[domain.Maintenance]{}, fmt.Errorf("service.MaintenanceService.Create: %w", err)
	}
	if err := s.checkName(ctx, sess, condominiumID, 0, in.Name); err != nil {
		return Created[domain.Maintenance]{}, fmt.Errorf("service.MaintenanceService.Create: %w", err)
	}

	key := in.IdempotencyKey
	if key == "" {
		key = idempotency.Key(in.Name, in.EndDateString())
	}

	result, receipt, err := s.api.CreateMaintenance(ctx, sess, condominiumID, in, key)
	recordSubmission(ctx, s.log, s.subs, domain.ResourceMaintenance, receipt)
	if err != nil {
		return Created[domain.Maintenance]{}, fmt.Errorf("service.MaintenanceService.Create: %w", err)
	}

	s.log.InfoContext(ctx, "maintenance created",
		"condominium_id", condominiumID,
		"maintenance_id", result.ID,
		"idempotency_key", key,
	)
	return Created[domain.Maintenance]{Record: result, IdempotencyKey: key}, nil
}

// Update replaces a maintenance. The record being edited may keep its own
// name; any other maintenance with the same name is a conflict.
func (s *MaintenanceService) Update(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, in domain.MaintenanceInput) (domain.Maintenance, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return domain.Maintenance{}, fmt.Errorf("service.MaintenanceService.Update: %w", err)
	}
	if err := s.checkName(ctx, sess, condominiumID, maintenanceID, in.Name); err != nil {
		return domain.Maintenance{}, fmt.Errorf("service.MaintenanceService.Update: %w", err)
	}

	result, err := s.api.UpdateMaintenance(ctx, sess, condominiumID, maintenanceID, in)
	if err != nil {
		return domain.Maintenance{}, fmt.Errorf("service.MaintenanceService.Update: %w", err)
	}
	return result, nil
}

// Complete marks a maintenance as done.
func (s *MaintenanceService) Complete(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) (domain.Maintenance, error) {
	result, err := s.api.SetMaintenanceStatus(ctx, sess, condominiumID, maintenanceID, domain.StatusDone)
	if err != nil {
		return domain.Maintenance{}, fmt.Errorf("service.MaintenanceService.Complete: %w", err)
	}
	return result, nil
}

// Delete removes a maintenance.
func (s *MaintenanceService) Delete(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) error {
	if err := s.api.DeleteMaintenance(ctx, sess, condominiumID, maintenanceID); err != nil {
		return fmt.Errorf("service.MaintenanceService.Delete: %w", err)
	}
	return nil
}

// checkName returns domain.ErrConflict when another maintenance of the
// condominium already uses name. exceptID (0 for none) is skipped.
func (s *MaintenanceService) checkName(ctx context.Context, sess domain.Session, condominiumID, exceptID int64, name string) error {
	existing, err := s.api.ListMaintenances(ctx, sess, condominiumID, "")
	if err != nil {
		return err
	}
	others := existing[:0:0]
	for _, m := range existing {
		if m.ID != exceptID {
			others = append(others, m)
		}
	}
	if dup, ok := guard.FindDuplicate(name, others, maintenanceName); ok {
		return fmt.Errorf("%w: a maintenance named %q already exists", domain.ErrConflict, dup.Name)
	}
	return nil
}

func maintenanceName(m domain.Maintenance) string { return m.Name }
