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

// CondominiumService implements business logic for Condominium operations.
type CondominiumService struct {
	api  CondominiumBackend
	subs repo.SubmissionRepo
	log  *slog.Logger
}

// NewCondominiumService constructs a CondominiumService.
func NewCondominiumService(api CondominiumBackend, subs repo.SubmissionRepo, log *slog.Logger) *CondominiumService {
	return &CondominiumService{api: api, subs: subs, log: log}
}

// List returns every condominium in the session's workspace.
func (s *CondominiumService) List(ctx context.Context, sess domain.Session) ([]domain.Condominium, error) {
	result, err := s.api.ListCondominiums(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("service.CondominiumService.List: %w", err)
	}
	if result == nil {
		result = []domain.Condominium{}
	}
	return result, nil
}

// Get returns a single condominium.
func (s *CondominiumService) Get(ctx context.Context, sess domain.Session, id int64) (domain.Condominium, error) {
	result, err := s.api.GetCondominium(ctx, sess, id)
	if err != nil {
		return domain.Condominium{}, fmt.Errorf("service.CondominiumService.Get: %w", err)
	}
	return result, nil
}

// Create validates in, rejects a name already used in the workspace and
// forwards the create with an idempotency key. Without a caller-supplied
// key, the key is derived from the name and CNPJ so that a repeated
// submission of the same form reaches the backend with the same key.
func (s *CondominiumService) Create(ctx context.Context, sess domain.Session, in domain.NewCondominium) (Created[domain.Condominium], error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return Created[domain.Condominium]{}, fmt.Errorf("service.CondominiumService.Create: %w", err)
	}

	existing, err := s.api.ListCondominiums(ctx, sess)
	if err != nil {
		return Created[domain.Condominium]{}, fmt.Errorf("service.CondominiumService.Create: %w", err)
	}
	if dup, ok := guard.FindDuplicate(in.Name, existing, condominiumName); ok {
		return Created[domain.Condominium]{}, fmt.Errorf("service.CondominiumService.Create: %w: a condominium named %q already exists",
			domain.ErrConflict, dup.Name)
	}

	key := in.IdempotencyKey
	if key == "" {
		key = idempotency.Key(in.Name, in.CNPJ)
	}

	result, receipt, err := s.api.CreateCondominium(ctx, sess, in, key)
	recordSubmission(ctx, s.log, s.subs, domain.ResourceCondominium, receipt)
	if err != nil {
		return Created[domain.Condominium]{}, fmt.Errorf("service.CondominiumService.Create: %w", err)
	}

	s.log.InfoContext(ctx, "condominium created",
		"condominium_id", result.ID,
		"workspace_id", sess.WorkspaceID,
		"idempotency_key", key,
	)
	return Created[domain.Condominium]{Record: result, IdempotencyKey: key}, nil
}

// Delete removes a condominium.
func (s *CondominiumService) Delete(ctx context.Context, sess domain.Session, id int64) error {
	if err := s.api.DeleteCondominium(ctx, sess, id); err != nil {
		return fmt.Errorf("service.CondominiumService.Delete: %w", err)
	}
	return nil
}

func condominiumName(c domain.Condominium) string { return c.Name }
