package service

import (
	"context"
	"fmt"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/repo"
)

// SubmissionService exposes the local ledger of forwarded creates.
type SubmissionService struct {
	subs repo.SubmissionRepo
}

// NewSubmissionService constructs a SubmissionService.
func NewSubmissionService(subs repo.SubmissionRepo) *SubmissionService {
	return &SubmissionService{subs: subs}
}

// ListPaged returns one page of submissions and the total count.
func (s *SubmissionService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Submission, int64, error) {
	result, total, err := s.subs.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.SubmissionService.ListPaged: %w", err)
	}
	return result, total, nil
}

// GetByKey returns the ledger row of a resource's idempotency key.
func (s *SubmissionService) GetByKey(ctx context.Context, resource, key string) (domain.Submission, error) {
	if resource != domain.ResourceCondominium && resource != domain.ResourceMaintenance {
		return domain.Submission{}, fmt.Errorf("service.SubmissionService.GetByKey: %w: unknown resource %q", domain.ErrValidation, resource)
	}
	result, err := s.subs.GetByKey(ctx, resource, key)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("service.SubmissionService.GetByKey: %w", err)
	}
	return result, nil
}
