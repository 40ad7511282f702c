package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/comdominio/dashboard/internal/domain"
)

// DashboardService serves the home page figures and the activity feed.
type DashboardService struct {
	api DashboardBackend
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(api DashboardBackend) *DashboardService {
	return &DashboardService{api: api}
}

// Summary fetches the three counters concurrently. Any failure fails the
// whole summary.
func (s *DashboardService) Summary(ctx context.Context, sess domain.Session) (domain.DashboardSummary, error) {
	var out domain.DashboardSummary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.api.CountCondominiums(ctx, sess)
		out.Condominiums = n
		return err
	})
	g.Go(func() error {
		n, err := s.api.CountMaintenances(ctx, sess, domain.StatusPending)
		out.PendingMaintenances = n
		return err
	})
	g.Go(func() error {
		n, err := s.api.CountMaintenances(ctx, sess, domain.StatusOverdue)
		out.OverdueMaintenances = n
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("service.DashboardService.Summary: %w", err)
	}
	return out, nil
}

// Activities returns the recent activity feed of the workspace.
func (s *DashboardService) Activities(ctx context.Context, sess domain.Session) ([]domain.Activity, error) {
	result, err := s.api.ListActivities(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("service.DashboardService.Activities: %w", err)
	}
	if result == nil {
		result = []domain.Activity{}
	}
	return result, nil
}
