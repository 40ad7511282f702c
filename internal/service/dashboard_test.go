package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/service"
)

func TestDashboardService_Summary_OK(t *testing.T) {
	svc := service.NewDashboardService(&mockBackend{
		countCondominiums: func(context.Context, domain.Session) (int, error) { return 4, nil },
		countMaintenances: func(_ context.Context, _ domain.Session, status domain.Status) (int, error) {
			switch status {
			case domain.StatusPending:
				return 11, nil
			case domain.StatusOverdue:
				return 2, nil
			}
			return 0, errors.New("unexpected status " + string(status))
		},
	})

	got, err := svc.Summary(context.Background(), testSession)

	require.NoError(t, err)
	assert.Equal(t, domain.DashboardSummary{Condominiums: 4, PendingMaintenances: 11, OverdueMaintenances: 2}, got)
}

func TestDashboardService_Summary_AnyFailureFails(t *testing.T) {
	svc := service.NewDashboardService(&mockBackend{
		countCondominiums: func(context.Context, domain.Session) (int, error) { return 4, nil },
		countMaintenances: func(_ context.Context, _ domain.Session, status domain.Status) (int, error) {
			if status == domain.StatusOverdue {
				return 0, domain.ErrUnauthorized
			}
			return 1, nil
		},
	})

	got, err := svc.Summary(context.Background(), testSession)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, domain.DashboardSummary{}, got)
}

func TestDashboardService_Activities_NilBecomesEmpty(t *testing.T) {
	svc := service.NewDashboardService(&mockBackend{
		listActivities: func(context.Context, domain.Session) ([]domain.Activity, error) { return nil, nil },
	})

	got, err := svc.Activities(context.Background(), testSession)

	require.NoError(t, err)
	assert.NotNil(t, got)
}
