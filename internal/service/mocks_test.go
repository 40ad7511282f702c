package service_test

import (
	"context"
	"log/slog"

	"github.com/comdominio/dashboard/internal/backend"
	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/repo"
	"github.com/comdominio/dashboard/internal/service"
)

// ---- mock backend ----------------------------------------------------------

// mockBackend is a hand-written test double for the upstream client.
// Unset function fields panic when called, so a test only sets what it expects.
type mockBackend struct {
	listCondominiums     func(ctx context.Context, sess domain.Session) ([]domain.Condominium, error)
	getCondominium       func(ctx context.Context, sess domain.Session, id int64) (domain.Condominium, error)
	createCondominium    func(ctx context.Context, sess domain.Session, in domain.NewCondominium, key string) (domain.Condominium, backend.Receipt, error)
	deleteCondominium    func(ctx context.Context, sess domain.Session, id int64) error
	countCondominiums    func(ctx context.Context, sess domain.Session) (int, error)
	listMaintenances     func(ctx context.Context, sess domain.Session, condominiumID int64, status domain.Status) ([]domain.Maintenance, error)
	createMaintenance    func(ctx context.Context, sess domain.Session, condominiumID int64, in domain.MaintenanceInput, key string) (domain.Maintenance, backend.Receipt, error)
	updateMaintenance    func(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, in domain.MaintenanceInput) (domain.Maintenance, error)
	setMaintenanceStatus func(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, status domain.Status) (domain.Maintenance, error)
	deleteMaintenance    func(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) error
	countMaintenances    func(ctx context.Context, sess domain.Session, status domain.Status) (int, error)
	listActivities       func(ctx context.Context, sess domain.Session) ([]domain.Activity, error)
	logActivity          func(ctx context.Context, sess domain.Session, a domain.NewActivity) error
	login                func(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
}

func (m *mockBackend) ListCondominiums(ctx context.Context, sess domain.Session) ([]domain.Condominium, error) {
	return m.listCondominiums(ctx, sess)
}
func (m *mockBackend) GetCondominium(ctx context.Context, sess domain.Session, id int64) (domain.Condominium, error) {
	return m.getCondominium(ctx, sess, id)
}
func (m *mockBackend) CreateCondominium(ctx context.Context, sess domain.Session, in domain.NewCondominium, key string) (domain.Condominium, backend.Receipt, error) {
	return m.createCondominium(ctx, sess, in, key)
}
func (m *mockBackend) DeleteCondominium(ctx context.Context, sess domain.Session, id int64) error {
	return m.deleteCondominium(ctx, sess, id)
}
func (m *mockBackend) CountCondominiums(ctx context.Context, sess domain.Session) (int, error) {
	return m.countCondominiums(ctx, sess)
}
func (m *mockBackend) ListMaintenances(ctx context.Context, sess domain.Session, condominiumID int64, status domain.Status) ([]domain.Maintenance, error) {
	return m.listMaintenances(ctx, sess, condominiumID, status)
}
func (m *mockBackend) CreateMaintenance(ctx context.Context, sess domain.Session, condominiumID int64, in domain.MaintenanceInput, key string) (domain.Maintenance, backend.Receipt, error) {
	return m.createMaintenance(ctx, sess, condominiumID, in, key)
}
func (m *mockBackend) UpdateMaintenance(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, in domain.MaintenanceInput) (domain.Maintenance, error) {
	return m.updateMaintenance(ctx, sess, condominiumID, maintenanceID, in)
}
func (m *mockBackend) SetMaintenanceStatus(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, status domain.Status) (domain.Maintenance, error) {
	return m.setMaintenanceStatus(ctx, sess, condominiumID, maintenanceID, status)
}
func (m *mockBackend) DeleteMaintenance(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) error {
	return m.deleteMaintenance(ctx, sess, condominiumID, maintenanceID)
}
func (m *mockBackend) CountMaintenances(ctx context.Context, sess domain.Session, status domain.Status) (int, error) {
	return m.countMaintenances(ctx, sess, status)
}
func (m *mockBackend) ListActivities(ctx context.Context, sess domain.Session) ([]domain.Activity, error) {
	return m.listActivities(ctx, sess)
}
func (m *mockBackend) LogActivity(ctx context.Context, sess domain.Session, a domain.NewActivity) error {
	return m.logActivity(ctx, sess, a)
}
func (m *mockBackend) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	return m.login(ctx, creds)
}

// compile-time check: mockBackend must satisfy every backend interface.
var (
	_ service.CondominiumBackend = (*mockBackend)(nil)
	_ service.MaintenanceBackend = (*mockBackend)(nil)
	_ service.DashboardBackend   = (*mockBackend)(nil)
	_ service.ReportBackend      = (*mockBackend)(nil)
	_ service.AuthBackend        = (*mockBackend)(nil)
)

// ---- mock ledger -----------------------------------------------------------

// mockSubmissionRepo is a hand-written test double for repo.SubmissionRepo.
// Without a record func it stores every submission in recorded.
type mockSubmissionRepo struct {
	record    func(ctx context.Context, sub domain.Submission) (domain.Submission, error)
	getByKey  func(ctx context.Context, resource, key string) (domain.Submission, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Submission, int64, error)

	recorded []domain.Submission
}

func (m *mockSubmissionRepo) Record(ctx context.Context, sub domain.Submission) (domain.Submission, error) {
	if m.record != nil {
		return m.record(ctx, sub)
	}
	m.recorded = append(m.recorded, sub)
	return sub, nil
}
func (m *mockSubmissionRepo) GetByKey(ctx context.Context, resource, key string) (domain.Submission, error) {
	return m.getByKey(ctx, resource, key)
}
func (m *mockSubmissionRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Submission, int64, error) {
	return m.listPaged(ctx, p)
}

// compile-time check: mockSubmissionRepo must satisfy repo.SubmissionRepo.
var _ repo.SubmissionRepo = (*mockSubmissionRepo)(nil)

// ---- helpers ---------------------------------------------------------------

var testSession = domain.Session{Token: "tok", WorkspaceID: 7}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
