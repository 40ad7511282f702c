package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/handler"
	"github.com/comdominio/dashboard/internal/service"
)

// Hand-written test doubles for the handler servicer interfaces.
// Set only the method fields your test needs.

type mockAuthServicer struct {
	login func(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
}

func (m *mockAuthServicer) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	return m.login(ctx, creds)
}

type mockCondominiumServicer struct {
	list   func(ctx context.Context, sess domain.Session) ([]domain.Condominium, error)
	get    func(ctx context.Context, sess domain.Session, id int64) (domain.Condominium, error)
	create func(ctx context.Context, sess domain.Session, in domain.NewCondominium) (service.Created[domain.Condominium], error)
	delete func(ctx context.Context, sess domain.Session, id int64) error
}

func (m *mockCondominiumServicer) List(ctx context.Context, sess domain.Session) ([]domain.Condominium, error) {
	return m.list(ctx, sess)
}
func (m *mockCondominiumServicer) Get(ctx context.Context, sess domain.Session, id int64) (domain.Condominium, error) {
	return m.get(ctx, sess, id)
}
func (m *mockCondominiumServicer) Create(ctx context.Context, sess domain.Session, in domain.NewCondominium) (service.Created[domain.Condominium], error) {
	return m.create(ctx, sess, in)
}
func (m *mockCondominiumServicer) Delete(ctx context.Context, sess domain.Session, id int64) error {
	return m.delete(ctx, sess, id)
}

type mockMaintenanceServicer struct {
	list     func(ctx context.Context, sess domain.Session, condominiumID int64, status domain.Status) ([]domain.Maintenance, error)
	create   func(ctx context.Context, sess domain.Session, condominiumID int64, in domain.MaintenanceInput) (service.Created[domain.Maintenance], error)
	update   func(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, in domain.MaintenanceInput) (domain.Maintenance, error)
	complete func(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) (domain.Maintenance, error)
	delete   func(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) error
}

func (m *mockMaintenanceServicer) List(ctx context.Context, sess domain.Session, condominiumID int64, status domain.Status) ([]domain.Maintenance, error) {
	return m.list(ctx, sess, condominiumID, status)
}
func (m *mockMaintenanceServicer) Create(ctx context.Context, sess domain.Session, condominiumID int64, in domain.MaintenanceInput) (service.Created[domain.Maintenance], error) {
	return m.create(ctx, sess, condominiumID, in)
}
func (m *mockMaintenanceServicer) Update(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, in domain.MaintenanceInput) (domain.Maintenance, error) {
	return m.update(ctx, sess, condominiumID, maintenanceID, in)
}
func (m *mockMaintenanceServicer) Complete(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) (domain.Maintenance, error) {
	return m.complete(ctx, sess, condominiumID, maintenanceID)
}
func (m *mockMaintenanceServicer) Delete(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) error {
	return m.delete(ctx, sess, condominiumID, maintenanceID)
}

type mockDashboardServicer struct {
	summary    func(ctx context.Context, sess domain.Session) (domain.DashboardSummary, error)
	activities func(ctx context.Context, sess domain.Session) ([]domain.Activity, error)
}

func (m *mockDashboardServicer) Summary(ctx context.Context, sess domain.Session) (domain.DashboardSummary, error) {
	return m.summary(ctx, sess)
}
func (m *mockDashboardServicer) Activities(ctx context.Context, sess domain.Session) ([]domain.Activity, error) {
	return m.activities(ctx, sess)
}

type mockReportServicer struct {
	monthly func(ctx context.Context, sess domain.Session, req domain.ReportRequest) (service.RenderedReport, error)
}

func (m *mockReportServicer) Monthly(ctx context.Context, sess domain.Session, req domain.ReportRequest) (service.RenderedReport, error) {
	return m.monthly(ctx, sess, req)
}

type mockSubmissionServicer struct {
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Submission, int64, error)
	getByKey  func(ctx context.Context, resource, key string) (domain.Submission, error)
}

func (m *mockSubmissionServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Submission, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockSubmissionServicer) GetByKey(ctx context.Context, resource, key string) (domain.Submission, error) {
	return m.getByKey(ctx, resource, key)
}

// compile-time checks: every mock must satisfy its handler interface.
var (
	_ handler.AuthServicer        = (*mockAuthServicer)(nil)
	_ handler.CondominiumServicer = (*mockCondominiumServicer)(nil)
	_ handler.MaintenanceServicer = (*mockMaintenanceServicer)(nil)
	_ handler.DashboardServicer   = (*mockDashboardServicer)(nil)
	_ handler.ReportServicer      = (*mockReportServicer)(nil)
	_ handler.SubmissionServicer  = (*mockSubmissionServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

var testSession = domain.Session{Token: "tok-123", WorkspaceID: 7}

// newHTTPHandler wires a Server with the given services.
func newHTTPHandler(svc handler.Services) http.Handler {
	return handler.NewServer(svc, slog.New(slog.DiscardHandler)).Routes()
}

// jsonBody encodes v as a JSON request body.
func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// newRequest builds a request carrying testSession's credentials.
func newRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+testSession.Token)
	req.Header.Set("X-Workspace-Id", "7")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// serve runs req through h and returns the recorder.
func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeError decodes an ErrorResponse body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var errResp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	return errResp
}
