// Package handler implements the HTTP API the dashboard front end talks to.
// All handlers are methods on Server. Methods are split into domain-specific
// files (condominium.go, maintenance.go, etc.) but share the same Server
// struct so they can access its dependencies.
//
// Routes under /api except /api/login require a session: a bearer token in
// Authorization and the workspace in X-Workspace-Id. The session is parsed
// once per request and handed to the services explicitly.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/service"
)

// AuthServicer defines the login operation the auth handler depends on.
// Defining the interfaces here (in the consumer package) lets handler tests
// inject a mock without an upstream backend or a database.
type AuthServicer interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
}

// CondominiumServicer defines the condominium operations.
type CondominiumServicer interface {
	List(ctx context.Context, sess domain.Session) ([]domain.Condominium, error)
	Get(ctx context.Context, sess domain.Session, id int64) (domain.Condominium, error)
	Create(ctx context.Context, sess domain.Session, in domain.NewCondominium) (service.Created[domain.Condominium], error)
	Delete(ctx context.Context, sess domain.Session, id int64) error
}

// MaintenanceServicer defines the maintenance operations.
type MaintenanceServicer interface {
	List(ctx context.Context, sess domain.Session, condominiumID int64, status domain.Status) ([]domain.Maintenance, error)
	Create(ctx context.Context, sess domain.Session, condominiumID int64, in domain.MaintenanceInput) (service.Created[domain.Maintenance], error)
	Update(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, in domain.MaintenanceInput) (domain.Maintenance, error)
	Complete(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) (domain.Maintenance, error)
	Delete(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) error
}

// DashboardServicer defines the home page operations.
type DashboardServicer interface {
	Summary(ctx context.Context, sess domain.Session) (domain.DashboardSummary, error)
	Activities(ctx context.Context, sess domain.Session) ([]domain.Activity, error)
}

// ReportServicer defines the report operations.
type ReportServicer interface {
	Monthly(ctx context.Context, sess domain.Session, req domain.ReportRequest) (service.RenderedReport, error)
}

// SubmissionServicer defines the read operations on the submission ledger.
type SubmissionServicer interface {
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Submission, int64, error)
	GetByKey(ctx context.Context, resource, key string) (domain.Submission, error)
}

// Services groups the dependencies of Server. Tests set only the fields
// they exercise.
type Services struct {
	Auth         AuthServicer
	Condominiums CondominiumServicer
	Maintenances MaintenanceServicer
	Dashboard    DashboardServicer
	Reports      ReportServicer
	Submissions  SubmissionServicer
}

// Server holds the HTTP handlers for all API endpoints.
type Server struct {
	auth         AuthServicer
	condos       CondominiumServicer
	maintenances MaintenanceServicer
	dashboard    DashboardServicer
	reports      ReportServicer
	submissions  SubmissionServicer
	log          *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil log falls back to slog.Default().
func NewServer(svc Services, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		auth:         svc.Auth,
		condos:       svc.Condominiums,
		maintenances: svc.Maintenances,
		dashboard:    svc.Dashboard,
		reports:      svc.Reports,
		submissions:  svc.Submissions,
		log:          log,
	}
}

// Routes returns the router serving every endpoint of the API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(requireSession)

			r.Get("/dashboard", s.GetDashboard)
			r.Get("/activities", s.ListActivities)

			r.Route("/condominiums", func(r chi.Router) {
				r.Get("/", s.ListCondominiums)
				r.Post("/", s.CreateCondominium)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.GetCondominium)
					r.Delete("/", s.DeleteCondominium)
					r.Get("/maintenances", s.ListMaintenances)
					r.Post("/maintenances", s.CreateMaintenance)
					r.Put("/maintenances/{maintenanceId}", s.UpdateMaintenance)
					r.Delete("/maintenances/{maintenanceId}", s.DeleteMaintenance)
					r.Post("/maintenances/{maintenanceId}/complete", s.CompleteMaintenance)
				})
			})

			r.Get("/reports/monthly", s.GetMonthlyReport)

			r.Get("/submissions", s.ListSubmissions)
			r.Get("/submissions/{resource}/{key}", s.GetSubmission)
		})
	})
	return r
}
