package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/comdominio/dashboard/internal/domain"
)

// Submission is one row of the ledger of forwarded creates.
type Submission struct {
	ID             openapi_types.UUID `json:"id"`
	IdempotencyKey string             `json:"idempotencyKey"`
	Resource       string             `json:"resource"`
	Method         string             `json:"method"`
	Path           string             `json:"path"`
	StatusCode     int                `json:"statusCode"`
	Attempts       int                `json:"attempts"`
	FirstSeenAt    time.Time          `json:"firstSeenAt"`
	LastSeenAt     time.Time          `json:"lastSeenAt"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// SubmissionList is the body of GET /api/submissions.
type SubmissionList struct {
	Data       []Submission `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// ListSubmissions handles GET /api/submissions.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if !queryParam(w, r, "page", false, &page) || !queryParam(w, r, "limit", false, &limit) {
		return
	}

	params := domain.NewPaginationParams(page, limit)
	subs, total, err := s.submissions.ListPaged(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err, "submissions not found")
		return
	}

	data := make([]Submission, len(subs))
	for i, sub := range subs {
		data[i] = submissionToResponse(sub)
	}
	writeJSON(w, http.StatusOK, SubmissionList{
		Data: data,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      int(total),
			TotalPages: params.TotalPages(total),
		},
	})
}

// GetSubmission handles GET /api/submissions/{resource}/{key}.
func (s *Server) GetSubmission(w http.ResponseWriter, r *http.Request) {
	sub, err := s.submissions.GetByKey(r.Context(), chi.URLParam(r, "resource"), chi.URLParam(r, "key"))
	if err != nil {
		s.writeError(w, r, err, "submission not found")
		return
	}
	writeJSON(w, http.StatusOK, submissionToResponse(sub))
}

func submissionToResponse(s domain.Submission) Submission {
	return Submission{
		ID:             openapi_types.UUID(s.ID),
		IdempotencyKey: s.IdempotencyKey,
		Resource:       s.Resource,
		Method:         s.Method,
		Path:           s.Path,
		StatusCode:     s.StatusCode,
		Attempts:       s.Attempts,
		FirstSeenAt:    s.FirstSeenAt,
		LastSeenAt:     s.LastSeenAt,
	}
}
