package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/idempotency"
)

// Maintenance is the API representation of a maintenance.
type Maintenance struct {
	ID                   int64               `json:"id"`
	CondominiumID        int64               `json:"condominiumId"`
	Name                 string              `json:"name"`
	Description          *string             `json:"description,omitempty"`
	Status               string              `json:"status"`
	EndDate              *openapi_types.Date `json:"endDate,omitempty"`
	IsRecurring          bool                `json:"isRecurring"`
	RecurringPeriod      *string             `json:"recurringPeriod,omitempty"`
	RecurringPeriodLabel *string             `json:"recurringPeriodLabel,omitempty"`
	NextRecurrenceDate   *openapi_types.Date `json:"nextRecurrenceDate,omitempty"`
	CreatedAt            *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt            *time.Time          `json:"updatedAt,omitempty"`
}

// MaintenanceRequest is the body of the maintenance create and update calls.
// recurringPeriod is only read when isRecurring is true.
type MaintenanceRequest struct {
	Name            string              `json:"name"`
	Description     *string             `json:"description"`
	EndDate         *openapi_types.Date `json:"endDate"`
	Status          *string             `json:"status"`
	IsRecurring     bool                `json:"isRecurring"`
	RecurringPeriod *string             `json:"recurringPeriod"`
}

// ListMaintenances handles GET /api/condominiums/{id}/maintenances.
// Supports ?status=pendente|feito|atrasado.
func (s *Server) ListMaintenances(w http.ResponseWriter, r *http.Request) {
	condoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var status *string
	if !queryParam(w, r, "status", false, &status) {
		return
	}

	ms, err := s.maintenances.List(r.Context(), sessionFrom(r), condoID, domain.Status(derefString(status)))
	if err != nil {
		s.writeError(w, r, err, "condominium not found")
		return
	}

	data := make([]Maintenance, len(ms))
	for i, m := range ms {
		data[i] = maintenanceToResponse(m)
	}
	writeJSON(w, http.StatusOK, data)
}

// CreateMaintenance handles POST /api/condominiums/{id}/maintenances.
func (s *Server) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	condoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body MaintenanceRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	in := body.toInput()
	in.IdempotencyKey = clientKey(r)
	created, err := s.maintenances.Create(r.Context(), sessionFrom(r), condoID, in)
	if err != nil {
		s.writeError(w, r, err, "condominium not found")
		return
	}

	w.Header().Set(idempotency.Header, created.IdempotencyKey)
	writeJSON(w, http.StatusCreated, maintenanceToResponse(created.Record))
}

// UpdateMaintenance handles PUT /api/condominiums/{id}/maintenances/{maintenanceId}.
func (s *Server) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	condoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	maintenanceID, ok := pathID(w, r, "maintenanceId")
	if !ok {
		return
	}
	var body MaintenanceRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	m, err := s.maintenances.Update(r.Context(), sessionFrom(r), condoID, maintenanceID, body.toInput())
	if err != nil {
		s.writeError(w, r, err, "maintenance not found")
		return
	}
	writeJSON(w, http.StatusOK, maintenanceToResponse(m))
}

// CompleteMaintenance handles POST /api/condominiums/{id}/maintenances/{maintenanceId}/complete.
func (s *Server) CompleteMaintenance(w http.ResponseWriter, r *http.Request) {
	condoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	maintenanceID, ok := pathID(w, r, "maintenanceId")
	if !ok {
		return
	}

	m, err := s.maintenances.Complete(r.Context(), sessionFrom(r), condoID, maintenanceID)
	if err != nil {
		s.writeError(w, r, err, "maintenance not found")
		return
	}
	writeJSON(w, http.StatusOK, maintenanceToResponse(m))
}

// DeleteMaintenance handles DELETE /api/condominiums/{id}/maintenances/{maintenanceId}.
func (s *Server) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	condoID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	maintenanceID, ok := pathID(w, r, "maintenanceId")
	if !ok {
		return
	}

	if err := s.maintenances.Delete(r.Context(), sessionFrom(r), condoID, maintenanceID); err != nil {
		s.writeError(w, r, err, "maintenance not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b MaintenanceRequest) toInput() domain.MaintenanceInput {
	in := domain.MaintenanceInput{
		Name:        b.Name,
		Description: derefString(b.Description),
		Status:      domain.Status(derefString(b.Status)),
		IsRecurring: b.IsRecurring,
	}
	if b.EndDate != nil {
		end := b.EndDate.Time
		in.EndDate = &end
	}
	if b.IsRecurring {
		in.RecurringPeriod = domain.Period(derefString(b.RecurringPeriod))
	}
	return in
}

// maintenanceToResponse converts a domain.Maintenance to its API form.
// Non-recurring maintenances carry no period at all.
func maintenanceToResponse(m domain.Maintenance) Maintenance {
	out := Maintenance{
		ID:                 m.ID,
		CondominiumID:      m.CondominiumID,
		Name:               m.Name,
		Description:        nilIfEmpty(m.Description),
		Status:             string(m.Status),
		EndDate:            toDate(m.EndDate),
		NextRecurrenceDate: toDate(m.NextRecurrenceDate),
		CreatedAt:          nilIfZero(m.CreatedAt),
		UpdatedAt:          nilIfZero(m.UpdatedAt),
	}
	if period, ok := m.Recurrence.Period(); ok {
		out.IsRecurring = true
		out.RecurringPeriod = nilIfEmpty(string(period))
		out.RecurringPeriodLabel = nilIfEmpty(period.Label())
	}
	return out
}

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

func nilIfZero(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
