package handler

import (
	"net/http"
	"strings"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/idempotency"
)

// Condominium is the API representation of a condominium.
type Condominium struct {
	ID                       int64   `json:"id"`
	Name                     string  `json:"name"`
	CNPJ                     string  `json:"cnpj"`
	Address                  string  `json:"address"`
	Phone                    *string `json:"phone,omitempty"`
	Units                    int     `json:"units"`
	PendingMaintenanceAmount int     `json:"pendingMaintenanceAmount"`
	OverdueMaintenanceAmount int     `json:"overdueMaintenanceAmount"`
}

// CreateCondominiumRequest is the body of POST /api/condominiums.
type CreateCondominiumRequest struct {
	Name    string  `json:"name"`
	CNPJ    string  `json:"cnpj"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"`
	Units   int     `json:"units"`
}

// ListCondominiums handles GET /api/condominiums.
func (s *Server) ListCondominiums(w http.ResponseWriter, r *http.Request) {
	condos, err := s.condos.List(r.Context(), sessionFrom(r))
	if err != nil {
		s.writeError(w, r, err, "workspace not found")
		return
	}

	data := make([]Condominium, len(condos))
	for i, c := range condos {
		data[i] = condominiumToResponse(c)
	}
	writeJSON(w, http.StatusOK, data)
}

// GetCondominium handles GET /api/condominiums/{id}.
func (s *Server) GetCondominium(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := s.condos.Get(r.Context(), sessionFrom(r), id)
	if err != nil {
		s.writeError(w, r, err, "condominium not found")
		return
	}
	writeJSON(w, http.StatusOK, condominiumToResponse(c))
}

// CreateCondominium handles POST /api/condominiums.
// A client-supplied Idempotency-Key is forwarded as is; otherwise one is
// derived from the submitted fields. Either way it is echoed in the response.
func (s *Server) CreateCondominium(w http.ResponseWriter, r *http.Request) {
	var body CreateCondominiumRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	created, err := s.condos.Create(r.Context(), sessionFrom(r), domain.NewCondominium{
		Name:           body.Name,
		CNPJ:           body.CNPJ,
		Address:        body.Address,
		Phone:          derefString(body.Phone),
		Units:          body.Units,
		IdempotencyKey: clientKey(r),
	})
	if err != nil {
		s.writeError(w, r, err, "workspace not found")
		return
	}

	w.Header().Set(idempotency.Header, created.IdempotencyKey)
	writeJSON(w, http.StatusCreated, condominiumToResponse(created.Record))
}

// DeleteCondominium handles DELETE /api/condominiums/{id}.
func (s *Server) DeleteCondominium(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.condos.Delete(r.Context(), sessionFrom(r), id); err != nil {
		s.writeError(w, r, err, "condominium not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clientKey returns the Idempotency-Key the client sent, if any.
func clientKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(idempotency.Header))
}

func condominiumToResponse(c domain.Condominium) Condominium {
	return Condominium{
		ID:                       c.ID,
		Name:                     c.Name,
		CNPJ:                     c.CNPJ,
		Address:                  c.Address,
		Phone:                    nilIfEmpty(c.Phone),
		Units:                    c.Units,
		PendingMaintenanceAmount: c.PendingMaintenanceAmount,
		OverdueMaintenanceAmount: c.OverdueMaintenanceAmount,
	}
}
