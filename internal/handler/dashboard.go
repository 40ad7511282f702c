package handler

import (
	"net/http"
	"time"

	"github.com/comdominio/dashboard/internal/domain"
)

// DashboardSummary is the body of GET /api/dashboard.
type DashboardSummary struct {
	Condominiums        int `json:"condominiums"`
	PendingMaintenances int `json:"pendingMaintenances"`
	OverdueMaintenances int `json:"overdueMaintenances"`
}

// Activity is one entry of the activity feed.
type Activity struct {
	ID          int64      `json:"id"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	EntityName  string     `json:"entityName"`
	EntityID    *int64     `json:"entityId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// GetDashboard handles GET /api/dashboard.
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := s.dashboard.Summary(r.Context(), sessionFrom(r))
	if err != nil {
		s.writeError(w, r, err, "workspace not found")
		return
	}
	writeJSON(w, http.StatusOK, DashboardSummary{
		Condominiums:        sum.Condominiums,
		PendingMaintenances: sum.PendingMaintenances,
		OverdueMaintenances: sum.OverdueMaintenances,
	})
}

// ListActivities handles GET /api/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	acts, err := s.dashboard.Activities(r.Context(), sessionFrom(r))
	if err != nil {
		s.writeError(w, r, err, "workspace not found")
		return
	}

	data := make([]Activity, len(acts))
	for i, a := range acts {
		data[i] = activityToResponse(a)
	}
	writeJSON(w, http.StatusOK, data)
}

func activityToResponse(a domain.Activity) Activity {
	return Activity{
		ID:          a.ID,
		Type:        string(a.Type),
		Description: a.Description,
		EntityName:  a.EntityName,
		EntityID:    a.EntityID,
		CreatedAt:   nilIfZero(a.CreatedAt),
	}
}
