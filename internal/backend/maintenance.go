package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comdominio/dashboard/internal/domain"
)

// statusHeader filters list and count endpoints by maintenance status.
const statusHeader = "Status"

type maintenanceResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Status             string  `json:"status"`
	EndDate            *string `json:"endDate"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
	IsRecurring        bool    `json:"isRecurring"`
	RecurringPeriod    string  `json:"recurringPeriod"`
	NextRecurrenceDate *string `json:"nextRecurrenceDate"`
}

// maintenanceRequest is the create/update body. RecurringPeriod is only
// set for recurring maintenances, so it is omitted otherwise.
type maintenanceRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	EndDate         string `json:"endDate,omitempty"`
	Status          string `json:"status"`
	IsRecurring     bool   `json:"isRecurring"`
	RecurringPeriod string `json:"recurringPeriod,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func newMaintenanceRequest(in domain.MaintenanceInput) maintenanceRequest {
	req := maintenanceRequest{
		Name:        in.Name,
		Description: in.Description,
		EndDate:     in.EndDateString(),
		Status:      string(in.Status),
	}
	if period, ok := in.Recurrence().Period(); ok {
		req.IsRecurring = true
		req.RecurringPeriod = string(period)
	}
	return req
}

// ListMaintenances handles GET /workspaces/{ws}/condominiums/{id}/maintenances.
// A non-empty status is sent as the Status header filter.
func (cl *Client) ListMaintenances(ctx context.Context, sess domain.Session, condominiumID int64, status domain.Status) ([]domain.Maintenance, error) {
	c := call{
		method:  http.MethodGet,
		path:    workspacePath(sess, "/condominiums/%d/maintenances", condominiumID),
		session: &sess,
		retry:   true,
	}
	if status != "" {
		c.headers = map[string]string{statusHeader: string(status)}
	}

	var out []maintenanceResponse
	c.out = &out
	if _, err := cl.do(ctx, c); err != nil {
		return nil, fmt.Errorf("backend.Client.ListMaintenances: %w", err)
	}

	result := make([]domain.Maintenance, len(out))
	for i, m := range out {
		result[i] = m.toDomain(condominiumID)
	}
	return result, nil
}

// CreateMaintenance handles POST /workspaces/{ws}/condominiums/{id}/maintenances.
func (cl *Client) CreateMaintenance(ctx context.Context, sess domain.Session, condominiumID int64, in domain.MaintenanceInput, key string) (domain.Maintenance, Receipt, error) {
	receipt := Receipt{
		Method:         http.MethodPost,
		Path:           workspacePath(sess, "/condominiums/%d/maintenances", condominiumID),
		IdempotencyKey: key,
	}

	var out maintenanceResponse
	status, err := cl.do(ctx, call{
		method:  receipt.Method,
		path:    receipt.Path,
		session: &sess,
		headers: keyHeader(key),
		body:    newMaintenanceRequest(in),
		out:     &out,
		retry:   true,
	})
	receipt.StatusCode = status
	if err != nil {
		return domain.Maintenance{}, receipt, fmt.Errorf("backend.Client.CreateMaintenance: %w", err)
	}
	return out.toDomain(condominiumID), receipt, nil
}

// UpdateMaintenance handles PUT /workspaces/{ws}/condominiums/{id}/maintenances/{mid}.
func (cl *Client) UpdateMaintenance(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, in domain.MaintenanceInput) (domain.Maintenance, error) {
	var out maintenanceResponse
	_, err := cl.do(ctx, call{
		method:  http.MethodPut,
		path:    workspacePath(sess, "/condominiums/%d/maintenances/%d", condominiumID, maintenanceID),
		session: &sess,
		body:    newMaintenanceRequest(in),
		out:     &out,
	})
	if err != nil {
		return domain.Maintenance{}, fmt.Errorf("backend.Client.UpdateMaintenance: %w", err)
	}
	return out.toDomain(condominiumID), nil
}

// SetMaintenanceStatus sends a status-only PUT, used to mark a maintenance
// as done. Some backends answer with an empty body; the returned record then
// only carries the IDs and the new status.
func (cl *Client) SetMaintenanceStatus(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64, status domain.Status) (domain.Maintenance, error) {
	var out maintenanceResponse
	_, err := cl.do(ctx, call{
		method:  http.MethodPut,
		path:    workspacePath(sess, "/condominiums/%d/maintenances/%d", condominiumID, maintenanceID),
		session: &sess,
		body:    statusRequest{Status: string(status)},
		out:     &out,
	})
	if err != nil {
		return domain.Maintenance{}, fmt.Errorf("backend.Client.SetMaintenanceStatus: %w", err)
	}
	if out.ID == 0 {
		out.ID = maintenanceID
		out.Status = string(status)
	}
	return out.toDomain(condominiumID), nil
}

// DeleteMaintenance handles DELETE /workspaces/{ws}/condominiums/{id}/maintenances/{mid}.
func (cl *Client) DeleteMaintenance(ctx context.Context, sess domain.Session, condominiumID, maintenanceID int64) error {
	_, err := cl.do(ctx, call{
		method:  http.MethodDelete,
		path:    workspacePath(sess, "/condominiums/%d/maintenances/%d", condominiumID, maintenanceID),
		session: &sess,
	})
	if err != nil {
		return fmt.Errorf("backend.Client.DeleteMaintenance: %w", err)
	}
	return nil
}

// CountMaintenances handles GET /workspaces/{ws}/maintenances/count,
// filtered by the Status header.
func (cl *Client) CountMaintenances(ctx context.Context, sess domain.Session, status domain.Status) (int, error) {
	var n int
	_, err := cl.do(ctx, call{
		method:  http.MethodGet,
		path:    workspacePath(sess, "/maintenances/count"),
		session: &sess,
		headers: map[string]string{statusHeader: string(status)},
		out:     &n,
		retry:   true,
	})
	if err != nil {
		return 0, fmt.Errorf("backend.Client.CountMaintenances: %w", err)
	}
	return n, nil
}

func (m maintenanceResponse) toDomain(condominiumID int64) domain.Maintenance {
	out := domain.Maintenance{
		ID:                 m.ID,
		CondominiumID:      condominiumID,
		Name:               m.Name,
		Description:        m.Description,
		Status:             domain.Status(m.Status),
		EndDate:            parseTimePtr(m.EndDate),
		NextRecurrenceDate: parseTimePtr(m.NextRecurrenceDate),
		Recurrence:         domain.NonRecurring(),
	}
	if m.IsRecurring {
		out.Recurrence = domain.Recurring(domain.Period(m.RecurringPeriod))
	}
	if t, ok := parseTime(m.CreatedAt); ok {
		out.CreatedAt = t
	}
	if t, ok := parseTime(m.UpdatedAt); ok {
		out.UpdatedAt = t
	}
	return out
}
