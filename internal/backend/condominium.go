package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comdominio/dashboard/internal/domain"
)

type condominiumResponse struct {
	ID                       int64  `json:"id"`
	Name                     string `json:"name"`
	Address                  string `json:"address"`
	CNPJ                     string `json:"cnpj"`
	Phone                    string `json:"phone,omitempty"`
	Units                    int    `json:"units"`
	PendingMaintenanceAmount int    `json:"pendingMaintenanceAmount"`
	OverdueMaintenanceAmount int    `json:"overdueMaintenanceAmount"`
}

type createCondominiumRequest struct {
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	Address     string `json:"address"`
	Units       int    `json:"units"`
	Phone       string `json:"phone,omitempty"`
	WorkspaceID int64  `json:"workspaceId"`
}

// ListCondominiums handles GET /workspaces/{ws}/condominiums.
func (cl *Client) ListCondominiums(ctx context.Context, sess domain.Session) ([]domain.Condominium, error) {
	var out []condominiumResponse
	_, err := cl.do(ctx, call{
		method:  http.MethodGet,
		path:    workspacePath(sess, "/condominiums"),
		session: &sess,
		out:     &out,
		retry:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("backend.Client.ListCondominiums: %w", err)
	}

	result := make([]domain.Condominium, len(out))
	for i, c := range out {
		result[i] = c.toDomain()
	}
	return result, nil
}

// GetCondominium handles GET /workspaces/{ws}/condominiums/{id}.
func (cl *Client) GetCondominium(ctx context.Context, sess domain.Session, id int64) (domain.Condominium, error) {
	var out condominiumResponse
	_, err := cl.do(ctx, call{
		method:  http.MethodGet,
		path:    workspacePath(sess, "/condominiums/%d", id),
		session: &sess,
		out:     &out,
		retry:   true,
	})
	if err != nil {
		return domain.Condominium{}, fmt.Errorf("backend.Client.GetCondominium: %w", err)
	}
	return out.toDomain(), nil
}

// CreateCondominium handles POST /workspaces/{ws}/condominiums.
// The request carries key in the Idempotency-Key header, which also makes
// it safe to retry.
func (cl *Client) CreateCondominium(ctx context.Context, sess domain.Session, in domain.NewCondominium, key string) (domain.Condominium, Receipt, error) {
	receipt := Receipt{
		Method:         http.MethodPost,
		Path:           workspacePath(sess, "/condominiums"),
		IdempotencyKey: key,
	}

	var out condominiumResponse
	status, err := cl.do(ctx, call{
		method:  receipt.Method,
		path:    receipt.Path,
		session: &sess,
		headers: keyHeader(key),
		body: createCondominiumRequest{
			Name:        in.Name,
			CNPJ:        in.CNPJ,
			Address:     in.Address,
			Units:       in.Units,
			Phone:       in.Phone,
			WorkspaceID: sess.WorkspaceID,
		},
		out:   &out,
		retry: true,
	})
	receipt.StatusCode = status
	if err != nil {
		return domain.Condominium{}, receipt, fmt.Errorf("backend.Client.CreateCondominium: %w", err)
	}
	return out.toDomain(), receipt, nil
}

// DeleteCondominium handles DELETE /workspaces/{ws}/condominiums/{id}.
func (cl *Client) DeleteCondominium(ctx context.Context, sess domain.Session, id int64) error {
	_, err := cl.do(ctx, call{
		method:  http.MethodDelete,
		path:    workspacePath(sess, "/condominiums/%d", id),
		session: &sess,
	})
	if err != nil {
		return fmt.Errorf("backend.Client.DeleteCondominium: %w", err)
	}
	return nil
}

// CountCondominiums handles GET /workspaces/{ws}/condominiums/count.
// The backend answers with a bare JSON number.
func (cl *Client) CountCondominiums(ctx context.Context, sess domain.Session) (int, error) {
	var n int
	_, err := cl.do(ctx, call{
		method:  http.MethodGet,
		path:    workspacePath(sess, "/condominiums/count"),
		session: &sess,
		out:     &n,
		retry:   true,
	})
	if err != nil {
		return 0, fmt.Errorf("backend.Client.CountCondominiums: %w", err)
	}
	return n, nil
}

func (c condominiumResponse) toDomain() domain.Condominium {
	return domain.Condominium{
		ID:                       c.ID,
		Name:                     c.Name,
		CNPJ:                     c.CNPJ,
		Address:                  c.Address,
		Phone:                    c.Phone,
		Units:                    c.Units,
		PendingMaintenanceAmount: c.PendingMaintenanceAmount,
		OverdueMaintenanceAmount: c.OverdueMaintenanceAmount,
	}
}
