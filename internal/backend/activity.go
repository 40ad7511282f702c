package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comdominio/dashboard/internal/domain"
)

type activityResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	EntityName  string `json:"entityName"`
	EntityID    *int64 `json:"entityId"`
	CreatedAt   string `json:"createdAt"`
	UserID      int64  `json:"userId"`
	WorkspaceID int64  `json:"workspaceId"`
}

type logActivityRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	EntityName  string `json:"entityName"`
}

// ListActivities handles GET /workspaces/{ws}/activities.
func (cl *Client) ListActivities(ctx context.Context, sess domain.Session) ([]domain.Activity, error) {
	var out []activityResponse
	_, err := cl.do(ctx, call{
		method:  http.MethodGet,
		path:    workspacePath(sess, "/activities"),
		session: &sess,
		out:     &out,
		retry:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("backend.Client.ListActivities: %w", err)
	}

	result := make([]domain.Activity, len(out))
	for i, a := range out {
		result[i] = domain.Activity{
			ID:          a.ID,
			Type:        domain.ActivityType(a.Type),
			Description: a.Description,
			EntityName:  a.EntityName,
			EntityID:    a.EntityID,
			UserID:      a.UserID,
			WorkspaceID: a.WorkspaceID,
		}
		if t, ok := parseTime(a.CreatedAt); ok {
			result[i].CreatedAt = t
		}
	}
	return result, nil
}

// LogActivity handles POST /workspaces/{ws}/activities/log.
func (cl *Client) LogActivity(ctx context.Context, sess domain.Session, a domain.NewActivity) error {
	_, err := cl.do(ctx, call{
		method:  http.MethodPost,
		path:    workspacePath(sess, "/activities/log"),
		session: &sess,
		body: logActivityRequest{
			Type:        string(a.Type),
			Description: a.Description,
			EntityName:  a.EntityName,
		},
	})
	if err != nil {
		return fmt.Errorf("backend.Client.LogActivity: %w", err)
	}
	return nil
}
