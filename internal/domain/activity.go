package domain

import "time"

// ActivityType identifies what an activity log entry records.
type ActivityType string

const (
	ActivityMaintenanceCreated     ActivityType = "maintenance_created"
	ActivityMaintenanceCompleted   ActivityType = "maintenance_completed"
	ActivityMaintenanceDeleted     ActivityType = "maintenance_deleted"
	ActivityMaintenanceAutoCreated ActivityType = "maintenance_auto_created"
	ActivityCondominiumCreated     ActivityType = "condominium_created"
	ActivityCondominiumDeleted     ActivityType = "condominium_deleted"
	ActivityReportGenerated        ActivityType = "report_generated"
)

// Activity is an entry of the workspace activity feed kept upstream.
type Activity struct {
	ID          int64
	Type        ActivityType
	Description string
	EntityName  string
	EntityID    *int64
	CreatedAt   time.Time
	UserID      int64
	WorkspaceID int64
}

// NewActivity is an activity the gateway asks the backend to log.
type NewActivity struct {
	Type        ActivityType
	Description string
	EntityName  string
}

// DashboardSummary holds the headline counters of the home page.
type DashboardSummary struct {
	Condominiums        int
	PendingMaintenances int
	OverdueMaintenances int
}
