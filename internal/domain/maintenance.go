package domain

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a maintenance task. Overdue detection
// happens upstream; the gateway only reads and forwards these values.
type Status string

const (
	StatusPending Status = "pendente"
	StatusDone    Status = "feito"
	StatusOverdue Status = "atrasado"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDone, StatusOverdue:
		return true
	}
	return false
}

// Period is how often a recurring maintenance regenerates upstream.
type Period string

const (
	PeriodMonthly    Period = "1_month"
	PeriodSemiannual Period = "6_months"
	PeriodYearly     Period = "1_year"
)

// Label returns the Portuguese label the dashboard shows for p.
// Unknown periods are returned verbatim.
func (p Period) Label() string {
	switch p {
	case PeriodMonthly:
		return "1 mês"
	case PeriodSemiannual:
		return "6 meses"
	case PeriodYearly:
		return "1 ano"
	default:
		return string(p)
	}
}

// Recurrence is either non-recurring (the zero value) or recurring with a
// period. The period is only reachable through Period, so a non-recurring
// value can never leak one onto the wire.
type Recurrence struct {
	period Period
}

// NonRecurring returns the one-off recurrence.
func NonRecurring() Recurrence { return Recurrence{} }

// Recurring returns a recurrence that repeats every p.
// An empty period yields NonRecurring.
func Recurring(p Period) Recurrence { return Recurrence{period: p} }

// IsRecurring reports whether r repeats.
func (r Recurrence) IsRecurring() bool { return r.period != "" }

// Period returns the repeat period and true, or "" and false when r is
// non-recurring.
func (r Recurrence) Period() (Period, bool) {
	return r.period, r.period != ""
}

// Maintenance is a maintenance task attached to a condominium.
type Maintenance struct {
	ID                 int64
	CondominiumID      int64
	Name               string
	Description        string
	Status             Status
	EndDate            *time.Time // nil when no deadline was set
	Recurrence         Recurrence
	NextRecurrenceDate *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MaintenanceInput is the form payload for creating or editing a
// maintenance task.
type MaintenanceInput struct {
	Name            string     `json:"name" validate:"required,min=3"`
	Description     string     `json:"description"`
	EndDate         *time.Time `json:"endDate"`
	Status          Status     `json:"status" validate:"omitempty,oneof=pendente feito atrasado"`
	IsRecurring     bool       `json:"isRecurring"`
	RecurringPeriod Period     `json:"recurringPeriod" validate:"omitempty,oneof=1_month 6_months 1_year"`

	// IdempotencyKey overrides the derived key on create.
	IdempotencyKey string `json:"-"`
}

// Normalize trims text fields and defaults Status to pending.
func (in MaintenanceInput) Normalize() MaintenanceInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.RecurringPeriod = Period(strings.TrimSpace(string(in.RecurringPeriod)))
	if in.Status == "" {
		in.Status = StatusPending
	}
	return in
}

// Validate checks the name length and the enumerated fields.
func (in MaintenanceInput) Validate() error {
	return validateStruct(in.Normalize())
}

// Recurrence folds the form's flag and period into the tagged variant.
// A recurring flag without a period counts as non-recurring.
func (in MaintenanceInput) Recurrence() Recurrence {
	if !in.IsRecurring || in.RecurringPeriod == "" {
		return NonRecurring()
	}
	return Recurring(in.RecurringPeriod)
}

// EndDateString formats EndDate as YYYY-MM-DD, or "" when unset.
// This is the value that feeds the create idempotency key.
func (in MaintenanceInput) EndDateString() string {
	if in.EndDate == nil {
		return ""
	}
	return in.EndDate.Format(time.DateOnly)
}
