package domain

import (
	"time"

	"github.com/google/uuid"
)

// Resources that go through the submission ledger.
const (
	ResourceCondominium = "condominium"
	ResourceMaintenance = "maintenance"
)

// Submission is a ledger row: one per (resource, idempotency key) the
// gateway forwarded upstream. Repeats of the same key bump Attempts.
type Submission struct {
	ID             uuid.UUID
	IdempotencyKey string
	Resource       string
	Method         string
	Path           string
	StatusCode     int
	Attempts       int
	FirstSeenAt    time.Time
	LastSeenAt     time.Time
}
