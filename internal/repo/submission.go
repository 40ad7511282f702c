package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/comdominio/dashboard/internal/domain"
)

// SubmissionRepo defines the persistence operations of the submission ledger.
type SubmissionRepo interface {
	// Record stores a forwarded submission. A repeat of the same
	// (resource, idempotency key) increments attempts, refreshes
	// last_seen_at and overwrites the status code of the existing row.
	Record(ctx context.Context, sub domain.Submission) (domain.Submission, error)

	// GetByKey returns the ledger row for a resource and key.
	// Returns domain.ErrNotFound if the key was never recorded.
	GetByKey(ctx context.Context, resource, key string) (domain.Submission, error)

	// ListPaged returns one page of submissions, most recently seen first,
	// and the total row count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Submission, int64, error)
}

// pgSubmissionRepo is the Postgres implementation of SubmissionRepo.
type pgSubmissionRepo struct {
	db db
}

// NewSubmissionRepo constructs a SubmissionRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewSubmissionRepo(db db) SubmissionRepo {
	return &pgSubmissionRepo{db: db}
}

const submissionColumns = `id, idempotency_key, resource, method, path, status_code, attempts, first_seen_at, last_seen_at`

// Record upserts on the (resource, idempotency_key) unique constraint.
func (r *pgSubmissionRepo) Record(ctx context.Context, sub domain.Submission) (domain.Submission, error) {
	const q = `
		INSERT INTO submissions (idempotency_key, resource, method, path, status_code)
		VALUES (@key, @resource, @method, @path, @status_code)
		ON CONFLICT (resource, idempotency_key) DO UPDATE
		SET attempts     = submissions.attempts + 1,
		    status_code  = EXCLUDED.status_code,
		    path         = EXCLUDED.path,
		    last_seen_at = now()
		RETURNING ` + submissionColumns

	args := pgx.NamedArgs{
		"key":         sub.IdempotencyKey,
		"resource":    sub.Resource,
		"method":      sub.Method,
		"path":        sub.Path,
		"status_code": sub.StatusCode,
	}

	result, err := scanSubmission(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Submission{}, fmt.Errorf("repo.SubmissionRepo.Record: %w", mapError(err))
	}
	return result, nil
}

// GetByKey looks a submission up by its natural key.
func (r *pgSubmissionRepo) GetByKey(ctx context.Context, resource, key string) (domain.Submission, error) {
	const q = `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE resource = @resource AND idempotency_key = @key`

	result, err := scanSubmission(r.db.QueryRow(ctx, q, pgx.NamedArgs{"resource": resource, "key": key}))
	if err != nil {
		return domain.Submission{}, fmt.Errorf("repo.SubmissionRepo.GetByKey: %w", mapError(err))
	}
	return result, nil
}

// ListPaged returns a page ordered by last_seen_at descending.
// The window function gives the total alongside the page in one round trip.
func (r *pgSubmissionRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Submission, int64, error) {
	const q = `
		SELECT ` + submissionColumns + `, count(*) OVER () AS total
		FROM submissions
		ORDER BY last_seen_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SubmissionRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	subs := []domain.Submission{}
	var total int64
	for rows.Next() {
		var (
			s  domain.Submission
			id pgtype.UUID
		)
		if err := rows.Scan(&id, &s.IdempotencyKey, &s.Resource, &s.Method, &s.Path,
			&s.StatusCode, &s.Attempts, &s.FirstSeenAt, &s.LastSeenAt, &total); err != nil {
			return nil, 0, fmt.Errorf("repo.SubmissionRepo.ListPaged: scan: %w", err)
		}
		s.ID = uuid.UUID(id.Bytes)
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.SubmissionRepo.ListPaged: rows: %w", err)
	}

	// An out-of-range page has no rows to carry the window total.
	if len(subs) == 0 && p.Page > 1 {
		const countQ = `SELECT count(*) FROM submissions`
		if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("repo.SubmissionRepo.ListPaged: count: %w", err)
		}
	}
	return subs, total, nil
}

// scanSubmission maps a single database row into a domain.Submission.
func scanSubmission(s scanner) (domain.Submission, error) {
	var (
		sub domain.Submission
		id  pgtype.UUID
	)
	err := s.Scan(&id, &sub.IdempotencyKey, &sub.Resource, &sub.Method, &sub.Path,
		&sub.StatusCode, &sub.Attempts, &sub.FirstSeenAt, &sub.LastSeenAt)
	if err != nil {
		return domain.Submission{}, err
	}
	sub.ID = uuid.UUID(id.Bytes)
	return sub, nil
}
