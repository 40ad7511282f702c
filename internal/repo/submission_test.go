package repo_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comdominio/dashboard/internal/domain"
	"github.com/comdominio/dashboard/internal/repo"
	"github.com/comdominio/dashboard/testutil"
)

// newTestRepo returns a SubmissionRepo inside a transaction that is rolled
// back when the test finishes.
func newTestRepo(t *testing.T) repo.SubmissionRepo {
	t.Helper()
	return repo.NewSubmissionRepo(testutil.NewTx(t))
}

func submissionFixture(key string) domain.Submission {
	return domain.Submission{
		IdempotencyKey: key,
		Resource:       domain.ResourceMaintenance,
		Method:         http.MethodPost,
		Path:           "/workspaces/1/condominiums/2/maintenances",
		StatusCode:     http.StatusCreated,
	}
}

func TestSubmissionRepo_Record_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	got, err := r.Record(ctx, submissionFixture("fgudmo"))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, "fgudmo", got.IdempotencyKey)
	assert.Equal(t, domain.ResourceMaintenance, got.Resource)
	assert.Equal(t, http.StatusCreated, got.StatusCode)
	assert.Equal(t, 1, got.Attempts)
	assert.False(t, got.FirstSeenAt.IsZero())
	assert.WithinDuration(t, got.FirstSeenAt, got.LastSeenAt, time.Second)
}

// TestSubmissionRepo_Record_RepeatBumpsAttempts models a double-clicked form:
// two deliveries with the same key collapse into one ledger row.
func TestSubmissionRepo_Record_RepeatBumpsAttempts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first, err := r.Record(ctx, submissionFixture("jkymyy"))
	require.NoError(t, err)

	repeat := submissionFixture("jkymyy")
	repeat.StatusCode = http.StatusConflict
	second, err := r.Record(ctx, repeat)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same key must update the same row")
	assert.Equal(t, 2, second.Attempts)
	assert.Equal(t, http.StatusConflict, second.StatusCode)
	assert.True(t, first.FirstSeenAt.Equal(second.FirstSeenAt), "first_seen_at must not move")
}

func TestSubmissionRepo_Record_SameKeyDifferentResource(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a, err := r.Record(ctx, submissionFixture("22yv"))
	require.NoError(t, err)

	other := submissionFixture("22yv")
	other.Resource = domain.ResourceCondominium
	b, err := r.Record(ctx, other)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 1, b.Attempts)
}

func TestSubmissionRepo_Record_InvalidMethod(t *testing.T) {
	r := newTestRepo(t)

	bad := submissionFixture("x")
	bad.Method = http.MethodGet
	_, err := r.Record(context.Background(), bad)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSubmissionRepo_GetByKey(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Record(ctx, submissionFixture("blqewm"))
	require.NoError(t, err)

	got, err := r.GetByKey(ctx, domain.ResourceMaintenance, "blqewm")

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestSubmissionRepo_GetByKey_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetByKey(context.Background(), domain.ResourceMaintenance, "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmissionRepo_ListPaged(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, k := range []string{"k1", "k2", "k3"} {
		_, err := r.Record(ctx, submissionFixture(k))
		require.NoError(t, err)
	}

	page1, total, err := r.ListPaged(ctx, domain.PaginationParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(3))
	assert.Len(t, page1, 2)

	page2, total2, err := r.ListPaged(ctx, domain.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, total, total2)
	assert.NotEmpty(t, page2)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)
}

func TestSubmissionRepo_ListPaged_PageOutOfRange(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.Record(ctx, submissionFixture("only"))
	require.NoError(t, err)

	got, total, err := r.ListPaged(ctx, domain.PaginationParams{Page: 1000, Limit: 100})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.GreaterOrEqual(t, total, int64(1))
}
