package jobs_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/jobs"
	"github.com/jobdeck/jobdeck/internal/shared"
)

type memRepo struct {
	records map[string]*jobs.Job
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]*jobs.Job)}
}

func (m *memRepo) Create(ctx context.Context, job *jobs.Job) error {
	copied := *job
	m.records[job.ID] = &copied
	return nil
}

func (m *memRepo) ListByUser(ctx context.Context, userID string) ([]jobs.Job, error) {
	result := []jobs.Job{}
	for _, job := range m.records {
		if job.CreatedBy == userID {
			result = append(result, *job)
		}
	}
	return result, nil
}

func (m *memRepo) Get(ctx context.Context, userID, id string) (*jobs.Job, error) {
	job, ok := m.records[id]
	if !ok || job.CreatedBy != userID {
		return nil, shared.ErrNotFound
	}
	copied := *job
	return &copied, nil
}

func (m *memRepo) Update(ctx context.Context, job *jobs.Job) error {
	existing, ok := m.records[job.ID]
	if !ok || existing.CreatedBy != job.CreatedBy {
		return shared.ErrNotFound
	}
	copied := *job
	m.records[job.ID] = &copied
	return nil
}

func (m *memRepo) Delete(ctx context.Context, userID, id string) error {
	job, ok := m.records[id]
	if !ok || job.CreatedBy != userID {
		return shared.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// identityMiddleware stands in for the auth gate in these tests.
func identityMiddleware(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.ContextWithIdentity(r.Context(), shared.Identity{UserID: userID, Name: "Tester"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newJobsRouter(t *testing.T, repo jobs.Repository, userID string) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := jobs.NewHandler(logger, jobs.NewService(repo))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(identityMiddleware(userID))
		r.Route("/jobs", handler.MountRoutes)
	})
	return r
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestCreateAndListJobs(t *testing.T) {
	repo := newMemRepo()
	router := newJobsRouter(t, repo, "user-1")

	res := do(t, router, http.MethodPost, "/jobs", `{"company":"Acme","position":"Engineer"}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var created jobs.Job
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	assert.Equal(t, "Acme", created.Company)
	assert.Equal(t, jobs.StatusPending, created.Status)
	assert.Equal(t, "user-1", created.CreatedBy)
	assert.NotEmpty(t, created.ID)

	res = do(t, router, http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, res.Code)

	var listed jobs.ListJobsResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &listed))
	assert.Equal(t, 1, listed.Count)
	require.Len(t, listed.Jobs, 1)
	assert.Equal(t, created.ID, listed.Jobs[0].ID)
}

func TestCreateJobValidation(t *testing.T) {
	router := newJobsRouter(t, newMemRepo(), "user-1")

	cases := map[string]string{
		"missing company":  `{"position":"Engineer"}`,
		"missing position": `{"company":"Acme"}`,
		"bad status":       `{"company":"Acme","position":"Engineer","status":"ghosted"}`,
		"not json":         `{"company":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			res := do(t, router, http.MethodPost, "/jobs", body)
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})
	}
}

func TestJobsAreScopedToOwner(t *testing.T) {
	repo := newMemRepo()
	owner := newJobsRouter(t, repo, "user-1")
	stranger := newJobsRouter(t, repo, "user-2")

	res := do(t, owner, http.MethodPost, "/jobs", `{"company":"Acme","position":"Engineer"}`)
	require.Equal(t, http.StatusCreated, res.Code)
	var created jobs.Job
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

	// Another user sees an empty list and 404s on direct access.
	res = do(t, stranger, http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, res.Code)
	var listed jobs.ListJobsResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &listed))
	assert.Equal(t, 0, listed.Count)

	assert.Equal(t, http.StatusNotFound, do(t, stranger, http.MethodGet, "/jobs/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, stranger, http.MethodPatch, "/jobs/"+created.ID, `{"status":"declined"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, stranger, http.MethodDelete, "/jobs/"+created.ID, "").Code)

	// The owner still can.
	assert.Equal(t, http.StatusOK, do(t, owner, http.MethodGet, "/jobs/"+created.ID, "").Code)
}

func TestUpdateJob(t *testing.T) {
	repo := newMemRepo()
	router := newJobsRouter(t, repo, "user-1")

	res := do(t, router, http.MethodPost, "/jobs", `{"company":"Acme","position":"Engineer"}`)
	require.Equal(t, http.StatusCreated, res.Code)
	var created jobs.Job
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

	res = do(t, router, http.MethodPatch, "/jobs/"+created.ID, `{"status":"interview"}`)
	require.Equal(t, http.StatusOK, res.Code)

	var updated jobs.Job
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &updated))
	assert.Equal(t, jobs.StatusInterview, updated.Status)
	assert.Equal(t, "Acme", updated.Company)

	res = do(t, router, http.MethodPatch, "/jobs/missing-id", `{"status":"interview"}`)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestDeleteJob(t *testing.T) {
	repo := newMemRepo()
	router := newJobsRouter(t, repo, "user-1")

	res := do(t, router, http.MethodPost, "/jobs", `{"company":"Acme","position":"Engineer"}`)
	require.Equal(t, http.StatusCreated, res.Code)
	var created jobs.Job
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

	assert.Equal(t, http.StatusNoContent, do(t, router, http.MethodDelete, "/jobs/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/jobs/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, "/jobs/"+created.ID, "").Code)
}
