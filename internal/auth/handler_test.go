package auth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/platform/httpx"
	"github.com/jobdeck/jobdeck/internal/shared"
	_ "github.com/jobdeck/jobdeck/testing"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := newStubRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewTokenManager("handler-test-secret", time.Hour)
	service := auth.NewService(repo, tokens)
	handler := auth.NewHandler(logger, service)
	mw := auth.Middleware{Tokens: tokens, Logger: logger}

	r := chi.NewRouter()
	r.Route("/api/v1/auth", handler.MountRoutes)
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireUser)
		r.Get("/api/v1/whoami", func(w http.ResponseWriter, r *http.Request) {
			identity, _ := shared.IdentityFromContext(r.Context())
			httpx.JSON(w, http.StatusOK, map[string]string{"userId": identity.UserID, "name": identity.Name})
		})
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestRegisterLoginScenario(t *testing.T) {
	router := newTestRouter(t)

	res := doJSON(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, res.Code)

	var registered auth.TokenResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &registered))
	assert.Equal(t, "Ann", registered.User.Name)
	require.NotEmpty(t, registered.Token)
	assert.NotContains(t, res.Body.String(), "ann@x.com")
	assert.NotContains(t, res.Body.String(), "secret123")

	res = doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ann@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res = doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ann@x.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, res.Code)

	var loggedIn auth.TokenResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &loggedIn))
	require.NotEmpty(t, loggedIn.Token)

	res = doJSON(t, router, http.MethodGet, "/api/v1/whoami", "", loggedIn.Token)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Ann")
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]string{
		"short name":     `{"name":"An","email":"ann@x.com","password":"secret123"}`,
		"bad email":      `{"name":"Ann","email":"not-an-email","password":"secret123"}`,
		"short password": `{"name":"Ann","email":"ann@x.com","password":"abc"}`,
		"not json":       `{"name":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			res := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body, "")
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	router := newTestRouter(t)

	res := doJSON(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, res.Code)

	res = doJSON(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Impostor","email":"ann@x.com","password":"different1"}`, "")
	assert.Equal(t, http.StatusConflict, res.Code)
}

func TestLoginMissingCredentials(t *testing.T) {
	router := newTestRouter(t)

	for name, body := range map[string]string{
		"no email":    `{"password":"secret123"}`,
		"no password": `{"email":"ann@x.com"}`,
		"empty":       `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			res := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", body, "")
			assert.Equal(t, http.StatusBadRequest, res.Code)
		})
	}
}

func TestLoginFailureBodiesMatch(t *testing.T) {
	router := newTestRouter(t)

	res := doJSON(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, res.Code)

	unknown := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"nobody@x.com","password":"secret123"}`, "")
	wrong := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ann@x.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}
