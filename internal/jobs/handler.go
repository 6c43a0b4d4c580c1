package jobs

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jobdeck/jobdeck/internal/platform/httpx"
	"github.com/jobdeck/jobdeck/internal/shared"
)

// Handler wires HTTP endpoints for job records. All routes sit behind the
// auth middleware, so a caller identity is always present in context.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// List handles GET /api/v1/jobs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}

	records, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("list jobs failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListJobsResponse{Jobs: records, Count: len(records)})
}

// Create handles POST /api/v1/jobs.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}

	var req CreateJobRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, validationError(err))
		return
	}

	job, err := h.service.Create(r.Context(), identity.UserID, req)
	if err != nil {
		h.logger.Error("create job failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, job)
}

// Show handles GET /api/v1/jobs/{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}

	job, err := h.service.Get(r.Context(), identity.UserID, chi.URLParam(r, "id"))
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("get job failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, job)
}

// Update handles PATCH /api/v1/jobs/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}

	var req UpdateJobRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, validationError(err))
		return
	}

	job, err := h.service.Update(r.Context(), identity.UserID, chi.URLParam(r, "id"), req)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("update job failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, job)
}

// Delete handles DELETE /api/v1/jobs/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, shared.ErrUnauthenticated)
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, chi.URLParam(r, "id")); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("delete job failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: invalid input", shared.ErrValidation)
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: invalid fields: %s", shared.ErrValidation, strings.Join(fields, ", "))
}
