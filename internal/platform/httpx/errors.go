package httpx

import (
	"errors"
	"net/http"

	"github.com/jobdeck/jobdeck/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807. Internal
// errors are reported with a generic body so no store detail leaks to clients.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, shared.ErrPayloadTooLarge):
		Problem(w, http.StatusRequestEntityTooLarge, "Payload Too Large", err.Error())
	case errors.Is(err, shared.ErrDuplicateEmail):
		Problem(w, http.StatusConflict, "Duplicate", shared.ErrDuplicateEmail.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Unauthorized", shared.ErrInvalidCredentials.Error())
	case errors.Is(err, shared.ErrUnauthenticated):
		Problem(w, http.StatusUnauthorized, "Unauthorized", shared.ErrUnauthenticated.Error())
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", shared.ErrNotFound.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
