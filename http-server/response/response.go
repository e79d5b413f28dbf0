package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"factory-ops/internal/storage"
)

// Err maps the domain error taxonomy to HTTP statuses. Domain errors are
// safe to surface verbatim; anything else is a persistence failure and goes
// out as a generic 500 so backend detail never leaks.
func Err(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, storage.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, storage.ErrWorkerUnavailable),
		errors.Is(err, storage.ErrOrderClosed),
		errors.Is(err, storage.ErrInsufficientStock):
		status = http.StatusConflict
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		log.Error("request failed", slog.String("op", op), slog.String("error", err.Error()))
	} else {
		log.Warn("request rejected", slog.String("op", op), slog.String("error", err.Error()))
	}

	render.Status(r, status)
	render.JSON(w, r, map[string]interface{}{"error": message})
}
