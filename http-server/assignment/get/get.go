package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"factory-ops/http-server/response"
	"factory-ops/internal/storage"
)

type Eligible interface {
	EligibleWorkers(ctx context.Context, orderID, departmentID int64) ([]storage.Worker, error)
}

// GetEligibleWorkers lists workers free to take the order, the order's own
// incumbents first. An optional department_id narrows the pool.
func GetEligibleWorkers(log *slog.Logger, assignments Eligible) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.assignment.get.GetEligibleWorkers"

		orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		var departmentID int64
		if raw := r.URL.Query().Get("department_id"); raw != "" {
			departmentID, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid department_id", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		workers, err := assignments.EligibleWorkers(ctx, orderID, departmentID)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, workers)
	}
}
