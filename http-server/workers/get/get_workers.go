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

type Workers interface {
	ListWorkers(ctx context.Context, departmentID int64) ([]storage.Worker, error)
	GetWorker(ctx context.Context, id int64) (*storage.Worker, error)
}

func GetWorkers(log *slog.Logger, workers Workers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.get.GetWorkers"

		var departmentID int64
		if raw := r.URL.Query().Get("department_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid department_id", http.StatusBadRequest)
				return
			}
			departmentID = id
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := workers.ListWorkers(ctx, departmentID)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func GetWorker(log *slog.Logger, workers Workers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.get.GetWorker"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		worker, err := workers.GetWorker(ctx, id)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, worker)
	}
}
