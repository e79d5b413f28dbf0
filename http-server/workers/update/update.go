package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"factory-ops/http-server/response"
	"factory-ops/internal/storage"
)

type Attendance interface {
	SetAttendance(ctx context.Context, workerID int64, attendance storage.Attendance) error
	Release(ctx context.Context, workerID int64) error
}

type Deleter interface {
	DeleteWorker(ctx context.Context, id int64) error
}

func UpdateAttendance(log *slog.Logger, workers Attendance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.update.UpdateAttendance"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var req struct {
			Attendance storage.Attendance `json:"attendance"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := workers.SetAttendance(ctx, id, req.Attendance); err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("attendance updated", slog.Int64("worker_id", id), slog.String("attendance", string(req.Attendance)))

		render.JSON(w, r, map[string]interface{}{"status": "ok", "worker_id": id})
	}
}

func ReleaseWorker(log *slog.Logger, workers Attendance) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.update.ReleaseWorker"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := workers.Release(ctx, id); err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("worker released", slog.Int64("worker_id", id))

		render.JSON(w, r, map[string]interface{}{"status": "ok", "worker_id": id})
	}
}

func DeleteWorker(log *slog.Logger, workers Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.update.DeleteWorker"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := workers.DeleteWorker(ctx, id); err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("worker deleted", slog.Int64("worker_id", id))

		render.JSON(w, r, map[string]interface{}{"status": "ok", "worker_id": id})
	}
}
