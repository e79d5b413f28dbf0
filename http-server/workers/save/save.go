package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"factory-ops/http-server/response"
	"factory-ops/internal/storage"
)

type CreateWorker interface {
	CreateWorker(ctx context.Context, req storage.CreateWorker) (*storage.Worker, error)
	GetDepartment(ctx context.Context, id int64) (*storage.Department, error)
}

func SaveWorker(log *slog.Logger, workers CreateWorker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.save.SaveWorker"

		var req storage.CreateWorker
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if req.DailyTarget < 0 || req.MonthlySalary < 0 {
			http.Error(w, "daily_target and monthly_salary must not be negative", http.StatusBadRequest)
			return
		}
		if req.BonusPercentage < 0 || req.BonusPercentage > 100 {
			http.Error(w, "bonus_percentage must be between 0 and 100", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		// department is a hard reference, not a free-form name
		if _, err := workers.GetDepartment(ctx, req.DepartmentID); err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		worker, err := workers.CreateWorker(ctx, req)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("worker created", slog.Int64("id", worker.ID), slog.String("name", worker.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, worker)
	}
}
