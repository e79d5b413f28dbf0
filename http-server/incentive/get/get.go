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
	"factory-ops/internal/service/incentive"
	"factory-ops/internal/storage"
)

type Workers interface {
	GetWorker(ctx context.Context, id int64) (*storage.Worker, error)
}

// GetWorkerBonus computes the bonus under the policy named in the query;
// the policy is always an explicit caller choice.
func GetWorkerBonus(log *slog.Logger, workers Workers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.incentive.get.GetWorkerBonus"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid worker id", http.StatusBadRequest)
			return
		}

		policy, err := incentive.ParsePolicy(r.URL.Query().Get("policy"))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		worker, err := workers.GetWorker(ctx, id)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"worker_id":          worker.ID,
			"policy":             policy,
			"monthly_production": worker.MonthlyProduction,
			"daily_target":       worker.DailyTarget,
			"bonus":              incentive.Bonus(worker, policy),
		})
	}
}
