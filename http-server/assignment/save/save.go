package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"factory-ops/http-server/response"
)

type Assigner interface {
	Assign(ctx context.Context, workerID, orderID int64) error
}

func AssignWorker(log *slog.Logger, assignments Assigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.assignment.save.AssignWorker"

		var req struct {
			WorkerID int64 `json:"worker_id"`
			OrderID  int64 `json:"order_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.WorkerID == 0 || req.OrderID == 0 {
			http.Error(w, "worker_id and order_id are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := assignments.Assign(ctx, req.WorkerID, req.OrderID); err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("worker assigned",
			slog.Int64("worker_id", req.WorkerID),
			slog.Int64("order_id", req.OrderID),
		)

		render.JSON(w, r, map[string]interface{}{
			"status":    "ok",
			"worker_id": req.WorkerID,
			"order_id":  req.OrderID,
		})
	}
}
