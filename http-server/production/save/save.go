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

type Recorder interface {
	RecordProduction(ctx context.Context, workerID, orderID int64, quantity int) (*storage.ProductionEvent, error)
}

func RecordProduction(log *slog.Logger, ledger Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.save.RecordProduction"

		var req struct {
			WorkerID int64 `json:"worker_id"`
			OrderID  int64 `json:"order_id"`
			Quantity int   `json:"quantity"`
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

		event, err := ledger.RecordProduction(ctx, req.WorkerID, req.OrderID, req.Quantity)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("production recorded",
			slog.Int64("event_id", event.ID),
			slog.Int64("worker_id", req.WorkerID),
			slog.Int64("order_id", req.OrderID),
			slog.Int("quantity", req.Quantity),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, event)
	}
}
