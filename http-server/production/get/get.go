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

type Events interface {
	OrderEvents(ctx context.Context, orderID int64) ([]storage.ProductionEvent, error)
	WorkerEvents(ctx context.Context, workerID int64) ([]storage.ProductionEvent, error)
}

func GetOrderEvents(log *slog.Logger, ledger Events) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.GetOrderEvents"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		events, err := ledger.OrderEvents(ctx, id)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, events)
	}
}

func GetWorkerEvents(log *slog.Logger, ledger Events) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.GetWorkerEvents"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid worker id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		events, err := ledger.WorkerEvents(ctx, id)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, events)
	}
}
