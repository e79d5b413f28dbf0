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

type Orders interface {
	ListOrders(ctx context.Context, status storage.OrderStatus) ([]storage.Order, error)
	GetOrder(ctx context.Context, id int64) (*storage.Order, error)
}

func GetOrders(log *slog.Logger, orders Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.get.GetOrders"

		status := storage.OrderStatus(r.URL.Query().Get("status"))
		switch status {
		case "", storage.OrderStatusPending, storage.OrderStatusInProgress, storage.OrderStatusCompleted:
		default:
			http.Error(w, "invalid status filter", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := orders.ListOrders(ctx, status)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func GetOrderDetails(log *slog.Logger, orders Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.get.GetOrderDetails"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := orders.GetOrder(ctx, id)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, order)
	}
}
