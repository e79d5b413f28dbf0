package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"factory-ops/http-server/response"
	"factory-ops/internal/storage"
)

type CreateOrder interface {
	CreateOrder(ctx context.Context, req storage.CreateOrder) (*storage.Order, error)
}

func SaveOrder(log *slog.Logger, orders CreateOrder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.save.SaveOrder"

		var req storage.CreateOrder
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Client == "" {
			http.Error(w, "client is required", http.StatusBadRequest)
			return
		}
		if len(req.Products) == 0 {
			http.Error(w, "at least one product is required", http.StatusBadRequest)
			return
		}
		for i, p := range req.Products {
			if p.Name == "" {
				http.Error(w, fmt.Sprintf("product %d: name is required", i), http.StatusBadRequest)
				return
			}
			if p.Quantity <= 0 {
				http.Error(w, fmt.Sprintf("product %d: quantity must be positive", i), http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := orders.CreateOrder(ctx, req)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("order created",
			slog.Int64("id", order.ID),
			slog.String("client", order.Client),
			slog.Int("total_quantity", order.TotalQuantity),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, order)
	}
}
