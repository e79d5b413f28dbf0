package update

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"factory-ops/http-server/response"
)

type Deleter interface {
	DeleteOrder(ctx context.Context, id int64) error
}

// DeleteOrder removes the order with its products, worker history and
// production events, releasing any workers still bound to it.
func DeleteOrder(log *slog.Logger, orders Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.update.DeleteOrder"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := orders.DeleteOrder(ctx, id); err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("order deleted", slog.Int64("order_id", id))

		render.JSON(w, r, map[string]interface{}{"status": "ok", "order_id": id})
	}
}
