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

type Inventory interface {
	CreateItem(ctx context.Context, req storage.CreateInventoryItem) (*storage.InventoryItem, error)
	ApplyTransaction(ctx context.Context, itemID int64, txType storage.TransactionType, quantity float64, notes string) (*storage.InventoryTransaction, error)
}

func SaveItem(log *slog.Logger, inventory Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inventory.save.SaveItem"

		var req storage.CreateInventoryItem
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		item, err := inventory.CreateItem(ctx, req)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("inventory item created", slog.Int64("id", item.ID), slog.String("name", item.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, item)
	}
}

func SaveTransaction(log *slog.Logger, inventory Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inventory.save.SaveTransaction"

		var req struct {
			ItemID   int64                   `json:"item_id"`
			Type     storage.TransactionType `json:"type"`
			Quantity float64                 `json:"quantity"`
			Notes    string                  `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.ItemID == 0 {
			http.Error(w, "item_id is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tx, err := inventory.ApplyTransaction(ctx, req.ItemID, req.Type, req.Quantity, req.Notes)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("inventory transaction applied",
			slog.Int64("transaction_id", tx.ID),
			slog.Int64("item_id", req.ItemID),
			slog.String("type", string(req.Type)),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, tx)
	}
}
