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

type Inventory interface {
	Items(ctx context.Context, category storage.ItemCategory) ([]storage.InventoryItem, error)
	LowStockItems(ctx context.Context) ([]storage.InventoryItem, error)
	ItemTransactions(ctx context.Context, itemID int64) ([]storage.InventoryTransaction, error)
	Valuation(ctx context.Context, category storage.ItemCategory) (float64, error)
}

func parseCategory(raw string) (storage.ItemCategory, bool) {
	category := storage.ItemCategory(raw)
	switch category {
	case "", storage.CategoryRawMaterial, storage.CategoryFinishedGood:
		return category, true
	}
	return "", false
}

func GetItems(log *slog.Logger, inventory Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inventory.get.GetItems"

		category, ok := parseCategory(r.URL.Query().Get("category"))
		if !ok {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := inventory.Items(ctx, category)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, items)
	}
}

func GetLowStockItems(log *slog.Logger, inventory Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inventory.get.GetLowStockItems"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := inventory.LowStockItems(ctx)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, items)
	}
}

func GetValuation(log *slog.Logger, inventory Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inventory.get.GetValuation"

		category, ok := parseCategory(r.URL.Query().Get("category"))
		if !ok {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		total, err := inventory.Valuation(ctx, category)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"category": category,
			"total":    total,
		})
	}
}

func GetItemTransactions(log *slog.Logger, inventory Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inventory.get.GetItemTransactions"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid item id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		txs, err := inventory.ItemTransactions(ctx, id)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, txs)
	}
}
