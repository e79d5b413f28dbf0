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

type Admin interface {
	CreateDepartment(ctx context.Context, req storage.CreateDepartment) (*storage.Department, error)
	ResetAll(ctx context.Context) error
}

func SaveDepartment(log *slog.Logger, admin Admin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.save.SaveDepartment"

		var req storage.CreateDepartment
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		dept, err := admin.CreateDepartment(ctx, req)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("department created", slog.Int64("id", dept.ID), slog.String("name", dept.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, dept)
	}
}

// ResetAll wipes every collection. The request must carry an explicit
// confirmation; a bare POST is refused.
func ResetAll(log *slog.Logger, admin Admin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.save.ResetAll"

		var req struct {
			Confirm bool `json:"confirm"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if !req.Confirm {
			http.Error(w, "reset requires confirm=true", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		if err := admin.ResetAll(ctx); err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Warn("all data wiped", slog.String("op", op))

		render.JSON(w, r, map[string]interface{}{"status": "ok"})
	}
}
