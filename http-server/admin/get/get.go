package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"factory-ops/http-server/response"
	"factory-ops/internal/storage"
)

type Departments interface {
	ListDepartments(ctx context.Context) ([]storage.Department, error)
}

func GetDepartments(log *slog.Logger, departments Departments) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.get.GetDepartments"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := departments.ListDepartments(ctx)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}
