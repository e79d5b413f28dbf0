package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"factory-ops/internal/config"
	"factory-ops/internal/service/assignment"
	"factory-ops/internal/service/inventory"
	"factory-ops/internal/service/production"
	"factory-ops/internal/service/report"
	"factory-ops/internal/storage"
	"factory-ops/internal/storage/local"
	"factory-ops/internal/storage/mysql"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// Store is the full entity-store surface the engine needs; the mysql and
// local backends both provide it.
type Store interface {
	production.LedgerStorage
	assignment.AssignmentStorage
	inventory.LedgerStorage
	report.ReportStorage

	CreateWorker(ctx context.Context, req storage.CreateWorker) (*storage.Worker, error)
	ListWorkers(ctx context.Context, departmentID int64) ([]storage.Worker, error)
	DeleteWorker(ctx context.Context, id int64) error
	CreateOrder(ctx context.Context, req storage.CreateOrder) (*storage.Order, error)
	ListOrders(ctx context.Context, status storage.OrderStatus) ([]storage.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	CreateDepartment(ctx context.Context, req storage.CreateDepartment) (*storage.Department, error)
	GetDepartment(ctx context.Context, id int64) (*storage.Department, error)
	ListDepartments(ctx context.Context) ([]storage.Department, error)
	ResetAll(ctx context.Context) error
}

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env)

	store, err := openStorage(*cfg)
	if err != nil {
		log.Error("failed to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	prodService := production.NewService(store)
	assignService := assignment.NewService(store)
	invService := inventory.NewService(store)
	reportService := report.NewService(store)

	log.Info("server started",
		slog.String("address", cfg.Address),
		slog.String("storage", cfg.StorageDriver),
	)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, store, prodService, assignService, invService, reportService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
	}
}

func openStorage(cfg config.Config) (Store, error) {
	if cfg.StorageDriver == "local" {
		return local.New(cfg.LocalDBPath)
	}
	return mysql.New(cfg)
}

type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		if err = h.coreHandler.Handle(ctx, r); err != nil {
			return err
		}
	}

	// errors additionally land in the error log file
	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func setupLogger(env string) *slog.Logger {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	var coreHandler slog.Handler
	switch env {
	case envDev:
		coreHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	case envLocal, envProd:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	errorFile, err := os.OpenFile("errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		slog.Warn("cannot open error log file", "error", err)
		return slog.New(coreHandler)
	}

	errorHandler := slog.NewTextHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  coreHandler,
		errorHandler: errorHandler,
	})
}
