package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "factory-ops/http-server/admin/get"
	saveadmin "factory-ops/http-server/admin/save"
	getassign "factory-ops/http-server/assignment/get"
	saveassign "factory-ops/http-server/assignment/save"
	generate_excel "factory-ops/http-server/generate-report/generate-excel"
	getbonus "factory-ops/http-server/incentive/get"
	getinventory "factory-ops/http-server/inventory/get"
	saveinventory "factory-ops/http-server/inventory/save"
	getorders "factory-ops/http-server/orders/get"
	saveorders "factory-ops/http-server/orders/save"
	uporders "factory-ops/http-server/orders/update"
	getproduction "factory-ops/http-server/production/get"
	saveproduction "factory-ops/http-server/production/save"
	getworkers "factory-ops/http-server/workers/get"
	saveworkers "factory-ops/http-server/workers/save"
	upworkers "factory-ops/http-server/workers/update"
	"factory-ops/internal/config"
	"factory-ops/internal/middleware/auth"
	"factory-ops/internal/service/assignment"
	"factory-ops/internal/service/inventory"
	"factory-ops/internal/service/production"
	"factory-ops/internal/service/report"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	store Store,
	prodService *production.Service,
	assignService *assignment.Service,
	invService *inventory.Service,
	reportService *report.Service,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// workers
	router.Get("/api/workers", getworkers.GetWorkers(log, store))
	router.Get("/api/workers/{id}", getworkers.GetWorker(log, store))
	router.Post("/api/workers", saveworkers.SaveWorker(log, store))
	router.Put("/api/workers/{id}/attendance", upworkers.UpdateAttendance(log, assignService))
	router.Post("/api/workers/{id}/release", upworkers.ReleaseWorker(log, assignService))
	router.Delete("/api/workers/{id}", upworkers.DeleteWorker(log, store))
	router.Get("/api/workers/{id}/bonus", getbonus.GetWorkerBonus(log, store))

	// orders
	router.Get("/api/orders", getorders.GetOrders(log, store))
	router.Get("/api/orders/{id}", getorders.GetOrderDetails(log, store))
	router.Post("/api/orders", saveorders.SaveOrder(log, store))
	router.Delete("/api/orders/{id}", uporders.DeleteOrder(log, store))

	// assignment
	router.Get("/api/orders/{id}/eligible-workers", getassign.GetEligibleWorkers(log, assignService))
	router.Post("/api/assignments", saveassign.AssignWorker(log, assignService))

	// production ledger
	router.Post("/api/production", saveproduction.RecordProduction(log, prodService))
	router.Get("/api/production/order/{id}", getproduction.GetOrderEvents(log, prodService))
	router.Get("/api/production/worker/{id}", getproduction.GetWorkerEvents(log, prodService))

	// inventory
	router.Get("/api/inventory", getinventory.GetItems(log, invService))
	router.Post("/api/inventory", saveinventory.SaveItem(log, invService))
	router.Get("/api/inventory/low-stock", getinventory.GetLowStockItems(log, invService))
	router.Get("/api/inventory/valuation", getinventory.GetValuation(log, invService))
	router.Get("/api/inventory/{id}/transactions", getinventory.GetItemTransactions(log, invService))
	router.Post("/api/inventory/transactions", saveinventory.SaveTransaction(log, invService))

	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, reportService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/departments", getadmin.GetDepartments(log, store))
	adminRouter.Post("/departments", saveadmin.SaveDepartment(log, store))
	adminRouter.Post("/reset", saveadmin.ResetAll(log, store))

	router.Mount("/api/admin", adminRouter)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}
