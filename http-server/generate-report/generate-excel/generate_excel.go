package generate_excel

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"factory-ops/http-server/response"
	"factory-ops/internal/service/incentive"
)

type ReportGenerator interface {
	MonthlyReport(ctx context.Context, policy incentive.Policy) ([]byte, error)
}

func GenerateReportExcel(log *slog.Logger, reports ReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReportExcel"

		policy, err := incentive.ParsePolicy(r.URL.Query().Get("policy"))
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		data, err := reports.MonthlyReport(ctx, policy)
		if err != nil {
			response.Err(w, r, log, op, err)
			return
		}

		log.Info("report generated", slog.String("policy", string(policy)), slog.Int("bytes", len(data)))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="production_report.xlsx"`)
		w.Write(data)
	}
}
