package mysql

import (
	"context"
	"fmt"

	"factory-ops/internal/storage"
)

// ListWorkerReportRows joins each worker with its department name for the
// monthly xlsx report.
func (s *Storage) ListWorkerReportRows(ctx context.Context) ([]storage.WorkerReportRow, error) {
	const op = "storage.mysql.ListWorkerReportRows"

	rows, err := s.db.QueryContext(ctx, `
		SELECT w.id, w.name, d.name, w.daily_target, w.monthly_production,
		       w.cumulative_production, w.bonus_percentage, w.monthly_salary
		FROM workers w
		JOIN departments d ON d.id = w.department_id
		ORDER BY d.name ASC, w.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var report []storage.WorkerReportRow
	for rows.Next() {
		var r storage.WorkerReportRow
		err := rows.Scan(&r.WorkerID, &r.WorkerName, &r.DepartmentName, &r.DailyTarget,
			&r.MonthlyProduction, &r.CumulativeProduction, &r.BonusPercentage, &r.MonthlySalary)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		report = append(report, r)
	}

	return report, rows.Err()
}
