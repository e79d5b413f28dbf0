package local

import (
	"context"
	"fmt"

	"factory-ops/internal/storage"
)

func (s *Storage) ListWorkerReportRows(ctx context.Context) ([]storage.WorkerReportRow, error) {
	const op = "storage.local.ListWorkerReportRows"

	var rows []struct {
		WorkerID             int64
		WorkerName           string
		DepartmentName       string
		DailyTarget          int
		MonthlyProduction    int
		CumulativeProduction int
		BonusPercentage      float64
		MonthlySalary        float64
	}

	err := s.db.WithContext(ctx).Model(&worker{}).
		Select(`workers.id AS worker_id, workers.name AS worker_name,
			departments.name AS department_name, workers.daily_target,
			workers.monthly_production, workers.cumulative_production,
			workers.bonus_percentage, workers.monthly_salary`).
		Joins("JOIN departments ON departments.id = workers.department_id").
		Order("departments.name ASC, workers.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var report []storage.WorkerReportRow
	for _, r := range rows {
		report = append(report, storage.WorkerReportRow(r))
	}

	return report, nil
}
