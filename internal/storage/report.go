package storage

type WorkerReportRow struct {
	WorkerID             int64   `json:"worker_id"`
	WorkerName           string  `json:"worker_name"`
	DepartmentName       string  `json:"department_name"`
	DailyTarget          int     `json:"daily_target"`
	MonthlyProduction    int     `json:"monthly_production"`
	CumulativeProduction int     `json:"cumulative_production"`
	BonusPercentage      float64 `json:"bonus_percentage"`
	MonthlySalary        float64 `json:"monthly_salary"`
}
