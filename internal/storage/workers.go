package storage

type Attendance string

const (
	AttendanceAvailable Attendance = "available"
	AttendanceAbsent    Attendance = "absent"
)

// Worker keeps attendance and the live assignment as two separate fields.
// CurrentOrderID is the single authoritative assignment; the per-order
// history lives in the order_workers table.
type Worker struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	DepartmentID         int64      `json:"department_id"`
	DailyTarget          int        `json:"daily_target"`
	CumulativeProduction int        `json:"cumulative_production"`
	MonthlyProduction    int        `json:"monthly_production"`
	BonusPercentage      float64    `json:"bonus_percentage"`
	MonthlySalary        float64    `json:"monthly_salary,omitempty"`
	Attendance           Attendance `json:"attendance"`
	CurrentOrderID       *int64     `json:"current_order_id,omitempty"`
}

func (w *Worker) Busy() bool {
	return w.CurrentOrderID != nil
}

type CreateWorker struct {
	Name            string  `json:"name"`
	DepartmentID    int64   `json:"department_id"`
	DailyTarget     int     `json:"daily_target"`
	BonusPercentage float64 `json:"bonus_percentage"`
	MonthlySalary   float64 `json:"monthly_salary,omitempty"`
}

// AssignmentApply is the transactional write for one assign call: bind the
// worker, append to the order's worker history (idempotent) and, when the
// order was still pending, promote it to in_progress.
type AssignmentApply struct {
	WorkerID     int64
	OrderID      int64
	PromoteOrder bool
}
