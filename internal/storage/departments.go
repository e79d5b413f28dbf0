package storage

// EmployeeCount is never stored; both backends fill it from a live COUNT
// over workers so it cannot drift.
type Department struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	EmployeeCount int    `json:"employee_count"`
}

type CreateDepartment struct {
	Name string `json:"name"`
}
