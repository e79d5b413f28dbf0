package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"factory-ops/internal/storage"
)

func (s *Storage) CreateWorker(ctx context.Context, req storage.CreateWorker) (*storage.Worker, error) {
	const op = "storage.mysql.CreateWorker"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO workers
		(name, department_id, daily_target, bonus_percentage, monthly_salary, attendance)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.Name, req.DepartmentID, req.DailyTarget, req.BonusPercentage, req.MonthlySalary, storage.AttendanceAvailable)
	if err != nil {
		return nil, fmt.Errorf("%s: insert worker: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetWorker(ctx, id)
}

func (s *Storage) GetWorker(ctx context.Context, id int64) (*storage.Worker, error) {
	const op = "storage.mysql.GetWorker"

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, department_id, daily_target, cumulative_production,
		       monthly_production, bonus_percentage, monthly_salary, attendance, current_order_id
		FROM workers WHERE id = ?
	`, id)

	w, err := scanWorker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: worker id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return w, nil
}

func (s *Storage) ListWorkers(ctx context.Context, departmentID int64) ([]storage.Worker, error) {
	const op = "storage.mysql.ListWorkers"

	query := `
		SELECT id, name, department_id, daily_target, cumulative_production,
		       monthly_production, bonus_percentage, monthly_salary, attendance, current_order_id
		FROM workers`
	var args []interface{}
	if departmentID != 0 {
		query += ` WHERE department_id = ?`
		args = append(args, departmentID)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var workers []storage.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		workers = append(workers, *w)
	}

	return workers, rows.Err()
}

// ListEligibleWorkers returns available workers holding no assignment, plus
// the order's own incumbents, incumbents first. Insertion order otherwise.
func (s *Storage) ListEligibleWorkers(ctx context.Context, orderID, departmentID int64) ([]storage.Worker, error) {
	const op = "storage.mysql.ListEligibleWorkers"

	query := `
		SELECT id, name, department_id, daily_target, cumulative_production,
		       monthly_production, bonus_percentage, monthly_salary, attendance, current_order_id
		FROM workers
		WHERE attendance = ?
		  AND (current_order_id IS NULL OR current_order_id = ?)`
	args := []interface{}{storage.AttendanceAvailable, orderID}

	if departmentID != 0 {
		query += ` AND department_id = ?`
		args = append(args, departmentID)
	}
	query += ` ORDER BY (current_order_id <=> ?) DESC, id ASC`
	args = append(args, orderID)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var workers []storage.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		workers = append(workers, *w)
	}

	return workers, rows.Err()
}

func (s *Storage) ApplyAssignment(ctx context.Context, req storage.AssignmentApply) error {
	const op = "storage.mysql.ApplyAssignment"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE workers SET current_order_id = ? WHERE id = ?`,
		req.OrderID, req.WorkerID)
	if err != nil {
		return fmt.Errorf("%s: bind worker id=%d: %w", op, req.WorkerID, err)
	}

	// history is append-only; reassigning the same pair is a no-op
	_, err = tx.ExecContext(ctx,
		`INSERT IGNORE INTO order_workers (order_id, worker_id) VALUES (?, ?)`,
		req.OrderID, req.WorkerID)
	if err != nil {
		return fmt.Errorf("%s: history order=%d worker=%d: %w", op, req.OrderID, req.WorkerID, err)
	}

	if req.PromoteOrder {
		_, err = tx.ExecContext(ctx,
			`UPDATE orders SET status = ? WHERE id = ? AND status = ?`,
			storage.OrderStatusInProgress, req.OrderID, storage.OrderStatusPending)
		if err != nil {
			return fmt.Errorf("%s: promote order id=%d: %w", op, req.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) ReleaseWorker(ctx context.Context, workerID int64) error {
	const op = "storage.mysql.ReleaseWorker"

	_, err := s.db.ExecContext(ctx,
		`UPDATE workers SET current_order_id = NULL WHERE id = ?`, workerID)
	if err != nil {
		return fmt.Errorf("%s: worker id=%d: %w", op, workerID, err)
	}

	return nil
}

// SetAttendance clears the live assignment when a worker goes absent; the
// order's worker history is untouched.
func (s *Storage) SetAttendance(ctx context.Context, workerID int64, attendance storage.Attendance) error {
	const op = "storage.mysql.SetAttendance"

	query := `UPDATE workers SET attendance = ? WHERE id = ?`
	if attendance == storage.AttendanceAbsent {
		query = `UPDATE workers SET attendance = ?, current_order_id = NULL WHERE id = ?`
	}

	_, err := s.db.ExecContext(ctx, query, attendance, workerID)
	if err != nil {
		return fmt.Errorf("%s: worker id=%d: %w", op, workerID, err)
	}

	return nil
}

func (s *Storage) DeleteWorker(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteWorker"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM production_events WHERE worker_id = ?`,
		`DELETE FROM order_workers WHERE worker_id = ?`,
		`DELETE FROM workers WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("%s: worker id=%d: %w", op, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorker(row rowScanner) (*storage.Worker, error) {
	var w storage.Worker
	var currentOrder sql.NullInt64

	err := row.Scan(&w.ID, &w.Name, &w.DepartmentID, &w.DailyTarget,
		&w.CumulativeProduction, &w.MonthlyProduction, &w.BonusPercentage,
		&w.MonthlySalary, &w.Attendance, &currentOrder)
	if err != nil {
		return nil, err
	}

	if currentOrder.Valid {
		w.CurrentOrderID = &currentOrder.Int64
	}

	return &w, nil
}
