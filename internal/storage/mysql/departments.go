package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"factory-ops/internal/storage"
)

func (s *Storage) CreateDepartment(ctx context.Context, req storage.CreateDepartment) (*storage.Department, error) {
	const op = "storage.mysql.CreateDepartment"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO departments (name) VALUES (?)`, req.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: insert department %q: %w", op, req.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.Department{ID: id, Name: req.Name}, nil
}

func (s *Storage) GetDepartment(ctx context.Context, id int64) (*storage.Department, error) {
	const op = "storage.mysql.GetDepartment"

	row := s.db.QueryRowContext(ctx, `
		SELECT d.id, d.name, COUNT(w.id)
		FROM departments d
		LEFT JOIN workers w ON w.department_id = d.id
		WHERE d.id = ?
		GROUP BY d.id, d.name
	`, id)

	var d storage.Department
	err := row.Scan(&d.ID, &d.Name, &d.EmployeeCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: department id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &d, nil
}

// ListDepartments counts members with a live join, nothing cached.
func (s *Storage) ListDepartments(ctx context.Context) ([]storage.Department, error) {
	const op = "storage.mysql.ListDepartments"

	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.name, COUNT(w.id)
		FROM departments d
		LEFT JOIN workers w ON w.department_id = d.id
		GROUP BY d.id, d.name
		ORDER BY d.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var departments []storage.Department
	for rows.Next() {
		var d storage.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.EmployeeCount); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}
