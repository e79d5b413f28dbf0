package local

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"factory-ops/internal/storage"
)

func (s *Storage) CreateDepartment(ctx context.Context, req storage.CreateDepartment) (*storage.Department, error) {
	const op = "storage.local.CreateDepartment"

	row := department{Name: req.Name}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("%s: department %q: %w", op, req.Name, err)
	}

	return &storage.Department{ID: row.ID, Name: row.Name}, nil
}

func (s *Storage) GetDepartment(ctx context.Context, id int64) (*storage.Department, error) {
	const op = "storage.local.GetDepartment"

	var row department
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: department id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var count int64
	err = s.db.WithContext(ctx).Model(&worker{}).Where("department_id = ?", id).Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("%s: count members: %w", op, err)
	}

	return &storage.Department{ID: row.ID, Name: row.Name, EmployeeCount: int(count)}, nil
}

func (s *Storage) ListDepartments(ctx context.Context) ([]storage.Department, error) {
	const op = "storage.local.ListDepartments"

	var rows []struct {
		ID            int64
		Name          string
		EmployeeCount int
	}

	err := s.db.WithContext(ctx).Model(&department{}).
		Select("departments.id, departments.name, COUNT(workers.id) AS employee_count").
		Joins("LEFT JOIN workers ON workers.department_id = departments.id").
		Group("departments.id, departments.name").
		Order("departments.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var departments []storage.Department
	for _, r := range rows {
		departments = append(departments, storage.Department{ID: r.ID, Name: r.Name, EmployeeCount: r.EmployeeCount})
	}

	return departments, nil
}
