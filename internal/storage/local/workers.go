package local

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"factory-ops/internal/storage"
)

func (s *Storage) CreateWorker(ctx context.Context, req storage.CreateWorker) (*storage.Worker, error) {
	const op = "storage.local.CreateWorker"

	row := worker{
		Name:            req.Name,
		DepartmentID:    req.DepartmentID,
		DailyTarget:     req.DailyTarget,
		BonusPercentage: req.BonusPercentage,
		MonthlySalary:   req.MonthlySalary,
		Attendance:      string(storage.AttendanceAvailable),
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entity := row.toEntity()
	return &entity, nil
}

func (s *Storage) GetWorker(ctx context.Context, id int64) (*storage.Worker, error) {
	const op = "storage.local.GetWorker"

	var row worker
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: worker id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entity := row.toEntity()
	return &entity, nil
}

func (s *Storage) ListWorkers(ctx context.Context, departmentID int64) ([]storage.Worker, error) {
	const op = "storage.local.ListWorkers"

	q := s.db.WithContext(ctx).Order("id ASC")
	if departmentID != 0 {
		q = q.Where("department_id = ?", departmentID)
	}

	var rows []worker
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return workersToEntities(rows), nil
}

func (s *Storage) ListEligibleWorkers(ctx context.Context, orderID, departmentID int64) ([]storage.Worker, error) {
	const op = "storage.local.ListEligibleWorkers"

	q := s.db.WithContext(ctx).
		Where("attendance = ?", storage.AttendanceAvailable).
		Where("current_order_id IS NULL OR current_order_id = ?", orderID).
		Order("id ASC")
	if departmentID != 0 {
		q = q.Where("department_id = ?", departmentID)
	}

	var rows []worker
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// incumbents surface first, insertion order otherwise
	var incumbents, free []storage.Worker
	for _, r := range rows {
		w := r.toEntity()
		if r.CurrentOrderID != nil && *r.CurrentOrderID == orderID {
			incumbents = append(incumbents, w)
		} else {
			free = append(free, w)
		}
	}

	return append(incumbents, free...), nil
}

func (s *Storage) ApplyAssignment(ctx context.Context, req storage.AssignmentApply) error {
	const op = "storage.local.ApplyAssignment"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&worker{}).Where("id = ?", req.WorkerID).
			Update("current_order_id", req.OrderID).Error; err != nil {
			return fmt.Errorf("bind worker id=%d: %w", req.WorkerID, err)
		}

		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&orderWorker{OrderID: req.OrderID, WorkerID: req.WorkerID}).Error
		if err != nil {
			return fmt.Errorf("history order=%d worker=%d: %w", req.OrderID, req.WorkerID, err)
		}

		if req.PromoteOrder {
			err := tx.Model(&order{}).
				Where("id = ? AND status = ?", req.OrderID, storage.OrderStatusPending).
				Update("status", storage.OrderStatusInProgress).Error
			if err != nil {
				return fmt.Errorf("promote order id=%d: %w", req.OrderID, err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) ReleaseWorker(ctx context.Context, workerID int64) error {
	const op = "storage.local.ReleaseWorker"

	err := s.db.WithContext(ctx).Model(&worker{}).Where("id = ?", workerID).
		Update("current_order_id", nil).Error
	if err != nil {
		return fmt.Errorf("%s: worker id=%d: %w", op, workerID, err)
	}

	return nil
}

func (s *Storage) SetAttendance(ctx context.Context, workerID int64, attendance storage.Attendance) error {
	const op = "storage.local.SetAttendance"

	updates := map[string]interface{}{"attendance": string(attendance)}
	if attendance == storage.AttendanceAbsent {
		updates["current_order_id"] = nil
	}

	err := s.db.WithContext(ctx).Model(&worker{}).Where("id = ?", workerID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("%s: worker id=%d: %w", op, workerID, err)
	}

	return nil
}

func (s *Storage) DeleteWorker(ctx context.Context, id int64) error {
	const op = "storage.local.DeleteWorker"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", id).Delete(&productionEvent{}).Error; err != nil {
			return fmt.Errorf("delete events: %w", err)
		}
		if err := tx.Where("worker_id = ?", id).Delete(&orderWorker{}).Error; err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
		if err := tx.Delete(&worker{}, id).Error; err != nil {
			return fmt.Errorf("delete worker: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: worker id=%d: %w", op, id, err)
	}

	return nil
}

func workersToEntities(rows []worker) []storage.Worker {
	var workers []storage.Worker
	for _, r := range rows {
		workers = append(workers, r.toEntity())
	}
	return workers
}
