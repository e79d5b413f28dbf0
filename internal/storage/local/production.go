package local

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"factory-ops/internal/storage"
)

func (s *Storage) SumOrderProduction(ctx context.Context, orderID int64) (int, error) {
	const op = "storage.local.SumOrderProduction"

	var sum int
	err := s.db.WithContext(ctx).Model(&productionEvent{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("%s: order id=%d: %w", op, orderID, err)
	}

	return sum, nil
}

func (s *Storage) ApplyProduction(ctx context.Context, req storage.ProductionApply) (*storage.ProductionEvent, error) {
	const op = "storage.local.ApplyProduction"

	row := productionEvent{
		WorkerID:     req.Event.WorkerID,
		OrderID:      req.Event.OrderID,
		Date:         req.Event.Date,
		Quantity:     req.Event.Quantity,
		OrderDetails: req.Event.OrderDetails,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("insert event: %w", err)
		}

		err := tx.Model(&worker{}).Where("id = ?", req.WorkerID).Updates(map[string]interface{}{
			"cumulative_production": gorm.Expr("cumulative_production + ?", req.QuantityDelta),
			"monthly_production":    gorm.Expr("monthly_production + ?", req.QuantityDelta),
		}).Error
		if err != nil {
			return fmt.Errorf("update worker totals id=%d: %w", req.WorkerID, err)
		}

		err = tx.Model(&order{}).Where("id = ?", req.OrderID).Updates(map[string]interface{}{
			"completion_percentage": req.Completion,
			"status":                string(req.OrderStatus),
		}).Error
		if err != nil {
			return fmt.Errorf("update order completion id=%d: %w", req.OrderID, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entity := row.toEntity()
	return &entity, nil
}

func (s *Storage) ListOrderEvents(ctx context.Context, orderID int64) ([]storage.ProductionEvent, error) {
	const op = "storage.local.ListOrderEvents"

	return s.listEvents(ctx, op, "order_id = ?", orderID)
}

func (s *Storage) ListWorkerEvents(ctx context.Context, workerID int64) ([]storage.ProductionEvent, error) {
	const op = "storage.local.ListWorkerEvents"

	return s.listEvents(ctx, op, "worker_id = ?", workerID)
}

func (s *Storage) listEvents(ctx context.Context, op, cond string, id int64) ([]storage.ProductionEvent, error) {
	var rows []productionEvent
	err := s.db.WithContext(ctx).Where(cond, id).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var events []storage.ProductionEvent
	for _, r := range rows {
		events = append(events, r.toEntity())
	}

	return events, nil
}
