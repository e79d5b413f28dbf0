package mysql

import (
	"context"
	"fmt"

	"factory-ops/internal/storage"
)

func (s *Storage) SumOrderProduction(ctx context.Context, orderID int64) (int, error) {
	const op = "storage.mysql.SumOrderProduction"

	var sum int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM production_events WHERE order_id = ?`,
		orderID).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("%s: order id=%d: %w", op, orderID, err)
	}

	return sum, nil
}

// ApplyProduction lands the ledger entry and both derived updates in one
// transaction: either all three are visible or none is.
func (s *Storage) ApplyProduction(ctx context.Context, req storage.ProductionApply) (*storage.ProductionEvent, error) {
	const op = "storage.mysql.ApplyProduction"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO production_events (worker_id, order_id, date, quantity, order_details)
		VALUES (?, ?, ?, ?, ?)
	`, req.Event.WorkerID, req.Event.OrderID, req.Event.Date, req.Event.Quantity, req.Event.OrderDetails)
	if err != nil {
		return nil, fmt.Errorf("%s: insert event: %w", op, err)
	}

	eventID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE workers
		SET cumulative_production = cumulative_production + ?,
		    monthly_production = monthly_production + ?
		WHERE id = ?
	`, req.QuantityDelta, req.QuantityDelta, req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("%s: update worker totals id=%d: %w", op, req.WorkerID, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET completion_percentage = ?, status = ? WHERE id = ?`,
		req.Completion, req.OrderStatus, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%s: update order completion id=%d: %w", op, req.OrderID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	event := req.Event
	event.ID = eventID

	return &event, nil
}

func (s *Storage) ListOrderEvents(ctx context.Context, orderID int64) ([]storage.ProductionEvent, error) {
	const op = "storage.mysql.ListOrderEvents"

	return s.listEvents(ctx, op, `order_id`, orderID)
}

func (s *Storage) ListWorkerEvents(ctx context.Context, workerID int64) ([]storage.ProductionEvent, error) {
	const op = "storage.mysql.ListWorkerEvents"

	return s.listEvents(ctx, op, `worker_id`, workerID)
}

func (s *Storage) listEvents(ctx context.Context, op, column string, id int64) ([]storage.ProductionEvent, error) {
	query := fmt.Sprintf(`
		SELECT id, worker_id, order_id, date, quantity, order_details
		FROM production_events WHERE %s = ? ORDER BY id ASC`, column)

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var events []storage.ProductionEvent
	for rows.Next() {
		var e storage.ProductionEvent
		err := rows.Scan(&e.ID, &e.WorkerID, &e.OrderID, &e.Date, &e.Quantity, &e.OrderDetails)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
