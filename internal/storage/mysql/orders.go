package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"factory-ops/internal/storage"
)

func (s *Storage) CreateOrder(ctx context.Context, req storage.CreateOrder) (*storage.Order, error) {
	const op = "storage.mysql.CreateOrder"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders
		(client, total_quantity, entry_date, delivery_date, receiving_date, status, completion_percentage)
		VALUES (?, ?, ?, ?, ?, ?, 0)
	`, req.Client, req.TotalQuantity(), req.EntryDate, req.DeliveryDate, req.ReceivingDate, storage.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("%s: insert order: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_products (order_id, name, type, quantity) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: prepare products: %w", op, err)
	}
	defer stmt.Close()

	for _, p := range req.Products {
		if _, err := stmt.ExecContext(ctx, id, p.Name, p.Type, p.Quantity); err != nil {
			return nil, fmt.Errorf("%s: insert product %q for order id=%d: %w", op, p.Name, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return s.GetOrder(ctx, id)
}

func (s *Storage) GetOrder(ctx context.Context, id int64) (*storage.Order, error) {
	const op = "storage.mysql.GetOrder"

	row := s.db.QueryRowContext(ctx, `
		SELECT id, client, total_quantity, entry_date, delivery_date, receiving_date,
		       status, completion_percentage
		FROM orders WHERE id = ?
	`, id)

	var o storage.Order
	err := row.Scan(&o.ID, &o.Client, &o.TotalQuantity, &o.EntryDate,
		&o.DeliveryDate, &o.ReceivingDate, &o.Status, &o.CompletionPercentage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: order id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	o.Products, err = s.orderProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	o.AssignedWorkerIDs, err = s.orderWorkerHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &o, nil
}

func (s *Storage) ListOrders(ctx context.Context, status storage.OrderStatus) ([]storage.Order, error) {
	const op = "storage.mysql.ListOrders"

	query := `
		SELECT id, client, total_quantity, entry_date, delivery_date, receiving_date,
		       status, completion_percentage
		FROM orders`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []storage.Order
	for rows.Next() {
		var o storage.Order
		err := rows.Scan(&o.ID, &o.Client, &o.TotalQuantity, &o.EntryDate,
			&o.DeliveryDate, &o.ReceivingDate, &o.Status, &o.CompletionPercentage)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range orders {
		orders[i].Products, err = s.orderProducts(ctx, orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return orders, nil
}

func (s *Storage) DeleteOrder(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteOrder"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	// workers still pointing at the order are released first
	if _, err := tx.ExecContext(ctx,
		`UPDATE workers SET current_order_id = NULL WHERE current_order_id = ?`, id); err != nil {
		return fmt.Errorf("%s: release workers for order id=%d: %w", op, id, err)
	}

	for _, q := range []string{
		`DELETE FROM production_events WHERE order_id = ?`,
		`DELETE FROM order_workers WHERE order_id = ?`,
		`DELETE FROM order_products WHERE order_id = ?`,
		`DELETE FROM orders WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("%s: order id=%d: %w", op, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) orderProducts(ctx context.Context, orderID int64) ([]storage.OrderProduct, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, type, quantity FROM order_products WHERE order_id = ? ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("products for order id=%d: %w", orderID, err)
	}
	defer rows.Close()

	var products []storage.OrderProduct
	for rows.Next() {
		var p storage.OrderProduct
		if err := rows.Scan(&p.Name, &p.Type, &p.Quantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Storage) orderWorkerHistory(ctx context.Context, orderID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT worker_id FROM order_workers WHERE order_id = ? ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("worker history for order id=%d: %w", orderID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan worker history: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
