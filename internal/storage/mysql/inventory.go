package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"factory-ops/internal/storage"
)

func (s *Storage) CreateItem(ctx context.Context, req storage.CreateInventoryItem, lastUpdated string) (*storage.InventoryItem, error) {
	const op = "storage.mysql.CreateItem"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO inventory_items
		(name, category, quantity, unit, min_quantity, unit_price, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.Name, req.Category, req.Quantity, req.Unit, req.MinQuantity, req.UnitPrice, lastUpdated)
	if err != nil {
		return nil, fmt.Errorf("%s: insert item %q: %w", op, req.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetItem(ctx, id)
}

func (s *Storage) GetItem(ctx context.Context, id int64) (*storage.InventoryItem, error) {
	const op = "storage.mysql.GetItem"

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, category, quantity, unit, min_quantity, unit_price, last_updated
		FROM inventory_items WHERE id = ?
	`, id)

	var item storage.InventoryItem
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity,
		&item.Unit, &item.MinQuantity, &item.UnitPrice, &item.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: item id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &item, nil
}

func (s *Storage) ListItems(ctx context.Context, category storage.ItemCategory) ([]storage.InventoryItem, error) {
	const op = "storage.mysql.ListItems"

	query := `
		SELECT id, name, category, quantity, unit, min_quantity, unit_price, last_updated
		FROM inventory_items`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanItems(rows, op)
}

func (s *Storage) ListLowStockItems(ctx context.Context) ([]storage.InventoryItem, error) {
	const op = "storage.mysql.ListLowStockItems"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, quantity, unit, min_quantity, unit_price, last_updated
		FROM inventory_items
		WHERE quantity <= min_quantity
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanItems(rows, op)
}

func (s *Storage) Valuation(ctx context.Context, category storage.ItemCategory) (float64, error) {
	const op = "storage.mysql.Valuation"

	query := `SELECT COALESCE(SUM(quantity * unit_price), 0) FROM inventory_items`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}

	var total float64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

// ApplyInventoryTransaction mirrors ApplyProduction: ledger entry plus the
// item's new running level in one transaction.
func (s *Storage) ApplyInventoryTransaction(ctx context.Context, req storage.InventoryApply) (*storage.InventoryTransaction, error) {
	const op = "storage.mysql.ApplyInventoryTransaction"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO inventory_transactions (item_id, type, quantity, date, notes)
		VALUES (?, ?, ?, ?, ?)
	`, req.Transaction.ItemID, req.Transaction.Type, req.Transaction.Quantity,
		req.Transaction.Date, req.Transaction.Notes)
	if err != nil {
		return nil, fmt.Errorf("%s: insert transaction: %w", op, err)
	}

	txID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE inventory_items SET quantity = ?, last_updated = ? WHERE id = ?`,
		req.NewQuantity, req.LastUpdated, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%s: update item id=%d: %w", op, req.ItemID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	result := req.Transaction
	result.ID = txID

	return &result, nil
}

func (s *Storage) ListItemTransactions(ctx context.Context, itemID int64) ([]storage.InventoryTransaction, error) {
	const op = "storage.mysql.ListItemTransactions"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, item_id, type, quantity, date, notes
		FROM inventory_transactions WHERE item_id = ? ORDER BY id ASC
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var txs []storage.InventoryTransaction
	for rows.Next() {
		var t storage.InventoryTransaction
		if err := rows.Scan(&t.ID, &t.ItemID, &t.Type, &t.Quantity, &t.Date, &t.Notes); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		txs = append(txs, t)
	}

	return txs, rows.Err()
}

func scanItems(rows *sql.Rows, op string) ([]storage.InventoryItem, error) {
	var items []storage.InventoryItem
	for rows.Next() {
		var item storage.InventoryItem
		err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity,
			&item.Unit, &item.MinQuantity, &item.UnitPrice, &item.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
