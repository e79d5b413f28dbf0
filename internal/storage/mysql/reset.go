package mysql

import (
	"context"
	"fmt"
)

// ResetAll wipes every collection in one transaction. Exposed only through
// the admin surface, which requires explicit confirmation.
func (s *Storage) ResetAll(ctx context.Context) error {
	const op = "storage.mysql.ResetAll"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"production_events",
		"inventory_transactions",
		"order_workers",
		"order_products",
		"inventory_items",
		"workers",
		"orders",
		"departments",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("%s: wipe %s: %w", op, table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
