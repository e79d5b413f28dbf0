package local

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

func (s *Storage) ResetAll(ctx context.Context) error {
	const op = "storage.local.ResetAll"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&productionEvent{},
			&inventoryTransaction{},
			&orderWorker{},
			&orderProduct{},
			&inventoryItem{},
			&worker{},
			&order{},
			&department{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("wipe %T: %w", model, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
