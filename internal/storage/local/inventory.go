package local

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"factory-ops/internal/storage"
)

func (s *Storage) CreateItem(ctx context.Context, req storage.CreateInventoryItem, lastUpdated string) (*storage.InventoryItem, error) {
	const op = "storage.local.CreateItem"

	row := inventoryItem{
		Name:        req.Name,
		Category:    string(req.Category),
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		MinQuantity: req.MinQuantity,
		UnitPrice:   req.UnitPrice,
		LastUpdated: lastUpdated,
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("%s: item %q: %w", op, req.Name, err)
	}

	entity := row.toEntity()
	return &entity, nil
}

func (s *Storage) GetItem(ctx context.Context, id int64) (*storage.InventoryItem, error) {
	const op = "storage.local.GetItem"

	var row inventoryItem
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: item id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entity := row.toEntity()
	return &entity, nil
}

func (s *Storage) ListItems(ctx context.Context, category storage.ItemCategory) ([]storage.InventoryItem, error) {
	const op = "storage.local.ListItems"

	q := s.db.WithContext(ctx).Order("id ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []inventoryItem
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return itemsToEntities(rows), nil
}

func (s *Storage) ListLowStockItems(ctx context.Context) ([]storage.InventoryItem, error) {
	const op = "storage.local.ListLowStockItems"

	var rows []inventoryItem
	err := s.db.WithContext(ctx).Where("quantity <= min_quantity").Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return itemsToEntities(rows), nil
}

func (s *Storage) Valuation(ctx context.Context, category storage.ItemCategory) (float64, error) {
	const op = "storage.local.Valuation"

	q := s.db.WithContext(ctx).Model(&inventoryItem{}).
		Select("COALESCE(SUM(quantity * unit_price), 0)")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var total float64
	if err := q.Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Storage) ApplyInventoryTransaction(ctx context.Context, req storage.InventoryApply) (*storage.InventoryTransaction, error) {
	const op = "storage.local.ApplyInventoryTransaction"

	row := inventoryTransaction{
		ItemID:   req.Transaction.ItemID,
		Type:     string(req.Transaction.Type),
		Quantity: req.Transaction.Quantity,
		Date:     req.Transaction.Date,
		Notes:    req.Transaction.Notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		err := tx.Model(&inventoryItem{}).Where("id = ?", req.ItemID).Updates(map[string]interface{}{
			"quantity":     req.NewQuantity,
			"last_updated": req.LastUpdated,
		}).Error
		if err != nil {
			return fmt.Errorf("update item id=%d: %w", req.ItemID, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entity := row.toEntity()
	return &entity, nil
}

func (s *Storage) ListItemTransactions(ctx context.Context, itemID int64) ([]storage.InventoryTransaction, error) {
	const op = "storage.local.ListItemTransactions"

	var rows []inventoryTransaction
	err := s.db.WithContext(ctx).Where("item_id = ?", itemID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var txs []storage.InventoryTransaction
	for _, r := range rows {
		txs = append(txs, r.toEntity())
	}

	return txs, nil
}

func itemsToEntities(rows []inventoryItem) []storage.InventoryItem {
	var items []storage.InventoryItem
	for _, r := range rows {
		items = append(items, r.toEntity())
	}
	return items
}
