package inventory

import (
	"context"
	"fmt"
	"time"

	"factory-ops/internal/storage"
)

type LedgerStorage interface {
	GetItem(ctx context.Context, id int64) (*storage.InventoryItem, error)
	CreateItem(ctx context.Context, req storage.CreateInventoryItem, lastUpdated string) (*storage.InventoryItem, error)
	ListItems(ctx context.Context, category storage.ItemCategory) ([]storage.InventoryItem, error)
	ListLowStockItems(ctx context.Context) ([]storage.InventoryItem, error)
	ListItemTransactions(ctx context.Context, itemID int64) ([]storage.InventoryTransaction, error)
	Valuation(ctx context.Context, category storage.ItemCategory) (float64, error)
	ApplyInventoryTransaction(ctx context.Context, req storage.InventoryApply) (*storage.InventoryTransaction, error)
}

// Service maintains running stock levels from an append-only transaction
// ledger, same discipline as the production ledger.
type Service struct {
	storage LedgerStorage
	now     func() time.Time
}

func NewService(storage LedgerStorage) *Service {
	return &Service{storage: storage, now: time.Now}
}

func (s *Service) CreateItem(ctx context.Context, req storage.CreateInventoryItem) (*storage.InventoryItem, error) {
	const op = "service.inventory.CreateItem"

	if req.Name == "" {
		return nil, fmt.Errorf("%s: name is required: %w", op, storage.ErrValidation)
	}
	if req.Category != storage.CategoryRawMaterial && req.Category != storage.CategoryFinishedGood {
		return nil, fmt.Errorf("%s: category=%q: %w", op, req.Category, storage.ErrValidation)
	}
	if req.Quantity < 0 || req.MinQuantity < 0 || req.UnitPrice < 0 {
		return nil, fmt.Errorf("%s: negative quantity or price: %w", op, storage.ErrValidation)
	}

	item, err := s.storage.CreateItem(ctx, req, s.timestamp())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// ApplyTransaction appends the ledger entry and moves the item's running
// level in one transaction. Quantities may be fractional (units like kg),
// but must be positive. A remove larger than the current stock fails
// without mutating anything.
func (s *Service) ApplyTransaction(ctx context.Context, itemID int64, txType storage.TransactionType, quantity float64, notes string) (*storage.InventoryTransaction, error) {
	const op = "service.inventory.ApplyTransaction"

	if quantity <= 0 {
		return nil, fmt.Errorf("%s: quantity=%v: %w", op, quantity, storage.ErrValidation)
	}

	item, err := s.storage.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var newQuantity float64
	switch txType {
	case storage.TransactionAdd:
		newQuantity = item.Quantity + quantity
	case storage.TransactionRemove:
		if quantity > item.Quantity {
			return nil, fmt.Errorf("%s: remove %v exceeds stock %v for item id=%d: %w",
				op, quantity, item.Quantity, itemID, storage.ErrInsufficientStock)
		}
		newQuantity = item.Quantity - quantity
		if newQuantity < 0 {
			newQuantity = 0
		}
	case storage.TransactionAdjust:
		newQuantity = quantity
	default:
		return nil, fmt.Errorf("%s: type=%q: %w", op, txType, storage.ErrValidation)
	}

	created, err := s.storage.ApplyInventoryTransaction(ctx, storage.InventoryApply{
		Transaction: storage.InventoryTransaction{
			ItemID:   itemID,
			Type:     txType,
			Quantity: quantity,
			Date:     s.timestamp(),
			Notes:    notes,
		},
		ItemID:      itemID,
		NewQuantity: newQuantity,
		LastUpdated: s.timestamp(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Service) Items(ctx context.Context, category storage.ItemCategory) ([]storage.InventoryItem, error) {
	const op = "service.inventory.Items"

	items, err := s.storage.ListItems(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// LowStockItems returns items at or below their low-stock threshold.
func (s *Service) LowStockItems(ctx context.Context) ([]storage.InventoryItem, error) {
	const op = "service.inventory.LowStockItems"

	items, err := s.storage.ListLowStockItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *Service) ItemTransactions(ctx context.Context, itemID int64) ([]storage.InventoryTransaction, error) {
	const op = "service.inventory.ItemTransactions"

	txs, err := s.storage.ListItemTransactions(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return txs, nil
}

func (s *Service) Valuation(ctx context.Context, category storage.ItemCategory) (float64, error) {
	const op = "service.inventory.Valuation"

	total, err := s.storage.Valuation(ctx, category)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Service) timestamp() string {
	return s.now().Format("2006-01-02 15:04:05")
}
