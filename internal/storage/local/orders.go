package local

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"factory-ops/internal/storage"
)

func (s *Storage) CreateOrder(ctx context.Context, req storage.CreateOrder) (*storage.Order, error) {
	const op = "storage.local.CreateOrder"

	row := order{
		Client:        req.Client,
		TotalQuantity: req.TotalQuantity(),
		EntryDate:     req.EntryDate,
		DeliveryDate:  req.DeliveryDate,
		ReceivingDate: req.ReceivingDate,
		Status:        string(storage.OrderStatusPending),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, p := range req.Products {
			product := orderProduct{OrderID: row.ID, Name: p.Name, Type: p.Type, Quantity: p.Quantity}
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("insert product %q: %w", p.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetOrder(ctx, row.ID)
}

func (s *Storage) GetOrder(ctx context.Context, id int64) (*storage.Order, error) {
	const op = "storage.local.GetOrder"

	var row order
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: order id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entity := row.toEntity()

	entity.Products, err = s.orderProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entity.AssignedWorkerIDs, err = s.orderWorkerHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &entity, nil
}

func (s *Storage) ListOrders(ctx context.Context, status storage.OrderStatus) ([]storage.Order, error) {
	const op = "storage.local.ListOrders"

	q := s.db.WithContext(ctx).Order("id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []order
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var orders []storage.Order
	for _, r := range rows {
		entity := r.toEntity()
		products, err := s.orderProducts(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entity.Products = products
		orders = append(orders, entity)
	}

	return orders, nil
}

func (s *Storage) DeleteOrder(ctx context.Context, id int64) error {
	const op = "storage.local.DeleteOrder"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&worker{}).Where("current_order_id = ?", id).
			Update("current_order_id", nil).Error; err != nil {
			return fmt.Errorf("release workers: %w", err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&productionEvent{}).Error; err != nil {
			return fmt.Errorf("delete events: %w", err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&orderWorker{}).Error; err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&orderProduct{}).Error; err != nil {
			return fmt.Errorf("delete products: %w", err)
		}
		if err := tx.Delete(&order{}, id).Error; err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: order id=%d: %w", op, id, err)
	}

	return nil
}

func (s *Storage) orderProducts(ctx context.Context, orderID int64) ([]storage.OrderProduct, error) {
	var rows []orderProduct
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("products for order id=%d: %w", orderID, err)
	}

	var products []storage.OrderProduct
	for _, r := range rows {
		products = append(products, storage.OrderProduct{Name: r.Name, Type: r.Type, Quantity: r.Quantity})
	}

	return products, nil
}

func (s *Storage) orderWorkerHistory(ctx context.Context, orderID int64) ([]int64, error) {
	var rows []orderWorker
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("worker history for order id=%d: %w", orderID, err)
	}

	var ids []int64
	for _, r := range rows {
		ids = append(ids, r.WorkerID)
	}

	return ids, nil
}
