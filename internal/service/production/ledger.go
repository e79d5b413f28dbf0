package production

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"factory-ops/internal/storage"
)

type LedgerStorage interface {
	GetWorker(ctx context.Context, id int64) (*storage.Worker, error)
	GetOrder(ctx context.Context, id int64) (*storage.Order, error)
	SumOrderProduction(ctx context.Context, orderID int64) (int, error)
	ApplyProduction(ctx context.Context, req storage.ProductionApply) (*storage.ProductionEvent, error)
	ListOrderEvents(ctx context.Context, orderID int64) ([]storage.ProductionEvent, error)
	ListWorkerEvents(ctx context.Context, workerID int64) ([]storage.ProductionEvent, error)
}

// Service is the production ledger plus the completion tracker: every
// recorded event lands together with the worker totals and the order's
// recomputed completion, in one storage transaction.
type Service struct {
	storage LedgerStorage
	now     func() time.Time
}

func NewService(storage LedgerStorage) *Service {
	return &Service{storage: storage, now: time.Now}
}

func (s *Service) RecordProduction(ctx context.Context, workerID, orderID int64, quantity int) (*storage.ProductionEvent, error) {
	const op = "service.production.RecordProduction"

	if quantity <= 0 {
		return nil, fmt.Errorf("%s: quantity=%d: %w", op, quantity, storage.ErrValidation)
	}

	var (
		worker *storage.Worker
		order  *storage.Order
		sum    int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		worker, err = s.storage.GetWorker(gCtx, workerID)
		if err != nil {
			return fmt.Errorf("worker: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		order, err = s.storage.GetOrder(gCtx, orderID)
		if err != nil {
			return fmt.Errorf("order: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sum, err = s.storage.SumOrderProduction(gCtx, orderID)
		if err != nil {
			return fmt.Errorf("ledger sum: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if worker.Attendance == storage.AttendanceAbsent {
		return nil, fmt.Errorf("%s: worker id=%d is absent: %w", op, workerID, storage.ErrWorkerUnavailable)
	}
	if order.Status == storage.OrderStatusCompleted {
		return nil, fmt.Errorf("%s: order id=%d: %w", op, orderID, storage.ErrOrderClosed)
	}

	completion := CompletionPercent(sum+quantity, order.TotalQuantity)
	status := NextStatus(order.Status, completion)

	event := storage.ProductionEvent{
		WorkerID:     workerID,
		OrderID:      orderID,
		Date:         s.now().Format("2006-01-02"),
		Quantity:     quantity,
		OrderDetails: orderDetails(order),
	}

	created, err := s.storage.ApplyProduction(ctx, storage.ProductionApply{
		Event:         event,
		WorkerID:      workerID,
		QuantityDelta: quantity,
		OrderID:       orderID,
		Completion:    completion,
		OrderStatus:   status,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Service) OrderEvents(ctx context.Context, orderID int64) ([]storage.ProductionEvent, error) {
	const op = "service.production.OrderEvents"

	events, err := s.storage.ListOrderEvents(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Service) WorkerEvents(ctx context.Context, workerID int64) ([]storage.ProductionEvent, error) {
	const op = "service.production.WorkerEvents"

	events, err := s.storage.ListWorkerEvents(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// orderDetails is the display snapshot frozen onto each event at creation.
func orderDetails(order *storage.Order) string {
	product := ""
	if len(order.Products) > 0 {
		product = order.Products[0].Name
	}

	return fmt.Sprintf("%s — %s", order.Client, product)
}
