package assignment

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"factory-ops/internal/storage"
)

type AssignmentStorage interface {
	GetWorker(ctx context.Context, id int64) (*storage.Worker, error)
	GetOrder(ctx context.Context, id int64) (*storage.Order, error)
	ListEligibleWorkers(ctx context.Context, orderID, departmentID int64) ([]storage.Worker, error)
	ApplyAssignment(ctx context.Context, req storage.AssignmentApply) error
	ReleaseWorker(ctx context.Context, workerID int64) error
	SetAttendance(ctx context.Context, workerID int64, attendance storage.Attendance) error
}

// Service holds the one-worker-one-live-order rule. The order's worker
// history is append-only and never consulted for eligibility; only the
// worker's CurrentOrderID is.
type Service struct {
	storage AssignmentStorage
}

func NewService(storage AssignmentStorage) *Service {
	return &Service{storage: storage}
}

// EligibleWorkers lists available workers free to take the order, the
// order's own incumbents first. departmentID 0 means no filter.
func (s *Service) EligibleWorkers(ctx context.Context, orderID, departmentID int64) ([]storage.Worker, error) {
	const op = "service.assignment.EligibleWorkers"

	if _, err := s.storage.GetOrder(ctx, orderID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	workers, err := s.storage.ListEligibleWorkers(ctx, orderID, departmentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return workers, nil
}

func (s *Service) Assign(ctx context.Context, workerID, orderID int64) error {
	const op = "service.assignment.Assign"

	var (
		worker *storage.Worker
		order  *storage.Order
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
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if order.Status == storage.OrderStatusCompleted {
		return fmt.Errorf("%s: order id=%d: %w", op, orderID, storage.ErrOrderClosed)
	}
	if worker.Attendance == storage.AttendanceAbsent {
		return fmt.Errorf("%s: worker id=%d is absent: %w", op, workerID, storage.ErrWorkerUnavailable)
	}
	if worker.CurrentOrderID != nil && *worker.CurrentOrderID != orderID {
		return fmt.Errorf("%s: worker id=%d already on order id=%d: %w",
			op, workerID, *worker.CurrentOrderID, storage.ErrWorkerUnavailable)
	}

	err := s.storage.ApplyAssignment(ctx, storage.AssignmentApply{
		WorkerID:     workerID,
		OrderID:      orderID,
		PromoteOrder: order.Status == storage.OrderStatusPending,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Release clears the live assignment; the order keeps the worker in its
// history.
func (s *Service) Release(ctx context.Context, workerID int64) error {
	const op = "service.assignment.Release"

	if _, err := s.storage.GetWorker(ctx, workerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.ReleaseWorker(ctx, workerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetAttendance marks a worker absent or available. Going absent releases
// the live assignment, so an absent worker never holds an active order.
func (s *Service) SetAttendance(ctx context.Context, workerID int64, attendance storage.Attendance) error {
	const op = "service.assignment.SetAttendance"

	if attendance != storage.AttendanceAvailable && attendance != storage.AttendanceAbsent {
		return fmt.Errorf("%s: attendance=%q: %w", op, attendance, storage.ErrValidation)
	}

	if _, err := s.storage.GetWorker(ctx, workerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.SetAttendance(ctx, workerID, attendance); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
