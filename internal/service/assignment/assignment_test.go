package assignment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"factory-ops/internal/storage"
)

type MockAssignmentStorage struct {
	mock.Mock
}

func (m *MockAssignmentStorage) GetWorker(ctx context.Context, id int64) (*storage.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Worker), args.Error(1)
}

func (m *MockAssignmentStorage) GetOrder(ctx context.Context, id int64) (*storage.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Order), args.Error(1)
}

func (m *MockAssignmentStorage) ListEligibleWorkers(ctx context.Context, orderID, departmentID int64) ([]storage.Worker, error) {
	args := m.Called(ctx, orderID, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Worker), args.Error(1)
}

func (m *MockAssignmentStorage) ApplyAssignment(ctx context.Context, req storage.AssignmentApply) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAssignmentStorage) ReleaseWorker(ctx context.Context, workerID int64) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}

func (m *MockAssignmentStorage) SetAttendance(ctx context.Context, workerID int64, attendance storage.Attendance) error {
	args := m.Called(ctx, workerID, attendance)
	return args.Error(0)
}

func availableWorker(id int64) *storage.Worker {
	return &storage.Worker{ID: id, Name: "Boris", Attendance: storage.AttendanceAvailable}
}

func pendingOrder(id int64) *storage.Order {
	return &storage.Order{ID: id, Client: "Contoso", Status: storage.OrderStatusPending, TotalQuantity: 50}
}

func TestAssign_PromotesPendingOrder(t *testing.T) {
	mockStorage := new(MockAssignmentStorage)
	svc := NewService(mockStorage)

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(availableWorker(1), nil)
	mockStorage.On("GetOrder", mock.Anything, int64(5)).Return(pendingOrder(5), nil)
	mockStorage.On("ApplyAssignment", mock.Anything, storage.AssignmentApply{
		WorkerID: 1, OrderID: 5, PromoteOrder: true,
	}).Return(nil)

	require.NoError(t, svc.Assign(context.Background(), 1, 5))
	mockStorage.AssertExpectations(t)
}

func TestAssign_InProgressOrderNotPromoted(t *testing.T) {
	mockStorage := new(MockAssignmentStorage)
	svc := NewService(mockStorage)

	inProgress := pendingOrder(5)
	inProgress.Status = storage.OrderStatusInProgress

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(availableWorker(1), nil)
	mockStorage.On("GetOrder", mock.Anything, int64(5)).Return(inProgress, nil)
	mockStorage.On("ApplyAssignment", mock.Anything, storage.AssignmentApply{
		WorkerID: 1, OrderID: 5, PromoteOrder: false,
	}).Return(nil)

	require.NoError(t, svc.Assign(context.Background(), 1, 5))
	mockStorage.AssertExpectations(t)
}

func TestAssign_ReassignToSameOrderIsIdempotent(t *testing.T) {
	mockStorage := new(MockAssignmentStorage)
	svc := NewService(mockStorage)

	orderID := int64(5)
	bound := availableWorker(1)
	bound.CurrentOrderID = &orderID

	inProgress := pendingOrder(orderID)
	inProgress.Status = storage.OrderStatusInProgress

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(bound, nil)
	mockStorage.On("GetOrder", mock.Anything, orderID).Return(inProgress, nil)
	mockStorage.On("ApplyAssignment", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.Assign(context.Background(), 1, orderID))
}

func TestAssign_WorkerBoundElsewhereRejected(t *testing.T) {
	mockStorage := new(MockAssignmentStorage)
	svc := NewService(mockStorage)

	otherOrder := int64(3)
	bound := availableWorker(1)
	bound.CurrentOrderID = &otherOrder

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(bound, nil)
	mockStorage.On("GetOrder", mock.Anything, int64(5)).Return(pendingOrder(5), nil)

	err := svc.Assign(context.Background(), 1, 5)
	assert.ErrorIs(t, err, storage.ErrWorkerUnavailable)

	mockStorage.AssertNotCalled(t, "ApplyAssignment", mock.Anything, mock.Anything)
}

func TestAssign_ReleaseThenReassignSucceeds(t *testing.T) {
	mockStorage := new(MockAssignmentStorage)
	svc := NewService(mockStorage)

	otherOrder := int64(3)
	bound := availableWorker(1)
	bound.CurrentOrderID = &otherOrder

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(bound, nil).Once()
	mockStorage.On("ReleaseWorker", mock.Anything, int64(1)).Return(nil).Once()

	require.NoError(t, svc.Release(context.Background(), 1))

	freed := availableWorker(1)
	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(freed, nil)
	mockStorage.On("GetOrder", mock.Anything, int64(5)).Return(pendingOrder(5), nil)
	mockStorage.On("ApplyAssignment", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.Assign(context.Background(), 1, 5))
}

func TestAssign_AbsentWorkerRejected(t *testing.T) {
	mockStorage := new(MockAssignmentStorage)
	svc := NewService(mockStorage)

	absent := availableWorker(1)
	absent.Attendance = storage.AttendanceAbsent

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(absent, nil)
	mockStorage.On("GetOrder", mock.Anything, int64(5)).Return(pendingOrder(5), nil)

	err := svc.Assign(context.Background(), 1, 5)
	assert.ErrorIs(t, err, storage.ErrWorkerUnavailable)
}

func TestAssign_CompletedOrderRejected(t *testing.T) {
	mockStorage := new(MockAssignmentStorage)
	svc := NewService(mockStorage)

	done := pendingOrder(5)
	done.Status = storage.OrderStatusCompleted

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(availableWorker(1), nil)
	mockStorage.On("GetOrder", mock.Anything, int64(5)).Return(done, nil)

	err := svc.Assign(context.Background(), 1, 5)
	assert.ErrorIs(t, err, storage.ErrOrderClosed)
}

func TestSetAttendance_RejectsUnknownValue(t *testing.T) {
	mockStorage := new(MockAssignmentStorage)
	svc := NewService(mockStorage)

	err := svc.SetAttendance(context.Background(), 1, "vacation")
	assert.ErrorIs(t, err, storage.ErrValidation)

	mockStorage.AssertNotCalled(t, "SetAttendance", mock.Anything, mock.Anything, mock.Anything)
}

func TestEligibleWorkers_PassesFilterThrough(t *testing.T) {
	mockStorage := new(MockAssignmentStorage)
	svc := NewService(mockStorage)

	eligible := []storage.Worker{*availableWorker(2), *availableWorker(4)}

	mockStorage.On("GetOrder", mock.Anything, int64(5)).Return(pendingOrder(5), nil)
	mockStorage.On("ListEligibleWorkers", mock.Anything, int64(5), int64(9)).Return(eligible, nil)

	workers, err := svc.EligibleWorkers(context.Background(), 5, 9)
	require.NoError(t, err)
	assert.Len(t, workers, 2)
}
