package production

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"factory-ops/internal/storage"
)

type MockLedgerStorage struct {
	mock.Mock
}

func (m *MockLedgerStorage) GetWorker(ctx context.Context, id int64) (*storage.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Worker), args.Error(1)
}

func (m *MockLedgerStorage) GetOrder(ctx context.Context, id int64) (*storage.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Order), args.Error(1)
}

func (m *MockLedgerStorage) SumOrderProduction(ctx context.Context, orderID int64) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerStorage) ApplyProduction(ctx context.Context, req storage.ProductionApply) (*storage.ProductionEvent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.ProductionEvent), args.Error(1)
}

func (m *MockLedgerStorage) ListOrderEvents(ctx context.Context, orderID int64) ([]storage.ProductionEvent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ProductionEvent), args.Error(1)
}

func (m *MockLedgerStorage) ListWorkerEvents(ctx context.Context, workerID int64) ([]storage.ProductionEvent, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ProductionEvent), args.Error(1)
}

func testWorker() *storage.Worker {
	return &storage.Worker{
		ID:              1,
		Name:            "Anna",
		DailyTarget:     100,
		BonusPercentage: 5,
		Attendance:      storage.AttendanceAvailable,
	}
}

func testOrder() *storage.Order {
	return &storage.Order{
		ID:            7,
		Client:        "Northwind",
		Products:      []storage.OrderProduct{{Name: "cabinet", Type: "furniture", Quantity: 100}},
		TotalQuantity: 100,
		Status:        storage.OrderStatusInProgress,
	}
}

func TestRecordProduction_UpdatesCompletionWithEvent(t *testing.T) {
	mockStorage := new(MockLedgerStorage)
	svc := NewService(mockStorage)

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(testWorker(), nil)
	mockStorage.On("GetOrder", mock.Anything, int64(7)).Return(testOrder(), nil)
	mockStorage.On("SumOrderProduction", mock.Anything, int64(7)).Return(30, nil)

	mockStorage.On("ApplyProduction", mock.Anything, mock.MatchedBy(func(req storage.ProductionApply) bool {
		return req.Completion == 90 &&
			req.OrderStatus == storage.OrderStatusInProgress &&
			req.QuantityDelta == 60 &&
			req.Event.OrderDetails == "Northwind — cabinet"
	})).Return(&storage.ProductionEvent{ID: 11, WorkerID: 1, OrderID: 7, Quantity: 60}, nil)

	event, err := svc.RecordProduction(context.Background(), 1, 7, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(11), event.ID)

	mockStorage.AssertExpectations(t)
}

func TestRecordProduction_CrossingHundredCompletes(t *testing.T) {
	mockStorage := new(MockLedgerStorage)
	svc := NewService(mockStorage)

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(testWorker(), nil)
	mockStorage.On("GetOrder", mock.Anything, int64(7)).Return(testOrder(), nil)
	mockStorage.On("SumOrderProduction", mock.Anything, int64(7)).Return(60, nil)

	// 60 + 50 overshoots the total of 100; completion caps at 100
	mockStorage.On("ApplyProduction", mock.Anything, mock.MatchedBy(func(req storage.ProductionApply) bool {
		return req.Completion == 100 && req.OrderStatus == storage.OrderStatusCompleted
	})).Return(&storage.ProductionEvent{ID: 12}, nil)

	_, err := svc.RecordProduction(context.Background(), 1, 7, 50)
	require.NoError(t, err)

	mockStorage.AssertExpectations(t)
}

func TestRecordProduction_RejectsNonPositiveQuantity(t *testing.T) {
	mockStorage := new(MockLedgerStorage)
	svc := NewService(mockStorage)

	_, err := svc.RecordProduction(context.Background(), 1, 7, 0)
	assert.ErrorIs(t, err, storage.ErrValidation)

	_, err = svc.RecordProduction(context.Background(), 1, 7, -5)
	assert.ErrorIs(t, err, storage.ErrValidation)

	mockStorage.AssertNotCalled(t, "ApplyProduction", mock.Anything, mock.Anything)
}

func TestRecordProduction_AbsentWorkerRejected(t *testing.T) {
	mockStorage := new(MockLedgerStorage)
	svc := NewService(mockStorage)

	absent := testWorker()
	absent.Attendance = storage.AttendanceAbsent

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(absent, nil)
	mockStorage.On("GetOrder", mock.Anything, int64(7)).Return(testOrder(), nil)
	mockStorage.On("SumOrderProduction", mock.Anything, int64(7)).Return(0, nil)

	_, err := svc.RecordProduction(context.Background(), 1, 7, 10)
	assert.ErrorIs(t, err, storage.ErrWorkerUnavailable)

	mockStorage.AssertNotCalled(t, "ApplyProduction", mock.Anything, mock.Anything)
}

func TestRecordProduction_CompletedOrderRejected(t *testing.T) {
	mockStorage := new(MockLedgerStorage)
	svc := NewService(mockStorage)

	done := testOrder()
	done.Status = storage.OrderStatusCompleted
	done.CompletionPercentage = 100

	mockStorage.On("GetWorker", mock.Anything, int64(1)).Return(testWorker(), nil)
	mockStorage.On("GetOrder", mock.Anything, int64(7)).Return(done, nil)
	mockStorage.On("SumOrderProduction", mock.Anything, int64(7)).Return(100, nil)

	_, err := svc.RecordProduction(context.Background(), 1, 7, 10)
	assert.ErrorIs(t, err, storage.ErrOrderClosed)

	mockStorage.AssertNotCalled(t, "ApplyProduction", mock.Anything, mock.Anything)
}

func TestRecordProduction_UnknownWorker(t *testing.T) {
	mockStorage := new(MockLedgerStorage)
	svc := NewService(mockStorage)

	mockStorage.On("GetWorker", mock.Anything, int64(99)).Return(nil, storage.ErrNotFound)
	mockStorage.On("GetOrder", mock.Anything, int64(7)).Return(testOrder(), nil).Maybe()
	mockStorage.On("SumOrderProduction", mock.Anything, int64(7)).Return(0, nil).Maybe()

	_, err := svc.RecordProduction(context.Background(), 99, 7, 10)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
