package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factory-ops/internal/service/assignment"
	"factory-ops/internal/service/incentive"
	"factory-ops/internal/service/inventory"
	"factory-ops/internal/service/production"
	"factory-ops/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "factory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func seedWorkerAndOrder(t *testing.T, s *Storage) (*storage.Worker, *storage.Order) {
	t.Helper()
	ctx := context.Background()

	dept, err := s.CreateDepartment(ctx, storage.CreateDepartment{Name: "assembly"})
	require.NoError(t, err)

	worker, err := s.CreateWorker(ctx, storage.CreateWorker{
		Name:            "Anna",
		DepartmentID:    dept.ID,
		DailyTarget:     100,
		BonusPercentage: 5,
	})
	require.NoError(t, err)

	order, err := s.CreateOrder(ctx, storage.CreateOrder{
		Client:       "Main St Windows",
		Products:     []storage.OrderProduct{{Name: "casement window", Type: "window", Quantity: 100}},
		EntryDate:    "2026-08-01",
		DeliveryDate: "2026-09-15",
	})
	require.NoError(t, err)
	require.Equal(t, 100, order.TotalQuantity)
	require.Equal(t, storage.OrderStatusPending, order.Status)

	return worker, order
}

// Full pass through assignment, ledger, tracker and bonus against a real
// database file.
func TestProductionFlow(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	worker, order := seedWorkerAndOrder(t, s)

	assignSvc := assignment.NewService(s)
	prodSvc := production.NewService(s)

	require.NoError(t, assignSvc.Assign(ctx, worker.ID, order.ID))

	got, err := s.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, storage.OrderStatusInProgress, got.Status)
	assert.Equal(t, []int64{worker.ID}, got.AssignedWorkerIDs)

	event, err := prodSvc.RecordProduction(ctx, worker.ID, order.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, "Main St Windows — casement window", event.OrderDetails)

	got, err = s.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.CompletionPercentage)
	assert.Equal(t, storage.OrderStatusInProgress, got.Status)

	_, err = prodSvc.RecordProduction(ctx, worker.ID, order.ID, 50)
	require.NoError(t, err)

	got, err = s.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.CompletionPercentage)
	assert.Equal(t, storage.OrderStatusCompleted, got.Status)

	w, err := s.GetWorker(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, 110, w.CumulativeProduction)
	assert.Equal(t, 110, w.MonthlyProduction)

	// 100 at 5% plus 10 over target at 7.5%
	assert.Equal(t, 6, incentive.Bonus(w, incentive.ProductionRatio))

	// completed orders accept no further production
	_, err = prodSvc.RecordProduction(ctx, worker.ID, order.ID, 1)
	assert.ErrorIs(t, err, storage.ErrOrderClosed)

	sum, err := s.SumOrderProduction(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 110, sum)

	events, err := s.ListOrderEvents(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEligibleWorkersIncumbentFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	dept, err := s.CreateDepartment(ctx, storage.CreateDepartment{Name: "glazing"})
	require.NoError(t, err)

	var workers []*storage.Worker
	for _, name := range []string{"Pavel", "Mira", "Janek"} {
		w, err := s.CreateWorker(ctx, storage.CreateWorker{Name: name, DepartmentID: dept.ID, DailyTarget: 50})
		require.NoError(t, err)
		workers = append(workers, w)
	}

	order, err := s.CreateOrder(ctx, storage.CreateOrder{
		Client:   "Contoso",
		Products: []storage.OrderProduct{{Name: "door", Type: "door", Quantity: 10}},
	})
	require.NoError(t, err)

	other, err := s.CreateOrder(ctx, storage.CreateOrder{
		Client:   "Fabrikam",
		Products: []storage.OrderProduct{{Name: "frame", Type: "window", Quantity: 10}},
	})
	require.NoError(t, err)

	assignSvc := assignment.NewService(s)

	// Mira is the incumbent, Janek is busy elsewhere, Pavel is absent
	require.NoError(t, assignSvc.Assign(ctx, workers[1].ID, order.ID))
	require.NoError(t, assignSvc.Assign(ctx, workers[2].ID, other.ID))
	require.NoError(t, assignSvc.SetAttendance(ctx, workers[0].ID, storage.AttendanceAbsent))

	eligible, err := assignSvc.EligibleWorkers(ctx, order.ID, 0)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "Mira", eligible[0].Name)

	// releasing Janek and restoring Pavel surfaces Mira first, then the rest
	require.NoError(t, assignSvc.Release(ctx, workers[2].ID))
	require.NoError(t, assignSvc.SetAttendance(ctx, workers[0].ID, storage.AttendanceAvailable))

	eligible, err = assignSvc.EligibleWorkers(ctx, order.ID, 0)
	require.NoError(t, err)
	require.Len(t, eligible, 3)
	assert.Equal(t, "Mira", eligible[0].Name)
	assert.Equal(t, "Pavel", eligible[1].Name)
	assert.Equal(t, "Janek", eligible[2].Name)
}

func TestAbsentWorkerIsReleased(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	worker, order := seedWorkerAndOrder(t, s)
	assignSvc := assignment.NewService(s)

	require.NoError(t, assignSvc.Assign(ctx, worker.ID, order.ID))
	require.NoError(t, assignSvc.SetAttendance(ctx, worker.ID, storage.AttendanceAbsent))

	w, err := s.GetWorker(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, storage.AttendanceAbsent, w.Attendance)
	assert.Nil(t, w.CurrentOrderID)

	// history survives the release
	got, err := s.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{worker.ID}, got.AssignedWorkerIDs)
}

func TestInventoryLowStockAndValuation(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	invSvc := inventory.NewService(s)

	item, err := invSvc.CreateItem(ctx, storage.CreateInventoryItem{
		Name:        "glass sheet",
		Category:    storage.CategoryRawMaterial,
		Quantity:    20,
		Unit:        "pcs",
		MinQuantity: 20,
		UnitPrice:   8,
	})
	require.NoError(t, err)

	low, err := invSvc.LowStockItems(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, item.ID, low[0].ID)

	_, err = invSvc.ApplyTransaction(ctx, item.ID, storage.TransactionAdd, 5, "restock")
	require.NoError(t, err)

	low, err = invSvc.LowStockItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, low)

	// a remove beyond stock leaves the level untouched
	_, err = invSvc.ApplyTransaction(ctx, item.ID, storage.TransactionRemove, 100, "")
	assert.ErrorIs(t, err, storage.ErrInsufficientStock)

	got, err := s.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Quantity)

	total, err := invSvc.Valuation(ctx, storage.CategoryRawMaterial)
	require.NoError(t, err)
	assert.Equal(t, 200.0, total)

	total, err = invSvc.Valuation(ctx, storage.CategoryFinishedGood)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	txs, err := invSvc.ItemTransactions(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestDepartmentCountIsLive(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	dept, err := s.CreateDepartment(ctx, storage.CreateDepartment{Name: "framing"})
	require.NoError(t, err)

	for _, name := range []string{"Olga", "Tomas"} {
		_, err := s.CreateWorker(ctx, storage.CreateWorker{Name: name, DepartmentID: dept.ID})
		require.NoError(t, err)
	}

	got, err := s.GetDepartment(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.EmployeeCount)

	list, err := s.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].EmployeeCount)
}

func TestResetAllWipesEverything(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	worker, order := seedWorkerAndOrder(t, s)
	prodSvc := production.NewService(s)

	_, err := prodSvc.RecordProduction(ctx, worker.ID, order.ID, 10)
	require.NoError(t, err)

	require.NoError(t, s.ResetAll(ctx))

	_, err = s.GetWorker(ctx, worker.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	orders, err := s.ListOrders(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, orders)

	depts, err := s.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Empty(t, depts)
}
