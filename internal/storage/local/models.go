package local

import "factory-ops/internal/storage"

// Row types kept separate from the shared entity structs so gorm tags and
// column names stay a backend concern. Table names match the mysql schema.

type department struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (department) TableName() string { return "departments" }

type worker struct {
	ID                   int64 `gorm:"primaryKey"`
	Name                 string
	DepartmentID         int64
	DailyTarget          int
	CumulativeProduction int
	MonthlyProduction    int
	BonusPercentage      float64
	MonthlySalary        float64
	Attendance           string
	CurrentOrderID       *int64
}

func (worker) TableName() string { return "workers" }

type order struct {
	ID                   int64 `gorm:"primaryKey"`
	Client               string
	TotalQuantity        int
	EntryDate            string
	DeliveryDate         string
	ReceivingDate        string
	Status               string
	CompletionPercentage int
}

func (order) TableName() string { return "orders" }

type orderProduct struct {
	ID       int64 `gorm:"primaryKey"`
	OrderID  int64 `gorm:"index"`
	Name     string
	Type     string
	Quantity int
}

func (orderProduct) TableName() string { return "order_products" }

type orderWorker struct {
	ID       int64 `gorm:"primaryKey"`
	OrderID  int64 `gorm:"uniqueIndex:uq_order_worker"`
	WorkerID int64 `gorm:"uniqueIndex:uq_order_worker"`
}

func (orderWorker) TableName() string { return "order_workers" }

type productionEvent struct {
	ID           int64 `gorm:"primaryKey"`
	WorkerID     int64 `gorm:"index"`
	OrderID      int64 `gorm:"index"`
	Date         string
	Quantity     int
	OrderDetails string
}

func (productionEvent) TableName() string { return "production_events" }

type inventoryItem struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	Category    string
	Quantity    float64
	Unit        string
	MinQuantity float64
	UnitPrice   float64
	LastUpdated string
}

func (inventoryItem) TableName() string { return "inventory_items" }

type inventoryTransaction struct {
	ID       int64 `gorm:"primaryKey"`
	ItemID   int64 `gorm:"index"`
	Type     string
	Quantity float64
	Date     string
	Notes    string
}

func (inventoryTransaction) TableName() string { return "inventory_transactions" }

func (w worker) toEntity() storage.Worker {
	return storage.Worker{
		ID:                   w.ID,
		Name:                 w.Name,
		DepartmentID:         w.DepartmentID,
		DailyTarget:          w.DailyTarget,
		CumulativeProduction: w.CumulativeProduction,
		MonthlyProduction:    w.MonthlyProduction,
		BonusPercentage:      w.BonusPercentage,
		MonthlySalary:        w.MonthlySalary,
		Attendance:           storage.Attendance(w.Attendance),
		CurrentOrderID:       w.CurrentOrderID,
	}
}

func (o order) toEntity() storage.Order {
	return storage.Order{
		ID:                   o.ID,
		Client:               o.Client,
		TotalQuantity:        o.TotalQuantity,
		EntryDate:            o.EntryDate,
		DeliveryDate:         o.DeliveryDate,
		ReceivingDate:        o.ReceivingDate,
		Status:               storage.OrderStatus(o.Status),
		CompletionPercentage: o.CompletionPercentage,
	}
}

func (e productionEvent) toEntity() storage.ProductionEvent {
	return storage.ProductionEvent{
		ID:           e.ID,
		WorkerID:     e.WorkerID,
		OrderID:      e.OrderID,
		Date:         e.Date,
		Quantity:     e.Quantity,
		OrderDetails: e.OrderDetails,
	}
}

func (i inventoryItem) toEntity() storage.InventoryItem {
	return storage.InventoryItem{
		ID:          i.ID,
		Name:        i.Name,
		Category:    storage.ItemCategory(i.Category),
		Quantity:    i.Quantity,
		Unit:        i.Unit,
		MinQuantity: i.MinQuantity,
		UnitPrice:   i.UnitPrice,
		LastUpdated: i.LastUpdated,
	}
}

func (t inventoryTransaction) toEntity() storage.InventoryTransaction {
	return storage.InventoryTransaction{
		ID:       t.ID,
		ItemID:   t.ItemID,
		Type:     storage.TransactionType(t.Type),
		Quantity: t.Quantity,
		Date:     t.Date,
		Notes:    t.Notes,
	}
}
