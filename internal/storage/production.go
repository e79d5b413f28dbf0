package storage

// ProductionEvent is append-only: created once per reported production
// action, never updated or deleted. OrderDetails is a display snapshot
// taken at creation time and never recomputed.
type ProductionEvent struct {
	ID           int64  `json:"id"`
	WorkerID     int64  `json:"worker_id"`
	OrderID      int64  `json:"order_id"`
	Date         string `json:"date"`
	Quantity     int    `json:"quantity"`
	OrderDetails string `json:"order_details"`
}

// ProductionApply carries one recordProduction mutation: the new ledger
// entry plus the two derived updates that must land in the same
// transaction, so a reader never sees an event without its completion
// update.
type ProductionApply struct {
	Event         ProductionEvent
	WorkerID      int64
	QuantityDelta int
	OrderID       int64
	Completion    int
	OrderStatus   OrderStatus
}
