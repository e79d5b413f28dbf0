package storage

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

type OrderProduct struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// Order dates are display strings ("2006-01-02"); they take no part in any
// ordering logic. CompletionPercentage and Status are derived from the
// production ledger and updated in the same transaction as each event.
type Order struct {
	ID                   int64          `json:"id"`
	Client               string         `json:"client"`
	Products             []OrderProduct `json:"products"`
	TotalQuantity        int            `json:"total_quantity"`
	EntryDate            string         `json:"entry_date"`
	DeliveryDate         string         `json:"delivery_date"`
	ReceivingDate        string         `json:"receiving_date,omitempty"`
	Status               OrderStatus    `json:"status"`
	CompletionPercentage int            `json:"completion_percentage"`
	AssignedWorkerIDs    []int64        `json:"assigned_worker_ids,omitempty"`
}

type CreateOrder struct {
	Client        string         `json:"client"`
	Products      []OrderProduct `json:"products"`
	EntryDate     string         `json:"entry_date"`
	DeliveryDate  string         `json:"delivery_date"`
	ReceivingDate string         `json:"receiving_date,omitempty"`
}

func (c CreateOrder) TotalQuantity() int {
	total := 0
	for _, p := range c.Products {
		total += p.Quantity
	}
	return total
}
