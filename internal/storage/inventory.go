package storage

type ItemCategory string

const (
	CategoryRawMaterial  ItemCategory = "raw_material"
	CategoryFinishedGood ItemCategory = "finished_good"
)

type TransactionType string

const (
	TransactionAdd    TransactionType = "add"
	TransactionRemove TransactionType = "remove"
	TransactionAdjust TransactionType = "adjust"
)

type InventoryItem struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Quantity    float64      `json:"quantity"`
	Unit        string       `json:"unit"`
	MinQuantity float64      `json:"min_quantity"`
	UnitPrice   float64      `json:"unit_price"`
	LastUpdated string       `json:"last_updated"`
}

type CreateInventoryItem struct {
	Name        string       `json:"name"`
	Category    ItemCategory `json:"category"`
	Quantity    float64      `json:"quantity"`
	Unit        string       `json:"unit"`
	MinQuantity float64      `json:"min_quantity"`
	UnitPrice   float64      `json:"unit_price"`
}

// InventoryTransaction is append-only, same discipline as the production
// ledger.
type InventoryTransaction struct {
	ID       int64           `json:"id"`
	ItemID   int64           `json:"item_id"`
	Type     TransactionType `json:"type"`
	Quantity float64         `json:"quantity"`
	Date     string          `json:"date"`
	Notes    string          `json:"notes,omitempty"`
}

// InventoryApply pairs the ledger entry with the item's new running level;
// both land in one transaction.
type InventoryApply struct {
	Transaction InventoryTransaction
	ItemID      int64
	NewQuantity float64
	LastUpdated string
}
