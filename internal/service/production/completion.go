package production

import (
	"math"

	"factory-ops/internal/storage"
)

// CompletionPercent derives an order's completion from the summed ledger
// quantity: rounded to the nearest integer percent, capped at 100. A zero
// total quantity reads as 0% rather than dividing.
func CompletionPercent(producedSum, totalQuantity int) int {
	if totalQuantity <= 0 {
		return 0
	}

	pct := int(math.Round(float64(producedSum) / float64(totalQuantity) * 100))
	if pct > 100 {
		return 100
	}

	return pct
}

// NextStatus applies the one-way transition rule: completed is terminal and
// sticky, reached only by crossing 100%. Below that the current status
// stands; promotion from pending happens on assignment, not here.
func NextStatus(current storage.OrderStatus, completion int) storage.OrderStatus {
	if current == storage.OrderStatusCompleted {
		return storage.OrderStatusCompleted
	}
	if completion >= 100 {
		return storage.OrderStatusCompleted
	}

	return current
}
