package production

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"factory-ops/internal/storage"
)

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name  string
		sum   int
		total int
		want  int
	}{
		{"empty ledger", 0, 100, 0},
		{"half done", 50, 100, 50},
		{"rounds down", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"exactly done", 100, 100, 100},
		{"capped over 100", 110, 100, 100},
		{"zero total quantity", 50, 0, 0},
		{"negative total quantity", 50, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionPercent(tt.sum, tt.total))
		})
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name       string
		current    storage.OrderStatus
		completion int
		want       storage.OrderStatus
	}{
		{"pending stays below 100", storage.OrderStatusPending, 99, storage.OrderStatusPending},
		{"in progress stays below 100", storage.OrderStatusInProgress, 40, storage.OrderStatusInProgress},
		{"crossing 100 completes", storage.OrderStatusInProgress, 100, storage.OrderStatusCompleted},
		{"pending can complete directly", storage.OrderStatusPending, 100, storage.OrderStatusCompleted},
		{"completed is sticky", storage.OrderStatusCompleted, 10, storage.OrderStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStatus(tt.current, tt.completion))
		})
	}
}
