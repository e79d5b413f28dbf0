package storage

import "errors"

// Domain errors shared by every storage backend and service. Handlers map
// these to HTTP statuses with errors.Is; anything unwrapped is treated as a
// persistence failure and surfaced as a generic 500.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrValidation        = errors.New("invalid input")
	ErrWorkerUnavailable = errors.New("worker is absent or already assigned")
	ErrOrderClosed       = errors.New("order is already completed")
	ErrInsufficientStock = errors.New("not enough stock")
)
