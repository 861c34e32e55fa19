package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are append-and-update only; cancellation is a status change, never
// a removal.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// status the caller read before mutating. The write applies only while
	// the stored row is still in expectedStatus; a concurrent transition in
	// between yields a ConcurrencyConflictError and no write.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstPendingUnassigned retrieves the oldest pending order without a
	// delivery partner. Used by the rematch flow.
	GetFirstPendingUnassigned(ctx context.Context) (*order.Order, error)
}
