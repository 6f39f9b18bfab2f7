// Package ports defines the persistence contracts between the domain layer
// and infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, order *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the status can change after creation.
	Update(ctx context.Context, order *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all orders.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
