package ports

import (
	"context"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for truck aggregates.
type TruckRepository interface {
	// Add persists a new truck. A duplicate license plate surfaces as a
	// conflict error.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetAll retrieves every truck.
	GetAll(ctx context.Context) ([]*truck.Truck, error)

	// Delete removes a truck. Zero affected rows is reported as not found.
	Delete(ctx context.Context, id kernel.UUID) error
}
