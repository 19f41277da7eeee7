package ports

import (
	"context"
	"time"

	"wastetrack/internal/core/domain/model/assignment"
	"wastetrack/internal/core/domain/model/kernel"
)

// ActiveAssignmentRef is the minimal projection of a driver's currently
// active assignment, used by location tracking and issue reporting to resolve
// what the driver is doing right now.
type ActiveAssignmentRef struct {
	ID      kernel.UUID
	TruckID kernel.UUID
}

// AssignmentRepository defines the persistence contract for assignment
// aggregates.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// Start transitions the assignment from scheduled to active with a
	// single conditional update scoped to the owning driver, stamping the
	// actual start time. Zero affected rows (wrong driver, wrong state or
	// no such assignment) is reported as a not-found error; the caller
	// cannot distinguish the cases and is not meant to.
	Start(ctx context.Context, id kernel.UUID, driverID kernel.UUID, now time.Time) error

	// Complete transitions the assignment from active to completed under
	// the same conditional-update contract as Start, stamping the actual
	// end time.
	Complete(ctx context.Context, id kernel.UUID, driverID kernel.UUID, now time.Time) error

	// FindActiveForDriver returns the reference of the driver's assignment
	// currently in active state, or nil when the driver has none.
	FindActiveForDriver(ctx context.Context, driverID kernel.UUID) (*ActiveAssignmentRef, error)
}
