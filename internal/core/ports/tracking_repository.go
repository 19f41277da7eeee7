package ports

import (
	"context"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the live-position
// read model: the per-truck current-location projection, the append-only
// history log and citizen home coordinates.
type TrackingRepository interface {
	// UpsertCurrentLocation writes the projection row for the location's
	// truck, inserting on first report and overwriting afterwards.
	// Last writer wins; there is no versioning.
	UpsertCurrentLocation(ctx context.Context, location *tracking.CurrentLocation) error

	// AppendHistory appends one immutable history record.
	AppendHistory(ctx context.Context, record *tracking.HistoryRecord) error

	// GetCurrentLocation returns the projection row for a truck, or nil
	// when the truck has never reported.
	GetCurrentLocation(ctx context.Context, truckID kernel.UUID) (*tracking.CurrentLocation, error)

	// UpsertCitizenLocation writes a citizen's stored home coordinate,
	// one row per user, overwritten on each update.
	UpsertCitizenLocation(ctx context.Context, location *tracking.CitizenLocation) error

	// GetCitizenLocation returns the citizen's stored coordinate, or nil
	// when the citizen has never set one.
	GetCitizenLocation(ctx context.Context, userID kernel.UUID) (*tracking.CitizenLocation, error)
}
