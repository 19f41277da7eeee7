// Package tracking holds the live-position read model: the single
// current-location projection each truck overwrites on every report, the
// append-only history log behind it, and the citizen's stored home
// coordinate that truck matching measures against.
package tracking

import (
	"errors"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/guard"
)

var (
	// ErrProjectionIsNotConstructed is returned when a CurrentLocation was
	// not created through NewCurrentLocation or RestoreCurrentLocation.
	ErrProjectionIsNotConstructed = errors.New(
		"CurrentLocation must be created via NewCurrentLocation or RestoreCurrentLocation constructors")

	// ErrHistoryRecordIsNotConstructed is returned when a HistoryRecord was
	// not created through NewHistoryRecord or RestoreHistoryRecord.
	ErrHistoryRecordIsNotConstructed = errors.New(
		"HistoryRecord must be created via NewHistoryRecord or RestoreHistoryRecord constructors")

	// ErrCitizenLocationIsNotConstructed is returned when a CitizenLocation
	// was not created through NewCitizenLocation or RestoreCitizenLocation.
	ErrCitizenLocationIsNotConstructed = errors.New(
		"CitizenLocation must be created via NewCitizenLocation or RestoreCitizenLocation constructors")
)

// CurrentLocation is the last-known-position projection for one truck.
// Exactly one row exists per truck once it has ever reported; every report
// overwrites it, last writer winning. Speed and heading are optional: not
// every device reports them.
type CurrentLocation struct {
	truckID      kernel.UUID
	assignmentID kernel.UUID
	point        kernel.GeoPoint
	speedKmh     *float64
	heading      *float64
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewCurrentLocation builds the projection state for one report.
func NewCurrentLocation(
	truckID kernel.UUID,
	assignmentID kernel.UUID,
	point kernel.GeoPoint,
	speedKmh *float64,
	heading *float64,
	updatedAt time.Time,
) (*CurrentLocation, error) {
	if err := errors.Join(truckID.Validate(), assignmentID.Validate(), point.Validate()); err != nil {
		return nil, err
	}

	return &CurrentLocation{
		truckID:      truckID,
		assignmentID: assignmentID,
		point:        point,
		speedKmh:     speedKmh,
		heading:      heading,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreCurrentLocation hydrates a projection row from persistence.
func RestoreCurrentLocation(
	truckID kernel.UUID,
	assignmentID kernel.UUID,
	point kernel.GeoPoint,
	speedKmh *float64,
	heading *float64,
	updatedAt time.Time,
) *CurrentLocation {
	return &CurrentLocation{
		truckID:      truckID,
		assignmentID: assignmentID,
		point:        point,
		speedKmh:     speedKmh,
		heading:      heading,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the CurrentLocation was created through a constructor.
func (c *CurrentLocation) Validate() error {
	if c == nil {
		return ErrProjectionIsNotConstructed
	}
	return c.guard.Validate(ErrProjectionIsNotConstructed)
}

func (c *CurrentLocation) TruckID() kernel.UUID      { return c.truckID }
func (c *CurrentLocation) AssignmentID() kernel.UUID { return c.assignmentID }
func (c *CurrentLocation) Point() kernel.GeoPoint    { return c.point }
func (c *CurrentLocation) SpeedKmh() *float64        { return c.speedKmh }
func (c *CurrentLocation) Heading() *float64         { return c.heading }
func (c *CurrentLocation) UpdatedAt() time.Time      { return c.updatedAt }

// IsFresh reports whether the projection was updated within the freshness
// window ending at now.
func (c *CurrentLocation) IsFresh(now time.Time, window time.Duration) bool {
	return now.Sub(c.updatedAt) <= window
}

// HistoryRecord is one immutable entry in the location history log.
// Records are only ever appended, never updated or deleted.
type HistoryRecord struct {
	id           kernel.UUID
	truckID      kernel.UUID
	assignmentID kernel.UUID
	point        kernel.GeoPoint
	speedKmh     *float64
	heading      *float64
	recordedAt   time.Time

	guard guard.ConstructorGuard
}

// NewHistoryRecord creates a history entry with a server-assigned timestamp.
func NewHistoryRecord(
	truckID kernel.UUID,
	assignmentID kernel.UUID,
	point kernel.GeoPoint,
	speedKmh *float64,
	heading *float64,
	recordedAt time.Time,
) (*HistoryRecord, error) {
	if err := errors.Join(truckID.Validate(), assignmentID.Validate(), point.Validate()); err != nil {
		return nil, err
	}

	return &HistoryRecord{
		id:           kernel.NewUUID(),
		truckID:      truckID,
		assignmentID: assignmentID,
		point:        point,
		speedKmh:     speedKmh,
		heading:      heading,
		recordedAt:   recordedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreHistoryRecord hydrates a history entry from persistence.
func RestoreHistoryRecord(
	id kernel.UUID,
	truckID kernel.UUID,
	assignmentID kernel.UUID,
	point kernel.GeoPoint,
	speedKmh *float64,
	heading *float64,
	recordedAt time.Time,
) *HistoryRecord {
	return &HistoryRecord{
		id:           id,
		truckID:      truckID,
		assignmentID: assignmentID,
		point:        point,
		speedKmh:     speedKmh,
		heading:      heading,
		recordedAt:   recordedAt,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the HistoryRecord was created through a constructor.
func (h *HistoryRecord) Validate() error {
	if h == nil {
		return ErrHistoryRecordIsNotConstructed
	}
	return h.guard.Validate(ErrHistoryRecordIsNotConstructed)
}

func (h *HistoryRecord) ID() kernel.UUID           { return h.id }
func (h *HistoryRecord) TruckID() kernel.UUID      { return h.truckID }
func (h *HistoryRecord) AssignmentID() kernel.UUID { return h.assignmentID }
func (h *HistoryRecord) Point() kernel.GeoPoint    { return h.point }
func (h *HistoryRecord) SpeedKmh() *float64        { return h.speedKmh }
func (h *HistoryRecord) Heading() *float64         { return h.heading }
func (h *HistoryRecord) RecordedAt() time.Time     { return h.recordedAt }

// CitizenLocation is a citizen's stored home coordinate, one row per user,
// overwritten on each update.
type CitizenLocation struct {
	userID    kernel.UUID
	point     kernel.GeoPoint
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCitizenLocation creates or replaces a citizen's stored coordinate.
func NewCitizenLocation(userID kernel.UUID, point kernel.GeoPoint, updatedAt time.Time) (*CitizenLocation, error) {
	if err := errors.Join(userID.Validate(), point.Validate()); err != nil {
		return nil, err
	}

	return &CitizenLocation{
		userID:    userID,
		point:     point,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCitizenLocation hydrates a citizen location from persistence.
func RestoreCitizenLocation(userID kernel.UUID, point kernel.GeoPoint, updatedAt time.Time) *CitizenLocation {
	return &CitizenLocation{
		userID:    userID,
		point:     point,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the CitizenLocation was created through a constructor.
func (c *CitizenLocation) Validate() error {
	if c == nil {
		return ErrCitizenLocationIsNotConstructed
	}
	return c.guard.Validate(ErrCitizenLocationIsNotConstructed)
}

func (c *CitizenLocation) UserID() kernel.UUID    { return c.userID }
func (c *CitizenLocation) Point() kernel.GeoPoint { return c.point }
func (c *CitizenLocation) UpdatedAt() time.Time   { return c.updatedAt }
