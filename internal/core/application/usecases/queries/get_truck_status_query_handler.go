package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/core/domain/model/assignment"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/tracking"
	"wastetrack/internal/core/domain/services"
)

// GetTruckStatusQueryHandler answers the citizen's "where is my truck"
// question. It reads the citizen's stored coordinate and the fresh
// projections of trucks on active assignments, then delegates the decision
// to the matcher.
//
// The now function is injected so the answer is a pure function of stored
// state for a fixed instant.
type GetTruckStatusQueryHandler struct {
	db      *gorm.DB
	matcher services.TruckMatcher
	now     func() time.Time
}

// NewGetTruckStatusQueryHandler creates a handler for truck status queries.
func NewGetTruckStatusQueryHandler(db *gorm.DB, now func() time.Time) GetTruckStatusQueryHandler {
	return GetTruckStatusQueryHandler{
		db:      db,
		matcher: services.NewTruckMatcher(),
		now:     now,
	}
}

// Handle executes the query. A citizen without a stored coordinate gets
// LOCATION_NOT_SET; everything else comes from the matcher.
func (h GetTruckStatusQueryHandler) Handle(
	ctx context.Context,
	query GetTruckStatusQuery,
) (GetTruckStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTruckStatusQueryResponse{}, err
	}

	citizenPoint, found, err := h.citizenPoint(ctx, query.CitizenID())
	if err != nil {
		return GetTruckStatusQueryResponse{}, err
	}
	if !found {
		return GetTruckStatusQueryResponse{Status: services.MatchLocationNotSet}, nil
	}

	now := h.now()
	candidates, err := h.freshCandidates(ctx, now)
	if err != nil {
		return GetTruckStatusQueryResponse{}, err
	}

	match, err := h.matcher.MatchNearest(citizenPoint, candidates)
	if err != nil {
		return GetTruckStatusQueryResponse{}, err
	}

	return GetTruckStatusQueryResponse{
		Status:     match.Status,
		TruckName:  match.TruckName,
		EtaMinutes: match.EtaMinutes,
	}, nil
}

func (h GetTruckStatusQueryHandler) citizenPoint(ctx context.Context, citizenID kernel.UUID) (kernel.GeoPoint, bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT latitude, longitude
		FROM citizen_locations
		WHERE user_id = ?
	`, citizenID.Bytes()).Rows()
	if err != nil {
		return kernel.GeoPoint{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return kernel.GeoPoint{}, false, rows.Err()
	}

	var latitude, longitude float64
	if err = rows.Scan(&latitude, &longitude); err != nil {
		return kernel.GeoPoint{}, false, err
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return kernel.GeoPoint{}, false, err
	}
	return point, true, nil
}

// freshCandidates reads the current-location projections of trucks whose
// assignment is active, filtered to the freshness window ending at now.
func (h GetTruckStatusQueryHandler) freshCandidates(ctx context.Context, now time.Time) ([]services.Candidate, error) {
	cutoff := now.Add(-services.FreshnessWindow)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.name,
			tl.truck_id,
			tl.assignment_id,
			tl.latitude,
			tl.longitude,
			tl.updated_at
		FROM truck_locations tl
		JOIN trucks t ON t.id = tl.truck_id
		JOIN assignments a ON a.id = tl.assignment_id
		WHERE a.status = ? AND tl.updated_at >= ?
	`, int(assignment.Active), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]services.Candidate, 0)
	for rows.Next() {
		var (
			name                string
			truckID, assignID   uuid.UUID
			latitude, longitude float64
			updatedAt           time.Time
		)
		if err = rows.Scan(&name, &truckID, &assignID, &latitude, &longitude, &updatedAt); err != nil {
			return nil, err
		}

		point, pointErr := kernel.NewGeoPoint(latitude, longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		tID, idErr := kernel.UUIDFromBytes(truckID[:])
		if idErr != nil {
			return nil, idErr
		}
		aID, idErr := kernel.UUIDFromBytes(assignID[:])
		if idErr != nil {
			return nil, idErr
		}

		candidates = append(candidates, services.Candidate{
			TruckName: name,
			Location:  tracking.RestoreCurrentLocation(tID, aID, point, nil, nil, updatedAt),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
