package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/core/domain/model/kernel"
)

// GetAllTrucksQueryHandler lists the fleet ordered by name.
type GetAllTrucksQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTrucksQueryHandler creates a handler for fleet listings.
func NewGetAllTrucksQueryHandler(db *gorm.DB) GetAllTrucksQueryHandler {
	return GetAllTrucksQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllTrucksQueryHandler) Handle(
	ctx context.Context,
	query GetAllTrucksQuery,
) ([]GetAllTrucksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, license_plate, active
		FROM trucks
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trucks := make([]GetAllTrucksQueryResponse, 0)
	for rows.Next() {
		var truck GetAllTrucksQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &truck.Name, &truck.LicensePlate, &truck.Active); err != nil {
			return nil, err
		}

		if truck.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		trucks = append(trucks, truck)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trucks, nil
}
