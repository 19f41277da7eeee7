package queries

import (
	"errors"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/guard"
)

var ErrGetAllTrucksQueryIsNotConstructed = errors.New(
	"GetAllTrucksQuery must be created via NewGetAllTrucksQuery constructor",
)

// GetAllTrucksQuery retrieves the whole fleet for administrative listings.
type GetAllTrucksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTrucksQuery creates a query to retrieve all trucks.
func NewGetAllTrucksQuery() GetAllTrucksQuery {
	return GetAllTrucksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTrucksQueryIsNotConstructed)
}

// GetAllTrucksQueryResponse is one fleet listing row.
type GetAllTrucksQueryResponse struct {
	ID           kernel.UUID
	Name         string
	LicensePlate string
	Active       bool
}
