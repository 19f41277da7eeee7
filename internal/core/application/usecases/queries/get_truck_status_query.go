// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read through gorm directly and return read models shaped for one
// use case; they never load full aggregates.
package queries

import (
	"errors"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/services"
	"wastetrack/internal/pkg/guard"
)

var ErrGetTruckStatusQueryIsNotConstructed = errors.New(
	"GetTruckStatusQuery must be created via NewGetTruckStatusQuery constructor",
)

// GetTruckStatusQuery asks where the nearest collection truck is relative to
// a citizen's stored coordinate.
type GetTruckStatusQuery struct { //nolint:recvcheck //using for validation
	citizenID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTruckStatusQuery creates a truck status query for one citizen.
func NewGetTruckStatusQuery(citizenID kernel.UUID) (GetTruckStatusQuery, error) {
	query := GetTruckStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := citizenID.Validate(); err != nil {
		return GetTruckStatusQuery{}, err
	}
	query.citizenID = citizenID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTruckStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckStatusQueryIsNotConstructed)
}

// CitizenID returns the citizen whose coordinate is measured against.
func (q GetTruckStatusQuery) CitizenID() kernel.UUID {
	return q.citizenID
}

// GetTruckStatusQueryResponse is the citizen-facing answer. TruckName and
// EtaMinutes are zero-valued unless Status is ON_THE_WAY or NEARBY.
type GetTruckStatusQueryResponse struct {
	Status     services.MatchStatus
	TruckName  string
	EtaMinutes int
}
