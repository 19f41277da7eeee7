package queries

import (
	"errors"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/guard"
)

var ErrGetAllIssuesQueryIsNotConstructed = errors.New(
	"GetAllIssuesQuery must be created via NewGetAllIssuesQuery constructor",
)

// GetAllIssuesQuery retrieves every issue report for the admin triage view.
type GetAllIssuesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllIssuesQuery creates a query to retrieve all issue reports.
func NewGetAllIssuesQuery() GetAllIssuesQuery {
	return GetAllIssuesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllIssuesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllIssuesQueryIsNotConstructed)
}

// GetAllIssuesQueryResponse is one triage listing row. AssignmentID is nil
// for citizen reports.
type GetAllIssuesQueryResponse struct {
	ID           kernel.UUID
	ReporterID   kernel.UUID
	AssignmentID *kernel.UUID
	IssueType    string
	Description  string
	Latitude     float64
	Longitude    float64
	Status       string
	CreatedAt    time.Time
}
