package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wastetrack/internal/core/domain/model/kernel"
)

// GetAllIssuesQueryHandler lists issue reports newest first.
type GetAllIssuesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllIssuesQueryHandler creates a handler for issue listings.
func NewGetAllIssuesQueryHandler(db *gorm.DB) GetAllIssuesQueryHandler {
	return GetAllIssuesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllIssuesQueryHandler) Handle(
	ctx context.Context,
	query GetAllIssuesQuery,
) ([]GetAllIssuesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reporter_id,
			assignment_id,
			issue_type,
			description,
			latitude,
			longitude,
			status,
			created_at
		FROM issues
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issues := make([]GetAllIssuesQueryResponse, 0)
	for rows.Next() {
		var issue GetAllIssuesQueryResponse
		var id, reporterID uuid.UUID
		var assignmentID *uuid.UUID

		err = rows.Scan(
			&id, &reporterID, &assignmentID,
			&issue.IssueType, &issue.Description,
			&issue.Latitude, &issue.Longitude,
			&issue.Status, &issue.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if issue.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if issue.ReporterID, err = kernel.UUIDFromBytes(reporterID[:]); err != nil {
			return nil, err
		}
		if assignmentID != nil {
			aID, idErr := kernel.UUIDFromBytes(assignmentID[:])
			if idErr != nil {
				return nil, idErr
			}
			issue.AssignmentID = &aID
		}
		issues = append(issues, issue)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return issues, nil
}
