package ports

import (
	"context"

	"wastetrack/internal/core/domain/model/issue"
	"wastetrack/internal/core/domain/model/kernel"
)

// IssueRepository defines the persistence contract for issue reports.
type IssueRepository interface {
	// Add persists a new issue report.
	Add(ctx context.Context, aggregate *issue.IssueReport) error

	// Get retrieves an issue report by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*issue.IssueReport, error)

	// Update persists triage changes to an existing issue report.
	Update(ctx context.Context, aggregate *issue.IssueReport) error

	// GetAll retrieves every issue report, newest first.
	GetAll(ctx context.Context) ([]*issue.IssueReport, error)
}
