package commands

import (
	"context"

	"wastetrack/internal/core/domain/model/issue"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
)

// ReportIssueCommandHandler files issue reports. A driver's report is pinned
// to the assignment the driver is actively serving; filing without an active
// assignment is rejected. Citizen reports carry no assignment.
type ReportIssueCommandHandler struct {
	uowFactory IssueUoWFactory
}

// NewReportIssueCommandHandler creates a handler for issue reports.
func NewReportIssueCommandHandler(uowFactory IssueUoWFactory) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle files the report and returns the new issue's identifier.
func (h *ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var report *issue.IssueReport
	if cmd.FromDriver() {
		active, err := uow.AssignmentRepository().FindActiveForDriver(ctx, cmd.ReporterID())
		if err != nil {
			return kernel.UUID{}, err
		}
		if active == nil {
			return kernel.UUID{}, errs.NewValueIsInvalidError("no active assignment found for issue report")
		}

		report, err = issue.NewDriverIssue(cmd.ReporterID(), active.ID, cmd.IssueType(), cmd.Description(), cmd.Point())
		if err != nil {
			return kernel.UUID{}, err
		}
	} else {
		var err error
		report, err = issue.NewCitizenIssue(cmd.ReporterID(), cmd.IssueType(), cmd.Description(), cmd.Point())
		if err != nil {
			return kernel.UUID{}, err
		}
	}

	if err := uow.IssueRepository().Add(ctx, report); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return report.ID(), nil
}
