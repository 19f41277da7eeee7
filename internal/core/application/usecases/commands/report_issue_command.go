package commands

import (
	"errors"
	"strings"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewCitizenIssueCommand or NewDriverIssueCommand constructors",
)

// ReportIssueCommand represents a field problem report. The two variants
// share one command; the driver variant is marked so the handler knows to
// resolve and pin the driver's active assignment.
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	reporterID  kernel.UUID
	issueType   string
	description string
	point       kernel.GeoPoint
	fromDriver  bool

	guard guard.ConstructorGuard
}

// NewCitizenIssueCommand creates a citizen's issue report command.
func NewCitizenIssueCommand(reporterID kernel.UUID, issueType string, description string,
	point kernel.GeoPoint) (ReportIssueCommand, error) {
	return newReportIssueCommand(reporterID, issueType, description, point, false)
}

// NewDriverIssueCommand creates a driver's issue report command. The
// handler pins the report to the driver's active assignment.
func NewDriverIssueCommand(reporterID kernel.UUID, issueType string, description string,
	point kernel.GeoPoint) (ReportIssueCommand, error) {
	return newReportIssueCommand(reporterID, issueType, description, point, true)
}

func newReportIssueCommand(reporterID kernel.UUID, issueType string, description string,
	point kernel.GeoPoint, fromDriver bool) (ReportIssueCommand, error) {
	cmd := ReportIssueCommand{
		fromDriver: fromDriver,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReporterID(reporterID),
		cmd.setIssueType(issueType),
		cmd.setDescription(description),
		cmd.setPoint(point),
	); err != nil {
		return ReportIssueCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

func (c ReportIssueCommand) ReporterID() kernel.UUID { return c.reporterID }
func (c ReportIssueCommand) IssueType() string       { return c.issueType }
func (c ReportIssueCommand) Description() string     { return c.description }
func (c ReportIssueCommand) Point() kernel.GeoPoint  { return c.point }
func (c ReportIssueCommand) FromDriver() bool        { return c.fromDriver }

func (c *ReportIssueCommand) setReporterID(reporterID kernel.UUID) error {
	if err := reporterID.Validate(); err != nil {
		return err
	}
	c.reporterID = reporterID
	return nil
}

func (c *ReportIssueCommand) setIssueType(issueType string) error {
	if strings.TrimSpace(issueType) == "" {
		return errs.NewValueIsRequiredError("issueType")
	}
	c.issueType = strings.TrimSpace(issueType)
	return nil
}

func (c *ReportIssueCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *ReportIssueCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.point = point
	return nil
}
