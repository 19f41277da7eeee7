// Package issue defines the IssueReport aggregate. Issues come in two
// variants with the same shape: a citizen report (missed pickup, overflowing
// bin) and a driver report (blocked street, vehicle failure), the latter
// pinned to the assignment the driver was serving when the report was filed.
package issue

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

// ErrIssueIsNotConstructed is returned when an IssueReport instance was not
// created through a constructor.
var ErrIssueIsNotConstructed = errors.New(
	"IssueReport must be created via NewCitizenIssue, NewDriverIssue or RestoreIssue constructors")

// Status is the triage state of an issue.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// Validate checks the status against the closed set of triage states.
func (s Status) Validate() error {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid issue status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IssueReport is a problem reported in the field, located at a coordinate.
type IssueReport struct {
	id           kernel.UUID
	reporterID   kernel.UUID
	assignmentID *kernel.UUID
	issueType    string
	description  string
	point        kernel.GeoPoint
	status       Status
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewCitizenIssue creates an open issue filed by a citizen.
func NewCitizenIssue(reporterID kernel.UUID, issueType string, description string, point kernel.GeoPoint) (*IssueReport, error) {
	return newIssue(reporterID, nil, issueType, description, point)
}

// NewDriverIssue creates an open issue filed by a driver against the
// assignment active at report time.
func NewDriverIssue(reporterID kernel.UUID, assignmentID kernel.UUID, issueType string,
	description string, point kernel.GeoPoint) (*IssueReport, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}
	return newIssue(reporterID, &assignmentID, issueType, description, point)
}

func newIssue(reporterID kernel.UUID, assignmentID *kernel.UUID, issueType string,
	description string, point kernel.GeoPoint) (*IssueReport, error) {
	issue := &IssueReport{
		id:           kernel.NewUUID(),
		assignmentID: assignmentID,
		status:       StatusOpen,
		createdAt:    time.Now().UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		issue.setReporterID(reporterID),
		issue.setIssueType(issueType),
		issue.setDescription(description),
		issue.setPoint(point),
	); err != nil {
		return nil, err
	}

	return issue, nil
}

// RestoreIssue hydrates an issue from persistence.
func RestoreIssue(
	id kernel.UUID,
	reporterID kernel.UUID,
	assignmentID *kernel.UUID,
	issueType string,
	description string,
	point kernel.GeoPoint,
	status Status,
	createdAt time.Time,
) (*IssueReport, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	issue := &IssueReport{
		id:           id,
		assignmentID: assignmentID,
		status:       status,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		issue.setReporterID(reporterID),
		issue.setIssueType(issueType),
		issue.setDescription(description),
		issue.setPoint(point),
	); err != nil {
		return nil, err
	}

	return issue, nil
}

// Validate ensures the IssueReport was created through a constructor.
func (i *IssueReport) Validate() error {
	if i == nil {
		return ErrIssueIsNotConstructed
	}
	return i.guard.Validate(ErrIssueIsNotConstructed)
}

func (i *IssueReport) ID() kernel.UUID            { return i.id }
func (i *IssueReport) ReporterID() kernel.UUID    { return i.reporterID }
func (i *IssueReport) AssignmentID() *kernel.UUID { return i.assignmentID }
func (i *IssueReport) IssueType() string          { return i.issueType }
func (i *IssueReport) Description() string        { return i.description }
func (i *IssueReport) Point() kernel.GeoPoint     { return i.point }
func (i *IssueReport) Status() Status             { return i.status }
func (i *IssueReport) CreatedAt() time.Time       { return i.createdAt }

// SetStatus moves the issue to any valid triage state. Triage is an
// administrative action with no ordering constraint.
func (i *IssueReport) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}

func (i *IssueReport) setReporterID(reporterID kernel.UUID) error {
	if err := reporterID.Validate(); err != nil {
		return err
	}
	i.reporterID = reporterID
	return nil
}

func (i *IssueReport) setIssueType(issueType string) error {
	if strings.TrimSpace(issueType) == "" {
		return errs.NewValueIsRequiredError("issueType")
	}
	i.issueType = strings.TrimSpace(issueType)
	return nil
}

func (i *IssueReport) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *IssueReport) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	i.point = point
	return nil
}
