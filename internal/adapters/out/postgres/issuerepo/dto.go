// Package issuerepo provides data transfer objects and mapping functions for
// issue report persistence. Driver reports carry the assignment they happened
// on; citizen reports leave the assignment column NULL.
package issuerepo

import (
	"time"

	"wastetrack/internal/core/domain/model/issue"
	"wastetrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// GeoPointDTO represents embedded coordinate columns.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// IssueDTO represents the database structure for persisting issue reports.
type IssueDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReporterID   uuid.UUID  `gorm:"type:uuid;index"`
	AssignmentID *uuid.UUID `gorm:"type:uuid;index"`
	IssueType    string
	Description  string
	Point        GeoPointDTO `gorm:"embedded"`
	Status       string
	CreatedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for issue entities.
func (IssueDTO) TableName() string {
	return "issues"
}

// fromDomain converts an issue domain aggregate to its database
// representation.
func fromDomain(aggregate *issue.IssueReport) IssueDTO {
	var assignmentID *uuid.UUID
	if id := aggregate.AssignmentID(); id != nil {
		raw := id.Bytes()
		assignmentID = &raw
	}

	return IssueDTO{
		ID:           aggregate.ID().Bytes(),
		ReporterID:   aggregate.ReporterID().Bytes(),
		AssignmentID: assignmentID,
		IssueType:    aggregate.IssueType(),
		Description:  aggregate.Description(),
		Point: GeoPointDTO{
			Latitude:  aggregate.Point().Latitude(),
			Longitude: aggregate.Point().Longitude(),
		},
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an issue domain aggregate using
// RestoreIssue.
func toDomain(dto IssueDTO) (*issue.IssueReport, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reporterID, err := kernel.UUIDFromBytes(dto.ReporterID[:])
	if err != nil {
		return nil, err
	}

	var assignmentID *kernel.UUID
	if dto.AssignmentID != nil {
		aID, assignmentErr := kernel.UUIDFromBytes((*dto.AssignmentID)[:])
		if assignmentErr != nil {
			return nil, assignmentErr
		}

		assignmentID = &aID
	}

	point, err := kernel.NewGeoPoint(dto.Point.Latitude, dto.Point.Longitude)
	if err != nil {
		return nil, err
	}

	return issue.RestoreIssue(
		id,
		reporterID,
		assignmentID,
		dto.IssueType,
		dto.Description,
		point,
		issue.Status(dto.Status),
		dto.CreatedAt,
	)
}
