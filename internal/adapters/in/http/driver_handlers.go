package http

import (
	"errors"
	"net/http"
	"time"

	"wastetrack/internal/core/application/usecases/commands"
	"wastetrack/internal/core/application/usecases/queries"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type currentAssignmentResponse struct {
	AssignmentID   string             `json:"assignment_id"`
	Status         string             `json:"status"`
	ScheduledStart time.Time          `json:"scheduled_start"`
	ScheduledEnd   time.Time          `json:"scheduled_end"`
	Notes          string             `json:"notes,omitempty"`
	RouteID        string             `json:"route_id"`
	RouteName      string             `json:"route_name"`
	TruckID        string             `json:"truck_id"`
	TruckName      string             `json:"truck_name"`
	LicensePlate   string             `json:"license_plate"`
	Waypoints      []waypointResponse `json:"waypoints"`
}

type assignmentTransitionResponse struct {
	AssignmentID string `json:"assignment_id"`
	Status       string `json:"status"`
}

type reportLocationRequest struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	SpeedKmh  *float64 `json:"speed_kmh,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
}

type reportIssueRequest struct {
	IssueType   string  `json:"issue_type"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// GetCurrentAssignment handles GET /driver/assignments/current.
func (s *Server) GetCurrentAssignment(ctx echo.Context) error {
	acc, err := accountFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCurrentAssignmentQuery(acc.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	current, err := s.getCurrentAssignmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return writeErrorMessage(ctx, http.StatusNotFound, "no current assignment found")
		}
		return writeError(ctx, err)
	}

	waypoints := make([]waypointResponse, len(current.Waypoints))
	for i, wp := range current.Waypoints {
		waypoints[i] = waypointResponse{
			SequenceOrder: wp.SequenceOrder,
			Latitude:      wp.Latitude,
			Longitude:     wp.Longitude,
			Label:         wp.Label,
		}
	}

	return writeData(ctx, http.StatusOK, currentAssignmentResponse{
		AssignmentID:   current.AssignmentID.String(),
		Status:         current.Status,
		ScheduledStart: current.ScheduledStart,
		ScheduledEnd:   current.ScheduledEnd,
		Notes:          current.Notes,
		RouteID:        current.RouteID.String(),
		RouteName:      current.RouteName,
		TruckID:        current.TruckID.String(),
		TruckName:      current.TruckName,
		LicensePlate:   current.LicensePlate,
		Waypoints:      waypoints,
	})
}

// StartAssignment handles POST /driver/assignments/:id/start. The driver id
// comes from the session, so a driver can only start their own assignment;
// any zero-row outcome keeps the fixed not-found wording.
func (s *Server) StartAssignment(ctx echo.Context) error {
	acc, err := accountFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("assignment id", err))
	}

	cmd, err := commands.NewStartAssignmentCommand(assignmentID, acc.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return writeErrorMessage(ctx, http.StatusNotFound,
				"assignment not found or could not be started")
		}
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusOK, assignmentTransitionResponse{
		AssignmentID: assignmentID.String(),
		Status:       "active",
	})
}

// CompleteAssignment handles POST /driver/assignments/:id/complete.
func (s *Server) CompleteAssignment(ctx echo.Context) error {
	acc, err := accountFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("assignment id", err))
	}

	cmd, err := commands.NewCompleteAssignmentCommand(assignmentID, acc.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return writeErrorMessage(ctx, http.StatusNotFound,
				"assignment not found or could not be completed")
		}
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusOK, assignmentTransitionResponse{
		AssignmentID: assignmentID.String(),
		Status:       "completed",
	})
}

// ReportLocation handles POST /driver/location.
func (s *Server) ReportLocation(ctx echo.Context) error {
	acc, err := accountFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request reportLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReportLocationCommand(
		acc.UserID(), point, request.SpeedKmh, request.Heading)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reportLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusOK, map[string]string{"status": "recorded"})
}

// ReportDriverIssue handles POST /driver/issues. The report gets pinned to
// the driver's active assignment.
func (s *Server) ReportDriverIssue(ctx echo.Context) error {
	acc, err := accountFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request reportIssueRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDriverIssueCommand(
		acc.UserID(), request.IssueType, request.Description, point)
	if err != nil {
		return writeError(ctx, err)
	}

	issueID, err := s.reportIssueHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusCreated, createdResponse{ID: issueID.String()})
}
