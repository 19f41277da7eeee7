package http

import (
	"net/http"
	"time"

	"wastetrack/internal/core/application/usecases/commands"
	"wastetrack/internal/core/application/usecases/queries"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createTruckRequest struct {
	Name         string `json:"name"`
	LicensePlate string `json:"license_plate"`
}

type truckResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LicensePlate string `json:"license_plate"`
	Active       bool   `json:"active"`
}

type createRouteRequest struct {
	Name             string            `json:"name"`
	StartLatitude    float64           `json:"start_latitude"`
	StartLongitude   float64           `json:"start_longitude"`
	EstimatedMinutes int               `json:"estimated_minutes"`
	Waypoints        []waypointRequest `json:"waypoints"`
}

type waypointRequest struct {
	SequenceOrder int     `json:"sequence_order"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Label         string  `json:"label"`
}

type waypointResponse struct {
	SequenceOrder int     `json:"sequence_order"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Label         string  `json:"label"`
}

type createAssignmentRequest struct {
	RouteID        string    `json:"route_id"`
	TruckID        string    `json:"truck_id"`
	DriverID       string    `json:"driver_id"`
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	Notes          string    `json:"notes"`
}

type issueResponse struct {
	ID           string    `json:"id"`
	ReporterID   string    `json:"reporter_id"`
	AssignmentID *string   `json:"assignment_id,omitempty"`
	IssueType    string    `json:"issue_type"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// CreateTruck handles POST /admin/trucks.
func (s *Server) CreateTruck(ctx echo.Context) error {
	var request createTruckRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateTruckCommand(request.Name, request.LicensePlate)
	if err != nil {
		return writeError(ctx, err)
	}

	truckID, err := s.createTruckHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusCreated, createdResponse{ID: truckID.String()})
}

// GetTrucks handles GET /admin/trucks.
func (s *Server) GetTrucks(ctx echo.Context) error {
	trucks, err := s.getAllTrucksHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllTrucksQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]truckResponse, len(trucks))
	for i, t := range trucks {
		response[i] = truckResponse{
			ID:           t.ID.String(),
			Name:         t.Name,
			LicensePlate: t.LicensePlate,
			Active:       t.Active,
		}
	}

	return writeData(ctx, http.StatusOK, response)
}

// DeleteTruck handles DELETE /admin/trucks/:id.
func (s *Server) DeleteTruck(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("truck id", err))
	}

	cmd, err := commands.NewDeleteTruckCommand(truckID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRoute handles POST /admin/routes. The creator is taken from the
// session, never from the body.
func (s *Server) CreateRoute(ctx echo.Context) error {
	acc, err := accountFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request createRouteRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	startPoint, err := kernel.NewGeoPoint(request.StartLatitude, request.StartLongitude)
	if err != nil {
		return writeError(ctx, err)
	}

	waypoints := make([]commands.WaypointInput, 0, len(request.Waypoints))
	for _, wp := range request.Waypoints {
		point, pointErr := kernel.NewGeoPoint(wp.Latitude, wp.Longitude)
		if pointErr != nil {
			return writeError(ctx, pointErr)
		}

		waypoints = append(waypoints, commands.WaypointInput{
			SequenceOrder: wp.SequenceOrder,
			Point:         point,
			Label:         wp.Label,
		})
	}

	cmd, err := commands.NewCreateRouteCommand(
		request.Name, startPoint, request.EstimatedMinutes, acc.UserID(), waypoints)
	if err != nil {
		return writeError(ctx, err)
	}

	routeID, err := s.createRouteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusCreated, createdResponse{ID: routeID.String()})
}

// GetRouteWaypoints handles GET /admin/routes/:id/waypoints.
func (s *Server) GetRouteWaypoints(ctx echo.Context) error {
	routeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("route id", err))
	}

	query, err := queries.NewGetRouteWaypointsQuery(routeID)
	if err != nil {
		return writeError(ctx, err)
	}

	waypoints, err := s.getRouteWaypointsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]waypointResponse, len(waypoints))
	for i, wp := range waypoints {
		response[i] = waypointResponse{
			SequenceOrder: wp.SequenceOrder,
			Latitude:      wp.Latitude,
			Longitude:     wp.Longitude,
			Label:         wp.Label,
		}
	}

	return writeData(ctx, http.StatusOK, response)
}

// CreateAssignment handles POST /admin/assignments. The assigning user is
// taken from the session.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	acc, err := accountFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request createAssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	routeID, err := kernel.UUIDFromString(request.RouteID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("route_id", err))
	}

	truckID, err := kernel.UUIDFromString(request.TruckID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("truck_id", err))
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("driver_id", err))
	}

	cmd, err := commands.NewCreateAssignmentCommand(
		routeID, truckID, driverID, acc.UserID(),
		request.ScheduledStart, request.ScheduledEnd, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	assignmentID, err := s.createAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusCreated, createdResponse{ID: assignmentID.String()})
}

// GetIssues handles GET /admin/issues.
func (s *Server) GetIssues(ctx echo.Context) error {
	issues, err := s.getAllIssuesHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllIssuesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]issueResponse, len(issues))
	for i, issue := range issues {
		var assignmentID *string
		if issue.AssignmentID != nil {
			formatted := issue.AssignmentID.String()
			assignmentID = &formatted
		}

		response[i] = issueResponse{
			ID:           issue.ID.String(),
			ReporterID:   issue.ReporterID.String(),
			AssignmentID: assignmentID,
			IssueType:    issue.IssueType,
			Description:  issue.Description,
			Latitude:     issue.Latitude,
			Longitude:    issue.Longitude,
			Status:       issue.Status,
			CreatedAt:    issue.CreatedAt,
		}
	}

	return writeData(ctx, http.StatusOK, response)
}
