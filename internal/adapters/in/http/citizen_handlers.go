package http

import (
	"net/http"

	"wastetrack/internal/core/application/usecases/commands"
	"wastetrack/internal/core/application/usecases/queries"
	"wastetrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type truckStatusResponse struct {
	Status     string `json:"status"`
	TruckName  string `json:"truck_name,omitempty"`
	EtaMinutes int    `json:"eta_minutes,omitempty"`
}

type setLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GetTruckStatus handles GET /citizen/truck/status.
func (s *Server) GetTruckStatus(ctx echo.Context) error {
	acc, err := accountFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTruckStatusQuery(acc.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := s.getTruckStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusOK, truckStatusResponse{
		Status:     string(status.Status),
		TruckName:  status.TruckName,
		EtaMinutes: status.EtaMinutes,
	})
}

// SetProfileLocation handles PUT /citizen/profile/location.
func (s *Server) SetProfileLocation(ctx echo.Context) error {
	acc, err := accountFromContext(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request setLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetCitizenLocationCommand(acc.UserID(), point)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setCitizenLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusOK, map[string]string{"status": "saved"})
}

// ReportCitizenIssue handles POST /citizen/issues.
func (s *Server) ReportCitizenIssue(ctx echo.Context) error {
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

	cmd, err := commands.NewCitizenIssueCommand(
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
