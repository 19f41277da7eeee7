// Package http implements the inbound HTTP adapter: an echo server exposing
// the dispatch and tracking operations, grouped by caller role. Authorization
// happens in two layers: route-group middleware gates by role or citizen
// status, and identifiers taken from the session (driver id, citizen id) are
// passed into commands so a caller can only act on their own work.
package http

import (
	"net/http"

	"wastetrack/internal/core/application/usecases/commands"
	"wastetrack/internal/core/application/usecases/queries"
	"wastetrack/internal/core/domain/model/account"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	RegisterUser       commands.RegisterUserCommandHandler
	CreateTruck        commands.CreateTruckCommandHandler
	DeleteTruck        commands.DeleteTruckCommandHandler
	CreateRoute        commands.CreateRouteCommandHandler
	CreateAssignment   commands.CreateAssignmentCommandHandler
	StartAssignment    commands.StartAssignmentCommandHandler
	CompleteAssignment commands.CompleteAssignmentCommandHandler
	ReportLocation     commands.ReportLocationCommandHandler
	ReportIssue        commands.ReportIssueCommandHandler
	SetCitizenLocation commands.SetCitizenLocationCommandHandler

	GetCredentials       queries.GetCredentialsQueryHandler
	ResolveAccount       queries.ResolveAccountQueryHandler
	GetAllTrucks         queries.GetAllTrucksQueryHandler
	GetRouteWaypoints    queries.GetRouteWaypointsQueryHandler
	GetAllIssues         queries.GetAllIssuesQueryHandler
	GetCurrentAssignment queries.GetCurrentAssignmentQueryHandler
	GetTruckStatus       queries.GetTruckStatusQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerUserHandler       commands.RegisterUserCommandHandler
	createTruckHandler        commands.CreateTruckCommandHandler
	deleteTruckHandler        commands.DeleteTruckCommandHandler
	createRouteHandler        commands.CreateRouteCommandHandler
	createAssignmentHandler   commands.CreateAssignmentCommandHandler
	startAssignmentHandler    commands.StartAssignmentCommandHandler
	completeAssignmentHandler commands.CompleteAssignmentCommandHandler
	reportLocationHandler     commands.ReportLocationCommandHandler
	reportIssueHandler        commands.ReportIssueCommandHandler
	setCitizenLocationHandler commands.SetCitizenLocationCommandHandler

	getCredentialsHandler       queries.GetCredentialsQueryHandler
	resolveAccountHandler       queries.ResolveAccountQueryHandler
	getAllTrucksHandler         queries.GetAllTrucksQueryHandler
	getRouteWaypointsHandler    queries.GetRouteWaypointsQueryHandler
	getAllIssuesHandler         queries.GetAllIssuesQueryHandler
	getCurrentAssignmentHandler queries.GetCurrentAssignmentQueryHandler
	getTruckStatusHandler       queries.GetTruckStatusQueryHandler

	tokens *TokenIssuer
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers, tokens *TokenIssuer) *Server {
	return &Server{
		registerUserHandler:       handlers.RegisterUser,
		createTruckHandler:        handlers.CreateTruck,
		deleteTruckHandler:        handlers.DeleteTruck,
		createRouteHandler:        handlers.CreateRoute,
		createAssignmentHandler:   handlers.CreateAssignment,
		startAssignmentHandler:    handlers.StartAssignment,
		completeAssignmentHandler: handlers.CompleteAssignment,
		reportLocationHandler:     handlers.ReportLocation,
		reportIssueHandler:        handlers.ReportIssue,
		setCitizenLocationHandler: handlers.SetCitizenLocation,

		getCredentialsHandler:       handlers.GetCredentials,
		resolveAccountHandler:       handlers.ResolveAccount,
		getAllTrucksHandler:         handlers.GetAllTrucks,
		getRouteWaypointsHandler:    handlers.GetRouteWaypoints,
		getAllIssuesHandler:         handlers.GetAllIssues,
		getCurrentAssignmentHandler: handlers.GetCurrentAssignment,
		getTruckStatusHandler:       handlers.GetTruckStatus,

		tokens: tokens,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/openapi.yaml", s.OpenAPISpec)

	e.POST("/auth/register", s.Register)
	e.POST("/auth/login", s.Login)

	// Allow-lists come from the permission table so the router and the
	// table cannot diverge.
	admin := e.Group("/admin", s.authenticate)
	admin.POST("/trucks", s.CreateTruck, s.requirePermission(account.ResourceTruck, account.ActionCreate))
	admin.GET("/trucks", s.GetTrucks, s.requirePermission(account.ResourceTruck, account.ActionRead))
	admin.DELETE("/trucks/:id", s.DeleteTruck, s.requirePermission(account.ResourceTruck, account.ActionDelete))
	admin.POST("/routes", s.CreateRoute, s.requirePermission(account.ResourceRoute, account.ActionCreate))
	admin.GET("/routes/:id/waypoints", s.GetRouteWaypoints, s.requirePermission(account.ResourceRoute, account.ActionRead))
	admin.POST("/assignments", s.CreateAssignment, s.requirePermission(account.ResourceAssignment, account.ActionCreate))
	admin.GET("/issues", s.GetIssues, s.requirePermission(account.ResourceIssue, account.ActionRead))

	driver := e.Group("/driver", s.authenticate)
	driver.GET("/assignments/current", s.GetCurrentAssignment, s.requirePermission(account.ResourceAssignment, account.ActionRead))
	driver.POST("/assignments/:id/start", s.StartAssignment, s.requirePermission(account.ResourceAssignment, account.ActionStart))
	driver.POST("/assignments/:id/complete", s.CompleteAssignment, s.requirePermission(account.ResourceAssignment, account.ActionComplete))
	driver.POST("/location", s.ReportLocation, s.requirePermission(account.ResourceLocation, account.ActionReport))
	driver.POST("/issues", s.ReportDriverIssue, s.requirePermission(account.ResourceIssue, account.ActionCreate))

	citizen := e.Group("/citizen", s.authenticate, s.requireCitizen)
	citizen.GET("/truck/status", s.GetTruckStatus)
	citizen.PUT("/profile/location", s.SetProfileLocation)
	citizen.POST("/issues", s.ReportCitizenIssue)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
