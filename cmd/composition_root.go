package cmd

import (
	"time"

	"wastetrack/internal/adapters/in/http"
	"wastetrack/internal/adapters/out/postgres"
	"wastetrack/internal/core/application/usecases/commands"
	"wastetrack/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: one shared database
// connection, a unit-of-work factory on top of it, and constructor methods
// for every command and query handler.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateHTTPServer assembles the HTTP server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer(config Config) *http.Server {
	tokens := http.NewTokenIssuer(config.JWTSecret, config.TokenTTL)

	return http.NewServer(http.Handlers{
		RegisterUser:       c.CreateRegisterUserCommandHandler(),
		CreateTruck:        c.CreateCreateTruckCommandHandler(),
		DeleteTruck:        c.CreateDeleteTruckCommandHandler(),
		CreateRoute:        c.CreateCreateRouteCommandHandler(),
		CreateAssignment:   c.CreateCreateAssignmentCommandHandler(),
		StartAssignment:    c.CreateStartAssignmentCommandHandler(),
		CompleteAssignment: c.CreateCompleteAssignmentCommandHandler(),
		ReportLocation:     c.CreateReportLocationCommandHandler(),
		ReportIssue:        c.CreateReportIssueCommandHandler(),
		SetCitizenLocation: c.CreateSetCitizenLocationCommandHandler(),

		GetCredentials:       c.CreateGetCredentialsQueryHandler(),
		ResolveAccount:       c.CreateResolveAccountQueryHandler(),
		GetAllTrucks:         c.CreateGetAllTrucksQueryHandler(),
		GetRouteWaypoints:    c.CreateGetRouteWaypointsQueryHandler(),
		GetAllIssues:         c.CreateGetAllIssuesQueryHandler(),
		GetCurrentAssignment: c.CreateGetCurrentAssignmentQueryHandler(),
		GetTruckStatus:       c.CreateGetTruckStatusQueryHandler(),
	}, tokens)
}

func (c *CompositionRoot) CreateGetCredentialsQueryHandler() queries.GetCredentialsQueryHandler {
	return queries.NewGetCredentialsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateResolveAccountQueryHandler() queries.ResolveAccountQueryHandler {
	return queries.NewResolveAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTrucksQueryHandler() queries.GetAllTrucksQueryHandler {
	return queries.NewGetAllTrucksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteWaypointsQueryHandler() queries.GetRouteWaypointsQueryHandler {
	return queries.NewGetRouteWaypointsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllIssuesQueryHandler() queries.GetAllIssuesQueryHandler {
	return queries.NewGetAllIssuesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentAssignmentQueryHandler() queries.GetCurrentAssignmentQueryHandler {
	return queries.NewGetCurrentAssignmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTruckStatusQueryHandler() queries.GetTruckStatusQueryHandler {
	return queries.NewGetTruckStatusQueryHandler(c.gormDB, func() time.Time { return time.Now().UTC() })
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTruckCommandHandler() commands.CreateTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteTruckCommandHandler() commands.DeleteTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateStartAssignmentCommandHandler() commands.StartAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteAssignmentCommandHandler() commands.CompleteAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateReportLocationCommandHandler() commands.ReportLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	var f commands.IssueUoWFactory = FuncIssueUoWFactory(func() commands.IssueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportIssueCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCitizenLocationCommandHandler() commands.SetCitizenLocationCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCitizenLocationCommandHandler(f)
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncIssueUoWFactory func() commands.IssueUoW

func (f FuncIssueUoWFactory) Create() commands.IssueUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
