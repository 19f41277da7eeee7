package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"wastetrack/internal/core/application/usecases/commands"
	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/assignment"
	"wastetrack/internal/core/domain/model/issue"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/route"
	"wastetrack/internal/core/domain/model/tracking"
	"wastetrack/internal/core/domain/model/truck"
	"wastetrack/internal/core/ports"
)

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) Start(ctx context.Context, id kernel.UUID, driverID kernel.UUID, now time.Time) error {
	args := m.Called(ctx, id, driverID, now)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Complete(ctx context.Context, id kernel.UUID, driverID kernel.UUID, now time.Time) error {
	args := m.Called(ctx, id, driverID, now)
	return args.Error(0)
}

func (m *MockAssignmentRepository) FindActiveForDriver(ctx context.Context, driverID kernel.UUID) (*ports.ActiveAssignmentRef, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ActiveAssignmentRef), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) UpsertCurrentLocation(ctx context.Context, l *tracking.CurrentLocation) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockTrackingRepository) AppendHistory(ctx context.Context, r *tracking.HistoryRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetCurrentLocation(ctx context.Context, truckID kernel.UUID) (*tracking.CurrentLocation, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.CurrentLocation), args.Error(1)
}

func (m *MockTrackingRepository) UpsertCitizenLocation(ctx context.Context, l *tracking.CitizenLocation) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetCitizenLocation(ctx context.Context, userID kernel.UUID) (*tracking.CitizenLocation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.CitizenLocation), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Add(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockIssueRepository struct{ mock.Mock }

func (m *MockIssueRepository) Add(ctx context.Context, i *issue.IssueReport) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIssueRepository) Get(ctx context.Context, id kernel.UUID) (*issue.IssueReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*issue.IssueReport), args.Error(1)
}

func (m *MockIssueRepository) Update(ctx context.Context, i *issue.IssueReport) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIssueRepository) GetAll(ctx context.Context) ([]*issue.IssueReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*issue.IssueReport), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) AddUser(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockAccountRepository) GetUser(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockAccountRepository) GetUserByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockAccountRepository) AddOrganization(ctx context.Context, o *account.Organization) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAccountRepository) AddMembership(ctx context.Context, ms *account.Membership) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockAccountRepository) FindActiveMembership(ctx context.Context, userID kernel.UUID) (*account.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Membership), args.Error(1)
}

// MockUoW implements every narrow unit-of-work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

func (m *MockUoW) IssueRepository() ports.IssueRepository {
	args := m.Called()
	return args.Get(0).(ports.IssueRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockTruckUoWFactory struct{ mock.Mock }

func (m *MockTruckUoWFactory) Create() commands.TruckUoW {
	args := m.Called()
	return args.Get(0).(commands.TruckUoW)
}

type MockIssueUoWFactory struct{ mock.Mock }

func (m *MockIssueUoWFactory) Create() commands.IssueUoW {
	args := m.Called()
	return args.Get(0).(commands.IssueUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}
