package routerepo_test

import (
	"context"
	"testing"
	"time"

	"wastetrack/internal/adapters/out/postgres/routerepo"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/core/domain/model/route"
	"wastetrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RouteRepositoryIntegrationTestSuite verifies that the route aggregate and
// its waypoints persist together against a real PostgreSQL instance.
type RouteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *routerepo.GormRouteRepository
	tracker    *MockAggregateTracker
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&routerepo.RouteDTO{}, &routerepo.WaypointDTO{}))
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE routes, waypoints").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = routerepo.NewGormRouteRepository(suite.db, suite.tracker)
}

func (suite *RouteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RouteRepositoryIntegrationTestSuite) TestAdd_RouteWithWaypoints_PersistsAll() {
	ctx := context.Background()
	testRoute := suite.createRoute()

	suite.Require().NoError(suite.repository.Add(ctx, testRoute))

	var waypointCount int64
	suite.Require().NoError(
		suite.db.Model(&routerepo.WaypointDTO{}).Count(&waypointCount).Error)
	suite.Equal(int64(3), waypointCount)
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGet_ReturnsWaypointsInSequenceOrder() {
	ctx := context.Background()
	testRoute := suite.createRoute()
	suite.Require().NoError(suite.repository.Add(ctx, testRoute))

	loaded, err := suite.repository.Get(ctx, testRoute.ID())
	suite.Require().NoError(err)
	suite.Equal(testRoute.Name(), loaded.Name())

	waypoints := loaded.Waypoints()
	suite.Require().Len(waypoints, 3)
	suite.Equal(1, waypoints[0].SequenceOrder())
	suite.Equal(2, waypoints[1].SequenceOrder())
	suite.Equal(5, waypoints[2].SequenceOrder())
	suite.Equal("Mercado Central", waypoints[0].Label())
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGet_UnknownRoute_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RouteRepositoryIntegrationTestSuite) createRoute() *route.Route {
	startPoint, err := kernel.NewGeoPoint(-12.0464, -77.0428)
	suite.Require().NoError(err)

	// Built out of order on purpose; the aggregate sorts by sequence.
	waypoints := make([]*route.Waypoint, 0, 3)
	for _, stop := range []struct {
		sequence int
		label    string
	}{
		{5, "Parque Kennedy"},
		{1, "Mercado Central"},
		{2, "Plaza Mayor"},
	} {
		point, pointErr := kernel.NewGeoPoint(-12.05+float64(stop.sequence)*0.001, -77.04)
		suite.Require().NoError(pointErr)

		wp, wpErr := route.NewWaypoint(stop.sequence, point, stop.label)
		suite.Require().NoError(wpErr)
		waypoints = append(waypoints, wp)
	}

	testRoute, err := route.NewRoute("Centro Historico", startPoint, 180, kernel.NewUUID(), waypoints)
	suite.Require().NoError(err)
	return testRoute
}

func TestRouteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RouteRepositoryIntegrationTestSuite))
}
