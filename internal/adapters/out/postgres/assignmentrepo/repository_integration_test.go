package assignmentrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"wastetrack/internal/adapters/out/postgres/assignmentrepo"
	"wastetrack/internal/core/domain/model/assignment"
	"wastetrack/internal/core/domain/model/kernel"
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

// AssignmentRepositoryIntegrationTestSuite verifies the conditional lifecycle
// updates against a real PostgreSQL instance.
type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *assignmentrepo.GormAssignmentRepository
	tracker    *MockAggregateTracker
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&assignmentrepo.AssignmentDTO{}))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE assignments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = assignmentrepo.NewGormAssignmentRepository(suite.db, suite.tracker)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	testAssignment := suite.createScheduledAssignment()

	suite.tracker.On("TrackAggregate", testAssignment.ID(), testAssignment).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testAssignment))

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)
	suite.Equal(testAssignment.ID(), loaded.ID())
	suite.Equal(testAssignment.DriverID(), loaded.DriverID())
	suite.Equal(assignment.Scheduled, loaded.Status())
	suite.Nil(loaded.ActualStart())
	suite.Nil(loaded.ActualEnd())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestStart_ScheduledAssignment_BecomesActive() {
	ctx := context.Background()
	testAssignment := suite.addScheduledAssignment()
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := suite.repository.Start(ctx, testAssignment.ID(), testAssignment.DriverID(), now)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.Active, loaded.Status())
	suite.Require().NotNil(loaded.ActualStart())
	suite.WithinDuration(now, *loaded.ActualStart(), time.Second)
	suite.Nil(loaded.ActualEnd())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestStart_WrongDriver_NotFound() {
	ctx := context.Background()
	testAssignment := suite.addScheduledAssignment()

	err := suite.repository.Start(ctx, testAssignment.ID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.Scheduled, loaded.Status())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestStart_AlreadyActive_NotFound() {
	ctx := context.Background()
	testAssignment := suite.addScheduledAssignment()
	now := time.Now().UTC()

	suite.Require().NoError(
		suite.repository.Start(ctx, testAssignment.ID(), testAssignment.DriverID(), now))

	err := suite.repository.Start(ctx, testAssignment.ID(), testAssignment.DriverID(), now)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestStart_Concurrent_ExactlyOneWins() {
	ctx := context.Background()
	testAssignment := suite.addScheduledAssignment()
	now := time.Now().UTC()

	const attempts = 4
	results := make(chan error, attempts)
	var ready sync.WaitGroup
	ready.Add(attempts)
	release := make(chan struct{})

	for range attempts {
		go func() {
			ready.Done()
			<-release
			results <- suite.repository.Start(ctx, testAssignment.ID(), testAssignment.DriverID(), now)
		}()
	}
	ready.Wait()
	close(release)

	var wins, losses int
	for range attempts {
		if err := <-results; err == nil {
			wins++
		} else {
			suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
			losses++
		}
	}

	suite.Equal(1, wins)
	suite.Equal(attempts-1, losses)

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.Active, loaded.Status())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestStart_UnknownAssignment_NotFound() {
	err := suite.repository.Start(context.Background(),
		kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestComplete_ActiveAssignment_BecomesCompleted() {
	ctx := context.Background()
	testAssignment := suite.addScheduledAssignment()
	now := time.Now().UTC().Truncate(time.Microsecond)

	suite.Require().NoError(
		suite.repository.Start(ctx, testAssignment.ID(), testAssignment.DriverID(), now))

	end := now.Add(2 * time.Hour)
	err := suite.repository.Complete(ctx, testAssignment.ID(), testAssignment.DriverID(), end)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.Completed, loaded.Status())
	suite.Require().NotNil(loaded.ActualEnd())
	suite.WithinDuration(end, *loaded.ActualEnd(), time.Second)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestComplete_ScheduledAssignment_NotFound() {
	ctx := context.Background()
	testAssignment := suite.addScheduledAssignment()

	err := suite.repository.Complete(ctx,
		testAssignment.ID(), testAssignment.DriverID(), time.Now().UTC())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	loaded, err := suite.repository.Get(ctx, testAssignment.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.Scheduled, loaded.Status())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestFindActiveForDriver_NoActiveAssignment_ReturnsNil() {
	ctx := context.Background()
	testAssignment := suite.addScheduledAssignment()

	ref, err := suite.repository.FindActiveForDriver(ctx, testAssignment.DriverID())
	suite.Require().NoError(err)
	suite.Nil(ref)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestFindActiveForDriver_ActiveAssignment_ReturnsRef() {
	ctx := context.Background()
	testAssignment := suite.addScheduledAssignment()

	suite.Require().NoError(suite.repository.Start(ctx,
		testAssignment.ID(), testAssignment.DriverID(), time.Now().UTC()))

	ref, err := suite.repository.FindActiveForDriver(ctx, testAssignment.DriverID())
	suite.Require().NoError(err)
	suite.Require().NotNil(ref)
	suite.Equal(testAssignment.ID(), ref.ID)
	suite.Equal(testAssignment.TruckID(), ref.TruckID)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) createScheduledAssignment() *assignment.Assignment {
	scheduledStart := time.Now().UTC().Truncate(time.Microsecond).Add(time.Hour)
	testAssignment, err := assignment.NewAssignment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		scheduledStart,
		scheduledStart.Add(4*time.Hour),
		"morning shift",
	)
	suite.Require().NoError(err)
	return testAssignment
}

func (suite *AssignmentRepositoryIntegrationTestSuite) addScheduledAssignment() *assignment.Assignment {
	testAssignment := suite.createScheduledAssignment()
	suite.tracker.On("TrackAggregate", testAssignment.ID(), testAssignment).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testAssignment))
	return testAssignment
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
