// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"wastetrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AssignmentRepoFactory provides access to the assignment repository
	// within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within
	// a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// RouteRepoFactory provides access to the route repository within a
	// transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// TruckRepoFactory provides access to the truck repository within a
	// transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// IssueRepoFactory provides access to the issue repository within a
	// transaction.
	IssueRepoFactory interface {
		IssueRepository() ports.IssueRepository
	}

	// AccountRepoFactory provides access to the account repository within a
	// transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// AssignmentUoW manages transactions for assignment-only operations.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// LocationUoW manages the location-tracking transaction: the active
	// assignment lookup, the projection upsert and the history append all
	// happen inside one unit of work.
	LocationUoW interface {
		TxManager
		AssignmentRepoFactory
		TrackingRepoFactory
	}

	// LocationUoWFactory creates location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// TrackingUoW manages transactions touching only the tracking tables.
	TrackingUoW interface {
		TxManager
		TrackingRepoFactory
	}

	// TrackingUoWFactory creates tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// RouteUoW manages transactions for route operations. Route and
	// waypoint writes share the transaction, making route creation
	// all-or-nothing.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// TruckUoW manages transactions for truck-only operations.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	// TruckUoWFactory creates truck unit of work instances.
	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// IssueUoW manages transactions for issue reporting. Driver reports
	// also resolve the active assignment, hence the assignment repository.
	IssueUoW interface {
		TxManager
		IssueRepoFactory
		AssignmentRepoFactory
	}

	// IssueUoWFactory creates issue unit of work instances.
	IssueUoWFactory interface {
		Create() IssueUoW
	}

	// AccountUoW manages transactions for registration and membership
	// operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
