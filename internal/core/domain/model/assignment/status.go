package assignment

import (
	"fmt"

	"wastetrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an assignment.
// It implements a state machine with defined transitions to ensure
// assignments follow the correct operational workflow.
//
// State transitions:
//
//	Scheduled ──> Active ──> Completed
//
// Each transition moves strictly forward; there is no path back and no
// way to skip Active. Status is a value object that validates its
// transitions and provides string representations for persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Scheduled is the initial status when an assignment is created.
	// The driver has not started the shift yet.
	Scheduled

	// Active indicates the driver has started the shift and the truck
	// is reporting locations against this assignment.
	Active

	// Completed indicates the shift has finished.
	// This is a final state with no further transitions allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Scheduled: "scheduled",
		Active:    "active",
		Completed: "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Scheduled: "scheduled",
		Active:    "active",
		Completed: "completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Scheduled, Active, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status as persisted and served.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Start transitions the status to Active.
//
// Valid transitions:
//   - Scheduled -> Active
//
// Any other starting state yields an error, including Active itself:
// a shift cannot be started twice.
func (s Status) Start() (Status, error) {
	if s != Scheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return Active, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Active -> Completed
//
// A Scheduled assignment cannot be completed without being started first,
// and Completed is final.
func (s Status) Complete() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
