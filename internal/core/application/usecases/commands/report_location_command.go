package commands

import (
	"errors"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

var ErrReportLocationCommandIsNotConstructed = errors.New(
	"ReportLocationCommand must be created via NewReportLocationCommand constructor",
)

// ReportLocationCommand represents one position report from a driver's
// device. Speed and heading are optional; absent values stay nil end to end.
type ReportLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	point    kernel.GeoPoint
	speedKmh *float64
	heading  *float64

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a command carrying one position report.
func NewReportLocationCommand(driverID kernel.UUID, point kernel.GeoPoint,
	speedKmh *float64, heading *float64) (ReportLocationCommand, error) {
	cmd := ReportLocationCommand{
		speedKmh: speedKmh,
		heading:  heading,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setPoint(point),
		cmd.validateSpeed(speedKmh),
		cmd.validateHeading(heading),
	); err != nil {
		return ReportLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

func (c ReportLocationCommand) DriverID() kernel.UUID  { return c.driverID }
func (c ReportLocationCommand) Point() kernel.GeoPoint { return c.point }
func (c ReportLocationCommand) SpeedKmh() *float64     { return c.speedKmh }
func (c ReportLocationCommand) Heading() *float64      { return c.heading }

func (c *ReportLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *ReportLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.point = point
	return nil
}

func (c *ReportLocationCommand) validateSpeed(speedKmh *float64) error {
	if speedKmh != nil && *speedKmh < 0 {
		return errs.NewValueIsInvalidError("speedKmh")
	}
	return nil
}

func (c *ReportLocationCommand) validateHeading(heading *float64) error {
	if heading != nil && (*heading < 0 || *heading >= 360) {
		return errs.NewValueIsOutOfRangeError("heading", *heading, 0, 360)
	}
	return nil
}
