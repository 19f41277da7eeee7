package commands

import (
	"context"
	"time"

	"wastetrack/internal/core/domain/model/tracking"
	"wastetrack/internal/pkg/errs"
)

// ReportLocationCommandHandler processes one driver position report.
//
// The whole report is one transaction: resolve the driver's active
// assignment, overwrite the truck's current-location projection and append
// one history record. If any step fails nothing is written; a projection row
// never exists without its matching history entry.
type ReportLocationCommandHandler struct {
	uowFactory LocationUoWFactory
	now        func() time.Time
}

// NewReportLocationCommandHandler creates a handler for location reports.
func NewReportLocationCommandHandler(uowFactory LocationUoWFactory) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the report. A driver with no active assignment gets a
// validation error; the report is dropped entirely, history included.
func (h *ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active, err := uow.AssignmentRepository().FindActiveForDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if active == nil {
		return errs.NewValueIsInvalidError("no active assignment found for location update")
	}

	now := h.now()

	projection, err := tracking.NewCurrentLocation(
		active.TruckID, active.ID, cmd.Point(), cmd.SpeedKmh(), cmd.Heading(), now)
	if err != nil {
		return err
	}

	record, err := tracking.NewHistoryRecord(
		active.TruckID, active.ID, cmd.Point(), cmd.SpeedKmh(), cmd.Heading(), now)
	if err != nil {
		return err
	}

	trackingRepo := uow.TrackingRepository()
	if err = trackingRepo.UpsertCurrentLocation(ctx, projection); err != nil {
		return err
	}
	if err = trackingRepo.AppendHistory(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
