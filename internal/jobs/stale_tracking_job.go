package jobs

import (
	"context"
	"log/slog"
	"time"

	"wastetrack/internal/core/domain/model/assignment"
	"wastetrack/internal/core/domain/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StaleTrackingJob watches for trucks that are on an active assignment but
// whose position projection has gone stale. Runs every minute and only logs;
// stale projections are excluded from matching by the freshness filter, so
// the job exists for operational visibility, not correctness.
type StaleTrackingJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
	now    func() time.Time
}

// NewStaleTrackingJob creates the watchdog over the given database
// connection.
func NewStaleTrackingJob(db *gorm.DB, logger *slog.Logger) *StaleTrackingJob {
	return &StaleTrackingJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "stale_tracking_job"),
		now:    time.Now,
	}
}

// Start begins the watchdog, running at the top of every minute.
func (j *StaleTrackingJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale tracking check failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale tracking job started (running every minute)")
	return nil
}

// Stop stops the watchdog.
func (j *StaleTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale tracking job stopped")
}

func (j *StaleTrackingJob) run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-services.FreshnessWindow)

	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT t.name, tl.updated_at
		FROM truck_locations tl
		JOIN trucks t ON t.id = tl.truck_id
		JOIN assignments a ON a.id = tl.assignment_id
		WHERE a.status = ? AND tl.updated_at < ?
	`, int(assignment.Active), cutoff).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name      string
			updatedAt time.Time
		)
		if err = rows.Scan(&name, &updatedAt); err != nil {
			return err
		}

		j.logger.WarnContext(ctx, "Truck on active assignment has a stale position",
			"truck", name,
			"last_report", updatedAt,
			"age", j.now().UTC().Sub(updatedAt).Round(time.Second).String(),
		)
	}

	return rows.Err()
}
