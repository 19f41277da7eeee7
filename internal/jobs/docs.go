// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are cron-based via github.com/robfig/cron/v3 and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(db, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleTrackingJob runs at the top of every minute and logs trucks that are
// serving an active assignment but have not reported a position within the
// matching freshness window. It performs no writes; the matcher's freshness
// filter already excludes stale trucks, so the job only gives dispatchers a
// place to look when drivers stop reporting.
package jobs
