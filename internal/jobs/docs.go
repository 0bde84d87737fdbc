// Package jobs provides scheduled background tasks for the point-of-service backend.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution schedules.
//
// # Available Jobs
//
// 1. SessionPurgeJob - deletes expired login sessions on a configurable schedule
// (every minute by default)
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(purgeHandler, "0 * * * * *", logger)
//	if err != nil {
//		log.Fatal("Invalid job schedule:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Expired sessions are
// rejected on validation anyway, so a missed purge only delays cleanup.
package jobs
