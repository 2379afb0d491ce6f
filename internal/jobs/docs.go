// Package jobs provides scheduled background tasks for the sales service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds).
//
// # Available Jobs
//
// 1. ExpiredOrdersJob - moves Placed orders whose cancellation window has
// closed to InProcess.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&expiredOrdersHandler, "0 */5 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the job.
package jobs
