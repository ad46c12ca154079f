// Package jobs provides scheduled background tasks for the service.
//
// Jobs run on github.com/robfig/cron/v3 with a seconds field, so schedules
// have six fields: "0 * * * * *" runs at the start of every minute.
//
// # Available Jobs
//
// OrderBacklogJob counts orders per status, logs the summary and publishes
// it to the orders gauges.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(summaryHandler, orderMetrics, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A failed run is logged and retried at the next tick.
package jobs
