// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. MetricsReportJob - Computes the assignment metrics report on a
// configurable schedule and writes it to the structured log, giving operators
// a running view of assignment health without polling the API.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(metricsHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report computation is logged and the schedule keeps running; the
// next tick retries from scratch.
package jobs
