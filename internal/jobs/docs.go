// Package jobs provides scheduled background tasks for the ordering engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order processing engine.
//
// # Available Jobs
//
// 1. PartnerRematchJob - Retries delivery partner matching for orders that
// were placed while no partner served their postal code. The oldest pending
// unassigned order is matched first.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignPartnerHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The rematch job uses a six-field cron expression with a seconds column,
// "*/5 * * * * *" by default. Placement performs a synchronous match first;
// the job exists only to drain the pending backlog as partners free up.
package jobs
