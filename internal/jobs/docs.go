// Package jobs provides scheduled background tasks for the workshop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery-note workflow.
//
// # Available Jobs
//
// 1. NoteLockJob - Runs nightly to finalize validated notes that stayed
// unlocked past the configured number of days
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(lockOverdueNotesHandler, lockAfterDays, logger)
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
// The lock job uses the cron expression "0 2 * * *" and runs at 02:00 each
// night, when no one is editing notes.
//
// # Error Handling
//
// The lock job logs every failure; a failed sweep leaves all notes untouched
// because the whole batch runs in one transaction.
package jobs
