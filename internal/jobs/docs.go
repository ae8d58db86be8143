// Package jobs provides scheduled background tasks for the supply chain ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping over open contracts.
//
// # Available Jobs
//
// 1. OverdueContractJob - Runs every minute to flag open contracts whose agreed arrival time has passed
// 2. ContractCompletionJob - Runs every minute to complete confirmed contracts once all shipments have arrived
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(openContractsHandler, completeContractHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The completion job treats shipments still in transit as an expected scenario
// - Query failures are logged and the job retries on the next tick
// - Failed job starts will stop any already running jobs
package jobs
