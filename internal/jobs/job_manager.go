package jobs

import (
	"fmt"
	"log/slog"

	"medledger/internal/core/application/usecases/commands"
	"medledger/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueContractJob    *OverdueContractJob
	contractCompletionJob *ContractCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes use case handlers as dependencies to wire up the job execution.
func NewJobManager(
	openContractsHandler queries.GetOpenContractsQueryHandler,
	completeContractHandler commands.CompleteContractCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueContractJob:    NewOverdueContractJob(openContractsHandler, logger),
		contractCompletionJob: NewContractCompletionJob(openContractsHandler, completeContractHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueContractJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue contract job: %w", err)
	}

	if err := jm.contractCompletionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overdueContractJob.Stop()
		return fmt.Errorf("failed to start contract completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.contractCompletionJob.Stop()
	jm.overdueContractJob.Stop()
}
