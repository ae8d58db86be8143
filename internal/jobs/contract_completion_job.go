package jobs

import (
	"context"
	"errors"
	"log/slog"

	"medledger/internal/core/application/usecases/commands"
	"medledger/internal/core/application/usecases/queries"
	"medledger/internal/core/domain/model/contract"
	"medledger/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ContractCompletionJob sweeps confirmed contracts and completes the ones
// whose shipments have all arrived. Runs every minute.
type ContractCompletionJob struct {
	openContracts queries.GetOpenContractsQueryHandler
	complete      commands.CompleteContractCommandHandler
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewContractCompletionJob creates a new job for completing delivered contracts.
func NewContractCompletionJob(
	openContracts queries.GetOpenContractsQueryHandler,
	complete commands.CompleteContractCommandHandler,
	logger *slog.Logger,
) *ContractCompletionJob {
	return &ContractCompletionJob{
		openContracts: openContracts,
		complete:      complete,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "contract_completion_job"),
	}
}

// Start begins the contract completion job to run every minute.
func (j *ContractCompletionJob) Start() error {
	_, err := j.cron.AddFunc("30 * * * * *", func() {
		ctx := context.Background()

		open, err := j.openContracts.Handle(ctx, queries.NewGetOpenContractsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Contract completion job failed", "error", err)
			return
		}

		for _, entry := range open {
			if entry.Status != contract.Confirmed {
				continue
			}

			cmd, err := commands.NewCompleteContractCommand(entry.ID)
			if err != nil {
				j.logger.ErrorContext(ctx, "Failed to build completion command",
					"contractId", entry.ID.String(), "error", err)
				continue
			}

			if err := j.complete.Handle(ctx, cmd); err != nil {
				// Shipments still in transit are an expected scenario
				if !errors.Is(err, errs.ErrInvalidStateTransition) {
					j.logger.ErrorContext(ctx, "Failed to complete contract",
						"contractId", entry.ID.String(), "error", err)
				}
				continue
			}

			j.logger.InfoContext(ctx, "Contract completed",
				"contractId", entry.ID.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Contract completion job started (running every minute)")
	return nil
}

// Stop stops the contract completion job.
func (j *ContractCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Contract completion job stopped")
}
