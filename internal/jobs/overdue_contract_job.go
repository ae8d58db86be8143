package jobs

import (
	"context"
	"log/slog"
	"time"

	"medledger/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueContractJob watches open contracts and reports the ones whose
// agreed arrival time has passed. Runs every minute.
type OverdueContractJob struct {
	handler queries.GetOpenContractsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewOverdueContractJob creates a new job for flagging overdue contracts.
func NewOverdueContractJob(handler queries.GetOpenContractsQueryHandler, logger *slog.Logger) *OverdueContractJob {
	return &OverdueContractJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_contract_job"),
		now:     time.Now,
	}
}

// Start begins the overdue contract job to run every minute.
func (j *OverdueContractJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		open, err := j.handler.Handle(ctx, queries.NewGetOpenContractsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue contract job failed", "error", err)
			return
		}

		now := j.now()
		for _, entry := range open {
			if entry.ArrivalAt.Before(now) {
				j.logger.WarnContext(ctx, "Contract is past its agreed arrival time",
					"contractId", entry.ID.String(),
					"status", entry.Status.String(),
					"arrivalAt", entry.ArrivalAt,
					"overdueBy", now.Sub(entry.ArrivalAt).String())
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue contract job started (running every minute)")
	return nil
}

// Stop stops the overdue contract job.
func (j *OverdueContractJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue contract job stopped")
}
