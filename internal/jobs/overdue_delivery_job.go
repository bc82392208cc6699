package jobs

import (
	"context"
	"log/slog"

	"orderstatus/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob manages the scheduled sweep for overdue deliveries.
// Runs every minute to flag orders in transit past their delivery promise
// with a late delivery exception.
type OverdueDeliveryJob struct {
	handler commands.FlagOverdueDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates a new job for flagging overdue deliveries.
// Uses FlagOverdueDeliveriesCommandHandler to record exceptions every minute.
func NewOverdueDeliveryJob(handler commands.FlagOverdueDeliveriesCommandHandler, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the overdue delivery job to run at the top of every minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewFlagOverdueDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the overdue delivery job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
