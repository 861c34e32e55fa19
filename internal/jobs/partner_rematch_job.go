package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/services"
)

// DefaultRematchSchedule runs the rematch every five seconds. Placement
// already tries to match synchronously; this job only mops up orders that
// found no partner then.
const DefaultRematchSchedule = "*/5 * * * * *"

// PartnerRematchJob periodically retries partner matching for pending orders
// that were placed while no delivery partner was available.
type PartnerRematchJob struct {
	handler  commands.AssignPartnerCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPartnerRematchJob creates the rematch job with the default schedule.
func NewPartnerRematchJob(handler commands.AssignPartnerCommandHandler, logger *slog.Logger) *PartnerRematchJob {
	return NewPartnerRematchJobWithSchedule(handler, DefaultRematchSchedule, logger)
}

// NewPartnerRematchJobWithSchedule creates the rematch job with a custom
// six-field cron schedule.
func NewPartnerRematchJobWithSchedule(
	handler commands.AssignPartnerCommandHandler,
	schedule string,
	logger *slog.Logger,
) *PartnerRematchJob {
	return &PartnerRematchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "partner_rematch_job"),
	}
}

// Start begins the scheduled rematch runs.
func (j *PartnerRematchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewAssignPartnerCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog and an exhausted partner pool are expected
			// between runs, not failures.
			if !errors.Is(err, commands.ErrNoPendingOrders) &&
				!errors.Is(err, services.ErrNoPartnerAvailable) {
				j.logger.ErrorContext(ctx, "Partner rematch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Partner rematch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the rematch job.
func (j *PartnerRematchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Partner rematch job stopped")
}
