package jobs

import (
	"context"
	"log/slog"

	"pos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSessionPurgeSchedule runs at second zero of every minute.
const DefaultSessionPurgeSchedule = "0 * * * * *"

// SessionPurgeJob periodically removes expired sessions from the session store.
type SessionPurgeJob struct {
	handler  commands.PurgeSessionsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionPurgeJob validates schedule, a six-field cron expression with seconds.
// An empty schedule uses DefaultSessionPurgeSchedule.
func NewSessionPurgeJob(
	handler commands.PurgeSessionsCommandHandler,
	schedule string,
	logger *slog.Logger,
) (*SessionPurgeJob, error) {
	if schedule == "" {
		schedule = DefaultSessionPurgeSchedule
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(schedule); err != nil {
		return nil, err
	}

	return &SessionPurgeJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_purge_job"),
	}, nil
}

// Start schedules the purge and starts the cron scheduler.
func (j *SessionPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session purge job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *SessionPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session purge job stopped")
}

func (j *SessionPurgeJob) run(ctx context.Context) int64 {
	purged, err := j.handler.Handle(ctx, commands.NewPurgeSessionsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Session purge failed", "error", err)
		return 0
	}
	if purged > 0 {
		j.logger.DebugContext(ctx, "Expired sessions purged", "count", purged)
	}
	return purged
}
