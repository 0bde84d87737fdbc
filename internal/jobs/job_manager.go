package jobs

import (
	"fmt"
	"log/slog"

	"pos/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionPurgeJob *SessionPurgeJob
}

// NewJobManager creates the jobs. Returns an error for an invalid purge schedule.
func NewJobManager(
	purgeSessionsHandler commands.PurgeSessionsCommandHandler,
	purgeSchedule string,
	logger *slog.Logger,
) (*JobManager, error) {
	sessionPurgeJob, err := NewSessionPurgeJob(purgeSessionsHandler, purgeSchedule, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid session purge schedule %q: %w", purgeSchedule, err)
	}

	return &JobManager{
		sessionPurgeJob: sessionPurgeJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start session purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionPurgeJob.Stop()
}
