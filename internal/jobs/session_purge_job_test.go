package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	purged atomic.Int64
	result int64
	err    error
}

func (f *fakeSessionStore) Issue(context.Context, access.Role) (access.Session, error) {
	return access.Session{}, errors.New("not used")
}

func (f *fakeSessionStore) Validate(context.Context, string) (access.Session, error) {
	return access.Session{}, errors.New("not used")
}

func (f *fakeSessionStore) Revoke(context.Context, string) error {
	return errors.New("not used")
}

func (f *fakeSessionStore) PurgeExpired(context.Context) (int64, error) {
	f.purged.Add(1)
	return f.result, f.err
}

func TestNewSessionPurgeJob_Schedule(t *testing.T) {
	handler := commands.NewPurgeSessionsCommandHandler(&fakeSessionStore{})

	job, err := NewSessionPurgeJob(handler, "", slog.Default())
	require.NoError(t, err)
	assert.Equal(t, DefaultSessionPurgeSchedule, job.schedule)

	_, err = NewSessionPurgeJob(handler, "@every 30s", slog.Default())
	require.NoError(t, err)

	_, err = NewSessionPurgeJob(handler, "every minute", slog.Default())
	require.Error(t, err)
}

func TestSessionPurgeJob_Run(t *testing.T) {
	store := &fakeSessionStore{result: 4}
	job, err := NewSessionPurgeJob(commands.NewPurgeSessionsCommandHandler(store), "", slog.Default())
	require.NoError(t, err)

	assert.Equal(t, int64(4), job.run(t.Context()))
	assert.Equal(t, int64(1), store.purged.Load())

	store.err = errors.New("database is locked")
	assert.Zero(t, job.run(t.Context()))
}

func TestJobManager_StartStop(t *testing.T) {
	handler := commands.NewPurgeSessionsCommandHandler(&fakeSessionStore{})

	_, err := NewJobManager(handler, "not a schedule", slog.Default())
	require.Error(t, err)

	manager, err := NewJobManager(handler, "@every 1h", slog.Default())
	require.NoError(t, err)
	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
