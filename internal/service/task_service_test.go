package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/repository"
	"github.com/alexanderramin/braindump/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTasks(t *testing.T, svc *testServices, titles ...string) []*domain.PlannedTask {
	t.Helper()
	out := make([]*domain.PlannedTask, len(titles))
	for i, title := range titles {
		out[i] = testutil.NewTestTask(title, testutil.WithPosition(i))
		require.NoError(t, svc.taskRepo.Create(context.Background(), out[i]))
	}
	return out
}

func TestTaskService_CompleteCelebratesFirstTask(t *testing.T) {
	svc := setupServices(t, "")
	tasks := seedTasks(t, svc, "a", "b", "c", "d")
	ctx := context.Background()

	res, err := svc.tasks.Complete(ctx, tasks[0].DisplayID())
	require.NoError(t, err)
	assert.True(t, res.Task.Completed)
	require.NotNil(t, res.Nudge)
	assert.Contains(t, res.Nudge.Message, "First task")

	res, err = svc.tasks.Complete(ctx, tasks[1].ID)
	require.NoError(t, err)
	require.NotNil(t, res.Nudge)
	assert.Contains(t, res.Nudge.Message, "Halfway")

	res, err = svc.tasks.Complete(ctx, tasks[2].ID)
	require.NoError(t, err)
	require.NotNil(t, res.Nudge)
	assert.Contains(t, res.Nudge.Message, "3 tasks done")

	res, err = svc.tasks.Complete(ctx, tasks[3].ID)
	require.NoError(t, err)
	require.NotNil(t, res.Nudge)
	assert.Contains(t, res.Nudge.Message, "Everything")
}

func TestTaskService_CompleteTwiceFails(t *testing.T) {
	svc := setupServices(t, "")
	tasks := seedTasks(t, svc, "a")
	ctx := context.Background()

	_, err := svc.tasks.Complete(ctx, tasks[0].ID)
	require.NoError(t, err)
	_, err = svc.tasks.Complete(ctx, tasks[0].ID)
	assert.ErrorContains(t, err, "already completed")
}

func TestTaskService_ReopenRemoveClear(t *testing.T) {
	svc := setupServices(t, "")
	tasks := seedTasks(t, svc, "a", "b", "c")
	ctx := context.Background()

	_, err := svc.tasks.Reopen(ctx, tasks[0].ID)
	assert.ErrorContains(t, err, "not completed")

	_, err = svc.tasks.Complete(ctx, tasks[0].ID)
	require.NoError(t, err)
	reopened, err := svc.tasks.Reopen(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)

	removed, err := svc.tasks.Remove(ctx, tasks[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Title)
	_, err = svc.tasks.Get(ctx, tasks[1].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, err := svc.tasks.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTaskService_UnknownRef(t *testing.T) {
	svc := setupServices(t, "")
	_, err := svc.tasks.Complete(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
