package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetracker/internal/config"
	"timetracker/internal/domain"
	apperrors "timetracker/internal/errors"
)

func TestStartCommand_Execute(t *testing.T) {
	app, mock, out := setupTestAppWithMockBusinessAPI(t)
	cmd := NewStartCommand(app)
	ctx := context.Background()

	t.Run("starts silently on empty log", func(t *testing.T) {
		err := cmd.Execute(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, out.String())
		assert.Len(t, mock.appended, 1)
	})

	t.Run("second start reports existing start and does not append", func(t *testing.T) {
		out.Reset()
		err := cmd.Execute(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "Start has been already called at 2016-12-31 10:30\n", out.String())
		assert.Len(t, mock.appended, 1)
	})
}

func TestStartCommand_AfterStop(t *testing.T) {
	app, mock, out := setupTestAppWithMockBusinessAPI(t)
	stopped := domain.NewTimeMark(domain.Stop, time.Date(2016, 12, 31, 9, 0, 0, 0, time.Local))
	mock.last = &stopped

	require.NoError(t, NewStartCommand(app).Execute(context.Background(), nil))
	assert.Empty(t, out.String())
	require.Len(t, mock.appended, 1)
	assert.Equal(t, domain.Start, mock.appended[0].Kind)
}

func TestStartCommand_AlreadyStartedJSONOutput(t *testing.T) {
	app, mock, out := setupTestAppWithMockBusinessAPI(t)
	app.config.Output.Format = config.OutputJSON
	started := domain.NewTimeMark(domain.Start, time.Date(2016, 12, 31, 9, 0, 0, 0, time.Local))
	mock.last = &started

	require.NoError(t, NewStartCommand(app).Execute(context.Background(), nil))
	assert.JSONEq(t, `{"message":"Start has been already called at 2016-12-31 09:00"}`, out.String())
	assert.Empty(t, mock.appended)
}

func TestStartCommand_Error(t *testing.T) {
	app, mock, _ := setupTestAppWithMockBusinessAPI(t)
	mock.err = apperrors.NewStorageError("read log", errors.New("disk gone"))

	err := NewStartCommand(app).Execute(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "failed to start tracking: A storage error occurred while accessing the time log.", err.Error())
}
