package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetracker/internal/config"
	"timetracker/internal/domain"
)

func TestCurrentCommand_NotTracking(t *testing.T) {
	app, _, out := setupTestAppWithMockBusinessAPI(t)

	require.NoError(t, NewCurrentCommand(app).Execute(context.Background(), nil))
	assert.Equal(t, "Not tracking\n", out.String())
}

func TestCurrentCommand_Tracking(t *testing.T) {
	app, mock, out := setupTestAppWithMockBusinessAPI(t)
	started := domain.NewTimeMark(domain.Start, time.Date(2016, 12, 31, 9, 0, 0, 0, time.Local))
	mock.last = &started

	require.NoError(t, NewCurrentCommand(app).Execute(context.Background(), nil))
	assert.Equal(t, "Tracking since 2016-12-31 09:00 (running for 1h 30m)\n", out.String())
}

func TestCurrentCommand_JSONOutput(t *testing.T) {
	app, mock, out := setupTestAppWithMockBusinessAPI(t)
	app.config.Output.Format = config.OutputJSON
	started := domain.NewTimeMark(domain.Start, time.Date(2016, 12, 31, 9, 0, 0, 0, time.Local))
	mock.last = &started

	require.NoError(t, NewCurrentCommand(app).Execute(context.Background(), nil))
	assert.Contains(t, out.String(), `"tracking":true`)
	assert.Contains(t, out.String(), `"hours":1`)
	assert.Contains(t, out.String(), `"minutes":30`)
}
