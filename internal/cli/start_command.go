package cli

import (
	"context"

	"timetracker/internal/domain"
)

// StartCommand handles the start command
type StartCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	result, err := c.app.businessAPI.StartTracking(ctx)
	if err != nil {
		return c.errorHandler.Handle("start tracking", err)
	}

	if !result.Applied && result.Previous != nil {
		return c.app.printer().PrintMessage("Start has been already called at %s", domain.FormatTimestamp(result.Previous.At))
	}
	return nil
}
