package cli

import (
	"context"
)

// CurrentCommand handles the current command
type CurrentCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context, args []string) error {
	status, err := c.app.businessAPI.GetCurrentSession(ctx)
	if err != nil {
		return c.errorHandler.Handle("get current session", err)
	}
	return c.app.printer().PrintSession(status)
}
