package cli

import (
	"context"
)

// ShowWeekCommand handles the show-week command
type ShowWeekCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowWeekCommand creates a new show-week command handler
func NewShowWeekCommand(app *App) *ShowWeekCommand {
	return &ShowWeekCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the total for the current ISO week
func (c *ShowWeekCommand) Execute(ctx context.Context, args []string) error {
	report, err := c.app.businessAPI.GetWeekReport(ctx)
	if err != nil {
		return c.errorHandler.Handle("show week", err)
	}
	return c.app.printer().PrintReport(report)
}
