package cli

import (
	"context"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute prints the total for the day named by args[0], or today
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	dateExpr := ""
	if len(args) > 0 {
		dateExpr = args[0]
	}

	report, err := c.app.businessAPI.GetDayReport(ctx, dateExpr)
	if err != nil {
		return c.errorHandler.Handle("show day", err)
	}
	return c.app.printer().PrintReport(report)
}
