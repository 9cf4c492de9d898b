package cli

import (
	"context"
	"fmt"

	"timetracker/internal/domain"
)

// StopCommand handles the stop command
type StopCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command and then prints today's total
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	result, err := c.app.businessAPI.StopTracking(ctx)
	if err != nil {
		return c.errorHandler.Handle("stop tracking", err)
	}

	var message string
	if !result.Applied {
		if result.Previous == nil {
			message = "Tracking has not been started yet"
		} else {
			message = fmt.Sprintf("Stop has been already called at %s", domain.FormatTimestamp(result.Previous.At))
		}
	}

	printer := c.app.printer()
	if result.Today == nil {
		if message == "" {
			return nil
		}
		return printer.PrintMessage("%s", message)
	}
	return printer.PrintReportWithMessage(result.Today, message)
}
