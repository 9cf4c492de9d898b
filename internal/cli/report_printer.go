package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"

	"timetracker/internal/api"
	"timetracker/internal/config"
	"timetracker/internal/domain"
)

// ReportPrinter writes command results as text lines or JSON objects
type ReportPrinter struct {
	out    io.Writer
	format string
}

// NewReportPrinter creates a printer for the given output format
func NewReportPrinter(out io.Writer, format string) *ReportPrinter {
	return &ReportPrinter{out: out, format: format}
}

type messageOutput struct {
	Message string `json:"message"`
}

type reportOutput struct {
	api.Report
	Message string `json:"message,omitempty"`
}

type sessionOutput struct {
	Tracking bool       `json:"tracking"`
	Since    *time.Time `json:"since,omitempty"`
	Hours    int        `json:"hours"`
	Minutes  int        `json:"minutes"`
}

// PrintReport prints a day or week total
func (p *ReportPrinter) PrintReport(report *api.Report) error {
	return p.PrintReportWithMessage(report, "")
}

// PrintReportWithMessage prints message, if any, followed by report.
// JSON output combines both into a single object.
func (p *ReportPrinter) PrintReportWithMessage(report *api.Report, message string) error {
	if p.format == config.OutputJSON {
		return p.printJSON(reportOutput{Report: *report, Message: message})
	}
	if message != "" {
		if _, err := fmt.Fprintln(p.out, message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.out, report.Formatted)
	return err
}

// PrintSession prints the running session, if any
func (p *ReportPrinter) PrintSession(status *api.SessionStatus) error {
	if p.format == config.OutputJSON {
		return p.printJSON(sessionOutput{
			Tracking: status.IsTracking(),
			Since:    status.Since,
			Hours:    int(status.Elapsed.Hours()),
			Minutes:  int(status.Elapsed.Minutes()) % 60,
		})
	}

	if !status.IsTracking() {
		_, err := fmt.Fprintln(p.out, "Not tracking")
		return err
	}
	_, err := fmt.Fprintf(p.out, "Tracking since %s (running for %s)\n", domain.FormatTimestamp(*status.Since), status.Duration)
	return err
}

// PrintMessage prints an informational line
func (p *ReportPrinter) PrintMessage(format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)
	if p.format == config.OutputJSON {
		return p.printJSON(messageOutput{Message: message})
	}
	_, err := fmt.Fprintln(p.out, message)
	return err
}

func (p *ReportPrinter) printJSON(v interface{}) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}
