package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// SpinnerSink reports progress with a terminal spinner on stderr
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
}

// NewSpinnerSink creates a new spinner-based progress sink writing to w
func NewSpinnerSink(w io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     w,
	}
}

// ProvideProgressSink picks the spinner for interactive terminals and a
// no-op sink for JSON output, debug logging or redirected stderr
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.JSON || cfg.Debug || !isatty.IsTerminal(os.Stderr.Fd()) {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stderr)
}

// OnProgress handles progress events
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if !event.Spinner {
		s.Done()
		return
	}

	suffix := " " + event.Message
	if event.Total > 1 {
		suffix = fmt.Sprintf(" [%d/%d] %s", event.Current, event.Total, event.Message)
	}
	s.spinner.Suffix = suffix

	if !s.spinner.Active() {
		s.spinner.Start()
	}
}

// Info prints an info message
func (s *SpinnerSink) Info(message string) {
	s.printAround(color.New(color.FgCyan), message)
}

// Error prints an error message
func (s *SpinnerSink) Error(message string) {
	s.printAround(color.New(color.FgRed), message)
}

// Done stops the spinner
func (s *SpinnerSink) Done() {
	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// printAround stops the spinner while a line is printed
func (s *SpinnerSink) printAround(c *color.Color, message string) {
	wasActive := s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}

	c.Fprintln(s.out, message)

	if wasActive {
		s.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
