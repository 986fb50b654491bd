// Package controller provides output adapters for displaying fix progress and reports.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeFix StartMode = iota
	ModeList
	ModeView
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithFixMode sets the UI to fix progress mode.
func WithFixMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFix
	}
}

// WithListMode sets the UI to failure listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithWatchMode sets the UI to watch mode, where several fix runs share one session.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeFix}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying fix progress, failure lists and reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayUnavailable(ctx context.Context, view m.ResultsView)
	DisplayRunInfo(ctx context.Context, view m.ResultsView, cfg m.RunConfiguration, records int)
	DisplayRecordResult(ctx context.Context, index int, result m.RecordResult)
	DisplaySummary(ctx context.Context, report m.RunReport)
	DisplayFailures(ctx context.Context, tests []m.FailedTest) error
	DisplayReport(ctx context.Context, report m.RunReport) error
	DisplayWatching(ctx context.Context, dir m.Path)
}

// NewUI picks the TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
