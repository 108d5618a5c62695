// Package controller provides output adapters for displaying audit results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "logguard.dev/pkg/logguard/internal/model"
)

// UI defines the interface for rendering audit output. Implementations can
// use different output methods (simple text, TUI).
type UI interface {
	// DisplaySummary renders the full audit report for a run.
	DisplaySummary(ctx context.Context, profile m.ScanProfile, summary m.RunSummary) error

	// DisplayCounts renders per-file occurrence counts.
	DisplayCounts(ctx context.Context, counts []m.FileCount) error
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI selects the UI implementation: a pager-capable TUI on a terminal,
// plain text otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd, os.Stdout)
	}

	return NewSimpleUI(cmd)
}
