package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "logguard.dev/pkg/logguard/internal/model"
)

// snippet and example limits of the per-file detail listing.
const (
	maxExamplesPerFile = 3
	maxSnippetLength   = 80
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints the audit report in the fixed text format.
func (s *SimpleUI) DisplaySummary(ctx context.Context, profile m.ScanProfile, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", RenderSummary(profile, summary))

	return nil
}

// DisplayCounts prints a per-file counts table.
func (s *SimpleUI) DisplayCounts(ctx context.Context, counts []m.FileCount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", RenderCountsTable(counts))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// RenderSummary produces the report text: grand totals, the number of files
// with unguarded calls, and per-file detail sorted by path with up to three
// example lines each. Snippets are cut at 80 characters and always carry a
// trailing ellipsis.
func RenderSummary(profile m.ScanProfile, summary m.RunSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total %s statements: %d\n", profile.Call, summary.Total)
	fmt.Fprintf(&b, "Behind %s: %d\n", profile.Marker, summary.Guarded)
	fmt.Fprintf(&b, "NOT behind %s: %d\n", profile.Marker, summary.Unguarded)
	fmt.Fprintf(&b, "\nFiles with unguarded %s statements: %d\n", profile.Call, len(summary.Files))

	for _, path := range summary.SortedPaths() {
		result := summary.Files[path]

		fmt.Fprintf(&b, "\n%s: %d unguarded %s statements\n", path, result.Unguarded, profile.Call)

		for i, occ := range result.Occurrences {
			if i >= maxExamplesPerFile {
				break
			}

			fmt.Fprintf(&b, "  Line %d: %s...\n", occ.Line, truncate(occ.Text, maxSnippetLength))
		}

		if remaining := len(result.Occurrences) - maxExamplesPerFile; remaining > 0 {
			fmt.Fprintf(&b, "  ... and %d more\n", remaining)
		}
	}

	return b.String()
}

// RenderCountsTable produces the per-file counts table with totals footer.
func RenderCountsTable(counts []m.FileCount) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Calls", "Guarded", "Unguarded"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var total, guarded, unguarded int

	for _, count := range counts {
		table.Append([]string{
			string(count.Path),
			fmt.Sprintf("%d", count.Total),
			fmt.Sprintf("%d", count.Guarded),
			fmt.Sprintf("%d", count.Unguarded),
		})

		total += count.Total
		guarded += count.Guarded
		unguarded += count.Unguarded
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(counts)),
		fmt.Sprintf("%d", total),
		fmt.Sprintf("%d", guarded),
		fmt.Sprintf("%d", unguarded),
	})

	table.Render()

	return buf.String()
}

// truncate cuts text after limit characters.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit])
}
