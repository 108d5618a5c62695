package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "logguard.dev/pkg/logguard/internal/model"
)

func TestTUI_DisplaySummaryPlainWhenNotATerminal(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	ui := NewTUI(cmd, out)

	summary := m.NewRunSummary()
	summary.Merge("src/a.ts", m.FileResult{
		Total:       1,
		Unguarded:   1,
		Occurrences: []m.Occurrence{{Line: 1, Text: "console.log(1);"}},
	})

	err := ui.DisplaySummary(context.Background(), m.NewScanProfile(), summary)
	require.NoError(t, err)

	// A buffer has no terminal size, so the report prints without paging.
	assert.Equal(t, RenderSummary(m.NewScanProfile(), summary), out.String())
}

func TestTUI_DisplayCountsDelegatesToSimple(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	ui := NewTUI(cmd, out)

	err := ui.DisplayCounts(context.Background(), []m.FileCount{
		{Path: "src/a.ts", Total: 1, Unguarded: 1},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "src/a.ts")
}

func TestReportModel(t *testing.T) {
	report := strings.Repeat("line\n", 50)
	model := newReportModel(report, 80, 24)

	t.Run("view shows title and footer", func(t *testing.T) {
		view := model.View()
		assert.Contains(t, view, "logguard audit report")
		assert.Contains(t, view, "q quit")
	})

	t.Run("quits on q", func(t *testing.T) {
		_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})

	t.Run("resizes with the window", func(t *testing.T) {
		updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		rm, ok := updated.(reportModel)
		require.True(t, ok)
		assert.Equal(t, 100, rm.viewport.Width)
		assert.Equal(t, 40-reservedRows, rm.viewport.Height)
	})
}
