package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "logguard.dev/pkg/logguard/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// TUI implements UI using Bubble Tea for interactive display. Reports that
// fit the terminal are printed directly; longer ones open a pager.
type TUI struct {
	simple *SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(cmd *cobra.Command, output io.Writer) *TUI {
	return &TUI{simple: NewSimpleUI(cmd), output: output}
}

// DisplaySummary renders the audit report, paging it when it exceeds the
// terminal height.
func (t *TUI) DisplaySummary(ctx context.Context, profile m.ScanProfile, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	report := RenderSummary(profile, summary)

	width, height := t.terminalSize()
	if height == 0 || strings.Count(report, "\n") <= height-reservedRows {
		_, err := fmt.Fprint(t.output, report)
		return err
	}

	program := tea.NewProgram(
		newReportModel(report, width, height),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayCounts prints the counts table without paging.
func (t *TUI) DisplayCounts(ctx context.Context, counts []m.FileCount) error {
	return t.simple.DisplayCounts(ctx, counts)
}

func (t *TUI) terminalSize() (width, height int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// reservedRows is the screen space taken by the pager title and footer.
const reservedRows = 3

// reportModel is the Bubble Tea model paging a rendered report.
type reportModel struct {
	viewport viewport.Model
	title    string
}

func newReportModel(report string, width, height int) reportModel {
	vp := viewport.New(width, height-reservedRows)
	vp.SetContent(report)

	return reportModel{
		viewport: vp,
		title:    "logguard audit report",
	}
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.viewport.Width = msg.Width
		rm.viewport.Height = msg.Height - reservedRows

		return rm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return rm, tea.Quit
		}
	}

	var cmd tea.Cmd
	rm.viewport, cmd = rm.viewport.Update(msg)

	return rm, cmd
}

func (rm reportModel) View() string {
	footer := fmt.Sprintf("%3.0f%%  ↑/↓ scroll · q quit", rm.viewport.ScrollPercent()*100)

	return titleStyle.Render(rm.title) + "\n" +
		rm.viewport.View() + "\n" +
		footerStyle.Render(footer)
}
