package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "logguard.dev/pkg/logguard/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously saved audit report",
		Long:  "View a previously saved audit report from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			reportsPath := m.Path(viper.GetString(outputFlagName))

			report, err := reportStore.LoadSummary(reportsPath)
			if err != nil {
				return err
			}

			if err := ui.DisplaySummary(ctx, report.Profile, report.Summary); err != nil {
				return fmt.Errorf("display: %w", err)
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
