package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"logguard.dev/pkg/logguard/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List files and per-file call counts",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			profile := buildProfile(args)

			counts, err := workflow.Count(ctx, domain.ScanArgs{Profile: profile})
			if err != nil {
				return err
			}

			if err := ui.DisplayCounts(ctx, counts); err != nil {
				return fmt.Errorf("display: %w", err)
			}

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
