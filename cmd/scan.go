package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"logguard.dev/pkg/logguard/internal/adapter"
	"logguard.dev/pkg/logguard/internal/domain"
	m "logguard.dev/pkg/logguard/internal/model"
)

var scanSaveFlag bool
var scanFailFlag bool

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan for unguarded logging calls",
		Long:  scanLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			profile := buildProfile(args)

			summary, err := workflow.Scan(ctx, domain.ScanArgs{Profile: profile})
			if err != nil {
				return err
			}

			if err := ui.DisplaySummary(ctx, profile, summary); err != nil {
				return fmt.Errorf("display: %w", err)
			}

			if viper.GetBool(reportSaveKey) {
				report := adapter.SavedReport{
					GeneratedAt: time.Now().UTC(),
					Profile:     profile,
					Summary:     summary,
				}

				reportsPath := m.Path(viper.GetString(outputFlagName))
				if err := reportStore.SaveSummary(reportsPath, report); err != nil {
					return fmt.Errorf("save report: %w", err)
				}
			}

			if viper.GetBool(scanFailKey) && summary.Unguarded > 0 {
				return fmt.Errorf("found %d unguarded %s statements", summary.Unguarded, profile.Call)
			}

			return nil
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&scanSaveFlag, saveFlagName, viper.GetBool(reportSaveKey), "save the report to the output directory")
	bindFlagToConfig(cmd.Flags().Lookup(saveFlagName), reportSaveKey)

	cmd.Flags().BoolVar(&scanFailFlag, failFlagName, viper.GetBool(scanFailKey), "exit nonzero when unguarded calls are found")
	bindFlagToConfig(cmd.Flags().Lookup(failFlagName), scanFailKey)
}
