// Package cmd provides the root command and CLI setup for logguard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"logguard.dev/pkg/logguard/internal/adapter"
	"logguard.dev/pkg/logguard/internal/controller"
	"logguard.dev/pkg/logguard/internal/domain"
	m "logguard.dev/pkg/logguard/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that
// read/write saved reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// callFlag, markerFlag and extFlags override the audited call pattern.
var callFlag string
var markerFlag string
var extFlags []string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter)
}

const pathsHelp = `Paths default to ./src; pass one or more directories to scan instead:
  - logguard scan            scan the src directory
  - logguard scan app lib    scan the app and lib directories`

const rootLongDescription = `Logguard audits a source tree for logging calls (console.log by default)
that are not protected by a debug guard: a conditional line containing the
guard marker (DEBUG_CONFIG by default). It reports how many calls are
guarded, how many are not, and where the unguarded ones live.

` + pathsHelp

const scanLongDescription = `Scan the given paths and print the audit report.

` + pathsHelp

const listLongDescription = `List files containing the audited call and their per-file counts.

` + pathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logguard",
		Short: "Audit unguarded debug logging calls",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for saved audit reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&callFlag, callFlagName, viper.GetString(scanCallKey), "logging call substring to audit")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(callFlagName), scanCallKey)

	cmd.PersistentFlags().StringVar(&markerFlag, markerFlagName, viper.GetString(scanMarkerKey), "guard marker token recognized on conditional lines")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(markerFlagName), scanMarkerKey)

	cmd.PersistentFlags().StringArrayVar(&extFlags, extFlagName, viper.GetStringSlice(scanExtensionsKey), "source file suffix to scan (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extFlagName), scanExtensionsKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// buildProfile assembles the scan profile from positional args, flags and
// config. With no overrides it reproduces the reference audit: ./src,
// console.log, if + DEBUG_CONFIG, .ts/.tsx.
func buildProfile(args []string) m.ScanProfile {
	profile := m.NewScanProfile()

	if paths := parsePaths(args); len(paths) > 0 {
		profile.Paths = paths
	}

	if call := viper.GetString(scanCallKey); call != "" {
		profile.Call = call
	}

	if keyword := viper.GetString(scanKeywordKey); keyword != "" {
		profile.Keyword = keyword
	}

	if marker := viper.GetString(scanMarkerKey); marker != "" {
		profile.Marker = marker
	}

	if exts := viper.GetStringSlice(scanExtensionsKey); len(exts) > 0 {
		profile.Extensions = exts
	}

	profile.Exclude = viper.GetStringSlice(excludeConfigKey)

	return profile
}
