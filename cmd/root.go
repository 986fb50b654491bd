// Package cmd provides the root command and CLI setup for autotestfix.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"autotestfix.dev/pkg/autotestfix/internal/adapter"
	"autotestfix.dev/pkg/autotestfix/internal/controller"
	"autotestfix.dev/pkg/autotestfix/internal/domain"
	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

var resultSource adapter.TestResultSource
var reportStore adapter.ReportStore
var resultsWatcher adapter.ResultsWatcher
var runTrigger *adapter.LocalRunTrigger
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write run reports.
var reportsOutputDirFlag string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		initLogging()
	}

	isTTY := controller.IsTTY(os.Stdout)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, isTTY)
	resultSource = adapter.NewLocalTestResultSource(viper.GetInt(resultsParallelKey))
	reportStore = adapter.NewYAMLReportStore()
	resultsWatcher = adapter.NewFSResultsWatcher(watchDebounce())
	runTrigger = adapter.NewLocalRunTrigger(m.Path(configFolderPath), rerunOutput(isTTY))
	workflow = domain.NewWorkflow(
		resultSource,
		newDocumentAccess,
		runTrigger,
		reportStore,
		resultsWatcher,
		ui,
	)
}

func newDocumentAccess(project m.Path, sourceRoots []string) adapter.DocumentAccess {
	return adapter.NewLocalDocumentAccess(project, sourceRoots)
}

// rerunOutput keeps child test output off the terminal while the interactive view owns it.
func rerunOutput(isTTY bool) io.Writer {
	if isTTY {
		return nil
	}

	return os.Stderr
}

const resultsHelp = `Test results are read from a results view: a directory of JUnit/Surefire
XML reports (default target/surefire-reports) or of JSON failure dumps.`

const rootLongDescription = `autotestfix rewrites the expected value of failing assertions with the
value the test actually produced, then re-runs the selected run configuration.

` + resultsHelp

const fixLongDescription = `Patch every failed assertion of the results view.

For each failed test the failing line is taken from the stack trace, the
expected and actual values from the assertion message, and the first
occurrence of the expected value at or after that line is replaced with the
actual value. After every patch the selected run configuration re-runs.

` + resultsHelp

const listLongDescription = `List the failed tests of the results view that fix would process.

` + resultsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "autotestfix",
		Short:        "Patch failing test assertions with the actual values",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its persistent flags, for tests and embedding.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultOutputDir,
			"directory of the run report",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().String(logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().StringP(resultsFlagName, "r", defaultResultsDir, "directory of the test results view")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(resultsFlagName), resultsDirKey)

	cmd.PersistentFlags().String(formatFlagName, defaultResultsFormat, "results format: junit or json")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), resultsFormatKey)

	cmd.PersistentFlags().String(patternFlagName, "", "glob of report files inside the results view (default depends on format)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(patternFlagName), resultsPatternKey)
}

// configureFixFlags adds the flags shared by fix and watch. They are bound to config keys
// when the command runs so the two commands do not steal each other's bindings.
func configureFixFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(configFlagName, "c", "", "name of the run configuration to re-run after patching")
	cmd.Flags().Bool(rerunOnceFlagName, false, "re-run once after the batch instead of after every patch")
	cmd.Flags().Bool(noRerunFlagName, false, "never re-run")
	cmd.Flags().Bool(dryRunFlagName, false, "plan and report patches without writing files or re-running")

	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return bindFixFlags(cmd)
	}
}

func bindFixFlags(cmd *cobra.Command) error {
	bindings := []struct{ flag, key string }{
		{configFlagName, rerunSelectedKey},
		{rerunOnceFlagName, rerunOnceKey},
		{noRerunFlagName, rerunDisabledKey},
		{dryRunFlagName, dryRunKey},
	}

	for _, binding := range bindings {
		flag := cmd.Flags().Lookup(binding.flag)
		if flag == nil {
			return fmt.Errorf("flag for config key %q not found", binding.key)
		}

		if err := viper.BindPFlag(binding.key, flag); err != nil {
			return fmt.Errorf("bind %s: %w", binding.flag, err)
		}
	}

	return nil
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
