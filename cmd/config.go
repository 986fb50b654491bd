package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"autotestfix.dev/pkg/autotestfix/internal/adapter"
	"autotestfix.dev/pkg/autotestfix/internal/domain"
	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "autotestfix"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName    = "output"
	verboseFlagName   = "verbose"
	logFileFlagName   = "log-file"
	resultsFlagName   = "results"
	formatFlagName    = "format"
	patternFlagName   = "pattern"
	configFlagName    = "config"
	rerunOnceFlagName = "rerun-once"
	noRerunFlagName   = "no-rerun"
	dryRunFlagName    = "dry-run"

	resultsDirKey          = "results.dir"
	resultsPatternKey      = "results.pattern"
	resultsFormatKey       = "results.format"
	resultsParallelKey     = "results.parallel"
	sourcesProjectKey      = "sources.project"
	sourcesRootsKey        = "sources.roots"
	patternsLineKey        = "patterns.line"
	patternsExpectedKey    = "patterns.expected"
	patternsActualKey      = "patterns.actual"
	rerunSelectedKey       = "rerun.selected"
	rerunConfigurationsKey = "rerun.configurations"
	rerunOnceKey           = "rerun.once"
	rerunDisabledKey       = "rerun.disabled"
	dryRunKey              = "dry-run"
	watchDebounceKey       = "watch.debounce"

	defaultOutputDir       = ".autotestfix"
	defaultResultsDir      = "target/surefire-reports"
	defaultResultsFormat   = string(m.FormatJUnit)
	defaultResultsParallel = 4

	envPrefix = "AUTOTESTFIX"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".autotestfix.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(dryRunKey, false)

	viper.SetDefault(resultsDirKey, defaultResultsDir)
	viper.SetDefault(resultsPatternKey, "")
	viper.SetDefault(resultsFormatKey, defaultResultsFormat)
	viper.SetDefault(resultsParallelKey, defaultResultsParallel)

	viper.SetDefault(sourcesProjectKey, "")
	viper.SetDefault(sourcesRootsKey, adapter.DefaultSourceRoots)

	viper.SetDefault(patternsLineKey, domain.DefaultLinePattern)
	viper.SetDefault(patternsExpectedKey, domain.DefaultExpectedPattern)
	viper.SetDefault(patternsActualKey, domain.DefaultActualPattern)

	viper.SetDefault(rerunSelectedKey, "")
	viper.SetDefault(rerunConfigurationsKey, []map[string]interface{}{})
	viper.SetDefault(rerunOnceKey, false)
	viper.SetDefault(rerunDisabledKey, false)

	viper.SetDefault(watchDebounceKey, adapter.DefaultDebounce.String())

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		fmt.Fprintf(os.Stderr, "autotestfix: ignoring %s: %v\n", configFileName, err)
	}
}

// resultsView builds the selected results view from flags, env and config.
func resultsView() (m.ResultsView, error) {
	format := m.ResultsFormat(strings.ToLower(strings.TrimSpace(viper.GetString(resultsFormatKey))))

	switch format {
	case m.FormatJUnit, m.FormatJSON:
	default:
		return m.ResultsView{}, fmt.Errorf("unknown results format %q (want %s or %s)", format, m.FormatJUnit, m.FormatJSON)
	}

	return m.ResultsView{
		Dir:     m.Path(viper.GetString(resultsDirKey)),
		Pattern: viper.GetString(resultsPatternKey),
		Format:  format,
	}, nil
}

// runConfigurations returns the configured run configurations in file order.
func runConfigurations() ([]m.RunConfiguration, error) {
	var configs []m.RunConfiguration
	if err := viper.UnmarshalKey(rerunConfigurationsKey, &configs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", rerunConfigurationsKey, err)
	}

	return configs, nil
}

// selectedConfiguration picks the run configuration named by rerun.selected. With no
// selection, a single configured entry is used; otherwise none is.
func selectedConfiguration() (m.RunConfiguration, error) {
	configs, err := runConfigurations()
	if err != nil {
		return m.RunConfiguration{}, err
	}

	selected := strings.TrimSpace(viper.GetString(rerunSelectedKey))
	if selected == "" {
		if len(configs) == 1 {
			return configs[0], nil
		}

		return m.RunConfiguration{}, nil
	}

	for _, cfg := range configs {
		if cfg.Name == selected {
			return cfg, nil
		}
	}

	return m.RunConfiguration{}, fmt.Errorf("unknown run configuration %q", selected)
}

func rerunMode() domain.RerunMode {
	switch {
	case viper.GetBool(rerunDisabledKey):
		return domain.RerunNever
	case viper.GetBool(rerunOnceKey):
		return domain.RerunOnce
	default:
		return domain.RerunPerPatch
	}
}

// projectRoot returns sources.project, or the nearest directory above the working
// directory that holds a build file, or the working directory itself.
func projectRoot() m.Path {
	if project := strings.TrimSpace(viper.GetString(sourcesProjectKey)); project != "" {
		return m.Path(project)
	}

	root, err := adapter.FindProjectRoot(configFolderPath)
	if err != nil {
		slog.Debug("No build file found, using working directory as project root", "error", err)
		return configFolderPath
	}

	return root
}

func extractionPatterns() domain.Patterns {
	return domain.Patterns{
		Line:     viper.GetString(patternsLineKey),
		Expected: viper.GetString(patternsExpectedKey),
		Actual:   viper.GetString(patternsActualKey),
	}
}

// fixArgsFromConfig resolves everything a fix run needs.
func fixArgsFromConfig() (domain.FixArgs, error) {
	view, err := resultsView()
	if err != nil {
		return domain.FixArgs{}, err
	}

	cfg, err := selectedConfiguration()
	if err != nil {
		return domain.FixArgs{}, err
	}

	return domain.FixArgs{
		View:          view,
		Configuration: cfg,
		Project:       projectRoot(),
		SourceRoots:   viper.GetStringSlice(sourcesRootsKey),
		Patterns:      extractionPatterns(),
		Output:        m.Path(viper.GetString(outputFlagName)),
		Rerun:         rerunMode(),
		DryRun:        viper.GetBool(dryRunKey),
	}, nil
}

func watchDebounce() time.Duration {
	debounce := viper.GetDuration(watchDebounceKey)
	if debounce <= 0 {
		return adapter.DefaultDebounce
	}

	return debounce
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// initLogging is run by cobra before any command.
func initLogging() {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
}
