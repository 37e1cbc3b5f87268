package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/DoughGuardian_Go/internal/config"
	"github.com/osse101/DoughGuardian_Go/internal/logger"
)

// SetupLogger installs the default logger. With a LogDir it writes to
// stdout and a timestamped session file, which the caller must close.
// The returned file is nil when LogDir is empty.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, cfg.Version, cfg.Environment, !cfg.IsProduction())

	if cfg.LogDir == "" {
		logger.InitLogger(logCfg)
		logStartup(cfg)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateLogsDir, err)
	}
	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))
	logStartup(cfg)
	return logFile, nil
}

func logStartup(cfg *config.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStarting, "environment", cfg.Environment, "version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"store_backend", cfg.StoreBackend,
		"catalog_path", cfg.CatalogPath,
		"autosave_interval", cfg.AutosaveInterval,
		"passive_tick_interval", cfg.PassiveTickInterval,
		"session_cache_size", cfg.SessionCacheSize)
}

// cleanupLogs keeps the newest keep session logs so the new file makes keep+1
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), LogFileExtension) {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	// timestamped names sort chronologically
	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete old log file %s: %v\n", name, err)
		}
	}
}
